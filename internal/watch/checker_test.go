package watch

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/knoxval/fortshop/internal/models"
	"github.com/knoxval/fortshop/internal/storage"
)

func shopWith(date string, itemIDs ...string) *models.ShopData {
	shop := &models.ShopData{Hash: "h-" + date, Date: date}
	for _, id := range itemIDs {
		shop.Entries = append(shop.Entries, models.ShopOffer{
			OfferID: "offer-" + id,
			BrItems: []models.BrItem{{ID: id, Name: "Item " + id}},
		})
	}
	return shop
}

func TestEvaluateUnchangedShopIsTerminal(t *testing.T) {
	shop := shopWith("2026-08-30", "cid-1")
	st := State{
		LastSeenShopDate: "2026-08-30",
		Watched:          map[string]bool{"cid-1": true},
	}

	res := Evaluate(shop, st, time.Now())
	if res.ShopUpdated {
		t.Error("unchanged shop must not report an update")
	}
	if len(res.WatchedFound) != 0 {
		t.Errorf("unchanged shop must report no watched items, got %v", res.WatchedFound)
	}
	if res.NotifyWatched {
		t.Error("unchanged shop must not notify")
	}
}

func TestEvaluateNewShopAlwaysAnnounces(t *testing.T) {
	shop := shopWith("2026-08-31")
	res := Evaluate(shop, State{LastSeenShopDate: "2026-08-30"}, time.Now())
	if !res.ShopUpdated {
		t.Error("new shop date must announce an update")
	}
	if res.nextLastSeen != "2026-08-31" {
		t.Errorf("nextLastSeen = %q", res.nextLastSeen)
	}
}

func TestEvaluateFindsWatchedItemsAcrossKinds(t *testing.T) {
	shop := &models.ShopData{
		Date: "2026-08-31",
		Entries: []models.ShopOffer{
			{BrItems: []models.BrItem{{ID: "br-1", Name: "Renegade"}}},
			{Tracks: []models.Track{{ID: "trk-1", Title: "Gimme"}}},
			{Cars: []models.Car{{ID: "car-1", Name: "Whiplash"}}},
		},
	}
	st := State{Watched: map[string]bool{"trk-1": true, "car-1": true, "absent": true}}

	res := Evaluate(shop, st, time.Now())
	if len(res.WatchedFound) != 2 {
		t.Fatalf("found %d watched items, want 2", len(res.WatchedFound))
	}
	if !res.NotifyWatched {
		t.Error("first find of the day must notify")
	}
}

func TestEvaluateDailyGate(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)

	shop1 := shopWith("2026-08-31T00:00:00Z", "cid-1")
	st := State{Watched: map[string]bool{"cid-1": true, "cid-2": true}}

	first := Evaluate(shop1, st, now)
	if !first.NotifyWatched {
		t.Fatal("first check must notify")
	}

	// Same-day re-check with a newly appeared watched item: gate holds.
	st.LastSeenShopDate = "2026-08-31T00:00:00Z"
	st.LastWatchedNotify = first.nextWatchedNotify
	shop2 := shopWith("2026-08-31T12:00:00Z", "cid-1", "cid-2")
	second := Evaluate(shop2, st, now.Add(5*time.Hour))
	if !second.ShopUpdated {
		t.Error("new shop date still announces the rotation")
	}
	if second.NotifyWatched {
		t.Error("same-day re-check must not notify watched items again")
	}
	if len(second.WatchedFound) != 2 {
		t.Errorf("watched items still reported: got %d, want 2", len(second.WatchedFound))
	}

	// Next calendar day: gate opens again.
	st.LastSeenShopDate = "2026-08-31T12:00:00Z"
	shop3 := shopWith("2026-09-01T00:00:00Z", "cid-1")
	third := Evaluate(shop3, st, now.Add(24*time.Hour))
	if !third.NotifyWatched {
		t.Error("next-day check must notify again")
	}
}

func TestEvaluateGateComparesCalendarDayNotDuration(t *testing.T) {
	// 23:30 yesterday vs 00:30 today is under an hour apart but a
	// different calendar day, so the gate opens.
	lastNotify := time.Date(2026, 8, 30, 23, 30, 0, 0, time.Local)
	now := time.Date(2026, 8, 31, 0, 30, 0, 0, time.Local)

	shop := shopWith("2026-08-31", "cid-1")
	st := State{Watched: map[string]bool{"cid-1": true}, LastWatchedNotify: lastNotify}

	if res := Evaluate(shop, st, now); !res.NotifyWatched {
		t.Error("crossing midnight must reopen the gate")
	}
}

type stubFetcher struct {
	shop *models.ShopData
	err  error
}

func (s *stubFetcher) Shop(ctx context.Context) (*models.ShopData, error) {
	return s.shop, s.err
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	kv, err := storage.Open(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatal(err)
	}
	return NewStore(kv)
}

func TestCheckerRunPersistsAndNotifies(t *testing.T) {
	store := newTestStore(t)
	store.Watch("cid-1")

	var out strings.Builder
	checker := NewChecker(&stubFetcher{shop: shopWith("2026-08-31", "cid-1")}, store, NewLogNotifier(&out))

	res, err := checker.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !res.ShopUpdated || !res.NotifyWatched {
		t.Errorf("result = %+v", res)
	}
	if got := store.State().LastSeenShopDate; got != "2026-08-31" {
		t.Errorf("persisted date = %q", got)
	}
	if store.State().LastWatchedNotify.IsZero() {
		t.Error("notification stamp not persisted")
	}
	if !strings.Contains(out.String(), "Item Shop Updated") {
		t.Errorf("missing shop notification in %q", out.String())
	}
	if !strings.Contains(out.String(), "Item cid-1") {
		t.Errorf("missing watched-item notification in %q", out.String())
	}

	// Second run against the same snapshot is a no-op.
	out.Reset()
	res, err = checker.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.ShopUpdated || out.Len() != 0 {
		t.Errorf("repeat run notified: %+v / %q", res, out.String())
	}
}

func TestCheckerRunFetchFailureMutatesNothing(t *testing.T) {
	store := newTestStore(t)
	store.SetLastSeenShopDate("2026-08-30")

	var out strings.Builder
	checker := NewChecker(&stubFetcher{err: errors.New("boom")}, store, NewLogNotifier(&out))

	if _, err := checker.Run(context.Background()); err == nil {
		t.Fatal("expected fetch error to propagate")
	}
	if out.Len() != 0 {
		t.Errorf("notifications fired on fetch failure: %q", out.String())
	}
	if got := store.State().LastSeenShopDate; got != "2026-08-30" {
		t.Errorf("state mutated on fetch failure: %q", got)
	}
}

func TestCheckerRunDisabled(t *testing.T) {
	store := newTestStore(t)
	store.SetUpdatesEnabled(false)

	fetcher := &stubFetcher{err: errors.New("should not be called")}
	checker := NewChecker(fetcher, store, NewLogNotifier(&strings.Builder{}))

	res, err := checker.Run(context.Background())
	if err != nil {
		t.Fatalf("disabled check errored: %v", err)
	}
	if res.ShopUpdated {
		t.Error("disabled check reported an update")
	}
}
