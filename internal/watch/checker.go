package watch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/knoxval/fortshop/internal/models"
)

// State is the persisted input to a check, passed explicitly so the
// decision logic stays testable without a store.
type State struct {
	LastSeenShopDate  string
	LastWatchedNotify time.Time // zero when never notified
	Watched           map[string]bool
}

// Result is what one check decided.
type Result struct {
	ShopUpdated bool
	// WatchedFound lists watched sub-items present in the new shop,
	// regardless of whether the daily gate let notifications fire.
	WatchedFound []models.SelectorItem
	// NotifyWatched is true when per-item notifications should fire:
	// watched items were found and none have been announced today.
	NotifyWatched bool

	nextLastSeen      string
	nextWatchedNotify time.Time
}

// Evaluate is the notification decision function. It mutates nothing;
// the caller applies the returned result to the store.
//
// An unchanged shop date is terminal: no notifications, no state
// changes. A new date always announces the shop update; watched-item
// notifications additionally pass a calendar-day gate so a same-day
// re-check cannot announce items twice, even if new watched items
// appeared since the first check.
func Evaluate(shop *models.ShopData, st State, now time.Time) Result {
	if shop.Date == st.LastSeenShopDate {
		return Result{WatchedFound: []models.SelectorItem{}}
	}

	res := Result{
		ShopUpdated:  true,
		WatchedFound: watchedIn(shop, st.Watched),
		nextLastSeen: shop.Date,
	}
	if len(res.WatchedFound) > 0 && !sameCalendarDay(st.LastWatchedNotify, now) {
		res.NotifyWatched = true
		res.nextWatchedNotify = now
	}
	return res
}

// watchedIn collects all sub-items across all offers and kinds whose
// ID is on the watch list.
func watchedIn(shop *models.ShopData, watched map[string]bool) []models.SelectorItem {
	found := []models.SelectorItem{}
	seen := make(map[string]bool)
	add := func(m models.MainItem) {
		id := m.ItemID()
		if watched[id] && !seen[id] {
			seen[id] = true
			found = append(found, models.SelectorItem{
				ID:    id,
				Name:  m.DisplayName(),
				Image: m.ThumbImage(),
				Kind:  m.Kind(),
			})
		}
	}
	for i := range shop.Entries {
		o := &shop.Entries[i]
		for _, b := range o.BrItems {
			add(b)
		}
		for _, t := range o.Tracks {
			add(t)
		}
		for _, in := range o.Instruments {
			add(in)
		}
		for _, c := range o.Cars {
			add(c)
		}
		for _, k := range o.LegoKits {
			add(k)
		}
	}
	return found
}

// sameCalendarDay compares calendar dates in now's location, not
// elapsed duration. A zero last value never matches.
func sameCalendarDay(last, now time.Time) bool {
	if last.IsZero() {
		return false
	}
	ly, lm, ld := last.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return ly == ny && lm == nm && ld == nd
}

// ShopFetcher is the slice of the API client the checker needs.
type ShopFetcher interface {
	Shop(ctx context.Context) (*models.ShopData, error)
}

// Checker runs the full check: fetch, evaluate, notify, persist.
type Checker struct {
	fetcher  ShopFetcher
	store    *Store
	notifier Notifier
	now      func() time.Time
}

// NewChecker wires a checker. A nil notifier falls back to stderr.
func NewChecker(fetcher ShopFetcher, store *Store, notifier Notifier) *Checker {
	if notifier == nil {
		notifier = NewLogNotifier(nil)
	}
	return &Checker{fetcher: fetcher, store: store, notifier: notifier, now: time.Now}
}

// Run performs one check. A fetch failure aborts the whole check with
// no notifications and no state mutation; the next scheduled run
// retries. Notifier failures are logged and never propagate.
func (c *Checker) Run(ctx context.Context) (Result, error) {
	if !c.store.UpdatesEnabled() {
		return Result{WatchedFound: []models.SelectorItem{}}, nil
	}

	shop, err := c.fetcher.Shop(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("fetch shop: %w", err)
	}

	res := Evaluate(shop, c.store.State(), c.now())

	if res.ShopUpdated {
		c.notify(ctx, "Item Shop Updated",
			fmt.Sprintf("A new item shop is live with %d offers.", len(shop.Entries)))
		if err := c.store.SetLastSeenShopDate(res.nextLastSeen); err != nil {
			return res, fmt.Errorf("persist shop date: %w", err)
		}
	}

	if res.NotifyWatched {
		for _, item := range res.WatchedFound {
			c.notify(ctx, "Watched Item In Shop",
				fmt.Sprintf("%s (%s) is in the item shop!", item.Name, item.Kind))
		}
		if err := c.store.SetLastWatchedNotify(res.nextWatchedNotify); err != nil {
			return res, fmt.Errorf("persist notification stamp: %w", err)
		}
	}

	return res, nil
}

func (c *Checker) notify(ctx context.Context, title, body string) {
	if err := c.notifier.Notify(ctx, title, body); err != nil {
		log.Printf("notifier error: %v", err)
	}
}
