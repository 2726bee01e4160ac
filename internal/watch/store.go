// Package watch implements the watched-items list and the shop-update
// notification check: a pure decision function over explicit state,
// wrapped by a checker that owns persistence and a periodic scheduler.
package watch

import (
	"fmt"
	"sync"
	"time"

	"github.com/knoxval/fortshop/internal/storage"
)

const (
	keyWatchedItems      = "watched_items"
	keyLastSeenShopDate  = "last_seen_shop_date"
	keyLastWatchedNotify = "last_watch_notification"
	keyUpdatesEnabled    = "shop_updates_enabled"
)

// Store owns all persisted notification state. Nothing else writes
// these keys; readers go through the accessors here.
type Store struct {
	mu sync.Mutex
	kv *storage.Store
}

// NewStore wraps the key-value store.
func NewStore(kv *storage.Store) *Store {
	return &Store{kv: kv}
}

// Watch marks an item ID as watched.
func (s *Store) Watch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.watchedLocked()
	items[id] = true
	return s.kv.Set(keyWatchedItems, items)
}

// Unwatch removes an item ID. Unwatched entries are pruned, never kept
// as explicit false values.
func (s *Store) Unwatch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.watchedLocked()
	if _, ok := items[id]; !ok {
		return nil
	}
	delete(items, id)
	return s.kv.Set(keyWatchedItems, items)
}

// Watched returns the set of watched item IDs.
func (s *Store) Watched() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watchedLocked()
}

// IsWatched reports whether id is on the watch list.
func (s *Store) IsWatched(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.watchedLocked()[id]
}

func (s *Store) watchedLocked() map[string]bool {
	items := make(map[string]bool)
	if _, err := s.kv.Get(keyWatchedItems, &items); err != nil {
		return make(map[string]bool)
	}
	// Defend against hand-edited state files: drop false entries.
	for id, watched := range items {
		if !watched {
			delete(items, id)
		}
	}
	return items
}

// State snapshots the persisted checker inputs.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{Watched: s.watchedLocked()}
	s.kv.Get(keyLastSeenShopDate, &st.LastSeenShopDate)

	var stamp string
	if ok, _ := s.kv.Get(keyLastWatchedNotify, &stamp); ok {
		if t, err := time.Parse(time.RFC3339, stamp); err == nil {
			st.LastWatchedNotify = t
		}
	}
	return st
}

// SetLastSeenShopDate persists the shop date of the last processed
// snapshot.
func (s *Store) SetLastSeenShopDate(date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Set(keyLastSeenShopDate, date)
}

// SetLastWatchedNotify persists the watched-item notification stamp.
func (s *Store) SetLastWatchedNotify(t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Set(keyLastWatchedNotify, t.Format(time.RFC3339))
}

// UpdatesEnabled reports whether shop-update checks are switched on.
// Defaults to true until the user toggles it off.
func (s *Store) UpdatesEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	enabled := true
	s.kv.Get(keyUpdatesEnabled, &enabled)
	return enabled
}

// SetUpdatesEnabled switches shop-update checks on or off.
func (s *Store) SetUpdatesEnabled(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(keyUpdatesEnabled, enabled); err != nil {
		return fmt.Errorf("persist updates flag: %w", err)
	}
	return nil
}
