package storage

import (
	"path/filepath"
	"testing"
)

func TestStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set("watched_items", map[string]bool{"cid-1": true}); err != nil {
		t.Fatal(err)
	}

	var got map[string]bool
	ok, err := s.Get("watched_items", &got)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if !got["cid-1"] {
		t.Errorf("got %v", got)
	}
}

func TestStoreMissingKey(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatal(err)
	}
	var v string
	ok, err := s.Get("nope", &v)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected missing key")
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Set("last_seen_shop_date", "2026-08-30"); err != nil {
		t.Fatal(err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	var date string
	ok, err := reopened.Get("last_seen_shop_date", &date)
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if date != "2026-08-30" {
		t.Errorf("date = %q", date)
	}
}

func TestStoreDelete(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.json"))
	if err != nil {
		t.Fatal(err)
	}
	s.Set("k", 1)
	if err := s.Delete("k"); err != nil {
		t.Fatal(err)
	}
	var v int
	if ok, _ := s.Get("k", &v); ok {
		t.Error("key survived delete")
	}
	// Deleting again is a no-op.
	if err := s.Delete("k"); err != nil {
		t.Fatal(err)
	}
}
