package shop

import (
	"testing"

	"github.com/knoxval/fortshop/internal/models"
)

func offerIn(layoutID string, index, priority int, name string) models.ShopOffer {
	return models.ShopOffer{
		OfferID:      layoutID + "-offer",
		LayoutID:     layoutID,
		SortPriority: priority,
		Layout:       models.Layout{ID: layoutID, Name: name, Index: index},
	}
}

func TestGroupAndSortWithinGroup(t *testing.T) {
	offers := []models.ShopOffer{
		offerIn("B", 0, 1, "Featured"),
		offerIn("A", 0, 5, "Featured"),
	}

	sections := GroupAndSort(offers, GroupByIndex)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	entries := sections[0].Entries
	// layoutId descends lexically: B before A, priority only tie-breaks.
	if entries[0].LayoutID != "B" || entries[1].LayoutID != "A" {
		t.Errorf("order = [%s %s], want [B A]", entries[0].LayoutID, entries[1].LayoutID)
	}
}

func TestGroupAndSortPriorityTieBreak(t *testing.T) {
	low := offerIn("A", 0, 1, "Featured")
	low.OfferID = "low"
	high := offerIn("A", 0, 9, "Featured")
	high.OfferID = "high"

	sections := GroupAndSort([]models.ShopOffer{low, high}, GroupByIndex)
	entries := sections[0].Entries
	if entries[0].OfferID != "high" || entries[1].OfferID != "low" {
		t.Errorf("order = [%s %s], want [high low]", entries[0].OfferID, entries[1].OfferID)
	}
}

func TestGroupAndSortSectionOrder(t *testing.T) {
	offers := []models.ShopOffer{
		offerIn("E", 5, 0, "Gear"),
		offerIn("A", 1, 0, "Featured"),
		offerIn("C", 3, 0, "Music"),
	}

	sections := GroupAndSort(offers, GroupByIndex)
	if len(sections) != 3 {
		t.Fatalf("got %d sections, want 3", len(sections))
	}
	gotIndexes := []int{sections[0].LayoutIndex, sections[1].LayoutIndex, sections[2].LayoutIndex}
	wantIndexes := []int{1, 3, 5}
	for i := range wantIndexes {
		if gotIndexes[i] != wantIndexes[i] {
			t.Fatalf("section indexes = %v, want %v", gotIndexes, wantIndexes)
		}
	}
}

func TestGroupByIndexSplitsSameName(t *testing.T) {
	// Two sections can share a display name; index is the identity key.
	offers := []models.ShopOffer{
		offerIn("A", 1, 0, "Featured"),
		offerIn("B", 2, 0, "Featured"),
	}
	sections := GroupAndSort(offers, GroupByIndex)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2 distinct index groups", len(sections))
	}
}

func TestGroupByNameMergesAcrossIndex(t *testing.T) {
	offers := []models.ShopOffer{
		offerIn("A", 1, 0, "Featured"),
		offerIn("B", 2, 0, "Featured"),
	}
	sections := GroupAndSort(offers, GroupByName)
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1 name group", len(sections))
	}
	if sections[0].LayoutName != "Featured" {
		t.Errorf("section name = %q", sections[0].LayoutName)
	}
}

func TestGroupByNameMissingLayout(t *testing.T) {
	offers := []models.ShopOffer{
		{OfferID: "no-layout"},
		offerIn("A", 1, 0, "Featured"),
	}
	sections := GroupAndSort(offers, GroupByName)
	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	// Unknown sinks to the bottom via index 999.
	last := sections[len(sections)-1]
	if last.LayoutName != "Unknown" || last.LayoutIndex != 999 {
		t.Errorf("fallback section = %q/%d, want Unknown/999", last.LayoutName, last.LayoutIndex)
	}
}

func TestGroupAndSortEmptyInput(t *testing.T) {
	if sections := GroupAndSort(nil, GroupByIndex); len(sections) != 0 {
		t.Errorf("got %d sections for nil input", len(sections))
	}
}
