package shop

import (
	"testing"

	"github.com/knoxval/fortshop/internal/models"
)

func TestSelectorItemsSuppressed(t *testing.T) {
	// Hard UI rule: zero or one sub-item renders no picker at all.
	empty := models.ShopOffer{}
	if got := SelectorItems(&empty); len(got) != 0 {
		t.Errorf("empty offer: got %d items, want none", len(got))
	}

	single := models.ShopOffer{BrItems: []models.BrItem{{ID: "a", Name: "Solo"}}}
	if got := SelectorItems(&single); len(got) != 0 {
		t.Errorf("single-item offer: got %d items, want none", len(got))
	}
}

func TestSelectorItemsOrderAndKinds(t *testing.T) {
	offer := models.ShopOffer{
		LegoKits:    []models.LegoKit{{ID: "kit", Name: "Lodge", Images: models.RenderImages{Small: "kit-s"}}},
		Cars:        []models.Car{{ID: "car", Name: "Whiplash", Images: models.RenderImages{Small: "car-s", Large: "car-l"}}},
		Tracks:      []models.Track{{ID: "trk", Title: "Gimme", AlbumArt: "art"}},
		Instruments: []models.Instrument{{ID: "inst", Name: "Bass", Images: models.RenderImages{Large: "inst-l"}}},
		BrItems: []models.BrItem{
			{ID: "br1", Name: "Renegade", Images: models.CosmeticImages{SmallIcon: "br1-si", Icon: "br1-i"}},
			{ID: "br2", Name: "Raider", Images: models.CosmeticImages{Icon: "br2-i"}},
		},
	}

	items := SelectorItems(&offer)
	if len(items) != 6 {
		t.Fatalf("got %d items, want 6", len(items))
	}

	want := []models.SelectorItem{
		{ID: "br1", Name: "Renegade", Image: "br1-si", Kind: models.KindCosmetic},
		{ID: "br2", Name: "Raider", Image: "br2-i", Kind: models.KindCosmetic},
		{ID: "trk", Name: "Gimme", Image: "art", Kind: models.KindTrack},
		{ID: "inst", Name: "Bass", Image: "inst-l", Kind: models.KindInstrument},
		{ID: "car", Name: "Whiplash", Image: "car-s", Kind: models.KindCar},
		{ID: "kit", Name: "Lodge", Image: "kit-s", Kind: models.KindLegoKit},
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("item[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}
}

func TestSelectorItemsPreservesArrayOrder(t *testing.T) {
	offer := models.ShopOffer{
		BrItems: []models.BrItem{{ID: "first"}, {ID: "second"}},
	}
	items := SelectorItems(&offer)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != "first" || items[1].ID != "second" {
		t.Errorf("order = [%s %s]", items[0].ID, items[1].ID)
	}
}
