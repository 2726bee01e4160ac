package shop

import "github.com/knoxval/fortshop/internal/models"

// SelectorItems flattens a bundle offer's sub-items into the uniform
// list consumed by the bundle-contents picker, in fixed kind order:
// cosmetics, tracks, instruments, cars, LEGO kits. A list of one or
// zero items returns nil; the picker is suppressed for single-item
// offers, not rendered with one entry.
func SelectorItems(o *models.ShopOffer) []models.SelectorItem {
	items := make([]models.SelectorItem, 0, CountSubItems(o))
	for _, b := range o.BrItems {
		items = append(items, project(b))
	}
	for _, t := range o.Tracks {
		items = append(items, project(t))
	}
	for _, i := range o.Instruments {
		items = append(items, project(i))
	}
	for _, c := range o.Cars {
		items = append(items, project(c))
	}
	for _, k := range o.LegoKits {
		items = append(items, project(k))
	}
	if len(items) <= 1 {
		return nil
	}
	return items
}

func project(m models.MainItem) models.SelectorItem {
	return models.SelectorItem{
		ID:    m.ItemID(),
		Name:  m.DisplayName(),
		Image: m.ThumbImage(),
		Kind:  m.Kind(),
	}
}
