// Package shop holds the pure presentation logic for item-shop offers:
// main-item resolution, display extraction, bundle classification,
// section grouping and the bundle-picker projection. Everything here is
// deterministic and side-effect free.
package shop

import "github.com/knoxval/fortshop/internal/models"

// ResolveMainItem picks the single sub-item that represents an offer's
// title and image. First non-empty array wins, in fixed priority:
// brItems, instruments, cars, tracks, legoKits. Returns ok=false when
// all five arrays are empty.
func ResolveMainItem(o *models.ShopOffer) (models.MainItem, bool) {
	switch {
	case len(o.BrItems) > 0:
		return o.BrItems[0], true
	case len(o.Instruments) > 0:
		return o.Instruments[0], true
	case len(o.Cars) > 0:
		return o.Cars[0], true
	case len(o.Tracks) > 0:
		return o.Tracks[0], true
	case len(o.LegoKits) > 0:
		return o.LegoKits[0], true
	}
	return nil, false
}
