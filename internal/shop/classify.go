package shop

import "github.com/knoxval/fortshop/internal/models"

// CountSubItems sums the lengths of all five sub-item arrays.
func CountSubItems(o *models.ShopOffer) int {
	return len(o.BrItems) + len(o.Tracks) + len(o.Instruments) + len(o.Cars) + len(o.LegoKits)
}

// IsSingleItem reports whether the offer carries exactly one sub-item.
// Single items navigate straight to their own detail view; bundles
// (count > 1) open the first sub-item with a picker for the rest; a
// count of zero marks the offer non-navigable.
func IsSingleItem(o *models.ShopOffer) bool {
	return CountSubItems(o) == 1
}
