package shop

import (
	"sort"

	"github.com/knoxval/fortshop/internal/models"
)

// GroupBy selects the group-identity key for GroupAndSort.
type GroupBy string

const (
	// GroupByIndex groups by layout.index; the layout name rides along
	// for display only.
	GroupByIndex GroupBy = "index"
	// GroupByName groups by layout.name, mapping offers without layout
	// data to the "Unknown" section at index 999.
	GroupByName GroupBy = "name"
)

const (
	unknownSectionName  = "Unknown"
	unknownSectionIndex = 999
)

// GroupAndSort partitions offers into layout sections and orders both
// the sections and the offers within each section.
//
// Within a section, offers sort by layoutId descending-lexically, with
// sortPriority descending as the tie-break. Sorting a string ID before
// a numeric priority looks backwards, but it is the backend's own
// convention (newer layout IDs sort first) and is kept verbatim.
// Sections themselves order ascending by layout index.
func GroupAndSort(offers []models.ShopOffer, by GroupBy) []models.ShopSection {
	type key struct {
		name  string
		index int
	}

	keyOf := func(o *models.ShopOffer) key {
		switch by {
		case GroupByName:
			if o.Layout.Name == "" {
				return key{name: unknownSectionName, index: unknownSectionIndex}
			}
			return key{name: o.Layout.Name}
		default:
			return key{index: o.Layout.Index}
		}
	}

	sections := make(map[key]*models.ShopSection)
	var order []key
	for i := range offers {
		o := &offers[i]
		k := keyOf(o)
		sec, ok := sections[k]
		if !ok {
			name, index := o.Layout.Name, o.Layout.Index
			if by == GroupByName && name == "" {
				name, index = unknownSectionName, unknownSectionIndex
			}
			sec = &models.ShopSection{LayoutName: name, LayoutIndex: index}
			sections[k] = sec
			order = append(order, k)
		}
		sec.Entries = append(sec.Entries, *o)
	}

	out := make([]models.ShopSection, 0, len(order))
	for _, k := range order {
		sec := sections[k]
		sort.SliceStable(sec.Entries, func(i, j int) bool {
			a, b := sec.Entries[i], sec.Entries[j]
			if a.LayoutID != b.LayoutID {
				return a.LayoutID > b.LayoutID
			}
			return a.SortPriority > b.SortPriority
		})
		out = append(out, *sec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LayoutIndex < out[j].LayoutIndex
	})
	return out
}
