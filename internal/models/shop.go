package models

// ShopData is the item-shop snapshot returned by /v2/shop.
type ShopData struct {
	Hash      string      `json:"hash"`
	Date      string      `json:"date"`
	VbuckIcon string      `json:"vbuckIcon,omitempty"`
	Entries   []ShopOffer `json:"entries"`
}

// ShopOffer is one purchasable catalog entry. It may bundle any mix of
// the five sub-item kinds; an offer with no sub-items at all is only
// displayable if it carries bundle metadata.
type ShopOffer struct {
	OfferID      string       `json:"offerId"`
	DevName      string       `json:"devName,omitempty"`
	RegularPrice int          `json:"regularPrice"`
	FinalPrice   int          `json:"finalPrice"`
	Giftable     bool         `json:"giftable,omitempty"`
	Refundable   bool         `json:"refundable,omitempty"`
	InDate       string       `json:"inDate,omitempty"`
	OutDate      string       `json:"outDate,omitempty"`
	LayoutID     string       `json:"layoutId,omitempty"`
	SortPriority int          `json:"sortPriority,omitempty"`
	TileSize     string       `json:"tileSize,omitempty"`
	Layout       Layout       `json:"layout,omitempty"`
	Colors       *OfferColors `json:"colors,omitempty"`
	Bundle       *BundleInfo  `json:"bundle,omitempty"`
	OfferTag     *OfferTag    `json:"offerTag,omitempty"`
	BrItems      []BrItem     `json:"brItems,omitempty"`
	Tracks       []Track      `json:"tracks,omitempty"`
	Instruments  []Instrument `json:"instruments,omitempty"`
	Cars         []Car        `json:"cars,omitempty"`
	LegoKits     []LegoKit    `json:"legoKits,omitempty"`
}

// Layout is the backend-defined shop section an offer belongs to.
// A missing layout decodes to the zero value.
type Layout struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	Category       string `json:"category,omitempty"`
	Index          int    `json:"index,omitempty"`
	Rank           int    `json:"rank,omitempty"`
	DisplayType    string `json:"displayType,omitempty"`
	UseWidePreview bool   `json:"useWidePreview,omitempty"`
}

// OfferColors are backend-supplied gradient colors, 8-hex-digit RGBA
// strings (trailing two digits are alpha).
type OfferColors struct {
	Color1 string `json:"color1,omitempty"`
	Color2 string `json:"color2,omitempty"`
	Color3 string `json:"color3,omitempty"`
}

// BundleInfo carries display data for a multi-item bundle offer.
type BundleInfo struct {
	Name  string `json:"name"`
	Info  string `json:"info,omitempty"`
	Image string `json:"image,omitempty"`
}

// OfferTag is a small badge label on an offer tile.
type OfferTag struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ShopSection is a derived grouping of offers under one layout section.
// Recomputed from a shop snapshot, never persisted.
type ShopSection struct {
	LayoutName  string      `json:"layoutName"`
	LayoutIndex int         `json:"layoutIndex"`
	Entries     []ShopOffer `json:"entries"`
}

// SelectorItem is the uniform projection of a bundle's sub-items used
// by the bundle-contents picker.
type SelectorItem struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Image string   `json:"image,omitempty"`
	Kind  ItemKind `json:"kind"`
}
