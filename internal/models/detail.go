package models

// DetailedItem is the richer single-item shape returned by the
// /v2/cosmetics/br/{id} endpoint. Superset of BrItem.
type DetailedItem struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	Type          Classifier     `json:"type"`
	Rarity        Classifier     `json:"rarity"`
	Series        *Series        `json:"series,omitempty"`
	Set           *ItemSet       `json:"set,omitempty"`
	Introduction  *Introduction  `json:"introduction,omitempty"`
	Images        CosmeticImages `json:"images"`
	Variants      []Variant      `json:"variants,omitempty"`
	GameplayTags  []string       `json:"gameplayTags,omitempty"`
	ShowcaseVideo string         `json:"showcaseVideo,omitempty"`
	Added         string         `json:"added,omitempty"`
}

// ItemSet names the cosmetic set an item belongs to.
type ItemSet struct {
	Value        string `json:"value"`
	Text         string `json:"text,omitempty"`
	BackendValue string `json:"backendValue,omitempty"`
}

// Introduction records the chapter/season an item first appeared in.
type Introduction struct {
	Chapter      string `json:"chapter,omitempty"`
	Season       string `json:"season,omitempty"`
	Text         string `json:"text,omitempty"`
	BackendValue int    `json:"backendValue,omitempty"`
}

// Variant is one customizable channel of a cosmetic (style, color, ...).
type Variant struct {
	Channel string          `json:"channel"`
	Type    string          `json:"type,omitempty"`
	Options []VariantOption `json:"options,omitempty"`
}

// VariantOption is one selectable value within a variant channel.
type VariantOption struct {
	Tag   string `json:"tag"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}
