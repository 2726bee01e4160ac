package models

// ItemKind discriminates the five concrete sub-item variants.
type ItemKind string

const (
	KindCosmetic   ItemKind = "Cosmetic"
	KindTrack      ItemKind = "Track"
	KindInstrument ItemKind = "Instrument"
	KindCar        ItemKind = "Car"
	KindLegoKit    ItemKind = "Lego Kit"
)

// Classifier is the {value, displayValue, backendValue} triple the API
// uses for rarity and type fields.
type Classifier struct {
	Value        string `json:"value"`
	DisplayValue string `json:"displayValue,omitempty"`
	BackendValue string `json:"backendValue,omitempty"`
}

// Series marks an item as part of a named series (Marvel, Icon, ...).
// Colors are 8-hex-digit RGBA strings.
type Series struct {
	Value        string   `json:"value"`
	Image        string   `json:"image,omitempty"`
	Colors       []string `json:"colors,omitempty"`
	BackendValue string   `json:"backendValue,omitempty"`
}

// MainItem is the tagged-variant view over the five sub-item kinds.
// Each variant answers presentation questions exhaustively for its own
// image bag, so callers never probe union fields at runtime.
type MainItem interface {
	ItemID() string
	Kind() ItemKind
	// DisplayName is the item's card title (name, or title for tracks).
	DisplayName() string
	// PreviewImage is the large card image for the shop tile.
	PreviewImage() string
	// ThumbImage is the small image used in the bundle picker.
	ThumbImage() string
	SeriesInfo() *Series
}

// CosmeticImages is the image bag of a BR cosmetic.
type CosmeticImages struct {
	SmallIcon string `json:"smallIcon,omitempty"`
	Icon      string `json:"icon,omitempty"`
	Featured  string `json:"featured,omitempty"`
}

// RenderImages is the image bag shared by instruments, cars and LEGO kits.
type RenderImages struct {
	Small string `json:"small,omitempty"`
	Large string `json:"large,omitempty"`
	Wide  string `json:"wide,omitempty"`
}

// BrItem is a battle-royale cosmetic (outfit, back bling, pickaxe, ...).
type BrItem struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Type        Classifier     `json:"type"`
	Rarity      Classifier     `json:"rarity"`
	Series      *Series        `json:"series,omitempty"`
	Images      CosmeticImages `json:"images"`
	Added       string         `json:"added,omitempty"`
}

func (b BrItem) ItemID() string      { return b.ID }
func (BrItem) Kind() ItemKind        { return KindCosmetic }
func (b BrItem) DisplayName() string { return b.Name }
func (b BrItem) PreviewImage() string {
	if b.Images.Icon != "" {
		return b.Images.Icon
	}
	return b.Images.SmallIcon
}
func (b BrItem) ThumbImage() string {
	if b.Images.SmallIcon != "" {
		return b.Images.SmallIcon
	}
	return b.Images.Icon
}
func (b BrItem) SeriesInfo() *Series { return b.Series }

// Track is a jam track.
type Track struct {
	ID          string  `json:"id"`
	DevName     string  `json:"devName,omitempty"`
	Title       string  `json:"title"`
	Artist      string  `json:"artist,omitempty"`
	Album       string  `json:"album,omitempty"`
	ReleaseYear int     `json:"releaseYear,omitempty"`
	Duration    int     `json:"duration,omitempty"`
	AlbumArt    string  `json:"albumArt,omitempty"`
	Series      *Series `json:"series,omitempty"`
	Added       string  `json:"added,omitempty"`
}

func (t Track) ItemID() string       { return t.ID }
func (Track) Kind() ItemKind         { return KindTrack }
func (t Track) DisplayName() string  { return t.Title }
func (t Track) PreviewImage() string { return t.AlbumArt }
func (t Track) ThumbImage() string   { return t.AlbumArt }
func (t Track) SeriesInfo() *Series  { return t.Series }

// Instrument is a festival instrument.
type Instrument struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Type        Classifier   `json:"type"`
	Rarity      Classifier   `json:"rarity"`
	Series      *Series      `json:"series,omitempty"`
	Images      RenderImages `json:"images"`
	Added       string       `json:"added,omitempty"`
}

func (i Instrument) ItemID() string      { return i.ID }
func (Instrument) Kind() ItemKind        { return KindInstrument }
func (i Instrument) DisplayName() string { return i.Name }
func (i Instrument) PreviewImage() string {
	return previewFromRender(i.Images)
}
func (i Instrument) ThumbImage() string {
	return thumbFromRender(i.Images)
}
func (i Instrument) SeriesInfo() *Series { return i.Series }

// Car is a rocket-racing vehicle.
type Car struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Type        Classifier   `json:"type"`
	Rarity      Classifier   `json:"rarity"`
	Series      *Series      `json:"series,omitempty"`
	Images      RenderImages `json:"images"`
	Added       string       `json:"added,omitempty"`
}

func (c Car) ItemID() string      { return c.ID }
func (Car) Kind() ItemKind        { return KindCar }
func (c Car) DisplayName() string { return c.Name }
func (c Car) PreviewImage() string {
	return previewFromRender(c.Images)
}
func (c Car) ThumbImage() string {
	return thumbFromRender(c.Images)
}
func (c Car) SeriesInfo() *Series { return c.Series }

// LegoKit is a LEGO decor/build kit.
type LegoKit struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Type   Classifier   `json:"type"`
	Series *Series      `json:"series,omitempty"`
	Images RenderImages `json:"images"`
	Added  string       `json:"added,omitempty"`
}

func (k LegoKit) ItemID() string      { return k.ID }
func (LegoKit) Kind() ItemKind        { return KindLegoKit }
func (k LegoKit) DisplayName() string { return k.Name }
func (k LegoKit) PreviewImage() string {
	return previewFromRender(k.Images)
}
func (k LegoKit) ThumbImage() string { return k.Images.Small }
func (k LegoKit) SeriesInfo() *Series {
	return k.Series
}

// previewFromRender probes large, small, wide, the card-image
// preference for render-style image bags.
func previewFromRender(img RenderImages) string {
	if img.Large != "" {
		return img.Large
	}
	if img.Small != "" {
		return img.Small
	}
	return img.Wide
}

// thumbFromRender prefers the small render for picker thumbnails.
func thumbFromRender(img RenderImages) string {
	if img.Small != "" {
		return img.Small
	}
	return img.Large
}
