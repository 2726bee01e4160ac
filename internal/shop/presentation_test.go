package shop

import (
	"reflect"
	"testing"

	"github.com/knoxval/fortshop/internal/models"
)

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name  string
		offer models.ShopOffer
		want  string
	}{
		{
			name: "bundle name wins",
			offer: models.ShopOffer{
				Bundle:  &models.BundleInfo{Name: "Street Style Pack"},
				BrItems: []models.BrItem{{Name: "Renegade"}},
			},
			want: "Street Style Pack",
		},
		{
			name:  "main item name",
			offer: models.ShopOffer{BrItems: []models.BrItem{{Name: "Renegade"}}},
			want:  "Renegade",
		},
		{
			name:  "track uses title",
			offer: models.ShopOffer{Tracks: []models.Track{{Title: "Gimme"}}},
			want:  "Gimme",
		},
		{
			name:  "devName as last resort",
			offer: models.ShopOffer{DevName: "[VIRTUAL]1 x Thing"},
			want:  "[VIRTUAL]1 x Thing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayTitle(&tt.offer); got != tt.want {
				t.Errorf("DisplayTitle = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayImage(t *testing.T) {
	tests := []struct {
		name  string
		offer models.ShopOffer
		want  string
	}{
		{
			name: "bundle image wins",
			offer: models.ShopOffer{
				Bundle:  &models.BundleInfo{Name: "Pack", Image: "https://img/bundle.png"},
				BrItems: []models.BrItem{{Images: models.CosmeticImages{Icon: "https://img/icon.png"}}},
			},
			want: "https://img/bundle.png",
		},
		{
			name: "cosmetic prefers icon over smallIcon",
			offer: models.ShopOffer{BrItems: []models.BrItem{{
				Images: models.CosmeticImages{Icon: "https://img/icon.png", SmallIcon: "https://img/small.png"},
			}}},
			want: "https://img/icon.png",
		},
		{
			name: "cosmetic falls back to smallIcon",
			offer: models.ShopOffer{BrItems: []models.BrItem{{
				Images: models.CosmeticImages{SmallIcon: "https://img/small.png"},
			}}},
			want: "https://img/small.png",
		},
		{
			name: "instrument prefers large then small then wide",
			offer: models.ShopOffer{Instruments: []models.Instrument{{
				Images: models.RenderImages{Small: "https://img/s.png", Wide: "https://img/w.png"},
			}}},
			want: "https://img/s.png",
		},
		{
			name:  "track uses albumArt",
			offer: models.ShopOffer{Tracks: []models.Track{{AlbumArt: "https://img/art.png"}}},
			want:  "https://img/art.png",
		},
		{
			name:  "no sub-items, no bundle",
			offer: models.ShopOffer{},
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayImage(&tt.offer); got != tt.want {
				t.Errorf("DisplayImage = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGradientColors(t *testing.T) {
	tests := []struct {
		name  string
		offer models.ShopOffer
		want  []string
	}{
		{
			name: "offer colors, alpha stripped",
			offer: models.ShopOffer{
				Colors: &models.OfferColors{Color1: "ff0000ff", Color2: "00ff00ff"},
			},
			want: []string{"#ff0000", "#00ff00"},
		},
		{
			name: "all three offer colors",
			offer: models.ShopOffer{
				Colors: &models.OfferColors{Color1: "ff0000ff", Color2: "00ff00ff", Color3: "0000ffff"},
			},
			want: []string{"#ff0000", "#00ff00", "#0000ff"},
		},
		{
			name: "offer colors present but only one valid falls to default",
			offer: models.ShopOffer{
				Colors:  &models.OfferColors{Color1: "ff0000ff"},
				BrItems: []models.BrItem{{Series: &models.Series{Colors: []string{"0000ffff", "ffff00ff"}}}},
			},
			want: []string{"#6366f1", "#8b5cf6"},
		},
		{
			name: "series colors when offer has none",
			offer: models.ShopOffer{
				BrItems: []models.BrItem{{Series: &models.Series{Colors: []string{"0000ffff", "ffff00ff"}}}},
			},
			want: []string{"#0000ff", "#ffff00"},
		},
		{
			name: "series colors capped at two",
			offer: models.ShopOffer{
				BrItems: []models.BrItem{{Series: &models.Series{Colors: []string{"0000ffff", "ffff00ff", "ff00ffff"}}}},
			},
			want: []string{"#0000ff", "#ffff00"},
		},
		{
			name: "single series color falls to default",
			offer: models.ShopOffer{
				BrItems: []models.BrItem{{Series: &models.Series{Colors: []string{"0000ffff"}}}},
			},
			want: []string{"#6366f1", "#8b5cf6"},
		},
		{
			name:  "neither source yields anything",
			offer: models.ShopOffer{BrItems: []models.BrItem{{Name: "Plain"}}},
			want:  []string{"#6366f1", "#8b5cf6"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GradientColors(&tt.offer)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GradientColors = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGradientColorsIdempotent(t *testing.T) {
	offer := models.ShopOffer{
		Colors: &models.OfferColors{Color1: "ff0000ff", Color2: "00ff00ff"},
	}
	a := GradientColors(&offer)
	b := GradientColors(&offer)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated calls differ: %v vs %v", a, b)
	}
}

func TestSeriesImage(t *testing.T) {
	withSeries := models.ShopOffer{
		BrItems: []models.BrItem{{Series: &models.Series{Image: "https://img/series.png"}}},
	}
	if got := SeriesImage(&withSeries); got != "https://img/series.png" {
		t.Errorf("SeriesImage = %q", got)
	}

	noSeries := models.ShopOffer{BrItems: []models.BrItem{{Name: "Plain"}}}
	if got := SeriesImage(&noSeries); got != "" {
		t.Errorf("SeriesImage = %q, want empty", got)
	}
}
