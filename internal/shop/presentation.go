package shop

import (
	"strings"

	"github.com/knoxval/fortshop/internal/models"
)

// Default gradient pair used when neither the offer nor its main item
// supplies at least two usable colors.
const (
	defaultGradientTop    = "#6366f1"
	defaultGradientBottom = "#8b5cf6"
)

// DisplayTitle returns the offer's card title: bundle name when set,
// else the main item's name (title for tracks), else the raw devName.
func DisplayTitle(o *models.ShopOffer) string {
	if o.Bundle != nil && o.Bundle.Name != "" {
		return o.Bundle.Name
	}
	if main, ok := ResolveMainItem(o); ok {
		if name := main.DisplayName(); name != "" {
			return name
		}
	}
	return o.DevName
}

// DisplayImage returns the offer's card image: bundle image when set,
// else the main item's preview image. Empty when nothing is available.
func DisplayImage(o *models.ShopOffer) string {
	if o.Bundle != nil && o.Bundle.Image != "" {
		return o.Bundle.Image
	}
	if main, ok := ResolveMainItem(o); ok {
		return main.PreviewImage()
	}
	return ""
}

// GradientColors returns the tile background gradient. Offer-level
// colors win; when the offer carries none, the main item's series
// colors are tried; anything yielding fewer than two usable colors
// falls back to the default pair.
func GradientColors(o *models.ShopOffer) []string {
	if o.Colors != nil {
		colors := hexColors(o.Colors.Color1, o.Colors.Color2, o.Colors.Color3)
		if len(colors) >= 2 {
			return colors
		}
		return []string{defaultGradientTop, defaultGradientBottom}
	}
	if main, ok := ResolveMainItem(o); ok {
		if s := main.SeriesInfo(); s != nil {
			raw := s.Colors
			if len(raw) > 2 {
				raw = raw[:2]
			}
			colors := hexColors(raw...)
			if len(colors) >= 2 {
				return colors
			}
		}
	}
	return []string{defaultGradientTop, defaultGradientBottom}
}

// SeriesImage returns the main item's series background image, if any.
// When present it replaces the gradient entirely.
func SeriesImage(o *models.ShopOffer) string {
	if main, ok := ResolveMainItem(o); ok {
		if s := main.SeriesInfo(); s != nil {
			return s.Image
		}
	}
	return ""
}

// hexColors converts raw RGBA hex strings to display colors: the two
// trailing alpha digits are dropped, a '#' is prefixed, and empty
// inputs are filtered out.
func hexColors(raw ...string) []string {
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if len(c) > 6 {
			c = c[:len(c)-2]
		}
		out = append(out, "#"+c)
	}
	return out
}
