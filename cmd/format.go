package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/knoxval/fortshop/internal/models"
	"github.com/knoxval/fortshop/internal/shop"
)

// printShopTable prints grouped shop sections in a human-friendly layout.
func printShopTable(sections []models.ShopSection) {
	for _, sec := range sections {
		fmt.Fprintf(os.Stdout, "\n== %s ==\n", sec.LayoutName)
		for i := range sec.Entries {
			offer := &sec.Entries[i]
			title := shop.DisplayTitle(offer)

			line := fmt.Sprintf(" %-40s %s", truncate(title, 40), formatVbucks(offer.FinalPrice))
			if offer.RegularPrice > offer.FinalPrice {
				line += fmt.Sprintf("  (was %s)", formatVbucks(offer.RegularPrice))
			}
			if offer.OfferTag != nil && offer.OfferTag.Text != "" {
				line += "  [" + offer.OfferTag.Text + "]"
			}
			fmt.Fprintln(os.Stdout, line)

			if n := shop.CountSubItems(offer); n > 1 {
				for _, item := range shop.SelectorItems(offer) {
					fmt.Fprintf(os.Stdout, "    - %s (%s)\n", item.Name, item.Kind)
				}
			} else if n == 0 {
				fmt.Fprintln(os.Stdout, "    (not purchasable)")
			}
		}
	}
}

// printItemDetail prints a detailed single-item card.
func printItemDetail(item *models.DetailedItem) {
	fmt.Fprintf(os.Stdout, "%s  (%s)\n", item.Name, item.ID)
	if item.Description != "" {
		fmt.Fprintf(os.Stdout, "  %s\n", item.Description)
	}
	fmt.Fprintf(os.Stdout, "  Type: %s  |  Rarity: %s\n",
		classifierLabel(item.Type), classifierLabel(item.Rarity))
	if item.Series != nil {
		fmt.Fprintf(os.Stdout, "  Series: %s\n", item.Series.Value)
	}
	if item.Set != nil {
		fmt.Fprintf(os.Stdout, "  Set: %s\n", item.Set.Value)
	}
	if item.Introduction != nil && item.Introduction.Text != "" {
		fmt.Fprintf(os.Stdout, "  %s\n", item.Introduction.Text)
	}
	if len(item.Variants) > 0 {
		var channels []string
		for _, v := range item.Variants {
			channels = append(channels, fmt.Sprintf("%s (%d options)", v.Channel, len(v.Options)))
		}
		fmt.Fprintf(os.Stdout, "  Variants: %s\n", strings.Join(channels, ", "))
	}
	if item.ShowcaseVideo != "" {
		fmt.Fprintf(os.Stdout, "  Showcase: https://youtube.com/watch?v=%s\n", item.ShowcaseVideo)
	}
}

// printSearchTable prints search results one line per item.
func printSearchTable(items []models.BrItem) {
	if len(items) == 0 {
		fmt.Println("No items found.")
		return
	}
	for i, item := range items {
		fmt.Fprintf(os.Stdout, " %2d. %-35s %-12s %s\n",
			i+1, truncate(item.Name, 35), classifierLabel(item.Rarity), item.ID)
	}
}

// formatVbucks formats a price as "1,500 V-Bucks".
func formatVbucks(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}
	return s + " V-Bucks"
}

func classifierLabel(c models.Classifier) string {
	if c.DisplayValue != "" {
		return c.DisplayValue
	}
	return c.Value
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
