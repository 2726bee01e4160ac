package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/knoxval/fortshop/internal/fortnite"
	"github.com/knoxval/fortshop/internal/ui"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [name]",
	Short: "Search cosmetics by name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().String("match", "contains", "Name match method: full, contains, starts, ends")
	searchCmd.Flags().String("type", "", "Filter by cosmetic type (outfit, backpack, ...)")
	searchCmd.Flags().String("rarity", "", "Filter by rarity (common, rare, epic, legendary, ...)")
	searchCmd.Flags().String("series", "", "Filter by series name")
	searchCmd.Flags().Int("limit", 20, "Maximum results to print")
	searchCmd.Flags().String("format", "table", "Output format: json, table")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	name := args[0]
	match, _ := cmd.Flags().GetString("match")
	itemType, _ := cmd.Flags().GetString("type")
	rarity, _ := cmd.Flags().GetString("rarity")
	series, _ := cmd.Flags().GetString("series")
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("format")

	client, err := buildClient()
	if err != nil {
		return err
	}

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Searching for '%s'...", name))
	ctx := ui.WithProgress(context.Background(), spin.Update)
	items, err := client.Search(ctx, fortnite.SearchParams{
		Name:        name,
		MatchMethod: match,
		Type:        itemType,
		Rarity:      rarity,
		Series:      series,
	})
	spin.Stop()
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(items)
	default:
		printSearchTable(items)
	}

	return nil
}
