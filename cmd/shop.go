package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/knoxval/fortshop/internal/shop"
	"github.com/knoxval/fortshop/internal/ui"
	"github.com/spf13/cobra"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Show the current item shop grouped by section",
	RunE:  runShop,
}

func init() {
	shopCmd.Flags().String("group-by", "index", "Section grouping key: index, name")
	shopCmd.Flags().String("format", "table", "Output format: json, table")
	rootCmd.AddCommand(shopCmd)
}

func runShop(cmd *cobra.Command, args []string) error {
	groupBy, _ := cmd.Flags().GetString("group-by")
	format, _ := cmd.Flags().GetString("format")

	client, err := buildClient()
	if err != nil {
		return err
	}

	spin := ui.NewSpinner()
	spin.Start("Fetching item shop...")
	ctx := ui.WithProgress(context.Background(), spin.Update)
	data, err := client.Shop(ctx)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("shop fetch failed: %w", err)
	}

	sections := shop.GroupAndSort(data.Entries, shop.GroupBy(groupBy))

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(sections)
	default:
		fmt.Printf("Item shop for %s (%d offers)\n", data.Date, len(data.Entries))
		printShopTable(sections)
	}

	return nil
}
