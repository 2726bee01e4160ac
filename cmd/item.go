package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/knoxval/fortshop/internal/ui"
	"github.com/spf13/cobra"
)

var itemCmd = &cobra.Command{
	Use:   "item [id]",
	Short: "Show full details for a cosmetic by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runItem,
}

func init() {
	itemCmd.Flags().String("format", "table", "Output format: json, table")
	rootCmd.AddCommand(itemCmd)
}

func runItem(cmd *cobra.Command, args []string) error {
	id := args[0]
	format, _ := cmd.Flags().GetString("format")

	client, err := buildClient()
	if err != nil {
		return err
	}

	spin := ui.NewSpinner()
	spin.Start(fmt.Sprintf("Fetching item %s...", id))
	item, err := client.Item(context.Background(), id)
	spin.Stop()
	if err != nil {
		return fmt.Errorf("item fetch failed: %w", err)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(item)
	default:
		printItemDetail(item)
	}

	return nil
}
