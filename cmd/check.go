package cmd

import (
	"context"
	"fmt"

	"github.com/knoxval/fortshop/internal/watch"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run one shop-update notification check",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}
	store, err := openWatchStore()
	if err != nil {
		return err
	}

	checker := watch.NewChecker(client, store, buildNotifier())
	res, err := checker.Run(context.Background())
	if err != nil {
		return fmt.Errorf("shop check failed: %w", err)
	}

	if !res.ShopUpdated {
		fmt.Println("Shop unchanged since last check.")
		return nil
	}
	fmt.Printf("Shop updated; %d watched item(s) in rotation.\n", len(res.WatchedFound))
	for _, item := range res.WatchedFound {
		fmt.Printf("  %s  %s (%s)\n", item.ID, item.Name, item.Kind)
	}
	return nil
}
