package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Manage the watched-items list",
}

var watchAddCmd = &cobra.Command{
	Use:   "add [item-id]",
	Short: "Watch an item for shop-rotation notifications",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openWatchStore()
		if err != nil {
			return err
		}
		if err := store.Watch(args[0]); err != nil {
			return err
		}
		fmt.Printf("Watching %s\n", args[0])
		return nil
	},
}

var watchRemoveCmd = &cobra.Command{
	Use:   "remove [item-id]",
	Short: "Stop watching an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openWatchStore()
		if err != nil {
			return err
		}
		if err := store.Unwatch(args[0]); err != nil {
			return err
		}
		fmt.Printf("No longer watching %s\n", args[0])
		return nil
	},
}

var watchListCmd = &cobra.Command{
	Use:   "list",
	Short: "List watched item IDs",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openWatchStore()
		if err != nil {
			return err
		}
		items := store.Watched()
		if len(items) == 0 {
			fmt.Println("No watched items.")
			return nil
		}
		ids := make([]string, 0, len(items))
		for id := range items {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

var watchUpdatesCmd = &cobra.Command{
	Use:   "updates [on|off]",
	Short: "Enable or disable shop-update checks",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openWatchStore()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			if store.UpdatesEnabled() {
				fmt.Println("Shop-update checks are on.")
			} else {
				fmt.Println("Shop-update checks are off.")
			}
			return nil
		}
		switch args[0] {
		case "on":
			if err := store.SetUpdatesEnabled(true); err != nil {
				return err
			}
			fmt.Println("Shop-update checks enabled.")
		case "off":
			if err := store.SetUpdatesEnabled(false); err != nil {
				return err
			}
			fmt.Println("Shop-update checks disabled.")
		default:
			return fmt.Errorf("unknown toggle %q, expected on or off", args[0])
		}
		return nil
	},
}

func init() {
	watchCmd.AddCommand(watchAddCmd, watchRemoveCmd, watchListCmd, watchUpdatesCmd)
	rootCmd.AddCommand(watchCmd)
}
