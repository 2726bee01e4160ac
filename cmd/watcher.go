package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/knoxval/fortshop/internal/watch"
	"github.com/spf13/cobra"
)

var watcherCmd = &cobra.Command{
	Use:   "watcher",
	Short: "Run the periodic shop-update checker in the foreground",
	RunE:  runWatcher,
}

func init() {
	watcherCmd.Flags().Duration("interval", 0, "Check interval (minimum 1h; default from config)")
	rootCmd.AddCommand(watcherCmd)
}

func runWatcher(cmd *cobra.Command, args []string) error {
	interval := cfg.CheckInterval
	if v, _ := cmd.Flags().GetDuration("interval"); v > 0 {
		interval = v
	}

	client, err := buildClient()
	if err != nil {
		return err
	}
	store, err := openWatchStore()
	if err != nil {
		return err
	}

	checker := watch.NewChecker(client, store, buildNotifier())
	scheduler := watch.NewScheduler(checker, interval)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting fortshop watcher...")
	scheduler.Start(ctx)
	<-ctx.Done()
	scheduler.Stop()
	return nil
}
