package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/knoxval/fortshop/config"
	"github.com/knoxval/fortshop/internal/cache"
	"github.com/knoxval/fortshop/internal/fortnite"
	"github.com/knoxval/fortshop/internal/httputil"
	"github.com/knoxval/fortshop/internal/storage"
	"github.com/knoxval/fortshop/internal/watch"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "fortshop",
	Short: "Fortshop - Fortnite item-shop CLI & MCP server",
	Long:  "A Go-based CLI tool and MCP server for browsing the Fortnite item shop, searching cosmetics and watching items for shop-rotation notifications.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("api-base", "", "Cosmetics API base URL")
	rootCmd.PersistentFlags().String("language", "", "Language for names and descriptions")
	rootCmd.PersistentFlags().String("cache", "", "Response cache backend: memory, redis")
	rootCmd.PersistentFlags().String("data-dir", "", "Directory for persisted watch-list state")
}

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("api-base"); v != "" {
		cfg.APIBaseURL = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("language"); v != "" {
		cfg.Language = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("cache"); v != "" {
		cfg.CacheType = v
	}
	if v, _ := rootCmd.PersistentFlags().GetString("data-dir"); v != "" {
		cfg.DataDir = v
	}
}

// buildHTTPClient creates the rate-limited HTTP client from config.
func buildHTTPClient() *http.Client {
	transport := &httputil.APITransport{
		Base: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
		},
		Headers:     httputil.APIHeaders(),
		RateLimiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.RateBurst),
	}
	return httputil.NewHTTPClient(transport)
}

// buildCache picks the response-cache backend from config.
func buildCache() (cache.Cache, error) {
	switch cfg.CacheType {
	case "redis":
		return cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.RedisAddr(),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	default:
		return cache.NewMemory(), nil
	}
}

// buildClient assembles the cosmetics API client.
func buildClient() (*fortnite.Client, error) {
	respCache, err := buildCache()
	if err != nil {
		return nil, fmt.Errorf("cache backend: %w", err)
	}
	return fortnite.NewClient(fortnite.Options{
		BaseURL:        cfg.APIBaseURL,
		Language:       cfg.Language,
		HTTPClient:     buildHTTPClient(),
		Cache:          respCache,
		CacheTTL:       cfg.CacheTTL,
		RequestTimeout: cfg.RequestTimeout,
		MaxRetries:     cfg.MaxRetries,
		MaxConcurrent:  cfg.MaxConcurrent,
	}), nil
}

// openWatchStore opens the persisted watch-list state.
func openWatchStore() (*watch.Store, error) {
	path, err := cfg.StatePath()
	if err != nil {
		return nil, err
	}
	kv, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open state store: %w", err)
	}
	return watch.NewStore(kv), nil
}

// buildNotifier picks the notification sink: webhook when configured,
// stderr otherwise.
func buildNotifier() watch.Notifier {
	if cfg.WebhookURL != "" {
		return watch.NewWebhookNotifier(nil, cfg.WebhookURL)
	}
	return watch.NewLogNotifier(nil)
}
