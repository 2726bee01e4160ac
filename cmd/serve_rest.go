package cmd

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/knoxval/fortshop/internal/rest"
	"github.com/spf13/cobra"
)

var serveRestCmd = &cobra.Command{
	Use:   "serve-rest",
	Short: "Start the REST API server",
	Long:  "Start a plain HTTP/JSON server exposing the shop, item search and watch-list endpoints.",
	RunE:  runServeRest,
}

func init() {
	serveRestCmd.Flags().String("port", "", "HTTP port (default from $PORT or 8080)")
	rootCmd.AddCommand(serveRestCmd)
}

func runServeRest(cmd *cobra.Command, args []string) error {
	client, err := buildClient()
	if err != nil {
		return err
	}
	watchStore, err := openWatchStore()
	if err != nil {
		return err
	}

	port := cfg.HTTPPort
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		port = p
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           rest.NewRouter(rest.Deps{Client: client, Watch: watchStore}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Printf("REST server listening on %s", srv.Addr)
	return srv.ListenAndServe()
}
