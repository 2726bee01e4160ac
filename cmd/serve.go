package cmd

import (
	"fmt"
	"log"

	mcpserver "github.com/knoxval/fortshop/mcp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP stdio server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	deps, err := buildMCPDeps()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Starting fortshop MCP server on stdio...")

	if err := mcpserver.Serve(deps); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
	return nil
}

func buildMCPDeps() (mcpserver.Deps, error) {
	client, err := buildClient()
	if err != nil {
		return mcpserver.Deps{}, err
	}
	store, err := openWatchStore()
	if err != nil {
		return mcpserver.Deps{}, err
	}
	return mcpserver.Deps{Client: client, Watch: store}, nil
}
