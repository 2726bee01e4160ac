package mcp

import (
	"github.com/knoxval/fortshop/internal/fortnite"
	"github.com/knoxval/fortshop/internal/watch"
	"github.com/mark3labs/mcp-go/server"
)

// Deps are the collaborators the MCP tools operate on.
type Deps struct {
	Client *fortnite.Client
	Watch  *watch.Store
}

// Serve starts the MCP stdio server with all tools registered.
func Serve(deps Deps) error {
	s := newServer(deps)
	return server.ServeStdio(s)
}

func newServer(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"fortshop",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	registerTools(s, deps)
	return s
}
