// ABOUTME: MCP server setup for ftracker.
// ABOUTME: Exposes the training calculator over the stdio transport.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is reported to MCP clients during initialization.
const Version = "1.0.0"

// Server wraps the MCP server with the ftracker tools and resources.
type Server struct {
	mcpServer *mcp.Server
}

// NewServer creates a new MCP server with all tools and resources registered.
func NewServer() (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "ftracker",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
