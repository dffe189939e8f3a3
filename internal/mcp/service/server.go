// Package service wires the Widmark MCP server: tool and resource
// registration plus transport serving. Unlike a remote adapter, the
// handlers call the pharmacokinetic model in-process; the model is a pure
// library with no service tier behind it.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/widmark/internal/mcp/domain"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Widmark MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server with the pharmacokinetic tools and
// the clinical-effects resource registered.
func New() *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	registerEthanolTools(mcpServer)
	registerClinicalResources(mcpServer)

	return &Server{mcpServer: mcpServer}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Run creates and serves the MCP server until the context ends.
func Run(ctx context.Context) error {
	return New().Serve(ctx)
}

// registerEthanolTools registers the pharmacokinetic model tools.
func registerEthanolTools(mcpServer *mcp.Server) {
	mcp.AddTool(mcpServer, domain.EthanolIngestedTool(), domain.EthanolIngestedHandler())
	mcp.AddTool(mcpServer, domain.PeakSerumEthanolTool(), domain.PeakSerumEthanolHandler())
	mcp.AddTool(mcpServer, domain.EBACTool(), domain.EBACHandler())
	mcp.AddTool(mcpServer, domain.ClinicalEffectsTool(), domain.ClinicalEffectsHandler())
}

// registerClinicalResources registers the readable clinical-effects table.
func registerClinicalResources(mcpServer *mcp.Server) {
	mcpServer.AddResource(domain.ClinicalRangesResource(), domain.ClinicalRangesResourceHandler())
}

// serveWithTransport starts the MCP server using the provided transport.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
