package server

import (
	"log/slog"
	"sync/atomic"

	"github.com/jonwraymond/formdocs/catalog"
	"github.com/jonwraymond/formdocs/dispatch"
)

// Config configures a Server.
type Config struct {
	ServerInfo ServerInfo
	Logger     *slog.Logger
}

// ServerInfo describes this MCP server for the initialize response.
type ServerInfo struct {
	Name        string
	Version     string
	Description string
}

// DefaultServerInfo returns the identity advertised by formdocs.
func DefaultServerInfo() ServerInfo {
	return ServerInfo{
		Name:    "dynamic-forms-mcp",
		Version: "1.0.0",
		Description: "MCP сервер для конфигурации динамических форм на основе @gravity-ui/dynamic-forms" +
			" / MCP server for dynamic forms configuration based on @gravity-ui/dynamic-forms",
	}
}

// Server answers MCP JSON-RPC requests with a dispatcher.
type Server struct {
	config     Config
	dispatcher *dispatch.Dispatcher
	catalog    *catalog.Catalog
	logger     *slog.Logger

	calls  atomic.Uint64
	errors atomic.Uint64
}

// New creates a Server over d.
func New(cfg Config, d *dispatch.Dispatcher) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config:     cfg,
		dispatcher: d,
		catalog:    d.Catalog(),
		logger:     logger,
	}
}

// Stats holds request counters.
type Stats struct {
	TotalTools int
	Calls      uint64
	Errors     uint64
}

// Stats returns server statistics.
func (s *Server) Stats() Stats {
	return Stats{
		TotalTools: len(s.catalog.List()),
		Calls:      s.calls.Load(),
		Errors:     s.errors.Load(),
	}
}
