package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/formdocs/dispatch"
)

// NewMCPServer registers the catalog on a go-sdk server. Tool calls are
// answered by d; calls naming a tool outside the catalog are answered by d as
// well, so SDK clients see the same error envelope as JSON-RPC clients.
func NewMCPServer(cfg Config, d *dispatch.Dispatcher) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.ServerInfo.Name,
		Version: cfg.ServerInfo.Version,
	}, &mcp.ServerOptions{
		Instructions: cfg.ServerInfo.Description,
	})

	for _, tool := range d.Catalog().Tools() {
		t := tool.Tool
		srv.AddTool(&t, toolHandler(d))
	}
	srv.AddReceivingMiddleware(unknownToolMiddleware(d))
	return srv
}

func toolHandler(d *dispatch.Dispatcher) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := decodeArguments(req.Params.Arguments)
		if err != nil {
			return nil, err
		}
		return d.Dispatch(ctx, req.Params.Name, args).Result(), nil
	}
}

func unknownToolMiddleware(d *dispatch.Dispatcher) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			if method != "tools/call" {
				return next(ctx, method, req)
			}
			call, ok := req.(*mcp.CallToolRequest)
			if !ok || call.Params == nil {
				return next(ctx, method, req)
			}
			if _, known := d.Catalog().Get(call.Params.Name); known {
				return next(ctx, method, req)
			}
			args, err := decodeArguments(call.Params.Arguments)
			if err != nil {
				return nil, err
			}
			return d.Dispatch(ctx, call.Params.Name, args).Result(), nil
		}
	}
}

func decodeArguments(raw json.RawMessage) (map[string]any, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var args map[string]any
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("%w: arguments: %v", ErrInvalidRequest, err)
	}
	return args, nil
}
