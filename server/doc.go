// Package server exposes the formdocs dispatcher as an MCP server.
//
// Two fronts share the same catalog and dispatcher:
//
//   - Server: a small JSON-RPC 2.0 handler (initialize, ping, tools/list,
//     tools/call) with stdio, HTTP and SSE transports. Every tools/call is
//     routed to the dispatcher, including unknown tool names, which are
//     answered with an error envelope rather than a protocol error.
//   - NewMCPServer: the same tools registered on the official go-sdk server,
//     for the streamable HTTP transport and SDK-managed stdio sessions.
//
// Example usage:
//
//	kb, _ := knowledge.Default()
//	d := dispatch.New(catalog.New(), kb, validate.NewJSONSchema())
//	srv := server.New(server.Config{
//	    ServerInfo: server.DefaultServerInfo(),
//	}, d)
//
//	ctx := context.Background()
//	server.ServeStdio(ctx, srv, os.Stdin, os.Stdout)
package server
