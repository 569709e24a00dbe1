package server_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/formdocs/catalog"
	"github.com/jonwraymond/formdocs/dispatch"
	"github.com/jonwraymond/formdocs/knowledge"
	"github.com/jonwraymond/formdocs/server"
	"github.com/jonwraymond/formdocs/validate"
)

func ExampleServer_HandleRequest() {
	kb, err := knowledge.Default()
	if err != nil {
		panic(err)
	}
	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := dispatch.New(catalog.New(), kb, validate.NewJSONSchema(), dispatch.WithLogger(quiet))
	srv := server.New(server.Config{ServerInfo: server.DefaultServerInfo(), Logger: quiet}, d)

	resp := srv.HandleRequest(context.Background(), server.MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`{"name":"delete_everything"}`),
	})

	result := resp.Result.(*mcp.CallToolResult)
	fmt.Println(result.IsError, result.Content[0].(*mcp.TextContent).Text)
	// Output:
	// true Ошибка: Unknown tool: delete_everything
}
