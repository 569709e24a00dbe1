package server

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jonwraymond/formdocs/catalog"
)

func connectSDK(t *testing.T) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	srv := NewMCPServer(Config{ServerInfo: DefaultServerInfo()}, newTestDispatcher(t))
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := srv.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect failed: %v", err)
	}
	t.Cleanup(func() {
		_ = serverSession.Close()
	})

	client := mcp.NewClient(&mcp.Implementation{Name: "formdocs-test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect failed: %v", err)
	}
	t.Cleanup(func() {
		_ = session.Close()
	})
	return session
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestMCPServer_ListTools(t *testing.T) {
	session := connectSDK(t)

	res, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}
	if len(res.Tools) != 6 {
		t.Fatalf("expected 6 tools, got %d", len(res.Tools))
	}

	names := make(map[string]bool)
	for _, tool := range res.Tools {
		names[tool.Name] = true
	}
	for _, op := range catalog.New().List() {
		if !names[op.Name] {
			t.Errorf("tool %s not advertised", op.Name)
		}
	}
}

func TestMCPServer_CallTool(t *testing.T) {
	session := connectSDK(t)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      catalog.OpGetSpecValueDocs,
		Arguments: map[string]any{"spec_name": "number"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("expected success, got %q", resultText(t, res))
	}
	if text := resultText(t, res); !strings.Contains(strings.ToLower(text), "number") {
		t.Errorf("expected number spec docs, got %q", text)
	}
}

func TestMCPServer_CallTool_IllegalValue(t *testing.T) {
	session := connectSDK(t)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      catalog.OpGetControlDocs,
		Arguments: map[string]any{"control_name": "slider"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error envelope")
	}
	if text := resultText(t, res); !strings.HasPrefix(text, "Ошибка: ") || !strings.Contains(text, "slider") {
		t.Errorf("unexpected text %q", text)
	}
}

func TestMCPServer_CallTool_UnknownTool(t *testing.T) {
	session := connectSDK(t)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "delete_everything",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("unknown tools are reported in the envelope, got %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error envelope")
	}
	if text := resultText(t, res); text != "Ошибка: Unknown tool: delete_everything" {
		t.Errorf("unexpected text %q", text)
	}
}

func TestDecodeArguments(t *testing.T) {
	args, err := decodeArguments(nil)
	if err != nil || args != nil {
		t.Fatalf("expected nil arguments, got %v, %v", args, err)
	}
	args, err = decodeArguments([]byte(`{"spec_name":"array"}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if args["spec_name"] != "array" {
		t.Errorf("unexpected arguments %v", args)
	}
	if _, err := decodeArguments([]byte(`[1]`)); err == nil {
		t.Fatal("expected error for non-object arguments")
	}
}
