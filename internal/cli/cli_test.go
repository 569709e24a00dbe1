package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonwraymond/formdocs/config"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestToolsCmd(t *testing.T) {
	out, err := run(t, "", "tools")
	if err != nil {
		t.Fatalf("tools failed: %v", err)
	}

	var listed struct {
		Tools []struct {
			Name string `json:"name"`
		} `json:"tools"`
	}
	if err := json.Unmarshal([]byte(out), &listed); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(listed.Tools) != 6 {
		t.Fatalf("expected 6 tools, got %d", len(listed.Tools))
	}
	if listed.Tools[0].Name != "list_controls" {
		t.Errorf("expected list_controls first, got %s", listed.Tools[0].Name)
	}
}

func TestCallCmd(t *testing.T) {
	out, err := run(t, "", "call", "get_control_docs", "--args", `{"control_name":"select"}`)
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	if !strings.Contains(out, "select") {
		t.Errorf("expected select docs, got %q", out)
	}
}

func TestCallCmd_ErrorEnvelope(t *testing.T) {
	out, err := run(t, "", "call", "delete_everything")
	if !errors.Is(err, errReported) {
		t.Fatalf("expected errReported, got %v", err)
	}
	if strings.TrimSpace(out) != "Ошибка: Unknown tool: delete_everything" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCallCmd_BadArgs(t *testing.T) {
	_, err := run(t, "", "call", "get_spec_value_docs", "--args", "{")
	if err == nil || errors.Is(err, errReported) {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestValidateCmd_Stdin(t *testing.T) {
	out, err := run(t, `{"type":"string","viewSpec":{"type":"base"}}`, "validate", "-")
	if err != nil {
		t.Fatalf("validate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"valid": true`) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestValidateCmd_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.json")
	if err := os.WriteFile(path, []byte(`{"type":"string","maxLength":-1}`), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	out, err := run(t, "", "validate", path)
	if !errors.Is(err, errReported) {
		t.Fatalf("expected errReported, got %v", err)
	}
	if !strings.Contains(out, `"valid": false`) || !strings.Contains(out, `"errorCount"`) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestSearchCmd(t *testing.T) {
	out, err := run(t, "", "search", "multiline", "--limit", "3")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "control/textarea") {
		t.Errorf("expected control/textarea in %q", out)
	}
}

func TestServeCmd_UnknownTransport(t *testing.T) {
	_, err := run(t, "", "serve", "--transport", "smoke-signals")
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestServe_Stdio(t *testing.T) {
	cfg := config.Default()
	c, err := build(&cfg, io.Discard)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer func() { _ = c.Close() }()

	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"list_spec_values","arguments":{}}}` + "\n")
	var out, stderr bytes.Buffer
	if err := serve(context.Background(), c, in, &out, &stderr); err != nil {
		t.Fatalf("serve failed: %v", err)
	}

	if !strings.Contains(stderr.String(), "running on stdio") {
		t.Errorf("expected banner, got %q", stderr.String())
	}
	var resp struct {
		ID     int `json:"id"`
		Result struct {
			IsError bool `json:"isError"`
		} `json:"result"`
	}
	if err := json.Unmarshal(out.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", out.String(), err)
	}
	if resp.ID != 1 || resp.Result.IsError {
		t.Errorf("unexpected response %s", out.String())
	}
	if got := c.Server().Stats().Calls; got != 1 {
		t.Errorf("expected 1 call, got %d", got)
	}
}

func TestServe_Cancelled(t *testing.T) {
	cfg := config.Default()
	c, err := build(&cfg, io.Discard)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pr, pw := io.Pipe()
	defer func() { _ = pw.Close() }()

	if err := serve(ctx, c, pr, io.Discard, io.Discard); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}
