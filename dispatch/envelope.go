package dispatch

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ErrorPrefix starts the text of every error envelope.
const ErrorPrefix = "Ошибка: "

// Envelope is the uniform response of every operation.
type Envelope struct {
	Text    string
	IsError bool
}

func successEnvelope(text string) Envelope {
	return Envelope{Text: text}
}

func errorEnvelope(f *Failure) Envelope {
	return Envelope{Text: ErrorPrefix + f.Message, IsError: true}
}

// Result converts the envelope to its MCP wire form.
func (e Envelope) Result() *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: e.Text}},
		IsError: e.IsError,
	}
}
