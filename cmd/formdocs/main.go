// Command formdocs serves dynamic-forms documentation and configuration
// validation over MCP.
//
// Run with: go run ./cmd/formdocs serve
package main

import "github.com/jonwraymond/formdocs/internal/cli"

func main() {
	cli.Execute()
}
