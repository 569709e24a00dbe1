package cli

import (
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newToolsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Print the advertised operations as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			catalogTools := c.Dispatcher().Catalog().Tools()
			tools := make([]mcp.Tool, 0, len(catalogTools))
			for _, tool := range catalogTools {
				tools = append(tools, tool.Tool)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"tools": tools})
		},
	}
}
