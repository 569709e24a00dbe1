// Package cli implements the formdocs command line using cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/formdocs/config"
	"github.com/jonwraymond/formdocs/internal/container"
)

const version = "1.0.0"

// errReported marks failures whose output has already been written.
var errReported = errors.New("reported")

type options struct {
	configPath string
}

// NewRootCmd builds the formdocs command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "formdocs",
		Short:         "Dynamic forms documentation and validation MCP server",
		Long:          "formdocs serves documentation and config validation for @gravity-ui/dynamic-forms over MCP.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newToolsCmd(opts))
	root.AddCommand(newCallCmd(opts))
	root.AddCommand(newValidateCmd(opts))
	root.AddCommand(newSearchCmd(opts))
	return root
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// setup loads the configuration, installs the process logger on the
// command's stderr and wires the services.
func (o *options) setup(cmd *cobra.Command) (*container.Container, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return build(cfg, cmd.ErrOrStderr())
}

func build(cfg *config.Config, stderr io.Writer) (*container.Container, error) {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return container.New(cfg, logger)
}
