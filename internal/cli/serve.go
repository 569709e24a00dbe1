package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonwraymond/formdocs/config"
	"github.com/jonwraymond/formdocs/internal/container"
	"github.com/jonwraymond/formdocs/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var transport, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if transport != "" {
				cfg.Server.Transport = transport
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			c, err := build(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, c, os.Stdin, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVarP(&transport, "transport", "t", "", "Transport: stdio, sdk-stdio, http, sse or streamable")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address for HTTP transports")
	return cmd
}

// serve runs the configured transport until ctx is cancelled or the
// transport ends.
func serve(ctx context.Context, c *container.Container, in io.Reader, out, stderr io.Writer) error {
	cfg := c.Config()
	g, gctx := errgroup.WithContext(ctx)

	switch cfg.Server.Transport {
	case config.TransportStdio:
		fmt.Fprintln(stderr, "Dynamic Forms MCP server running on stdio")
		g.Go(func() error {
			return untilDone(gctx, func() error {
				return server.ServeStdio(gctx, c.Server(), in, out)
			})
		})
	case config.TransportSDKStdio:
		fmt.Fprintln(stderr, "Dynamic Forms MCP server running on stdio")
		mcpServer := server.NewMCPServer(c.ServerConfig(), c.Dispatcher())
		g.Go(func() error {
			return mcpServer.Run(gctx, &mcp.StdioTransport{})
		})
	case config.TransportHTTP:
		g.Go(func() error { return listen(gctx, cfg.Server.Addr, server.ServeHTTP(c.Server())) })
	case config.TransportSSE:
		g.Go(func() error { return listen(gctx, cfg.Server.Addr, server.ServeSSE(c.Server())) })
	case config.TransportStreamable:
		mcpServer := server.NewMCPServer(c.ServerConfig(), c.Dispatcher())
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return mcpServer }, nil)
		g.Go(func() error { return listen(gctx, cfg.Server.Addr, handler) })
	default:
		return fmt.Errorf("%w: %s", server.ErrUnknownTransport, cfg.Server.Transport)
	}

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server stopped", "transport", cfg.Server.Transport, "err", err)
		return err
	}
	stats := c.Server().Stats()
	slog.Info("server stopped", "transport", cfg.Server.Transport, "calls", stats.Calls, "errors", stats.Errors)
	return nil
}

// untilDone runs fn and returns when it finishes or ctx is cancelled,
// whichever comes first. A blocked reader is abandoned on cancellation.
func untilDone(ctx context.Context, fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func listen(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Dynamic Forms MCP server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	}
}
