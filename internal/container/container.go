// Package container wires formdocs services using go.uber.org/dig.
package container

import (
	"fmt"
	"log/slog"
	"os"

	"go.uber.org/dig"

	"github.com/jonwraymond/formdocs/catalog"
	"github.com/jonwraymond/formdocs/config"
	"github.com/jonwraymond/formdocs/dispatch"
	"github.com/jonwraymond/formdocs/knowledge"
	"github.com/jonwraymond/formdocs/search"
	"github.com/jonwraymond/formdocs/server"
	"github.com/jonwraymond/formdocs/validate"
)

// Container holds the resolved service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	cfg        *config.Config
	kb         *knowledge.Base
	dispatcher *dispatch.Dispatcher
	server     *server.Server
	serverCfg  server.Config
	searcher   *search.Searcher
}

func (c *Container) Config() *config.Config           { return c.cfg }
func (c *Container) Knowledge() *knowledge.Base       { return c.kb }
func (c *Container) Dispatcher() *dispatch.Dispatcher { return c.dispatcher }
func (c *Container) Server() *server.Server           { return c.server }
func (c *Container) ServerConfig() server.Config      { return c.serverCfg }
func (c *Container) Searcher() *search.Searcher       { return c.searcher }

// Close releases the search index.
func (c *Container) Close() error {
	return c.searcher.Close()
}

// New builds and wires all services from cfg. A nil logger means
// slog.Default().
func New(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(func() *slog.Logger { return logger }); err != nil {
		return nil, err
	}
	if err := d.Provide(newKnowledgeBase); err != nil {
		return nil, err
	}
	if err := d.Provide(catalog.New); err != nil {
		return nil, err
	}
	if err := d.Provide(newValidator); err != nil {
		return nil, err
	}
	if err := d.Provide(newDispatcher); err != nil {
		return nil, err
	}
	if err := d.Provide(newServerConfig); err != nil {
		return nil, err
	}
	if err := d.Provide(server.New); err != nil {
		return nil, err
	}
	if err := d.Provide(newSearcher); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(
		kb *knowledge.Base,
		dispatcher *dispatch.Dispatcher,
		srv *server.Server,
		serverCfg server.Config,
		searcher *search.Searcher,
	) {
		result = &Container{
			cfg:        cfg,
			kb:         kb,
			dispatcher: dispatcher,
			server:     srv,
			serverCfg:  serverCfg,
			searcher:   searcher,
		}
	})
	if err != nil {
		return nil, fmt.Errorf("wire formdocs: %w", dig.RootCause(err))
	}
	return result, nil
}

func newKnowledgeBase(cfg *config.Config, logger *slog.Logger) (*knowledge.Base, error) {
	if cfg.DocsDir == "" {
		return knowledge.Default()
	}
	kb, err := knowledge.Load(os.DirFS(cfg.DocsDir))
	if err != nil {
		return nil, fmt.Errorf("load docs from %s: %w", cfg.DocsDir, err)
	}
	logger.Info("knowledge base loaded", "dir", cfg.DocsDir, "documents", len(kb.Documents()))
	return kb, nil
}

func newValidator() validate.Validator {
	return validate.NewJSONSchema()
}

func newDispatcher(cat *catalog.Catalog, kb *knowledge.Base, v validate.Validator, logger *slog.Logger) *dispatch.Dispatcher {
	return dispatch.New(cat, kb, v, dispatch.WithLogger(logger))
}

func newServerConfig(cfg *config.Config, logger *slog.Logger) server.Config {
	info := server.DefaultServerInfo()
	if cfg.Server.Name != "" {
		info.Name = cfg.Server.Name
	}
	if cfg.Server.Version != "" {
		info.Version = cfg.Server.Version
	}
	return server.Config{ServerInfo: info, Logger: logger}
}

func newSearcher() *search.Searcher {
	return search.NewSearcher(search.Config{})
}
