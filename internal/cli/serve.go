package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lynxviz/lynxviz/internal/server"
	"github.com/lynxviz/lynxviz/pkg/cache"
	"github.com/lynxviz/lynxviz/pkg/config"
	"github.com/lynxviz/lynxviz/pkg/pipeline"
	"github.com/lynxviz/lynxviz/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout engine over HTTP",
		Long: `Serve the layout engine over HTTP.

The server exposes the pipeline as a JSON API: compute layouts, persist them
under generated ids, and render saved layouts to DOT, SVG, or PNG. Cache and
store backends come from the config file (~/.config/lynxviz/config.toml);
both default to local, dependency-free backends. The server shuts down
gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, configPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")

	return cmd
}

// runServe builds the configured backends and runs the server until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	cch, err := serveCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	st, err := serveStore(ctx, cfg)
	if err != nil {
		cch.Close()
		return fmt.Errorf("initialize store: %w", err)
	}
	defer st.Close()

	// Closing the runner closes the cache.
	runner := pipeline.NewRunner(cch, nil, c.Logger)
	defer runner.Close()

	srv := server.New(runner, st, c.Logger)

	printInfo("Starting %s server", appName)
	printKeyValue("addr", addr)
	printKeyValue("cache", cfg.Cache.Backend)
	printKeyValue("store", cfg.Store.Backend)
	printNewline()

	return srv.Run(ctx, addr)
}

// serveCache builds the cache backend named by the config.
func serveCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		return cache.NewRedisCache(ctx, cfg.Cache.Redis.Addr, cfg.Cache.Redis.Password, cfg.Cache.Redis.DB)
	case config.CacheBackendNone:
		return cache.NewNullCache(), nil
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return nil, err
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	}
}

// serveStore builds the store backend named by the config.
func serveStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.Store.Backend == config.StoreBackendMongo {
		return store.NewMongoStore(ctx, cfg.Store.URI, cfg.Store.Database)
	}
	return store.NewMemoryStore(), nil
}
