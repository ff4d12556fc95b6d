package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/waffle/pkg/api"
	"github.com/matzehuels/waffle/pkg/cache"
	"github.com/matzehuels/waffle/pkg/pipeline"
	"github.com/matzehuels/waffle/pkg/store"
)

const defaultAddr = ":8080"

type serveOpts struct {
	addr     string
	redisURL string
	mongoURI string
	mongoDB  string
	noCache  bool
}

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: defaultAddr, mongoDB: store.DefaultDatabase}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chart pipeline over HTTP",
		Long: `Serve the chart pipeline over HTTP.

Without further flags layouts and renders are cached in the local cache
directory and saved charts live in memory. Use --redis-url to share the cache
between instances and --mongo-uri to persist saved charts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "Redis URL for the shared cache (e.g. redis://localhost:6379/0)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB URI for saved charts (e.g. mongodb://localhost:27017)")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", opts.mongoDB, "MongoDB database name")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	runner, err := c.newServeRunner(ctx, opts)
	if err != nil {
		return err
	}

	st, err := c.newStore(ctx, opts)
	if err != nil {
		runner.Close()
		return err
	}

	srv := api.NewServer(runner, st, c.Logger)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Close(closeCtx); err != nil {
			c.Logger.Warn("shutdown", "error", err)
		}
	}()

	printInfo("Listening on %s", opts.addr)
	return srv.ListenAndServe(ctx, opts.addr)
}

// newServeRunner picks the cache backend for the server.
func (c *CLI) newServeRunner(ctx context.Context, opts serveOpts) (*pipeline.Runner, error) {
	if opts.redisURL == "" || opts.noCache {
		return c.newRunner(opts.noCache)
	}
	rc, err := cache.NewRedisCache(ctx, opts.redisURL)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Logger.Info("using redis cache")
	return pipeline.NewRunner(rc, cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName), c.Logger), nil
}

// newStore picks the chart store for the server.
func (c *CLI) newStore(ctx context.Context, opts serveOpts) (store.Store, error) {
	if opts.mongoURI == "" {
		return store.NewMemoryStore(), nil
	}
	ms, err := store.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	c.Logger.Info("using mongodb store", "database", opts.mongoDB)
	return ms, nil
}
