package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/knapsack/internal/server"
	"github.com/matzehuels/knapsack/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string        // listen address
	backend   string        // store backend: memory, file, or redis
	dir       string        // base directory for the file backend
	redisAddr string        // redis address, falls back to $REDIS_ADDR
	redisDB   int           // redis logical database
	redisTTL  time.Duration // snapshot expiry for the redis backend
}

// newServeCmd creates the serve command, which runs the pack HTTP API.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve packs over an HTTP API",
		Long: `Serve packs over an HTTP API.

Packs are stored in the selected backend. The redis backend reads its
address from --redis-addr or the REDIS_ADDR environment variable, and the
password from REDIS_PASSWORD.

Examples:
  knapsack serve
  knapsack serve --store file --dir ./packs
  knapsack serve --store redis --redis-addr localhost:6379`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := loggerFromContext(cmd.Context())

			st, err := openStore(cmd.Context(), &opts)
			if err != nil {
				return err
			}
			defer st.Close()
			logger.Infof("Using %s store", opts.backend)

			return server.New(st, logger).ListenAndServe(cmd.Context(), opts.addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.backend, "store", "memory", "store backend: memory, file, or redis")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "pack directory for the file backend (default ~/.config/knapsack/packs)")
	cmd.Flags().StringVar(&opts.redisAddr, "redis-addr", "", "redis address (default $REDIS_ADDR)")
	cmd.Flags().IntVar(&opts.redisDB, "redis-db", 0, "redis logical database")
	cmd.Flags().DurationVar(&opts.redisTTL, "redis-ttl", 0, "snapshot expiry for the redis backend (0 = no expiry)")

	return cmd
}

// openStore constructs the requested store backend.
func openStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	switch opts.backend {
	case "memory":
		return store.NewMemoryStore(), nil
	case "file":
		return store.NewFileStore(opts.dir)
	case "redis":
		addr := opts.redisAddr
		if addr == "" {
			addr = os.Getenv("REDIS_ADDR")
		}
		if addr == "" {
			return nil, fmt.Errorf("redis backend requires --redis-addr or REDIS_ADDR")
		}
		return store.NewRedisStore(ctx, store.RedisConfig{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       opts.redisDB,
			TTL:      opts.redisTTL,
		})
	default:
		return nil, fmt.Errorf("unknown store backend %q (want memory, file, or redis)", opts.backend)
	}
}
