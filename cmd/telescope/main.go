// cmd/telescope/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"timetelescope/internal/catalog"
	"timetelescope/internal/config"
)

var cfg *config.Config

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:   "telescope",
		Short: "Time Telescope: how far light has travelled since a moment in the past",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		calculateCmd(),
		landmarksCmd(),
		seedCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil {
		switch cfg.Logging.Level {
		case "debug":
			level = slog.LevelDebug
		case "warn":
			level = slog.LevelWarn
		case "error":
			level = slog.LevelError
		}
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg != nil && cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// loadCatalog opens the configured store, seeds it when enabled, and loads
// the immutable catalog from it.
func loadCatalog(ctx context.Context, logger *slog.Logger) (*catalog.Catalog, error) {
	st, err := catalog.OpenStore(ctx, cfg.Catalog.Driver, cfg.Catalog.DSN, logger)
	if err != nil {
		return nil, fmt.Errorf("opening catalog store: %w", err)
	}
	defer func() { _ = st.Close() }()

	if cfg.Catalog.Seed {
		if _, err := catalog.Seed(ctx, st, logger); err != nil {
			return nil, fmt.Errorf("seeding catalog: %w", err)
		}
	}

	c, err := catalog.Load(ctx, st)
	if err != nil {
		return nil, err
	}
	logger.Info("catalog loaded", "driver", cfg.Catalog.Driver, "landmarks", c.Len())
	return c, nil
}
