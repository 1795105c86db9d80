// cmd/telescope/cmd_serve.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"timetelescope/internal/server"
	"timetelescope/internal/telemetry"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and static UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := newLogger()

			shutdownTracing, err := telemetry.Setup(ctx, telemetry.Options{
				ServiceName: cfg.Telemetry.ServiceName,
				Endpoint:    cfg.Telemetry.OTLPEndpoint,
				Insecure:    cfg.Telemetry.Insecure,
			}, logger)
			if err != nil {
				return fmt.Errorf("serve: telemetry: %w", err)
			}
			defer func() {
				flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdownTracing(flushCtx); err != nil {
					logger.Warn("tracing shutdown", "error", err)
				}
			}()

			// The catalog must be fully loaded before the listener opens.
			c, err := loadCatalog(ctx, logger)
			if err != nil {
				return fmt.Errorf("serve: %w", err)
			}

			handler := server.NewRouter(c, server.Options{
				StaticDir:      cfg.Server.StaticDir,
				RateLimitRPS:   cfg.Server.RateLimitRPS,
				RateLimitBurst: cfg.Server.RateLimitBurst,
			}, logger)

			httpSrv := &http.Server{
				Addr:              cfg.Server.ListenAddr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
				IdleTimeout:       120 * time.Second,
			}

			const shutdownTimeout = 10 * time.Second
			if err := server.Serve(ctx, httpSrv, shutdownTimeout, logger); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}
}
