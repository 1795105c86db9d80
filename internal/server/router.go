// internal/server/router.go
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"timetelescope/internal/catalog"
	"timetelescope/internal/telescope"
)

// Options configures the router.
type Options struct {
	// StaticDir is served at "/" when it names an existing directory.
	StaticDir string

	// RateLimitRPS of 0 disables rate limiting on the API.
	RateLimitRPS   float64
	RateLimitBurst int

	// Now overrides the clock used for calculations.
	Now func() time.Time
}

// NewRouter wires the telescope and landmark handlers under /api.
func NewRouter(c *catalog.Catalog, opts Options, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(requestLogger(logger))
	r.Use(securityHeaders)

	calc := telescope.NewHandler(c, opts.Now, logger)
	landmarks := catalog.NewHandler(c, logger)

	r.Route("/api", func(api chi.Router) {
		if opts.RateLimitRPS > 0 {
			api.Use(rateLimit(opts.RateLimitRPS, opts.RateLimitBurst))
		}
		calc.Register(api)
		landmarks.Register(api)
	})

	if opts.StaticDir != "" {
		if info, err := os.Stat(opts.StaticDir); err == nil && info.IsDir() {
			r.Handle("/*", http.FileServer(http.Dir(opts.StaticDir)))
		} else {
			logger.Warn("static directory not found; UI disabled", "dir", opts.StaticDir)
		}
	}

	return r
}

// Serve runs srv until ctx is cancelled, then shuts it down within timeout.
func Serve(ctx context.Context, srv *http.Server, timeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return <-errCh
}
