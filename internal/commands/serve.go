package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/spf13/cobra"

	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/roster"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configure the fixture server.
type ServeOptions struct {
	Addr     string
	DataFile string
	LogLevel string
}

func addServe(topLevel *cobra.Command) {
	o := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a db.json fixture as GET /characters.",
		Long: `serve exposes a fixture the way json-server does, so the TUI has something
to load. Prometheus metrics are available on /metrics.`,
		Example: `
roster generate && roster serve
roster serve --addr 127.0.0.1:4000 --data testdata/db.json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New().FromWriter(cmd.ErrOrStderr()).WithLevel(o.LogLevel).Make()
			if err != nil {
				return err
			}
			logger := log.Logger.With().Str("component", "serve").Logger()

			chars, err := roster.NewFileSource(o.DataFile).FetchCharacters(cmd.Context())
			if err != nil {
				return fmt.Errorf("load fixture: %w", err)
			}

			ln, err := net.Listen("tcp", o.Addr)
			if err != nil {
				return fmt.Errorf("listen: %w", err)
			}
			logger.Info().
				Str("addr", ln.Addr().String()).
				Str("data", o.DataFile).
				Int("count", len(chars)).
				Msg("serving characters")
			return runServe(cmd.Context(), ln, roster.NewServer(chars), logger)
		},
	}

	cmd.Flags().StringVar(&o.Addr, "addr", ":3001", "Listen address.")
	cmd.Flags().StringVar(&o.DataFile, "data", "db.json", "Fixture to serve.")
	cmd.Flags().StringVar(&o.LogLevel, "log-level", "info", "Log level: debug, info, warn or error.")

	topLevel.AddCommand(cmd)
}

// runServe serves on ln until ctx is cancelled, then shuts down gracefully.
func runServe(ctx context.Context, ln net.Listener, handler http.Handler, logger zerolog.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	access := hlog.NewHandler(logger)(hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
		hlog.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("elapsed", d).
			Msg("request")
	})(handler))

	srv := &http.Server{
		Handler:           access,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}
