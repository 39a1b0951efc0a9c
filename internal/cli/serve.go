package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/errorreport"
	"github.com/Belphemur/ShowSearch/internal/metrics"
	"github.com/Belphemur/ShowSearch/internal/web"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(newClient ClientFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the search page and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, currentConfig(cmd), newClient)
		},
	}
}

// serve runs the web server, and the metrics server when enabled, until ctx is done
func serve(ctx context.Context, cfg *config.Config, newClient ClientFactory) error {
	logger := config.GetLogger()

	logger.Info().
		Str("proxy_connection_string", cfg.ProxyConnectionString).
		Str("catalog_base_url", cfg.Catalog.BaseURL).
		Str("cache_provider", cfg.Cache.Provider).
		Int("server_port", cfg.Server.Port).
		Str("server_address", cfg.Server.Address).
		Msg("Application started with configuration")

	catalog := newClient(cfg)
	defer func() {
		if err := catalog.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close catalog client")
		}
	}()

	reporter := errorreport.NewFromConfig(cfg)
	defer reporter.Flush(2 * time.Second)

	if cfg.Metrics.Enabled {
		metricsServer := metrics.NewHTTPServer(cfg.Server.Address, cfg.Metrics.Port)
		go func() {
			logger.Info().Str("address", metricsServer.Addr).Msg("Starting Prometheus metrics HTTP server")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("Failed to serve metrics")
			}
		}()
		defer shutdown(metricsServer, "metrics")
	}

	server := web.NewHTTPServer(cfg, catalog, reporter)
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("address", server.Addr).Msg("Starting web server")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info().Msg("Received shutdown signal")
	}

	shutdown(server, "web")
	logger.Info().Msg("Server stopped gracefully")
	return nil
}

func shutdown(server *http.Server, name string) {
	logger := config.GetLogger()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Str("server", name).Msg("Failed to shutdown server")
	}
}
