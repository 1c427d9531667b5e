package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"homogebra/internal/config"
	"homogebra/internal/httpapi"
	"homogebra/internal/scene"
	"homogebra/internal/workspace"
)

const shutdownTimeout = 5 * time.Second

// onListening is called with the bound address once serve accepts connections.
var onListening = func(net.Addr) {}

// workspaceConfig maps the resolved service config onto the workspace.
func workspaceConfig(cfg config.Config, log zerolog.Logger, metrics scene.Metrics) workspace.Config {
	sceneLog := log.With().Str("component", "scene").Logger()
	return workspace.Config{
		Scene: scene.Config{
			Epsilon:     cfg.Epsilon,
			PointPrefix: cfg.PointPrefix,
			LinePrefix:  cfg.LinePrefix,
			ConicPrefix: cfg.ConicPrefix,
			Logger:      &sceneLog,
			Metrics:     metrics,
		},
		JournalSize:  cfg.JournalSize,
		NearbyRadius: cfg.NearbyDefaultRadius,
	}
}

// serve runs the HTTP API until ctx is canceled, then shuts down gracefully.
func serve(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	ws := workspace.New(workspaceConfig(cfg, log, httpapi.SceneMetrics{}))

	httpapi.SetLogger(log.With().Str("component", "http").Logger())
	httpapi.SetDefaultLogLevel(httpLogLevel(cfg.LogLevel))
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins, nil, nil)
	httpapi.SetBaseContext(ctx)

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	srv := &http.Server{Handler: httpapi.NewMux(ws), ReadHeaderTimeout: 10 * time.Second}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Float64("epsilon", ws.Status().Epsilon).Msg("homogebra listening")
		onListening(ln.Addr())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info().Msg("homogebra stopped")
	return nil
}

// httpLogLevel maps the service log level onto per-request logging.
func httpLogLevel(level string) string {
	switch level {
	case "debug", "trace":
		return "debug"
	case "warn", "error":
		return "error"
	}
	return "info"
}
