package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/roommates/internal/auth"
	"github.com/mmynk/roommates/internal/config"
	"github.com/mmynk/roommates/internal/events"
	"github.com/mmynk/roommates/internal/metrics"
	"github.com/mmynk/roommates/internal/service"
	"github.com/mmynk/roommates/internal/storage/sqlite"
	"github.com/mmynk/roommates/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

var envFile string

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "roommates",
		Short:         "Shared household chores and expenses server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file loaded before the environment")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the RPC and metrics servers (default)",
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply pending database migrations and exit",
			RunE:  runMigrate,
		},
	)
	return root
}

// loadConfig reads and validates configuration, then sets up logging.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		return nil, err
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		return nil, err
	}
	return cfg, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := sqlite.RunMigrations(cfg.DBPath); err != nil {
		slog.Error("Migration failed", "database", cfg.DBPath, "error", err)
		return err
	}
	slog.Info("Database migrated", "database", cfg.DBPath)
	return nil
}

func newPublisher(cfg *config.Config) events.Publisher {
	if cfg.AMQPURL == "" {
		slog.Info("AMQP_URL not set, household events are discarded")
		return events.Nop{}
	}
	p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		slog.Warn("Failed to connect to AMQP, household events are discarded", "error", err)
		return events.Nop{}
	}
	slog.Info("Publishing household events", "exchange", cfg.AMQPExchange)
	return p
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		return err
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	publisher := newPublisher(cfg)
	defer publisher.Close()

	m := metrics.New()

	mux := http.NewServeMux()
	service.Register(mux, service.Deps{
		Store:     store,
		JWT:       auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration),
		Publisher: publisher,
		Metrics:   m,
	})

	rpcServer := &http.Server{
		Addr: cfg.Addr(),
		// Wrap with h2c for HTTP/2 without TLS (required for Connect)
		Handler:           h2c.NewHandler(corsMiddleware(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", m.Handler())
	metricsServer := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return listen(rpcServer, "Connect server") })
	g.Go(func() error { return listen(metricsServer, "Metrics server") })
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return errors.Join(rpcServer.Shutdown(shutdownCtx), metricsServer.Shutdown(shutdownCtx))
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server failed", "error", err)
		return err
	}
	return nil
}

func listen(srv *http.Server, name string) error {
	slog.Info(name+" starting", "address", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, X-Request-Id")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, X-Request-Id")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
