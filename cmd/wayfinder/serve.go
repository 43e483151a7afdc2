package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/aretw0/wayfinder"
	"github.com/aretw0/wayfinder/internal/config"
	httpAdapter "github.com/aretw0/wayfinder/pkg/adapters/http"
	"github.com/aretw0/wayfinder/pkg/adapters/memory"
	redisAdapter "github.com/aretw0/wayfinder/pkg/adapters/redis"
	"github.com/aretw0/wayfinder/pkg/domain"
	"github.com/aretw0/wayfinder/pkg/regions"
	"github.com/aretw0/wayfinder/pkg/session"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the viewer HTTP server",
	Long: `Serves the model and region index together with derived styles and per-viewer sessions.
Sessions live in memory or in Redis (serve.store). The region index is read once at start; an
unavailable index is served as empty.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logger := setup(cmd)
		if cmd.Flags().Changed("addr") {
			cfg.Serve.Addr, _ = cmd.Flags().GetString("addr")
		}
		if cmd.Flags().Changed("store") {
			cfg.Serve.Store, _ = cmd.Flags().GetString("store")
		}
		if err := cfg.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if err := checkAPIDocument(cmd.Context(), logger); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		index := regions.NewLoader(regions.WithLogger(logger)).Load(cmd.Context(), cfg.IndexSource())

		mgr, closeStore, err := newSessionManager(cmd.Context(), cfg, index, logger)
		if err != nil {
			fmt.Printf("Error initializing session store: %v\n", err)
			os.Exit(1)
		}
		defer closeStore()

		server := httpAdapter.NewServer(index, mgr,
			httpAdapter.WithModelsDir(cfg.ModelsDir()),
			httpAdapter.WithVersion(strings.TrimSpace(wayfinder.Version)),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:              cfg.Serve.Addr,
			Handler:           server.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Wayfinder Server on %s\n", srv.Addr)
			fmt.Printf("Serving %d regions from: %s\n", index.Len(), cfg.IndexSource())
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			closeStore()
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Wayfinder Server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
	serveCmd.Flags().String("store", config.StoreMemory, "Session store: memory or redis")
}

// checkAPIDocument validates the embedded OpenAPI document the server routes and serves.
func checkAPIDocument(ctx context.Context, logger *slog.Logger) error {
	doc, err := httpAdapter.Spec(ctx)
	if err != nil {
		return err
	}
	logger.Info("openapi document loaded", "version", doc.Info.Version, "paths", doc.Paths.Len())
	return nil
}

// newSessionManager wires the configured session store. Redis sessions are guarded by a
// distributed lock so several servers can share one store.
func newSessionManager(ctx context.Context, cfg config.Config, index domain.RegionIndex, logger *slog.Logger) (*session.Manager, func(), error) {
	opts := []session.Option{
		session.WithIndex(index),
		session.WithLogger(logger),
	}

	if cfg.Serve.Store != config.StoreRedis {
		return session.NewManager(memory.NewStore(), opts...), func() {}, nil
	}

	store := redisAdapter.New(cfg.Serve.Redis.Addr, cfg.Serve.Redis.Password, cfg.Serve.Redis.DB,
		redisAdapter.WithPrefix(cfg.Serve.Redis.Prefix),
		redisAdapter.WithTTL(cfg.Serve.TTL),
	)
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("redis at %s: %w", cfg.Serve.Redis.Addr, err)
	}
	logger.Info("using redis session store", "addr", cfg.Serve.Redis.Addr, "prefix", cfg.Serve.Redis.Prefix)

	locker := redisAdapter.NewLocker(store.Client(), cfg.Serve.Redis.Prefix)
	opts = append(opts, session.WithLocker(locker))

	closed := false
	closeStore := func() {
		if closed {
			return
		}
		closed = true
		if err := store.Close(); err != nil {
			logger.Warn("failed to close redis client", "error", err)
		}
	}
	return session.NewManager(store, opts...), closeStore, nil
}
