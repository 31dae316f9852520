package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"loan-strategy/config"
	httpLayer "loan-strategy/http"
	"loan-strategy/repository"
	"loan-strategy/service"
)

func newServeCmd(loadConfig func() config.Config) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the comparison HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if addr != "" {
				cfg.Addr = addr
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from LOANSTRAT_ADDR or :8080)")

	return cmd
}

func newCache(ctx context.Context, cfg config.Config) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		return repository.NewMockCache(), func() {}
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisTTL)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		log.Printf("Warning: redis at %s unreachable, using in-memory cache: %v", cfg.RedisAddr, err)
		redisCache.Close()
		return repository.NewMockCache(), func() {}
	}

	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			log.Printf("Warning: closing redis: %v", err)
		}
	}
}

func serve(ctx context.Context, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cache, closeCache := newCache(ctx, cfg)
	defer closeCache()

	comparisonService := service.NewComparisonService(cache, newInsightService(cfg))
	comparisonHandler := httpLayer.NewComparisonHandler(comparisonService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpLayer.NewRouter(comparisonHandler, rateLimiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		log.Println("Shutting down server...")
	case <-ctx.Done():
		log.Println("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
	return nil
}
