package cmd

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
	"golang.org/x/sync/errgroup"

	"wealth-planner/config"
	httpLayer "wealth-planner/http"
	"wealth-planner/logging"
	"wealth-planner/repository"
	"wealth-planner/service"
)

const shutdownTimeout = 10 * time.Second

var flagConfigFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&flagConfigFile, "config", "c", "", "Optional TOML configuration file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfigFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter, closeLimiter, err := newLimiter(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLimiter()

	advisor := service.NewAdvisorService(ctx, service.AdvisorConfig{
		APIKey: cfg.GeminiAPIKey,
		Model:  cfg.GeminiModel,
	}, logger)

	var allowedOrigins []string
	if cfg.IsProduction() {
		allowedOrigins = cfg.AllowedOrigins
	}

	router := httpLayer.NewRouter(httpLayer.Services{
		Financial:  service.NewFinancialService(logger),
		LifeGoal:   service.NewLifeGoalService(advisor, logger),
		QuickTools: service.NewQuickToolsService(),
	}, httpLayer.RouterConfig{
		AllowedOrigins: allowedOrigins,
		Limiter:        limiter,
	}, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("API listening",
			"addr", server.Addr,
			"environment", cfg.Environment,
			"advisor_enabled", advisor.Enabled(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("starting server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", "error", err)
		return err
	}

	logger.Info("Server exited")
	return nil
}

// newLimiter uses a shared Redis window when REDIS_ADDR is set and an
// in-process token bucket otherwise.
func newLimiter(ctx context.Context, cfg *config.Config, logger *slog.Logger) (httpLayer.Limiter, func(), error) {
	if cfg.RedisAddr == "" {
		rl := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
		return rl, rl.Stop, nil
	}

	counter := repository.NewRedisCounter(cfg.RedisAddr)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := counter.Ping(pingCtx); err != nil {
		// el limitador deja pasar si Redis no responde
		logger.Warn("Redis unreachable at startup", "addr", cfg.RedisAddr, "error", err)
	}

	limiter := httpLayer.NewWindowLimiter(counter, cfg.RateLimitCapacity, cfg.RateLimitWindow, logger)
	return limiter, func() {
		if err := counter.Close(); err != nil {
			logger.Warn("Error closing Redis client", "error", err)
		}
	}, nil
}
