package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/strongpass/strongpass-go/internal/config"
	"github.com/strongpass/strongpass-go/internal/handler"
	"github.com/strongpass/strongpass-go/internal/passgen"
	"github.com/strongpass/strongpass-go/internal/service"
	"github.com/strongpass/strongpass-go/internal/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(cfg.NewLogger())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	genService := service.NewGeneratorService(passgen.SourceByName(cfg.RandomSource))

	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: handler.NewRouter(ctx, genService, handler.RouterOptions{
			AllowedOrigin:  cfg.AllowedOrigin,
			RateLimitRPS:   cfg.RateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
			Static:         web.Static(),
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "random_source", cfg.RandomSource)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
