package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/preciserobot/shoppy/internal/config"
	"github.com/preciserobot/shoppy/internal/db"
	"github.com/preciserobot/shoppy/internal/logging"
	"github.com/preciserobot/shoppy/internal/lookup"
	"github.com/preciserobot/shoppy/internal/web"
)

func main() {
	cfg := config.Load()

	addr := flag.String("addr", cfg.ListenAddr, "listen address")
	flag.Parse()

	logger := logging.New(cfg.LogLevel)

	database, err := db.Open(cfg.RedisAddr(), cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer database.Close()

	router, err := web.NewRouter(database, lookup.None{})
	if err != nil {
		log.Fatalf("Failed to set up router: %v", err)
	}

	srv := &http.Server{
		Addr:         *addr,
		Handler:      web.LoggingMiddleware(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "addr", *addr, "redis", cfg.RedisAddr(), "redis_db", cfg.RedisDB)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
