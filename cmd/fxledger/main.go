package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fxledger/internal/config"
	"fxledger/internal/database"
	"fxledger/internal/logging"
	"fxledger/internal/rates"
	"fxledger/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}

	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	ratesClient := rates.NewClient(cfg.RatesBaseURL, cfg.RatesTimeout)

	srv := server.New(db, ratesClient, logger)

	if n, err := srv.SessionStore().DeleteExpired(); err != nil {
		logger.Warn("expired session sweep", "error", err)
	} else if n > 0 {
		logger.Info("swept expired sessions", "count", n)
	}

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("fxledger listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
