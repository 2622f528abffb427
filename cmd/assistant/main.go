package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"assistant-bot/internal/bot"
	"assistant-bot/internal/config"
	"assistant-bot/internal/remind"
	"assistant-bot/internal/snipe"
	"assistant-bot/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := config.BuildLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	team, err := store.NewTeamStore(cfg.TeamPath)
	if err != nil {
		logger.Fatal("team store init failed", zap.Error(err))
	}
	warnings, err := store.NewWarningStore(cfg.WarningsPath)
	if err != nil {
		logger.Fatal("warning store init failed", zap.Error(err))
	}
	modlog, err := store.NewModlogStore(cfg.ModlogPath)
	if err != nil {
		logger.Fatal("modlog store init failed", zap.Error(err))
	}

	snipes := snipe.NewCache()
	reminders := remind.New(logger)

	botSvc, err := bot.New(cfg, logger, team, warnings, modlog, snipes, reminders)
	if err != nil {
		logger.Fatal("bot init failed", zap.Error(err))
	}

	if err := botSvc.Start(); err != nil {
		logger.Fatal("bot start failed", zap.Error(err))
	}
	logger.Info("bot started")

	var server *http.Server
	if cfg.Health.Enabled {
		server = &http.Server{Addr: cfg.Health.Addr}
		http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("Bot is alive!"))
		})
		go func() {
			logger.Info("keep-alive endpoint enabled", zap.String("addr", cfg.Health.Addr))
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("keep-alive server error", zap.Error(err))
			}
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutdown requested")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if server != nil {
		_ = server.Shutdown(ctx)
	}
	if err := botSvc.Close(ctx); err != nil {
		logger.Error("bot shutdown error", zap.Error(err))
	}
	logger.Info("shutdown complete")
}
