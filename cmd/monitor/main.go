package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"reddit_alert/internal/config"
	"reddit_alert/internal/monitor"
	"reddit_alert/internal/notify"
	"reddit_alert/internal/reddit"
	"reddit_alert/internal/scheduler"
	"reddit_alert/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel)

	keywords, err := config.LoadKeywords(cfg.KeywordsPath)
	if err != nil {
		log.Error("load keywords", "path", cfg.KeywordsPath, "error", err)
		os.Exit(1)
	}

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Error("create data directory", "path", dir, "error", err)
			os.Exit(1)
		}
	}

	store, err := storage.NewSQLite(cfg.DatabasePath)
	if err != nil {
		log.Error("open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	sender, err := newSender(cfg)
	if err != nil {
		log.Error("create sender", "channel", cfg.Channel, "error", err)
		os.Exit(1)
	}

	client := reddit.New(http.DefaultClient, cfg.RedditBaseURL, log)
	mon := monitor.New(store, client, keywords, sender, log)
	sched := scheduler.New(mon, cfg.CheckInterval, log)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("starting monitor", "keywords", len(keywords), "channel", cfg.Channel)

	sched.Run(ctx)

	log.Info("monitor stopped")
}

func newSender(cfg *config.Config) (monitor.Sender, error) {
	if cfg.Channel == config.ChannelTelegram {
		return notify.NewTelegramSender(cfg.TelegramBotToken, cfg.TelegramChatID)
	}
	return notify.NewEmailSender(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailTo), nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
