// Package config handles application configuration from environment variables
// and the keyword file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Notification channels.
const (
	ChannelEmail    = "email"
	ChannelTelegram = "telegram"
)

// Config holds the application configuration.
type Config struct {
	DatabasePath  string
	KeywordsPath  string
	LogLevel      string
	CheckInterval time.Duration
	RedditBaseURL string

	Channel          string
	ResendAPIKey     string
	EmailFrom        string
	EmailTo          string
	TelegramBotToken string
	TelegramChatID   int64
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		DatabasePath:  envOrDefault("DATABASE_PATH", "./data/monitor.db"),
		KeywordsPath:  envOrDefault("KEYWORDS_PATH", "./keywords.json"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		RedditBaseURL: envOrDefault("REDDIT_BASE_URL", "https://www.reddit.com"),
		Channel:       envOrDefault("NOTIFY_CHANNEL", ChannelEmail),

		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		EmailFrom:        os.Getenv("EMAIL_FROM"),
		EmailTo:          os.Getenv("EMAIL_TO"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	interval := envOrDefault("CHECK_INTERVAL", "2m")
	d, err := time.ParseDuration(interval)
	if err != nil {
		return nil, fmt.Errorf("invalid CHECK_INTERVAL %q: %w", interval, err)
	}
	if d <= 0 {
		return nil, fmt.Errorf("CHECK_INTERVAL must be positive, got %q", interval)
	}
	cfg.CheckInterval = d

	switch cfg.Channel {
	case ChannelEmail:
		if cfg.ResendAPIKey == "" {
			return nil, fmt.Errorf("RESEND_API_KEY is required")
		}
		if cfg.EmailFrom == "" || cfg.EmailTo == "" {
			return nil, fmt.Errorf("EMAIL_FROM and EMAIL_TO are required")
		}
	case ChannelTelegram:
		if cfg.TelegramBotToken == "" {
			return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
		}
		raw := os.Getenv("TELEGRAM_CHAT_ID")
		if raw == "" {
			return nil, fmt.Errorf("TELEGRAM_CHAT_ID is required")
		}
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", raw, err)
		}
		cfg.TelegramChatID = chatID
	default:
		return nil, fmt.Errorf("unknown NOTIFY_CHANNEL %q", cfg.Channel)
	}

	return cfg, nil
}

// LoadKeywords reads the keyword list from a JSON file of the form
// {"keywords": ["a", "b"]}. Blank entries are dropped; an empty list is an
// error because the monitor has nothing to do without keywords.
func LoadKeywords(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("read keywords file: %w", err)
	}

	var kf struct {
		Keywords []string `json:"keywords"`
	}
	if err := json.Unmarshal(data, &kf); err != nil {
		return nil, fmt.Errorf("parse keywords file: %w", err)
	}

	var keywords []string
	for _, k := range kf.Keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		keywords = append(keywords, k)
	}
	if len(keywords) == 0 {
		return nil, fmt.Errorf("no keywords configured in %s", path)
	}
	return keywords, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
