package cmd

import (
	"log/slog"
	"strings"

	"reddit-hotspots/internal/ai"
	"reddit-hotspots/internal/config"
	"reddit-hotspots/internal/redisclient"
	"reddit-hotspots/internal/storage"
)

// openStore returns the Redis snapshot mirror when enabled, or nil.
func openStore(cfg config.Config) (*storage.RedisStore, func()) {
	if !cfg.Redis.Enabled {
		return nil, func() {}
	}
	rdb := redisclient.New(cfg.Redis)
	return storage.NewRedisStore(rdb), func() { _ = rdb.Close() }
}

// newSummarizer returns the OpenAI digest writer when an API key is configured, or nil.
func newSummarizer(cfg config.Config) ai.Summarizer {
	if strings.TrimSpace(cfg.OpenAI.APIKey) == "" {
		return nil
	}
	s, err := ai.NewOpenAI(ai.Config{APIKey: cfg.OpenAI.APIKey, Model: cfg.OpenAI.Model, BaseURL: cfg.OpenAI.BaseURL})
	if err != nil {
		slog.Warn("openai: digest disabled", "error", err)
		return nil
	}
	return s
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
