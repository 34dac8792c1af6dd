package cmd

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"reddit-hotspots/internal/redditapi"
	"reddit-hotspots/worker"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run both collectors on their configured schedules",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		feed, err := feedCollectorFor(cmd, cfg)
		if err != nil {
			return err
		}
		hc := hotspotsConfigFromEnv(cfg.Hotspots)
		hot := &worker.HotspotCollector{
			Client:     redditapi.NewClient(cfg.Reddit.BaseURL, hc.UserAgent),
			Language:   cfg.OpenAI.Language,
			Subreddits: hc.Subreddits,
			Limit:      hc.Limit,
			Output:     hc.Output,
			Schedule:   hc.Schedule,
		}
		if s := newSummarizer(cfg); s != nil {
			hot.Summarizer = s
		}
		if store, closeStore := openStore(cfg); store != nil {
			defer closeStore()
			feed.Store = store
			hot.Store = store
		}

		slog.Info("starting feed collector", "subreddits", feed.Subreddits, "schedule", feed.Schedule)
		slog.Info("starting hotspot collector", "subreddits", hot.Subreddits, "schedule", hot.Schedule)
		mgr := worker.NewManager(feed, hot)

		// Signal handling for systemd
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return mgr.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
