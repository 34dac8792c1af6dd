package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"reddit-hotspots/internal/config"
	"reddit-hotspots/internal/redditapi"
	"reddit-hotspots/worker"

	"github.com/spf13/cobra"
)

var hotspotsOutput string

// hotspotsCmd is the entry point used by scheduled CI runs; it is configured from the environment.
var hotspotsCmd = &cobra.Command{
	Use:   "hotspots",
	Short: "Fetch hotspots from the Reddit JSON API and persist them",
	Long: `Fetch hotspots from the Reddit JSON API and persist them.

Environment:
  REDDIT_SUBREDDITS   comma-separated subreddit names
  REDDIT_LIMIT        positive post limit per subreddit
  REDDIT_USER_AGENT   User-Agent header

A 403 from Reddit leaves the previous snapshot untouched and exits successfully.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		hc := hotspotsConfigFromEnv(cfg.Hotspots)
		if cmd.Flags().Changed("output") {
			hc.Output = hotspotsOutput
		}
		w := &worker.HotspotCollector{
			Client:     redditapi.NewClient(cfg.Reddit.BaseURL, hc.UserAgent),
			Language:   cfg.OpenAI.Language,
			Subreddits: hc.Subreddits,
			Limit:      hc.Limit,
			Output:     hc.Output,
		}
		if s := newSummarizer(cfg); s != nil {
			w.Summarizer = s
		}
		if store, closeStore := openStore(cfg); store != nil {
			defer closeStore()
			w.Store = store
		}
		return runHotspots(cmd.Context(), w, cmd.OutOrStdout())
	},
}

// hotspotsConfigFromEnv overlays the REDDIT_* environment variables on the configured defaults.
func hotspotsConfigFromEnv(hc config.HotspotsConfig) config.HotspotsConfig {
	hc.Subreddits = config.EnvList("REDDIT_SUBREDDITS", cleanList(hc.Subreddits))
	hc.Limit = config.EnvInt("REDDIT_LIMIT", hc.Limit)
	hc.UserAgent = config.EnvString("REDDIT_USER_AGENT", hc.UserAgent)
	return hc
}

// runHotspots runs one collection. A blocked (403) run is reported and treated as success;
// every other failure is returned. Nothing is written in either failure case.
func runHotspots(ctx context.Context, w *worker.HotspotCollector, out io.Writer) error {
	snap, err := w.RunOnce(ctx)
	if err != nil {
		if redditapi.IsBlocked(err) {
			slog.Warn("hotspots: reddit blocked the request, skipping update", "error", err)
			fmt.Fprintf(out, "[warn] reddit returned 403, %s not updated\n", w.Output)
			return nil
		}
		slog.Error("hotspots: failed to update", "error", err)
		return fmt.Errorf("failed to update hotspots: %w", err)
	}
	fmt.Fprintf(out, "updated %s with %d hotspots from %d subreddits\n", w.Output, snap.Count, len(w.Subreddits))
	return nil
}

func init() {
	hotspotsCmd.Flags().StringVar(&hotspotsOutput, "output", "data/hotspots.json", "output file path (.json, .yaml)")
	rootCmd.AddCommand(hotspotsCmd)
}
