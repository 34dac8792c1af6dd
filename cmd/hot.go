package cmd

import (
	"fmt"
	"time"

	"reddit-hotspots/internal/config"
	"reddit-hotspots/internal/redditrss"
	"reddit-hotspots/worker"

	"github.com/spf13/cobra"
)

var (
	hotSubreddits string
	hotLimit      int
	hotOutput     string
	hotUserAgent  string
	hotSleep      time.Duration
)

// hotCmd fetches hot posts through the Atom feeds.
var hotCmd = &cobra.Command{
	Use:   "hot",
	Short: "Fetch hot posts from subreddit RSS feeds and save JSON output",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		w, err := feedCollectorFor(cmd, cfg)
		if err != nil {
			return err
		}
		if store, closeStore := openStore(cfg); store != nil {
			defer closeStore()
			w.Store = store
		}
		snap, err := w.RunOnce(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %d posts to %s\n", snap.Count, w.Output)
		return nil
	},
}

// feedCollectorFor merges explicitly set flags over the loaded configuration.
func feedCollectorFor(cmd *cobra.Command, cfg config.Config) (*worker.FeedCollector, error) {
	fc := cfg.Feed
	flags := cmd.Flags()
	if flags.Changed("subreddits") {
		fc.Subreddits = config.SplitList(hotSubreddits)
	}
	if flags.Changed("limit") {
		fc.Limit = hotLimit
	}
	if flags.Changed("output") {
		fc.Output = hotOutput
	}
	if flags.Changed("user-agent") && hotUserAgent != "" {
		fc.UserAgent = hotUserAgent
	}
	sleep, err := time.ParseDuration(fc.Sleep)
	if err != nil {
		return nil, fmt.Errorf("invalid feed.sleep: %w", err)
	}
	if flags.Changed("sleep") {
		sleep = hotSleep
	}
	timeout, err := time.ParseDuration(cfg.Reddit.Timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid reddit.timeout: %w", err)
	}
	return &worker.FeedCollector{
		Client:     redditrss.NewClient(cfg.Reddit.BaseURL, fc.UserAgent, timeout),
		Subreddits: cleanList(fc.Subreddits),
		Limit:      fc.Limit,
		Sleep:      sleep,
		Output:     fc.Output,
		Schedule:   fc.Schedule,
	}, nil
}

func init() {
	f := hotCmd.Flags()
	f.StringVar(&hotSubreddits, "subreddits", "MachineLearning,LocalLLaMA,programming,learnprogramming,OpenAI", "comma-separated subreddit names")
	f.IntVar(&hotLimit, "limit", 20, "hot post limit per subreddit")
	f.StringVar(&hotOutput, "output", "data/reddit_hot.json", "output file path (.json, .yaml)")
	f.StringVar(&hotUserAgent, "user-agent", "", "custom User-Agent header")
	f.DurationVar(&hotSleep, "sleep", 200*time.Millisecond, "pause between subreddits")
	rootCmd.AddCommand(hotCmd)
}
