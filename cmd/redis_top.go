package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"reddit-hotspots/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var (
	topPipeline string
	topN        int
)

// topCmd lists the highest scored post ids mirrored for a subreddit.
var topCmd = &cobra.Command{
	Use:   "top <subreddit>",
	Short: "Print the top mirrored post ids of a subreddit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateTopFlags(topPipeline, topN); err != nil {
			return err
		}
		return withMirror(5*time.Second, func(ctx context.Context, _ *redis.Client, store *storage.RedisStore) error {
			return printTop(ctx, cmd.OutOrStdout(), store, topPipeline, args[0], topN)
		})
	},
}

func validateTopFlags(pipeline string, n int) error {
	if pipeline != "hotspots" && pipeline != "posts" {
		return fmt.Errorf("unknown pipeline %q (want hotspots or posts)", pipeline)
	}
	if n <= 0 {
		return fmt.Errorf("--n must be > 0, got %d", n)
	}
	return nil
}

func printTop(ctx context.Context, w io.Writer, store *storage.RedisStore, pipeline, subreddit string, n int) error {
	ids, err := store.TopPostIDs(ctx, pipeline, subreddit, n)
	if err != nil {
		return err
	}
	for i, id := range ids {
		fmt.Fprintf(w, "%d. %s\n", i+1, id)
	}
	return nil
}

func init() {
	topCmd.Flags().StringVar(&topPipeline, "pipeline", "hotspots", "snapshot pipeline: hotspots or posts")
	topCmd.Flags().IntVar(&topN, "n", 10, "number of ids to print")
	redisCmd.AddCommand(topCmd)
}
