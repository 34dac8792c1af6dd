package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reddit-hotspots/internal/storage"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// latestCmd prints the hotspot snapshot most recently mirrored into Redis.
var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the latest mirrored hotspot snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMirror(5*time.Second, func(ctx context.Context, _ *redis.Client, store *storage.RedisStore) error {
			snap, ok, err := store.LatestHotspots(ctx)
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("no hotspot snapshot stored yet")
			}
			b, err := json.MarshalIndent(snap, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		})
	},
}

func init() {
	redisCmd.AddCommand(latestCmd)
}
