package cmd

import (
	"context"
	"fmt"
	"time"

	"reddit-hotspots/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// pingCmd checks that the mirror is reachable and reports the age of the stored hotspot snapshot.
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the mirror connection and its latest hotspot snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := GetConfig().Redis.Addr
		return withMirror(2*time.Second, func(ctx context.Context, rdb *redis.Client, store *storage.RedisStore) error {
			res, err := rdb.Ping(ctx).Result()
			if err != nil {
				return fmt.Errorf("redis %s: %w", addr, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s from %s\n", res, addr)

			snap, ok, err := store.LatestHotspots(ctx)
			switch {
			case err != nil:
				return err
			case !ok:
				fmt.Fprintln(out, "no hotspot snapshot mirrored yet")
			default:
				fmt.Fprintf(out, "hotspots updated %s with %d items\n", snap.UpdatedAt, snap.Count)
			}
			return nil
		})
	},
}

func init() {
	redisCmd.AddCommand(pingCmd)
}
