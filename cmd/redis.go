package cmd

import (
	"context"
	"time"

	"reddit-hotspots/internal/redisclient"
	"reddit-hotspots/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

// redisCmd groups commands that inspect the snapshot mirror the collectors keep in Redis.
var redisCmd = &cobra.Command{
	Use:   "redis",
	Short: "Inspect the Redis snapshot mirror",
}

// withMirror opens the configured Redis mirror for a single short command.
// It ignores redis.enabled, which only gates writes by the collectors.
func withMirror(timeout time.Duration, fn func(ctx context.Context, rdb *redis.Client, store *storage.RedisStore) error) error {
	rdb := redisclient.New(GetConfig().Redis)
	defer rdb.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return fn(ctx, rdb, storage.NewRedisStore(rdb))
}

func init() {
	rootCmd.AddCommand(redisCmd)
}
