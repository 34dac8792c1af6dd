package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"reddit-hotspots/internal/model"
	"reddit-hotspots/internal/storage"
)

func TestValidateTopFlags(t *testing.T) {
	require.NoError(t, validateTopFlags("hotspots", 1))
	require.NoError(t, validateTopFlags("posts", 10))
	require.Error(t, validateTopFlags("newsletters", 10))
	require.Error(t, validateTopFlags("hotspots", 0))
	require.Error(t, validateTopFlags("hotspots", -2))
}

func TestPrintTop(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	store := storage.NewRedisStore(rdb)

	ctx := context.Background()
	snap := model.HotspotSnapshot{Count: 3, Items: []model.Hotspot{
		{SourcePostID: "p2", Subreddit: "golang", Score: 50},
		{SourcePostID: "p3", Subreddit: "golang", Score: 10},
		{SourcePostID: "p1", Subreddit: "golang", Score: 1},
	}}
	require.NoError(t, store.SaveHotspots(ctx, "run-1", snap))

	var buf bytes.Buffer
	require.NoError(t, printTop(ctx, &buf, store, "hotspots", "golang", 2))
	require.Equal(t, "1. p2\n2. p3\n", buf.String())
}
