package storage

import (
	"context"
	"fmt"
	"time"

	"reddit-hotspots/internal/model"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// RunTTL bounds how long a per-run snapshot copy is kept.
const RunTTL = 7 * 24 * time.Hour

// RedisStore mirrors written snapshots into Redis so other services can read them
// without access to the output file.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func latestKey(pipeline string) string {
	return fmt.Sprintf("reddit:%s:latest", pipeline)
}

func runKey(pipeline, runID string) string {
	return fmt.Sprintf("reddit:%s:run:%s", pipeline, runID)
}

func rankKey(pipeline, subreddit string) string {
	return fmt.Sprintf("reddit:%s:rank:%s", pipeline, subreddit)
}

func rankIndexKey(pipeline string) string {
	return fmt.Sprintf("reddit:%s:ranked", pipeline)
}

// SaveHotspots stores the snapshot as latest and per run, and replaces the
// per-subreddit score sorted sets with this run's items.
func (s *RedisStore) SaveHotspots(ctx context.Context, runID string, snap model.HotspotSnapshot) error {
	zs := make(map[string][]redis.Z)
	for _, it := range snap.Items {
		zs[it.Subreddit] = append(zs[it.Subreddit], redis.Z{Score: float64(it.Score), Member: it.SourcePostID})
	}
	return s.save(ctx, "hotspots", runID, snap, zs)
}

// SavePosts is SaveHotspots for feed snapshots.
func (s *RedisStore) SavePosts(ctx context.Context, runID string, snap model.PostSnapshot) error {
	zs := make(map[string][]redis.Z)
	for _, p := range snap.Items {
		zs[p.Subreddit] = append(zs[p.Subreddit], redis.Z{Score: float64(p.Score), Member: p.PostID})
	}
	return s.save(ctx, "posts", runID, snap, zs)
}

// save writes both snapshot copies and rebuilds the rank sets. Rank sets of
// subreddits missing from this run are removed, tracked through the index set.
func (s *RedisStore) save(ctx context.Context, pipeline, runID string, snap any, zs map[string][]redis.Z) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	indexKey := rankIndexKey(pipeline)
	previous, err := s.rdb.SMembers(ctx, indexKey).Result()
	if err != nil {
		return err
	}
	_, err = s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, latestKey(pipeline), b, 0)
		p.Set(ctx, runKey(pipeline, runID), b, RunTTL)
		for _, sub := range previous {
			p.Del(ctx, rankKey(pipeline, sub))
		}
		p.Del(ctx, indexKey)
		for sub, members := range zs {
			key := rankKey(pipeline, sub)
			p.Del(ctx, key)
			p.ZAdd(ctx, key, members...)
			p.SAdd(ctx, indexKey, sub)
		}
		return nil
	})
	return err
}

// LatestHotspots returns the most recently mirrored hotspot snapshot.
// The boolean is false when nothing has been stored yet.
func (s *RedisStore) LatestHotspots(ctx context.Context) (model.HotspotSnapshot, bool, error) {
	var snap model.HotspotSnapshot
	b, err := s.rdb.Get(ctx, latestKey("hotspots")).Bytes()
	if err == redis.Nil {
		return snap, false, nil
	}
	if err != nil {
		return snap, false, err
	}
	if err := json.Unmarshal(b, &snap); err != nil {
		return snap, false, err
	}
	return snap, true, nil
}

// TopPostIDs returns up to n post ids of a subreddit ordered by score, highest first.
// A non-positive n yields no ids.
func (s *RedisStore) TopPostIDs(ctx context.Context, pipeline, subreddit string, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	return s.rdb.ZRevRange(ctx, rankKey(pipeline, subreddit), 0, int64(n-1)).Result()
}
