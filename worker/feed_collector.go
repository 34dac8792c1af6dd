package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reddit-hotspots/internal/model"
	"reddit-hotspots/internal/rank"
	"reddit-hotspots/internal/redditrss"
	"reddit-hotspots/internal/snapshot"
)

// PostStore mirrors feed snapshots.
type PostStore interface {
	SavePosts(ctx context.Context, runID string, snap model.PostSnapshot) error
}

// FeedCollector reads hot posts from Atom feeds, ranks them and writes a snapshot.
type FeedCollector struct {
	Client     *redditrss.Client
	Store      PostStore // optional
	Subreddits []string
	Limit      int
	Sleep      time.Duration // pause between subreddits
	Output     string
	Schedule   string
}

func (w *FeedCollector) Start(ctx context.Context) error {
	return runScheduled(ctx, "feed-collector", w.Schedule, func() {
		if _, err := w.RunOnce(ctx); err != nil {
			slog.Error("feed-collector: run failed", "error", err)
		}
	})
}

// RunOnce performs a single fetch, rank and write cycle.
func (w *FeedCollector) RunOnce(ctx context.Context) (model.PostSnapshot, error) {
	runID := uuid.NewString()
	posts, err := w.Client.HotPostsForSubreddits(ctx, w.Subreddits, w.Limit, w.Sleep)
	if err != nil {
		return model.PostSnapshot{}, err
	}
	ranked := rank.Posts(posts)
	if ranked == nil {
		ranked = []model.Post{}
	}
	snap := model.PostSnapshot{
		Subreddits: w.Subreddits,
		Count:      len(ranked),
		Items:      ranked,
	}
	if err := snapshot.Write(w.Output, snap, snapshot.Options{}); err != nil {
		return model.PostSnapshot{}, err
	}
	if w.Store != nil {
		if err := w.Store.SavePosts(ctx, runID, snap); err != nil {
			slog.Error("feed-collector: store error", "run", runID, "error", err)
		}
	}
	slog.Info("feed-collector: completed", "run", runID, "count", snap.Count, "output", w.Output)
	return snap, nil
}
