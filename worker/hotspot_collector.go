package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"reddit-hotspots/internal/ai"
	"reddit-hotspots/internal/model"
	"reddit-hotspots/internal/rank"
	"reddit-hotspots/internal/redditapi"
	"reddit-hotspots/internal/snapshot"
)

// HotspotStore mirrors hotspot snapshots.
type HotspotStore interface {
	SaveHotspots(ctx context.Context, runID string, snap model.HotspotSnapshot) error
}

// HotspotCollector reads hot posts from the JSON listing API, ranks them and writes a snapshot.
type HotspotCollector struct {
	Client     *redditapi.Client
	Store      HotspotStore  // optional
	Summarizer ai.Summarizer // optional
	Language   string
	Subreddits []string
	Limit      int
	Output     string
	Schedule   string

	now func() time.Time
}

func (w *HotspotCollector) Start(ctx context.Context) error {
	return runScheduled(ctx, "hotspot-collector", w.Schedule, func() {
		_, err := w.RunOnce(ctx)
		switch {
		case err == nil:
		case redditapi.IsBlocked(err):
			slog.Warn("hotspot-collector: blocked by reddit, snapshot kept", "error", err)
		default:
			slog.Error("hotspot-collector: run failed", "error", err)
		}
	})
}

// RunOnce performs a single fetch, rank and write cycle. Nothing is written when the fetch fails.
func (w *HotspotCollector) RunOnce(ctx context.Context) (model.HotspotSnapshot, error) {
	runID := uuid.NewString()
	items, err := w.Client.Fetch(ctx, w.Subreddits, w.Limit)
	if err != nil {
		return model.HotspotSnapshot{}, err
	}
	ranked := rank.Hotspots(items)
	if ranked == nil {
		ranked = []model.Hotspot{}
	}
	now := time.Now
	if w.now != nil {
		now = w.now
	}
	snap := model.HotspotSnapshot{
		UpdatedAt: redditapi.FormatTimestamp(now()),
		Count:     len(ranked),
		Items:     ranked,
	}
	if w.Summarizer != nil {
		digest, err := w.Summarizer.SummarizeHotspots(ctx, ranked, w.Language)
		if err != nil {
			slog.Warn("hotspot-collector: digest skipped", "run", runID, "error", err)
		} else {
			snap.Digest = digest
		}
	}
	if err := snapshot.Write(w.Output, snap, snapshot.Options{TrailingNewline: true}); err != nil {
		return model.HotspotSnapshot{}, err
	}
	if w.Store != nil {
		if err := w.Store.SaveHotspots(ctx, runID, snap); err != nil {
			slog.Error("hotspot-collector: store error", "run", runID, "error", err)
		}
	}
	slog.Info("hotspot-collector: completed", "run", runID, "count", snap.Count, "subreddits", len(w.Subreddits))
	return snap, nil
}
