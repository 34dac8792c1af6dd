// Package rank orders normalized records by popularity.
//
// Both functions sort stably in descending key order: records whose keys are
// all equal keep the order they arrived in. The input slice is left untouched.
package rank

import (
	"sort"

	"reddit-hotspots/internal/model"
)

// Posts orders feed posts by score, then comment count, then recency.
func Posts(posts []model.Post) []model.Post {
	out := append([]model.Post(nil), posts...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.NumComments != b.NumComments {
			return a.NumComments > b.NumComments
		}
		return a.CreatedUTC > b.CreatedUTC
	})
	return out
}

// Hotspots orders listing hotspots by score, then comment count. There is no recency key.
func Hotspots(items []model.Hotspot) []model.Hotspot {
	out := append([]model.Hotspot(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.NumComments > b.NumComments
	})
	return out
}
