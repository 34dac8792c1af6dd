package rank_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"reddit-hotspots/internal/model"
	"reddit-hotspots/internal/rank"
)

func postIDs(ps []model.Post) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.PostID
	}
	return out
}

func hotspotIDs(hs []model.Hotspot) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.SourcePostID
	}
	return out
}

func TestPostsOrdering(t *testing.T) {
	in := []model.Post{
		{PostID: "low", Score: 1},
		{PostID: "older", Score: 10, NumComments: 2, CreatedUTC: 100},
		{PostID: "newer", Score: 10, NumComments: 2, CreatedUTC: 200},
		{PostID: "chatty", Score: 10, NumComments: 9},
		{PostID: "top", Score: 50},
	}
	got := rank.Posts(in)
	require.Equal(t, []string{"top", "chatty", "newer", "older", "low"}, postIDs(got))
	require.Equal(t, "low", in[0].PostID, "input must not be reordered")
}

func TestPostsEqualKeysKeepInputOrder(t *testing.T) {
	in := []model.Post{
		{PostID: "a", Score: 5, NumComments: 1, CreatedUTC: 7},
		{PostID: "b", Score: 5, NumComments: 1, CreatedUTC: 7},
		{PostID: "c", Score: 5, NumComments: 1, CreatedUTC: 7},
	}
	require.Equal(t, []string{"a", "b", "c"}, postIDs(rank.Posts(in)))
}

func TestHotspotsIgnoreRecency(t *testing.T) {
	in := []model.Hotspot{
		{SourcePostID: "old", Score: 3, NumComments: 3, PublishedAt: "2020-01-01T00:00:00+00:00"},
		{SourcePostID: "new", Score: 3, NumComments: 3, PublishedAt: "2025-01-01T00:00:00+00:00"},
		{SourcePostID: "best", Score: 9},
		{SourcePostID: "more-comments", Score: 3, NumComments: 4},
	}
	require.Equal(t, []string{"best", "more-comments", "old", "new"}, hotspotIDs(rank.Hotspots(in)))
}

func TestRankingIsIdempotent(t *testing.T) {
	posts := []model.Post{
		{PostID: "x", Score: 2, NumComments: 2},
		{PostID: "y", Score: 2, NumComments: 2},
		{PostID: "z", Score: 8},
		{PostID: "w", Score: 2, NumComments: 5},
	}
	once := rank.Posts(posts)
	require.Equal(t, once, rank.Posts(once))

	hs := []model.Hotspot{
		{SourcePostID: "x", Score: 1},
		{SourcePostID: "y", Score: 1},
		{SourcePostID: "z", Score: 4, NumComments: 1},
	}
	h1 := rank.Hotspots(hs)
	require.Equal(t, h1, rank.Hotspots(h1))
}

func TestEmptyInput(t *testing.T) {
	require.Empty(t, rank.Posts(nil))
	require.Empty(t, rank.Hotspots([]model.Hotspot{}))
}
