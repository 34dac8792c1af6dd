package redditapi

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"reddit-hotspots/internal/model"
)

// MaxSummaryLen is the summary length limit in characters.
const MaxSummaryLen = 180

func convertPost(d postData, subreddit, fetchedAt string) model.Hotspot {
	title := strings.TrimSpace(d.Title)
	return model.Hotspot{
		Source:       SourceTag,
		SourcePostID: d.ID,
		Subreddit:    subreddit,
		Title:        title,
		Summary:      Summary(d.Selftext, title),
		SourceURL:    ResolveURL(d.Permalink, d.URL),
		Author:       d.Author,
		Score:        int(toFloat(d.Score)),
		NumComments:  int(toFloat(d.NumComments)),
		PublishedAt:  FormatTimestamp(epoch(toFloat(d.CreatedUTC))),
		FetchedAt:    fetchedAt,
	}
}

// ResolveURL returns the canonical link of a post: relative permalinks are
// anchored on SiteOrigin, otherwise the external url is used as is.
func ResolveURL(permalink, rawURL string) string {
	if strings.HasPrefix(permalink, "/") {
		return SiteOrigin + permalink
	}
	return rawURL
}

// Summary derives a one-line summary from selftext, falling back to the title.
// The result never exceeds MaxSummaryLen characters.
func Summary(selftext, fallback string) string {
	body := oneLine(selftext)
	if body == "" {
		body = oneLine(fallback)
	}
	return truncate(body, MaxSummaryLen)
}

func oneLine(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// FormatTimestamp renders t as ISO-8601 UTC with an explicit +00:00 offset.
// Microseconds are included only when non-zero.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format("2006-01-02T15:04:05+00:00")
	}
	return t.Format("2006-01-02T15:04:05.000000+00:00")
}

func epoch(sec float64) time.Time {
	return time.UnixMicro(int64(math.Round(sec * 1e6)))
}

// toFloat coerces a loosely typed JSON value; anything unusable becomes 0.
func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}
