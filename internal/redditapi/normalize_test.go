package redditapi

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestSummaryNeverExceedsLimit(t *testing.T) {
	for _, n := range []int{0, 1, 179, 180, 181, 500, 5000} {
		s := Summary(strings.Repeat("a\n", n), "fallback")
		require.LessOrEqual(t, utf8.RuneCountInString(s), MaxSummaryLen, "n=%d", n)
		require.NotContains(t, s, "\n")
	}
	require.Equal(t, strings.Repeat("t", MaxSummaryLen), Summary("", strings.Repeat("t", 400)))
}

func TestResolveURL(t *testing.T) {
	require.Equal(t, "https://www.reddit.com/r/golang/comments/1/x/", ResolveURL("/r/golang/comments/1/x/", "https://other.example"))
	require.Equal(t, "https://other.example/a", ResolveURL("https://www.reddit.com/r/golang/", "https://other.example/a"))
	require.Equal(t, "https://other.example/a", ResolveURL("", "https://other.example/a"))
}

func TestFormatTimestamp(t *testing.T) {
	require.Equal(t, "1970-01-01T00:00:00+00:00", FormatTimestamp(time.Unix(0, 0)))
	require.Equal(t, "2025-03-11T09:01:00.250000+00:00", FormatTimestamp(time.Date(2025, 3, 11, 9, 1, 0, 250_000_000, time.UTC)))
	loc := time.FixedZone("X", 2*3600)
	require.Equal(t, "2025-03-11T07:01:00+00:00", FormatTimestamp(time.Date(2025, 3, 11, 9, 1, 0, 0, loc)))
}

func TestToFloat(t *testing.T) {
	require.Equal(t, 3.0, toFloat(3.0))
	require.Equal(t, 7.0, toFloat(json.Number("7")))
	require.Equal(t, 15.0, toFloat(" 15 "))
	require.Equal(t, 0.0, toFloat("abc"))
	require.Equal(t, 1.0, toFloat(true))
	require.Equal(t, 0.0, toFloat(nil))
	require.Equal(t, 0.0, toFloat(map[string]any{}))
}
