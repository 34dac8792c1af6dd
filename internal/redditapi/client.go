package redditapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"reddit-hotspots/internal/model"
)

const (
	// SourceTag marks every hotspot produced by this package.
	SourceTag = "reddit"
	// SiteOrigin prefixes relative permalinks.
	SiteOrigin = "https://www.reddit.com"

	DefaultBaseURL   = SiteOrigin
	DefaultUserAgent = "se-in-ai-area/0.1 (by github-actions)"
	DefaultTimeout   = 30 * time.Second
)

// ErrInvalidLimit is returned before any request when the limit is not positive.
var ErrInvalidLimit = errors.New("redditapi: limit must be > 0")

// StatusError reports a non-2xx listing response.
type StatusError struct {
	Subreddit  string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("redditapi: %s status %d", e.Subreddit, e.StatusCode)
}

// IsBlocked reports whether err carries an HTTP 403 from Reddit.
// Reddit answers 403 to unauthenticated clients it has decided to block.
func IsBlocked(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusForbidden
}

// Client reads subreddit hot lists through the public JSON listing endpoint.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
	now       func() time.Time
}

// NewClient creates a listing client. Empty arguments fall back to the defaults above.
func NewClient(baseURL, userAgent string) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: DefaultTimeout},
		now:       time.Now,
	}
}

// listing mirrors the subset of a Reddit listing we read.
type listing struct {
	Data struct {
		Children []struct {
			Data postData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type postData struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Selftext    string `json:"selftext"`
	Permalink   string `json:"permalink"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	Score       any    `json:"score"`
	NumComments any    `json:"num_comments"`
	CreatedUTC  any    `json:"created_utc"`
}

// Fetch reads the hot listing of every subreddit in order and returns the normalized hotspots.
// A post id seen earlier in the same call is dropped, even when it shows up in another subreddit.
// Any request or decode failure aborts the whole call.
func (c *Client) Fetch(ctx context.Context, subreddits []string, limit int) ([]model.Hotspot, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	fetchedAt := FormatTimestamp(c.now())
	seen := make(map[string]struct{})
	var results []model.Hotspot

	for _, sub := range subreddits {
		l, err := c.listing(ctx, sub, limit)
		if err != nil {
			return nil, err
		}
		kept := 0
		for _, child := range l.Data.Children {
			d := child.Data
			if d.ID == "" {
				continue
			}
			if _, ok := seen[d.ID]; ok {
				continue
			}
			seen[d.ID] = struct{}{}
			results = append(results, convertPost(d, sub, fetchedAt))
			kept++
		}
		slog.Debug("redditapi: fetched listing", "subreddit", sub, "children", len(l.Data.Children), "kept", kept)
	}
	return results, nil
}

// listing fetches one subreddit.
// API: GET /r/{subreddit}/hot.json?limit={limit}&raw_json=1
func (c *Client) listing(ctx context.Context, subreddit string, limit int) (listing, error) {
	var zero listing
	q := url.Values{"limit": {strconv.Itoa(limit)}, "raw_json": {"1"}}
	endpoint := fmt.Sprintf("%s/r/%s/hot.json?%s", c.baseURL, url.PathEscape(subreddit), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return zero, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.client.Do(req)
	if err != nil {
		return zero, fmt.Errorf("redditapi: fetch %s: %w", subreddit, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return zero, &StatusError{Subreddit: subreddit, StatusCode: resp.StatusCode}
	}
	var l listing
	if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
		return zero, fmt.Errorf("redditapi: decode %s: %w", subreddit, err)
	}
	return l, nil
}
