package redditrss

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

	"reddit-hotspots/internal/model"
)

const (
	DefaultBaseURL   = "https://www.reddit.com"
	DefaultUserAgent = "se-in-ai-area-bot/0.2 (+https://www.reddit.com/)"
	DefaultTimeout   = 15 * time.Second
)

// ErrInvalidLimit is returned before any request when the limit is not positive.
var ErrInvalidLimit = errors.New("redditrss: limit must be > 0")

// Client reads subreddit hot lists through Reddit's Atom feeds.
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewClient creates a feed client. Empty arguments fall back to the defaults above.
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

// HotPosts fetches and parses the hot feed of a single subreddit.
// API: GET /r/{subreddit}/hot/.rss?limit={limit}
func (c *Client) HotPosts(ctx context.Context, subreddit string, limit int) ([]model.Post, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	q := url.Values{"limit": {strconv.Itoa(limit)}}
	endpoint := fmt.Sprintf("%s/r/%s/hot/.rss?%s", c.baseURL, url.PathEscape(subreddit), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("redditrss: fetch %s: %w", subreddit, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("redditrss: %s status %d", subreddit, resp.StatusCode)
	}
	posts, err := Parse(resp.Body, subreddit)
	if err != nil {
		return nil, fmt.Errorf("redditrss: parse %s: %w", subreddit, err)
	}
	slog.Debug("redditrss: fetched feed", "subreddit", subreddit, "count", len(posts))
	return posts, nil
}

// HotPostsForSubreddits fetches each subreddit in order and concatenates the results.
// Blank names are dropped. A positive sleep is waited between subreddits, not after the last one.
func (c *Client) HotPostsForSubreddits(ctx context.Context, subreddits []string, limit int, sleep time.Duration) ([]model.Post, error) {
	names := make([]string, 0, len(subreddits))
	for _, s := range subreddits {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		names = append(names, s)
	}

	var combined []model.Post
	for i, name := range names {
		posts, err := c.HotPosts(ctx, name, limit)
		if err != nil {
			return nil, err
		}
		combined = append(combined, posts...)
		if sleep > 0 && i < len(names)-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(sleep):
			}
		}
	}
	return combined, nil
}
