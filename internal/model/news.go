package model

// Post is a hot post read from a subreddit's Atom feed.
// The feed does not expose self-post or NSFW markers, so IsSelf and Over18 are always false.
type Post struct {
	PostID      string  `json:"post_id" yaml:"post_id"`
	Subreddit   string  `json:"subreddit" yaml:"subreddit"`
	Title       string  `json:"title" yaml:"title"`
	Author      string  `json:"author" yaml:"author"`
	Score       int     `json:"score" yaml:"score"`
	NumComments int     `json:"num_comments" yaml:"num_comments"`
	CreatedUTC  float64 `json:"created_utc" yaml:"created_utc"`
	Permalink   string  `json:"permalink" yaml:"permalink"`
	URL         string  `json:"url" yaml:"url"`
	IsSelf      bool    `json:"is_self" yaml:"is_self"`
	Over18      bool    `json:"over_18" yaml:"over_18"`
}

// Hotspot is a hot post read from the JSON listing API.
type Hotspot struct {
	Source       string `json:"source" yaml:"source"`
	SourcePostID string `json:"source_post_id" yaml:"source_post_id"`
	Subreddit    string `json:"subreddit" yaml:"subreddit"`
	Title        string `json:"title" yaml:"title"`
	Summary      string `json:"summary" yaml:"summary"`
	SourceURL    string `json:"source_url" yaml:"source_url"`
	Author       string `json:"author" yaml:"author"`
	Score        int    `json:"score" yaml:"score"`
	NumComments  int    `json:"num_comments" yaml:"num_comments"`
	PublishedAt  string `json:"published_at" yaml:"published_at"` // ISO-8601 UTC
	FetchedAt    string `json:"fetched_at" yaml:"fetched_at"`     // ISO-8601 UTC, shared by a run
}

// PostSnapshot is the persisted document of the feed pipeline.
type PostSnapshot struct {
	Subreddits []string `json:"subreddits" yaml:"subreddits"`
	Count      int      `json:"count" yaml:"count"`
	Items      []Post   `json:"items" yaml:"items"`
}

// HotspotSnapshot is the persisted document of the listing pipeline.
type HotspotSnapshot struct {
	UpdatedAt string    `json:"updated_at" yaml:"updated_at"`
	Count     int       `json:"count" yaml:"count"`
	Items     []Hotspot `json:"items" yaml:"items"`
	Digest    string    `json:"digest,omitempty" yaml:"digest,omitempty"`
}
