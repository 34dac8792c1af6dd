package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// RedisConfig holds redis connection settings. The snapshot mirror is off unless Enabled.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// OpenAIConfig enables the optional run digest.
type OpenAIConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	BaseURL  string `mapstructure:"base_url"` // optional
	Language string `mapstructure:"language"`
}

// RedditConfig is shared by both readers.
type RedditConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout string `mapstructure:"timeout"` // duration string for the feed reader, e.g. "15s"
}

// FeedConfig controls the Atom feed pipeline.
type FeedConfig struct {
	Subreddits []string `mapstructure:"subreddits"`
	Limit      int      `mapstructure:"limit"`
	Output     string   `mapstructure:"output"`
	UserAgent  string   `mapstructure:"user_agent"`
	Sleep      string   `mapstructure:"sleep"`    // pause between subreddits, e.g. "200ms"
	Schedule   string   `mapstructure:"schedule"` // cron spec used by serve
}

// HotspotsConfig controls the JSON listing pipeline.
type HotspotsConfig struct {
	Subreddits []string `mapstructure:"subreddits"`
	Limit      int      `mapstructure:"limit"`
	Output     string   `mapstructure:"output"`
	UserAgent  string   `mapstructure:"user_agent"`
	Schedule   string   `mapstructure:"schedule"`
}

// Config is the top-level configuration structure.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Redis    RedisConfig    `mapstructure:"redis"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Reddit   RedditConfig   `mapstructure:"reddit"`
	Feed     FeedConfig     `mapstructure:"feed"`
	Hotspots HotspotsConfig `mapstructure:"hotspots"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Reddit.BaseURL == "" {
		c.Reddit.BaseURL = "https://www.reddit.com"
	}
	if c.Reddit.Timeout == "" {
		c.Reddit.Timeout = "15s"
	}

	if len(c.Feed.Subreddits) == 0 {
		c.Feed.Subreddits = []string{"MachineLearning", "LocalLLaMA", "programming", "learnprogramming", "OpenAI"}
	}
	if c.Feed.Limit <= 0 {
		c.Feed.Limit = 20
	}
	if c.Feed.Output == "" {
		c.Feed.Output = "data/reddit_hot.json"
	}
	if c.Feed.UserAgent == "" {
		c.Feed.UserAgent = "se-in-ai-area-bot/0.2 (+https://www.reddit.com/)"
	}
	if c.Feed.Sleep == "" {
		c.Feed.Sleep = "200ms"
	}
	if c.Feed.Schedule == "" {
		c.Feed.Schedule = "@every 1h"
	}

	if len(c.Hotspots.Subreddits) == 0 {
		c.Hotspots.Subreddits = []string{"MachineLearning", "artificial", "LocalLLaMA", "AI_Agents"}
	}
	if c.Hotspots.Limit <= 0 {
		c.Hotspots.Limit = 20
	}
	if c.Hotspots.Output == "" {
		c.Hotspots.Output = "data/hotspots.json"
	}
	if c.Hotspots.UserAgent == "" {
		c.Hotspots.UserAgent = "se-in-ai-area/0.1 (by github-actions)"
	}
	if c.Hotspots.Schedule == "" {
		c.Hotspots.Schedule = "0 */6 * * *"
	}
}
