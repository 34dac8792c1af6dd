package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"reddit-hotspots/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

// Summarizer writes a short digest for a ranked set of hotspots.
type Summarizer interface {
	SummarizeHotspots(ctx context.Context, items []model.Hotspot, language string) (string, error)
}

// OpenAIClient implements Summarizer using OpenAI Chat Completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAI(cfg Config) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("openai: model must be specified")
	}
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	return &OpenAIClient{client: c, model: cfg.Model}, nil
}

func (o *OpenAIClient) SummarizeHotspots(ctx context.Context, items []model.Hotspot, language string) (string, error) {
	if len(items) == 0 {
		return "", nil
	}
	ctx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	sys := fmt.Sprintf(`
		You write in %s. Summarize what these Reddit communities are discussing right now in two to four sentences.
		Plain text, no links, no lists.
		`, langOrDefault(language))
	out, err := o.create(ctx, sys, digestPrompt(items))
	if err != nil {
		slog.Error("openai: summarize hotspots error", "err", err)
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// digestPrompt lists the top items as "- title (r/sub, score)".
func digestPrompt(items []model.Hotspot) string {
	b := &strings.Builder{}
	b.WriteString("Hot posts (title, subreddit, score):\n")
	for i, it := range items {
		if i >= 15 {
			break
		}
		fmt.Fprintf(b, "- %s (r/%s, %d)\n", it.Title, it.Subreddit, it.Score)
	}
	return b.String()
}

func (o *OpenAIClient) create(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func langOrDefault(lang string) string {
	l := strings.TrimSpace(lang)
	if l == "" {
		return "English"
	}
	return l
}
