package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"reddit-hotspots/internal/model"
)

func TestDigestPromptCapsItems(t *testing.T) {
	items := make([]model.Hotspot, 20)
	for i := range items {
		items[i] = model.Hotspot{Title: "t", Subreddit: "golang", Score: i}
	}
	p := digestPrompt(items)
	require.Equal(t, 15, strings.Count(p, "- t (r/golang,"))
}

func TestSummarizeHotspots(t *testing.T) {
	var gotModel string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		var req struct {
			Model string `json:"model"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotModel = req.Model
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  Local models dominate.  "},"finish_reason":"stop"}]}`))
	}))
	defer srv.Close()

	c, err := NewOpenAI(Config{APIKey: "k", Model: "test-model", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	out, err := c.SummarizeHotspots(context.Background(), []model.Hotspot{{Title: "Llama", Subreddit: "LocalLLaMA", Score: 10}}, "")
	require.NoError(t, err)
	require.Equal(t, "Local models dominate.", out)
	require.Equal(t, "test-model", gotModel)

	out, err = c.SummarizeHotspots(context.Background(), nil, "")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestNewOpenAIRequiresModel(t *testing.T) {
	_, err := NewOpenAI(Config{APIKey: "k"})
	require.Error(t, err)
}
