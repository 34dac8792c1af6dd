package cmd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"reddit-hotspots/internal/config"
	"reddit-hotspots/internal/redditapi"
	"reddit-hotspots/worker"
)

func defaultHotspotsConfig() config.HotspotsConfig {
	var c config.Config
	c.FillDefaults()
	return c.Hotspots
}

func TestHotspotsConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("REDDIT_SUBREDDITS", "")
	t.Setenv("REDDIT_LIMIT", "")
	t.Setenv("REDDIT_USER_AGENT", "")

	hc := hotspotsConfigFromEnv(defaultHotspotsConfig())
	require.Equal(t, []string{"MachineLearning", "artificial", "LocalLLaMA", "AI_Agents"}, hc.Subreddits)
	require.Equal(t, 20, hc.Limit)
	require.Equal(t, "se-in-ai-area/0.1 (by github-actions)", hc.UserAgent)
}

func TestHotspotsConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("REDDIT_SUBREDDITS", "golang, rust")
	t.Setenv("REDDIT_LIMIT", "15")
	t.Setenv("REDDIT_USER_AGENT", "custom-agent/1.0")

	hc := hotspotsConfigFromEnv(defaultHotspotsConfig())
	require.Equal(t, []string{"golang", "rust"}, hc.Subreddits)
	require.Equal(t, 15, hc.Limit)
	require.Equal(t, "custom-agent/1.0", hc.UserAgent)
}

func TestHotspotsUserAgentOverrideIsSent(t *testing.T) {
	t.Setenv("REDDIT_USER_AGENT", "custom-agent/1.0")
	gotUA := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA <- r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`{"data":{"children":[{"data":{"id":"x","title":"t","score":1}}]}}`))
	}))
	defer srv.Close()

	hc := hotspotsConfigFromEnv(defaultHotspotsConfig())
	out := filepath.Join(t.TempDir(), "data", "hotspots.json")
	w := &worker.HotspotCollector{
		Client:     redditapi.NewClient(srv.URL, hc.UserAgent),
		Subreddits: []string{"golang"},
		Limit:      hc.Limit,
		Output:     out,
	}
	var buf bytes.Buffer
	require.NoError(t, runHotspots(context.Background(), w, &buf))
	require.Equal(t, "custom-agent/1.0", <-gotUA)
	require.Equal(t, "updated "+out+" with 1 hotspots from 1 subreddits\n", buf.String())
	require.FileExists(t, out)
}

func TestRunHotspotsStatusOutcomes(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"forbidden is benign", http.StatusForbidden, false},
		{"server error is fatal", http.StatusInternalServerError, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			out := filepath.Join(t.TempDir(), "hotspots.json")
			w := &worker.HotspotCollector{
				Client:     redditapi.NewClient(srv.URL, "test"),
				Subreddits: []string{"MachineLearning"},
				Limit:      5,
				Output:     out,
			}
			err := runHotspots(context.Background(), w, &bytes.Buffer{})
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			_, statErr := os.Stat(out)
			require.True(t, os.IsNotExist(statErr), "snapshot must not be written")
		})
	}
}
