package cmd

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"reddit-hotspots/internal/config"
)

func newHotFlagsCmd(t *testing.T) *cobra.Command {
	t.Helper()
	c := &cobra.Command{Use: "hot"}
	c.Flags().AddFlagSet(hotCmd.Flags())
	return c
}

func TestFeedCollectorForUsesConfigWhenFlagsUnset(t *testing.T) {
	var cfg config.Config
	cfg.Feed.Subreddits = []string{" golang ", ""}
	cfg.Feed.Limit = 7
	cfg.FillDefaults()

	w, err := feedCollectorFor(newHotFlagsCmd(t), cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"golang"}, w.Subreddits)
	require.Equal(t, 7, w.Limit)
	require.Equal(t, 200*time.Millisecond, w.Sleep)
	require.Equal(t, "data/reddit_hot.json", w.Output)
}

func TestFeedCollectorForFlagsWin(t *testing.T) {
	var cfg config.Config
	cfg.FillDefaults()

	c := newHotFlagsCmd(t)
	require.NoError(t, c.Flags().Parse([]string{"--subreddits", "a, b", "--limit", "3", "--sleep", "1s", "--output", "out/x.yaml"}))
	t.Cleanup(func() {
		for _, name := range []string{"subreddits", "limit", "sleep", "output"} {
			f := hotCmd.Flags().Lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})

	w, err := feedCollectorFor(c, cfg)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, w.Subreddits)
	require.Equal(t, 3, w.Limit)
	require.Equal(t, time.Second, w.Sleep)
	require.Equal(t, "out/x.yaml", w.Output)
}

func TestFeedCollectorForRejectsBadSleep(t *testing.T) {
	var cfg config.Config
	cfg.Feed.Sleep = "soon"
	cfg.FillDefaults()
	_, err := feedCollectorFor(newHotFlagsCmd(t), cfg)
	require.Error(t, err)
}
