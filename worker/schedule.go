package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// newScheduler returns a cron runner that never starts a job while its previous tick is still running.
func newScheduler() *cron.Cron {
	return cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
}

// runScheduled runs job once immediately and then on every tick of spec until ctx is done.
// spec accepts standard 5-field cron expressions and descriptors such as "@every 30m".
// Ticks that fire while a run is in progress are skipped, so runs never overlap.
func runScheduled(ctx context.Context, name, spec string, job func()) error {
	c := newScheduler()
	if _, err := c.AddFunc(spec, job); err != nil {
		return fmt.Errorf("%s: invalid schedule %q: %w", name, spec, err)
	}
	slog.Info(name+": scheduled", "schedule", spec)

	job()

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
