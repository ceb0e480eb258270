// internal/jobs/digest.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/launchpad-backend/internal/metrics"
	"github.com/javajoker/launchpad-backend/internal/models"
)

// StatsSource computes the moderation histogram.
type StatsSource interface {
	GetStats(ctx context.Context) (models.StatusCounts, error)
}

// ModerationDigest periodically logs the moderation backlog and publishes it
// as gauges.
type ModerationDigest struct {
	source  StatsSource
	timeout time.Duration
	cron    *cron.Cron
}

func NewModerationDigest(source StatsSource, timeout time.Duration) *ModerationDigest {
	return &ModerationDigest{
		source:  source,
		timeout: timeout,
		cron:    cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
}

// Start schedules the digest. An empty schedule leaves it disabled.
func (d *ModerationDigest) Start(schedule string) error {
	if schedule == "" {
		logrus.Info("Moderation digest disabled")
		return nil
	}

	if _, err := d.cron.AddFunc(schedule, func() { d.Run(context.Background()) }); err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", schedule, err)
	}

	d.cron.Start()
	logrus.WithField("schedule", schedule).Info("Moderation digest scheduled")
	return nil
}

// Stop waits for a running digest to finish or ctx to expire.
func (d *ModerationDigest) Stop(ctx context.Context) {
	select {
	case <-d.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Run computes one digest.
func (d *ModerationDigest) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	counts, err := d.source.GetStats(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Moderation digest failed")
		return
	}

	metrics.SetStatusCounts(counts)
	logrus.WithFields(logrus.Fields{
		"accepted":     counts.Accepted,
		"pending":      counts.Pending,
		"rejected":     counts.Rejected,
		"not_reviewed": counts.NotReviewed,
		"total":        counts.Total(),
	}).Info("Moderation digest")
}
