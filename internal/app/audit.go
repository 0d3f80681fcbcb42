package app

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/inline-bot-layout/pkg/config"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
)

const auditTimeout = 5 * time.Second

// startAudit periodically logs registry and list sizes. Registered items
// that are no longer placed in the list point at a missing Destroy.
func startAudit(cfg *config.Config, log logger.Logger, diag *diagnostics) (gocron.Scheduler, error) {
	if cfg.Audit.Interval <= 0 {
		log.Info("Layout audit disabled")
		return nil, nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create audit scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(cfg.Audit.Interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
			defer cancel()
			auditLayout(ctx, log, diag)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule layout audit: %w", err)
	}

	scheduler.Start()
	log.Info("Layout audit scheduled", "interval", cfg.Audit.Interval.String())
	return scheduler, nil
}

func auditLayout(ctx context.Context, log logger.Logger, diag *diagnostics) {
	snap, err := diag.snapshot(ctx)
	if err != nil {
		log.Warn("Layout audit skipped", "Error", err)
		return
	}

	log.Info("Layout audit",
		"documents", snap.Registry.Documents,
		"registered_items", snap.Registry.Items,
		"visible_items", snap.List.Items,
		"frames", snap.Frames,
	)
	if snap.Registry.Detached > 0 {
		log.Warn("Registry holds detached items", "count", snap.Registry.Detached)
	}
}
