// Package scheduler runs the periodic weekly materializer job.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/config"
	"github.com/SayedTahsin/Class-Reporting-Monitoring-System-sub000/internal/service"
)

// Scheduler owns the cron runner. The materializer job is chained with
// SkipIfStillRunning so a slow run is never overlapped by the next tick;
// idempotence makes a skipped tick harmless, the following run covers it.
type Scheduler struct {
	cron   *cron.Cron
	svc    service.MaterializerService
	cfg    *config.MaterializerConfig
	logger *zap.Logger
}

// New creates the Scheduler. Jobs are registered in Start.
func New(svc service.MaterializerService, cfg *config.MaterializerConfig, logger *zap.Logger) *Scheduler {
	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	return &Scheduler{
		cron:   c,
		svc:    svc,
		cfg:    cfg,
		logger: logger,
	}
}

// Start registers the materializer job and launches the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.Cron, s.runMaterializer)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("cron", s.cfg.Cron))
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) runMaterializer() {
	timeout := s.cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	result, err := s.svc.MaterializeWeek(ctx, time.Now())
	if err != nil {
		s.logger.Error("scheduled materializer run failed", zap.Error(err))
		return
	}
	s.logger.Info("scheduled materializer run finished",
		zap.Int("inserted", result.Inserted),
		zap.Int("skipped", result.Skipped),
	)
}
