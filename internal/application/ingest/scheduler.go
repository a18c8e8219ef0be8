package ingest

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type employeeSyncer interface {
	FetchAndStoreAll(ctx context.Context) (SyncResult, error)
}

type reportRunner interface {
	RunAndStore(ctx context.Context, settingID string) (ReportRunResult, error)
}

type SchedulerConfig struct {
	Interval time.Duration
	// SettingID selects the saved report to ingest; empty disables the
	// report stage.
	SettingID string
}

// Scheduler runs the ingestion pipeline on a fixed interval. Ticks are
// processed serially by a single goroutine, so a slow run delays the next
// tick instead of overlapping it.
type Scheduler struct {
	employees employeeSyncer
	reports   reportRunner
	cfg       SchedulerConfig
	logger    zerolog.Logger

	once sync.Once
}

func NewScheduler(employees employeeSyncer, reports reportRunner, cfg SchedulerConfig, logger zerolog.Logger) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Minute
	}
	return &Scheduler{
		employees: employees,
		reports:   reports,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	s.once.Do(func() {
		go s.loop(ctx)
	})
}

func (s *Scheduler) loop(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick(ctx)
		}
	}
}

// Tick runs one ingestion cycle. The stages are independent: a failed
// employee sync never blocks the report stage and vice versa, and there
// is no retry within a tick; the next tick is the retry.
func (s *Scheduler) Tick(ctx context.Context) {
	if result, err := s.employees.FetchAndStoreAll(ctx); err != nil {
		ingestStageFailuresTotal.WithLabelValues("employees").Inc()
		s.logger.Error().Err(err).Msg("employee sync failed")
	} else {
		s.logger.Info().Int64("upserted", result.Upserted).Msg("employee sync done")
	}

	if s.cfg.SettingID == "" {
		return
	}

	if result, err := s.reports.RunAndStore(ctx, s.cfg.SettingID); err != nil {
		ingestStageFailuresTotal.WithLabelValues("reports").Inc()
		s.logger.Error().Err(err).Str("setting_id", s.cfg.SettingID).Msg("report ingest failed")
	} else {
		s.logger.Info().
			Str("setting_id", s.cfg.SettingID).
			Str("shift_date", result.ShiftDate).
			Int64("inserted", result.Inserted).
			Bool("skipped", result.Skipped).
			Msg("report ingest done")
	}
}
