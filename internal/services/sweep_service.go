package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"taskdesk.com/taskdesk/internal/locking"
	model "taskdesk.com/taskdesk/internal/models"
)

// expiredTaskStore is the slice of the task repository the sweep needs.
type expiredTaskStore interface {
	ListExpired(ctx context.Context, now time.Time) ([]model.Task, error)
	MarkFailed(ctx context.Context, taskID string) error
}

// SweepService periodically marks overdue tasks as TEST_FAILED. It is
// the only writer allowed to fail a task after its deadline; the status
// filter in the expiry query makes each cycle idempotent.
type SweepService struct {
	logger   zerolog.Logger
	tasks    expiredTaskStore
	lock     locking.SweepLock
	interval time.Duration
}

// NewSweepService builds the sweep. lock may be nil for single-instance
// deployments; with a lock only the holder runs a cycle per tick.
func NewSweepService(
	logger zerolog.Logger,
	tasks expiredTaskStore,
	lock locking.SweepLock,
	interval time.Duration,
) *SweepService {
	return &SweepService{
		logger:   logger,
		tasks:    tasks,
		lock:     lock,
		interval: interval,
	}
}

// Run ticks until ctx is cancelled. Faults never escape: a failed cycle
// is logged and retried on the next tick.
func (s *SweepService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().
		Dur("interval", s.interval).
		Msg("expiry sweep started")

	for {
		select {
		case <-ticker.C:
			s.tick(ctx)
		case <-ctx.Done():
			s.logger.Info().Msg("expiry sweep stopped")
			return
		}
	}
}

func (s *SweepService) tick(ctx context.Context) {
	if s.lock != nil {
		if err := s.lock.Acquire(ctx); err != nil {
			if errors.Is(err, locking.ErrLockHeld) {
				s.logger.Debug().Msg("sweep lock held elsewhere, skipping tick")
				return
			}
			s.logger.Error().Err(err).Msg("failed to acquire sweep lock")
			return
		}
		defer func() {
			if err := s.lock.Release(ctx); err != nil {
				s.logger.Error().Err(err).Msg("failed to release sweep lock")
			}
		}()
	}

	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Error().Err(err).Msg("sweep cycle failed")
	}
}

// RunOnce executes a single cycle and returns the number of tasks it
// failed. Mutations are row-by-row; a fault aborts the cycle and leaves
// stragglers for the next one.
func (s *SweepService) RunOnce(ctx context.Context) (int, error) {
	now := time.Now().UTC()

	expired, err := s.tasks.ListExpired(ctx, now)
	if err != nil {
		return 0, err
	}

	if len(expired) == 0 {
		s.logger.Debug().Msg("no expired tasks to fail")
		return 0, nil
	}

	failed := 0
	for _, task := range expired {
		if err := s.tasks.MarkFailed(ctx, task.ID); err != nil {
			return failed, err
		}
		failed++
	}

	s.logger.Info().
		Int("count", failed).
		Msg("marked expired tasks as failed")
	return failed, nil
}
