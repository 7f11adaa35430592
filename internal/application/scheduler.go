package application

import (
	"context"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/davarch/hw-watcher/internal/domain"
	"go.uber.org/zap"
)

type Scheduler struct {
	log       *zap.Logger
	use       *PollUseCase
	pause     backoff.BackOff
	pauseFile string
}

// NewScheduler builds the poll loop. pause yields the delay after every
// iteration; backoff.Stop ends the loop.
func NewScheduler(l *zap.Logger, u *PollUseCase, pause backoff.BackOff, pauseFile string) *Scheduler {
	return &Scheduler{log: l, use: u, pause: pause, pauseFile: pauseFile}
}

func (s *Scheduler) Run(ctx context.Context) {
	s.pause.Reset()

	for {
		s.tick(ctx)

		d := s.pause.NextBackOff()
		if d == backoff.Stop {
			return
		}

		s.log.Debug("sleeping", zap.Duration("for", d))
		select {
		case <-ctx.Done():
			return
		case <-time.After(d):
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.isPaused() {
		s.log.Debug("paused: skipping poll")
		return
	}

	err := s.use.PollOnce(ctx)
	if err == nil || ctx.Err() != nil {
		return
	}

	switch domain.Classify(err) {
	case domain.LogOnly:
		s.log.Warn("notification not delivered", zap.Error(err))
	default:
		s.log.Error("poll failed", zap.Error(err))
		if rerr := s.use.ReportFailure(ctx, err); rerr != nil {
			s.log.Warn("failure report not delivered", zap.Error(rerr))
		}
	}
}

func (s *Scheduler) isPaused() bool {
	if s.pauseFile == "" {
		return false
	}
	_, err := os.Stat(s.pauseFile)
	return err == nil
}
