package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
)

type cancelSweeper interface {
	SweepStaleCancelRequests(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error)
}

// Scheduler finalizes cancellation requests that the other party never acted
// on. A pending_cancel booking older than ttl moves to cancelled on the next
// tick, attributed to the system actor.
type Scheduler struct {
	bookingService cancelSweeper
	interval       time.Duration
	ttl            time.Duration
	logger         logger.Logger
}

func New(
	bookingService cancelSweeper,
	interval time.Duration,
	ttl time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		ttl:            ttl,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("cancel_request_ttl", s.ttl),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	swept, err := s.bookingService.SweepStaleCancelRequests(ctx, s.ttl)
	if err != nil {
		s.logger.Error("failed to sweep stale cancel requests",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range swept {
		s.logger.Info("stale cancel request finalized",
			logger.String("booking_id", b.ID),
			logger.String("event_id", b.EventID),
			logger.String("musician_id", b.MusicianID),
		)
	}
}
