package ports

import (
	"context"
	"time"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Booking, error)
	ListByMusician(ctx context.Context, musicianID string) ([]*domain.Booking, error)
	// UpdateStatus writes the new status only when the row still holds the
	// expected current status, so racing writers lose with ErrBookingConflict.
	UpdateStatus(ctx context.Context, id string, current, target domain.BookingStatus, meta domain.TransitionMeta) error
	SweepStaleCancelRequests(ctx context.Context, olderThan time.Time) ([]*domain.Booking, error)
}
