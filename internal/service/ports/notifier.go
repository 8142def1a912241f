package ports

import (
	"context"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
)

// BookingNotifier is a stub boundary: delivery lives in another system.
type BookingNotifier interface {
	NotifyApplicationReceived(ctx context.Context, b *domain.Booking, e *domain.Event)
	NotifyStatusChanged(ctx context.Context, b *domain.Booking, e *domain.Event)
}
