package notification

import (
	"context"

	"github.com/wb-go/wbf/logger"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
)

// LogNotifier records booking events to the log. Delivery to email or push
// lives in a separate system; this keeps the boundary in place so services
// fire notifications without knowing the channel.
type LogNotifier struct {
	logger logger.Logger
}

func NewLogNotifier(logger logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyApplicationReceived(ctx context.Context, b *domain.Booking, e *domain.Event) {
	n.logger.Info("notify: application received",
		logger.String("booking_id", b.ID),
		logger.String("event_id", e.ID),
		logger.String("event_title", e.Title),
		logger.String("musician_id", b.MusicianID),
	)
}

func (n *LogNotifier) NotifyStatusChanged(ctx context.Context, b *domain.Booking, e *domain.Event) {
	n.logger.Info("notify: booking status changed",
		logger.String("booking_id", b.ID),
		logger.String("event_id", e.ID),
		logger.String("event_title", e.Title),
		logger.String("status", b.Status.String()),
	)
}
