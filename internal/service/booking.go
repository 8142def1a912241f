package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/filter"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/service/ports"
)

type BookingService struct {
	bookingRepo  ports.BookingRepo
	eventRepo    ports.EventRepo
	musicianRepo ports.MusicianRepo
	cache        ports.StatusCache
	notifier     ports.BookingNotifier
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	musicianRepo ports.MusicianRepo,
	cache ports.StatusCache,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		eventRepo:    eventRepo,
		musicianRepo: musicianRepo,
		cache:        cache,
		notifier:     notifier,
		logger:       logger,
	}
}

type ApplyInput struct {
	EventID      string
	MusicianID   string
	ProposedRate decimal.NullDecimal
	Pitch        string
}

// Apply creates a booking in the applied state: a musician's claim on an
// event. A venue invitation goes through Invite but produces the identical
// record.
func (s *BookingService) Apply(ctx context.Context, input ApplyInput) (*domain.Booking, error) {
	return s.createBooking(ctx, input, false)
}

// Invite is the venue-initiated path: same applied booking, but the event's
// stored status flips open -> invited so an event with no responses yet
// still shows as invited.
func (s *BookingService) Invite(ctx context.Context, input ApplyInput) (*domain.Booking, error) {
	return s.createBooking(ctx, input, true)
}

func (s *BookingService) createBooking(ctx context.Context, input ApplyInput, invited bool) (*domain.Booking, error) {
	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if _, err = s.musicianRepo.GetByID(ctx, input.MusicianID); err != nil {
		return nil, fmt.Errorf("check musician: %w", err)
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:           uuid.New().String(),
		EventID:      event.ID,
		MusicianID:   input.MusicianID,
		VenueID:      event.VenueID,
		Status:       domain.BookingStatusApplied,
		ProposedRate: input.ProposedRate,
		Pitch:        input.Pitch,
		AppliedAt:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if invited && event.Status == domain.EventStatusOpen {
		if err = s.eventRepo.UpdateStoredStatus(ctx, event.ID, domain.EventStatusInvited); err != nil {
			s.logger.Error("failed to mark event invited",
				logger.String("event_id", event.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	s.invalidateStatus(ctx, event.ID)

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", event.ID),
		logger.String("musician_id", input.MusicianID),
	)

	go s.notifier.NotifyApplicationReceived(context.WithoutCancel(ctx), booking, event)

	return booking, nil
}

// Select marks a musician's application as the venue's pick.
func (s *BookingService) Select(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, domain.BookingStatusSelected, domain.TransitionMeta{At: time.Now().UTC()})
}

func (s *BookingService) Confirm(ctx context.Context, bookingID string) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, domain.BookingStatusConfirmed, domain.TransitionMeta{At: time.Now().UTC()})
}

func (s *BookingService) Complete(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error) {
	if !actor.IsValid() {
		return nil, fmt.Errorf("%w: unknown actor %q", domain.ErrValidation, actor)
	}
	return s.transition(ctx, bookingID, domain.BookingStatusCompleted, domain.TransitionMeta{
		At:    time.Now().UTC(),
		Actor: &actor,
	})
}

// RequestCancel moves a booking into the pending_cancel hold: either party
// may ask, and the booking stays recoverable until someone finalizes.
func (s *BookingService) RequestCancel(ctx context.Context, bookingID string, reason domain.CancellationReason, actor domain.Actor) (*domain.Booking, error) {
	if !reason.IsValid() {
		return nil, fmt.Errorf("%w: unknown cancellation reason %q", domain.ErrValidation, reason)
	}
	if !actor.IsValid() {
		return nil, fmt.Errorf("%w: unknown actor %q", domain.ErrValidation, actor)
	}
	return s.transition(ctx, bookingID, domain.BookingStatusPendingCancel, domain.TransitionMeta{
		At:     time.Now().UTC(),
		Actor:  &actor,
		Reason: &reason,
	})
}

// Cancel finalizes a cancellation. The reason is optional when the booking
// already passed through pending_cancel and carries one.
func (s *BookingService) Cancel(ctx context.Context, bookingID string, reason domain.CancellationReason, actor domain.Actor) (*domain.Booking, error) {
	if !actor.IsValid() {
		return nil, fmt.Errorf("%w: unknown actor %q", domain.ErrValidation, actor)
	}
	meta := domain.TransitionMeta{At: time.Now().UTC(), Actor: &actor}
	if reason != "" {
		if !reason.IsValid() {
			return nil, fmt.Errorf("%w: unknown cancellation reason %q", domain.ErrValidation, reason)
		}
		meta.Reason = &reason
	}
	return s.transition(ctx, bookingID, domain.BookingStatusCancelled, meta)
}

func (s *BookingService) transition(ctx context.Context, bookingID string, target domain.BookingStatus, meta domain.TransitionMeta) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	// The lifecycle check happens before any write is attempted. An illegal
	// move is a client error, not a storage failure.
	if !b.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s, allowed: %v",
			domain.ErrInvalidTransition, b.Status, target, b.Status.NextStatuses())
	}

	if err = s.bookingRepo.UpdateStatus(ctx, bookingID, b.Status, target, meta); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	updated, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("reload booking: %w", err)
	}

	s.invalidateStatus(ctx, b.EventID)

	s.logger.Info("booking status changed",
		logger.String("booking_id", bookingID),
		logger.String("from", b.Status.String()),
		logger.String("to", target.String()),
	)

	event, err := s.eventRepo.GetByID(ctx, b.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", b.EventID),
			logger.String("error", err.Error()),
		)
		return updated, nil
	}
	go s.notifier.NotifyStatusChanged(context.WithoutCancel(ctx), updated, event)

	return updated, nil
}

// SweepStaleCancelRequests finalizes pending_cancel bookings whose request
// is older than ttl. The scheduler calls this on an interval; the rows move
// along the same pending_cancel -> cancelled edge a manual finalize uses.
func (s *BookingService) SweepStaleCancelRequests(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error) {
	cutoff := time.Now().UTC().Add(-ttl)

	swept, err := s.bookingRepo.SweepStaleCancelRequests(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("sweep stale cancel requests: %w", err)
	}

	for _, b := range swept {
		s.invalidateStatus(ctx, b.EventID)
	}

	if len(swept) > 0 {
		s.logger.Info("stale cancel requests finalized",
			logger.Int("count", len(swept)),
		)
	}

	return swept, nil
}

func (s *BookingService) ListByEvent(ctx context.Context, eventID string, state filter.State) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by event: %w", err)
	}
	return filter.Apply(bookings, bookingSpec, state), nil
}

func (s *BookingService) ListByMusician(ctx context.Context, musicianID string, state filter.State) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.ListByMusician(ctx, musicianID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by musician: %w", err)
	}
	return filter.Apply(bookings, bookingSpec, state), nil
}

func (s *BookingService) invalidateStatus(ctx context.Context, eventID string) {
	if err := s.cache.Invalidate(ctx, eventID); err != nil {
		s.logger.Error("failed to invalidate status cache",
			logger.String("event_id", eventID),
			logger.String("error", err.Error()),
		)
	}
}
