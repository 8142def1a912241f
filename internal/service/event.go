package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/filter"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/service/ports"
)

const defaultStatusTTL = 5 * time.Minute

type EventService struct {
	repo        ports.EventRepo
	bookingRepo ports.BookingRepo
	venueRepo   ports.VenueRepo
	cache       ports.StatusCache
	logger      logger.Logger
	statusTTL   time.Duration
}

func NewEventService(
	repo ports.EventRepo,
	bookingRepo ports.BookingRepo,
	venueRepo ports.VenueRepo,
	cache ports.StatusCache,
	logger logger.Logger,
	statusTTL time.Duration,
) *EventService {
	if statusTTL <= 0 {
		statusTTL = defaultStatusTTL
	}
	return &EventService{
		repo:        repo,
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		cache:       cache,
		logger:      logger,
		statusTTL:   statusTTL,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event_date is required", domain.ErrValidation)
	}

	if _, err := s.venueRepo.GetByID(ctx, input.VenueID); err != nil {
		return nil, fmt.Errorf("check venue: %w", err)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:          uuid.New().String(),
		VenueID:     input.VenueID,
		Title:       input.Title,
		Description: input.Description,
		City:        input.City,
		Genre:       input.Genre,
		EventDate:   input.EventDate,
		Status:      domain.EventStatusOpen,
		BudgetRate:  input.BudgetRate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// List returns event summaries with their derived statuses, narrowed by the
// filter state. The status filter compares against the derived status, so
// the full booking set is loaded once and every summary derives from it
// (derivation scopes to its own event id).
func (s *EventService) List(ctx context.Context, state filter.State) ([]*domain.EventSummary, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	summaries := make([]*domain.EventSummary, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, &domain.EventSummary{
			Event:         *e,
			DerivedStatus: domain.DeriveEventStatus(e, bookings),
		})
	}

	return filter.Apply(summaries, eventSummarySpec, state), nil
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByEvent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	details := &domain.EventDetails{
		Event:         *event,
		DerivedStatus: s.derivedStatus(ctx, event, bookings),
		Bookings:      make([]domain.Booking, len(bookings)),
	}
	for i, b := range bookings {
		details.Bookings[i] = *b
	}

	return details, nil
}

// derivedStatus consults the cache first; derivation itself is pure, so a
// cache failure only costs the recomputation.
func (s *EventService) derivedStatus(ctx context.Context, event *domain.Event, bookings []*domain.Booking) domain.EventStatus {
	cached, ok, err := s.cache.Get(ctx, event.ID)
	if err != nil {
		s.logger.Error("status cache get failed",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
	}
	if ok {
		return cached
	}

	derived := domain.DeriveEventStatus(event, bookings)

	if err = s.cache.Set(ctx, event.ID, derived, s.statusTTL); err != nil {
		s.logger.Error("status cache set failed",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
	}

	return derived
}
