package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/filter"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/handler/dto"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/service"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context, state filter.State) ([]*domain.EventSummary, error)
}

type BookingSvc interface {
	Apply(ctx context.Context, input service.ApplyInput) (*domain.Booking, error)
	Invite(ctx context.Context, input service.ApplyInput) (*domain.Booking, error)
	Select(ctx context.Context, bookingID string) (*domain.Booking, error)
	Confirm(ctx context.Context, bookingID string) (*domain.Booking, error)
	Complete(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error)
	RequestCancel(ctx context.Context, bookingID string, reason domain.CancellationReason, actor domain.Actor) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID string, reason domain.CancellationReason, actor domain.Actor) (*domain.Booking, error)
	ListByEvent(ctx context.Context, eventID string, state filter.State) ([]*domain.Booking, error)
	ListByMusician(ctx context.Context, musicianID string, state filter.State) ([]*domain.Booking, error)
}

type MusicianSvc interface {
	Create(ctx context.Context, input domain.CreateMusicianInput) (*domain.Musician, error)
	GetByID(ctx context.Context, id string) (*domain.Musician, error)
	List(ctx context.Context, state filter.State) ([]*domain.Musician, error)
}

type VenueSvc interface {
	Create(ctx context.Context, input domain.CreateVenueInput) (*domain.Venue, error)
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
	List(ctx context.Context) ([]*domain.Venue, error)
}

type Handler struct {
	eventService    EventSvc
	bookingService  BookingSvc
	musicianService MusicianSvc
	venueService    VenueSvc
}

func NewHandler(eventService EventSvc, bookingService BookingSvc, musicianService MusicianSvc, venueService VenueSvc) *Handler {
	return &Handler{
		eventService:    eventService,
		bookingService:  bookingService,
		musicianService: musicianService,
		venueService:    venueService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	eventDate, err := parseDate(req.EventDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid event_date format, expected RFC3339 or YYYY-MM-DD",
		})
		return
	}

	budgetRate, err := parseRate(req.BudgetRate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid budget_rate"})
		return
	}

	input := domain.CreateEventInput{
		VenueID:     req.VenueID,
		Title:       req.Title,
		Description: req.Description,
		City:        req.City,
		Genre:       req.Genre,
		EventDate:   eventDate,
		BudgetRate:  budgetRate,
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	state := stateFromQuery(c, "city", "genre", "venue")

	summaries, err := h.eventService.List(c.Request.Context(), state)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp = append(resp, dto.ToEventSummaryResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

// Bookings

func (h *Handler) ApplyToEvent(c *ginext.Context) {
	h.createBooking(c, h.bookingService.Apply)
}

func (h *Handler) InviteToEvent(c *ginext.Context) {
	h.createBooking(c, h.bookingService.Invite)
}

func (h *Handler) createBooking(c *ginext.Context, create func(context.Context, service.ApplyInput) (*domain.Booking, error)) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rate, err := parseRate(req.ProposedRate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid proposed_rate"})
		return
	}

	booking, err := create(c.Request.Context(), service.ApplyInput{
		EventID:      eventID,
		MusicianID:   req.MusicianID,
		ProposedRate: rate,
		Pitch:        req.Pitch,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) SelectBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Select(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ConfirmBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Confirm(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req dto.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Complete(c.Request.Context(), id, domain.Actor(req.Actor))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RequestBookingCancel(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req dto.CancelRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.RequestCancel(
		c.Request.Context(), id,
		domain.CancellationReason(req.Reason), domain.Actor(req.Actor),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Cancel(
		c.Request.Context(), id,
		domain.CancellationReason(req.Reason), domain.Actor(req.Actor),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetEventBookings(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	state := stateFromQuery(c, "event", "musician", "venue")

	bookings, err := h.bookingService.ListByEvent(c.Request.Context(), eventID, state)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) GetMusicianBookings(c *ginext.Context) {
	musicianID := c.Param("id")
	if _, err := uuid.Parse(musicianID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid musician id"})
		return
	}

	state := stateFromQuery(c, "event", "musician", "venue")

	bookings, err := h.bookingService.ListByMusician(c.Request.Context(), musicianID, state)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

// Musicians

func (h *Handler) CreateMusician(c *ginext.Context) {
	var req dto.CreateMusicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rate, err := parseRate(req.Rate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid rate"})
		return
	}

	musician, err := h.musicianService.Create(c.Request.Context(), domain.CreateMusicianInput{
		Name:  req.Name,
		Genre: req.Genre,
		City:  req.City,
		Bio:   req.Bio,
		Rate:  rate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMusicianResponse(musician))
}

func (h *Handler) GetMusician(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid musician id"})
		return
	}

	musician, err := h.musicianService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMusicianResponse(musician))
}

func (h *Handler) ListMusicians(c *ginext.Context) {
	state := stateFromQuery(c, "genre", "city")

	musicians, err := h.musicianService.List(c.Request.Context(), state)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MusicianResponse, 0, len(musicians))
	for _, m := range musicians {
		resp = append(resp, dto.ToMusicianResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

// Venues

func (h *Handler) CreateVenue(c *ginext.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	venue, err := h.venueService.Create(c.Request.Context(), domain.CreateVenueInput{
		Name:     req.Name,
		City:     req.City,
		Capacity: req.Capacity,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVenueResponse(venue))
}

func (h *Handler) GetVenue(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid venue id"})
		return
	}

	venue, err := h.venueService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVenueResponse(venue))
}

func (h *Handler) ListVenues(c *ginext.Context) {
	venues, err := h.venueService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.VenueResponse, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrMusicianNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyApplied),
		errors.Is(err, domain.ErrBookingConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func toBookingResponses(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func bookingID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return "", false
	}
	return id, true
}

// stateFromQuery builds a filter state from the request query. Only the
// facet keys named by the endpoint are read; anything else is ignored.
func stateFromQuery(c *ginext.Context, facetKeys ...string) filter.State {
	state := filter.State{
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}

	for _, key := range facetKeys {
		if v := c.Query(key); v != "" {
			if state.Facets == nil {
				state.Facets = make(map[string]string)
			}
			state.Facets[key] = v
		}
	}

	return state
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse(filter.DateLayout, s)
}

func parseRate(s string) (decimal.NullDecimal, error) {
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}
