package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/filter"
	"github.com/jamesychung/livelocalgadget3-sub004/internal/handler/dto"
	hmocks "github.com/jamesychung/livelocalgadget3-sub004/internal/handler/mocks"
)

type svcMocks struct {
	event    *hmocks.MockEventSvc
	booking  *hmocks.MockBookingSvc
	musician *hmocks.MockMusicianSvc
	venue    *hmocks.MockVenueSvc
}

func setupRouter(t *testing.T) (svcMocks, http.Handler) {
	t.Helper()
	m := svcMocks{
		event:    hmocks.NewMockEventSvc(t),
		booking:  hmocks.NewMockBookingSvc(t),
		musician: hmocks.NewMockMusicianSvc(t),
		venue:    hmocks.NewMockVenueSvc(t),
	}

	h := NewHandler(m.event, m.booking, m.musician, m.venue)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/bookings", h.GetEventBookings)
		api.POST("/events/:id/apply", h.ApplyToEvent)
		api.POST("/events/:id/invite", h.InviteToEvent)
		api.POST("/bookings/:id/select", h.SelectBooking)
		api.POST("/bookings/:id/confirm", h.ConfirmBooking)
		api.POST("/bookings/:id/complete", h.CompleteBooking)
		api.POST("/bookings/:id/cancel-request", h.RequestBookingCancel)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/musicians", h.CreateMusician)
		api.GET("/musicians", h.ListMusicians)
		api.GET("/musicians/:id", h.GetMusician)
		api.GET("/musicians/:id/bookings", h.GetMusicianBookings)
		api.POST("/venues", h.CreateVenue)
		api.GET("/venues", h.ListVenues)
		api.GET("/venues/:id", h.GetVenue)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	venueID := uuid.New().String()
	event := &domain.Event{
		ID:        uuid.New().String(),
		VenueID:   venueID,
		Title:     "Friday Jazz Night",
		EventDate: time.Now().Add(30 * 24 * time.Hour),
		Status:    domain.EventStatusOpen,
		CreatedAt: time.Now(),
	}

	m.event.EXPECT().Create(mock.Anything, mock.Anything).Return(event, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		VenueID:   venueID,
		Title:     "Friday Jazz Night",
		EventDate: event.EventDate.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Friday Jazz Night", resp.Title)
}

func TestHandler_CreateEvent_DateOnly(t *testing.T) {
	m, r := setupRouter(t)

	venueID := uuid.New().String()
	m.event.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, input domain.CreateEventInput) {
			assert.Equal(t, 2025, input.EventDate.Year())
		}).
		Return(&domain.Event{ID: uuid.New().String()}, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		VenueID:   venueID,
		Title:     "Summer Gig",
		EventDate: "2025-06-20",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", dto.CreateEventRequest{
		VenueID:   uuid.New().String(),
		Title:     "X",
		EventDate: "not-a-date",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_MissingTitle(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events", map[string]string{
		"venue_id": uuid.New().String(),
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_PassesFilterState(t *testing.T) {
	m, r := setupRouter(t)

	summaries := []*domain.EventSummary{
		{Event: domain.Event{ID: "e1", Title: "Jazz Night"}, DerivedStatus: domain.EventStatusConfirmed},
	}

	m.event.EXPECT().
		List(mock.Anything, filter.State{
			DateFrom: "2024-01-01",
			DateTo:   "2024-02-01",
			Status:   "confirmed",
			Search:   "jazz",
			Facets:   map[string]string{"city": "Austin"},
		}).
		Return(summaries, nil)

	w := doJSON(t, r, http.MethodGet,
		"/api/events?date_from=2024-01-01&date_to=2024-02-01&status=confirmed&search=jazz&city=Austin", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "confirmed", resp[0].DerivedStatus)
	assert.Equal(t, "Confirmed", resp[0].StatusDisplay.Label)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	details := &domain.EventDetails{
		Event:         domain.Event{ID: eventID, Title: "Jazz Night", EventDate: time.Now(), CreatedAt: time.Now()},
		DerivedStatus: domain.EventStatusApplicationReceived,
		Bookings: []domain.Booking{
			{ID: "b1", EventID: eventID, Status: domain.BookingStatusApplied, AppliedAt: time.Now()},
		},
	}

	m.event.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "application_received", resp.DerivedStatus)
	assert.Len(t, resp.Bookings, 1)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Bookings ---

func TestHandler_ApplyToEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	musicianID := uuid.New().String()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		EventID:    eventID,
		MusicianID: musicianID,
		Status:     domain.BookingStatusApplied,
		AppliedAt:  time.Now(),
	}

	m.booking.EXPECT().Apply(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/apply", dto.ApplyRequest{
		MusicianID:   musicianID,
		ProposedRate: "250.00",
		Pitch:        "jazz trio, two sets",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "applied", resp.Status)
}

func TestHandler_ApplyToEvent_InvalidRate(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+uuid.New().String()+"/apply", dto.ApplyRequest{
		MusicianID:   uuid.New().String(),
		ProposedRate: "lots",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApplyToEvent_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.booking.EXPECT().Apply(mock.Anything, mock.Anything).Return(nil, domain.ErrAlreadyApplied)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/apply", dto.ApplyRequest{
		MusicianID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_InviteToEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		EventID:   eventID,
		Status:    domain.BookingStatusApplied,
		AppliedAt: time.Now(),
	}

	m.booking.EXPECT().Invite(mock.Anything, mock.Anything).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/events/"+eventID+"/invite", dto.ApplyRequest{
		MusicianID: uuid.New().String(),
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_SelectBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{ID: bookingID, Status: domain.BookingStatusSelected, AppliedAt: time.Now()}

	m.booking.EXPECT().Select(mock.Anything, bookingID).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/select", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "selected", resp.Status)
}

func TestHandler_SelectBooking_InvalidTransition(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().Select(mock.Anything, bookingID).Return(nil, domain.ErrInvalidTransition)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/select", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ConfirmBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{ID: bookingID, Status: domain.BookingStatusConfirmed, AppliedAt: time.Now()}

	m.booking.EXPECT().Confirm(mock.Anything, bookingID).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/confirm", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CompleteBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{ID: bookingID, Status: domain.BookingStatusCompleted, AppliedAt: time.Now()}

	m.booking.EXPECT().Complete(mock.Anything, bookingID, domain.ActorVenue).Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/complete", dto.CompleteRequest{Actor: "venue"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CompleteBooking_MissingActor(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+uuid.New().String()+"/complete", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RequestBookingCancel_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{ID: bookingID, Status: domain.BookingStatusPendingCancel, AppliedAt: time.Now()}

	m.booking.EXPECT().
		RequestCancel(mock.Anything, bookingID, domain.ReasonScheduleConflict, domain.ActorMusician).
		Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel-request", dto.CancelRequestRequest{
		Reason: "schedule_conflict",
		Actor:  "musician",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending_cancel", resp.Status)
}

func TestHandler_CancelBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	booking := &domain.Booking{ID: bookingID, Status: domain.BookingStatusCancelled, AppliedAt: time.Now()}

	m.booking.EXPECT().
		Cancel(mock.Anything, bookingID, domain.CancellationReason(""), domain.ActorVenue).
		Return(booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", dto.CancelRequest{Actor: "venue"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CancelBooking_UnknownActor(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	m.booking.EXPECT().
		Cancel(mock.Anything, bookingID, domain.CancellationReason(""), domain.Actor("robot")).
		Return(nil, domain.ErrValidation)

	w := doJSON(t, r, http.MethodPost, "/api/bookings/"+bookingID+"/cancel", dto.CancelRequest{Actor: "robot"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEventBookings_Success(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	bookings := []*domain.Booking{
		{ID: "b1", EventID: eventID, Status: domain.BookingStatusApplied, AppliedAt: time.Now()},
	}

	m.booking.EXPECT().ListByEvent(mock.Anything, eventID, filter.State{Status: "applied"}).Return(bookings, nil)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID+"/bookings?status=applied", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetMusicianBookings_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/musicians/bad-id/bookings", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Musicians ---

func TestHandler_CreateMusician_Success(t *testing.T) {
	m, r := setupRouter(t)

	musician := &domain.Musician{
		ID:        uuid.New().String(),
		Name:      "Alice Trio",
		CreatedAt: time.Now(),
	}
	m.musician.EXPECT().Create(mock.Anything, mock.Anything).Return(musician, nil)

	w := doJSON(t, r, http.MethodPost, "/api/musicians", dto.CreateMusicianRequest{
		Name: "Alice Trio",
		Rate: "180",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.MusicianResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice Trio", resp.Name)
}

func TestHandler_CreateMusician_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/musicians", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListMusicians_Success(t *testing.T) {
	m, r := setupRouter(t)

	musicians := []*domain.Musician{
		{ID: "m1", Name: "Alice Trio", CreatedAt: time.Now()},
	}
	m.musician.EXPECT().
		List(mock.Anything, filter.State{Facets: map[string]string{"genre": "jazz"}}).
		Return(musicians, nil)

	w := doJSON(t, r, http.MethodGet, "/api/musicians?genre=jazz", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.MusicianResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

// --- Venues ---

func TestHandler_CreateVenue_Success(t *testing.T) {
	m, r := setupRouter(t)

	venue := &domain.Venue{
		ID:        uuid.New().String(),
		Name:      "Blue Note",
		CreatedAt: time.Now(),
	}
	m.venue.EXPECT().Create(mock.Anything, mock.Anything).Return(venue, nil)

	w := doJSON(t, r, http.MethodPost, "/api/venues", dto.CreateVenueRequest{Name: "Blue Note"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_GetVenue_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	venueID := uuid.New().String()
	m.venue.EXPECT().GetByID(mock.Anything, venueID).Return(nil, domain.ErrVenueNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/venues/"+venueID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_HandleError_Internal(t *testing.T) {
	m, r := setupRouter(t)

	eventID := uuid.New().String()
	m.event.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/events/"+eventID, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
