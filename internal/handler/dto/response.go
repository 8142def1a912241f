package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jamesychung/livelocalgadget3-sub004/internal/domain"
)

type VenueResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Capacity  int    `json:"capacity"`
	CreatedAt string `json:"created_at"`
}

type MusicianResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Genre     string  `json:"genre"`
	City      string  `json:"city"`
	Bio       string  `json:"bio"`
	Rate      *string `json:"rate,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type EventResponse struct {
	ID          string  `json:"id"`
	VenueID     string  `json:"venue_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	City        string  `json:"city"`
	Genre       string  `json:"genre"`
	EventDate   string  `json:"event_date"`
	BudgetRate  *string `json:"budget_rate,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

// StatusDisplayResponse carries the presentation metadata for a status so
// clients render labels and colors without hardcoding the enum.
type StatusDisplayResponse struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type EventSummaryResponse struct {
	Event         EventResponse         `json:"event"`
	DerivedStatus string                `json:"derived_status"`
	StatusDisplay StatusDisplayResponse `json:"status_display"`
}

type EventDetailsResponse struct {
	Event         EventResponse         `json:"event"`
	DerivedStatus string                `json:"derived_status"`
	StatusDisplay StatusDisplayResponse `json:"status_display"`
	Bookings      []BookingResponse     `json:"bookings"`
}

type BookingResponse struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	MusicianID string `json:"musician_id"`
	VenueID    string `json:"venue_id"`

	Status             string                `json:"status"`
	StatusDisplay      StatusDisplayResponse `json:"status_display"`
	ProposedRate       *string               `json:"proposed_rate,omitempty"`
	Pitch              string                `json:"pitch,omitempty"`
	CancellationReason *string               `json:"cancellation_reason,omitempty"`
	CancelledBy        *string               `json:"cancelled_by,omitempty"`
	CompletedBy        *string               `json:"completed_by,omitempty"`

	AppliedAt         string  `json:"applied_at"`
	SelectedAt        *string `json:"selected_at,omitempty"`
	ConfirmedAt       *string `json:"confirmed_at,omitempty"`
	CompletedAt       *string `json:"completed_at,omitempty"`
	CancelRequestedAt *string `json:"cancel_requested_at,omitempty"`
	CancelledAt       *string `json:"cancelled_at,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToVenueResponse(v *domain.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		City:      v.City,
		Capacity:  v.Capacity,
		CreatedAt: v.CreatedAt.Format(time.RFC3339),
	}
}

func ToMusicianResponse(m *domain.Musician) MusicianResponse {
	return MusicianResponse{
		ID:        m.ID,
		Name:      m.Name,
		Genre:     m.Genre,
		City:      m.City,
		Bio:       m.Bio,
		Rate:      decimalString(m.Rate),
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		VenueID:     e.VenueID,
		Title:       e.Title,
		Description: e.Description,
		City:        e.City,
		Genre:       e.Genre,
		EventDate:   e.EventDate.Format(time.RFC3339),
		BudgetRate:  decimalString(e.BudgetRate),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventSummaryResponse(s *domain.EventSummary) EventSummaryResponse {
	return EventSummaryResponse{
		Event:         ToEventResponse(&s.Event),
		DerivedStatus: s.DerivedStatus.String(),
		StatusDisplay: toStatusDisplay(s.DerivedStatus.Display()),
	}
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for i := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&d.Bookings[i]))
	}

	return EventDetailsResponse{
		Event:         ToEventResponse(&d.Event),
		DerivedStatus: d.DerivedStatus.String(),
		StatusDisplay: toStatusDisplay(d.DerivedStatus.Display()),
		Bookings:      bookings,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                 b.ID,
		EventID:            b.EventID,
		MusicianID:         b.MusicianID,
		VenueID:            b.VenueID,
		Status:             b.Status.String(),
		StatusDisplay:      toStatusDisplay(b.Status.Display()),
		ProposedRate:       decimalString(b.ProposedRate),
		Pitch:              b.Pitch,
		CancellationReason: reasonString(b.CancellationReason),
		CancelledBy:        actorString(b.CancelledBy),
		CompletedBy:        actorString(b.CompletedBy),
		AppliedAt:          b.AppliedAt.Format(time.RFC3339),
		SelectedAt:         timeString(b.SelectedAt),
		ConfirmedAt:        timeString(b.ConfirmedAt),
		CompletedAt:        timeString(b.CompletedAt),
		CancelRequestedAt:  timeString(b.CancelRequestedAt),
		CancelledAt:        timeString(b.CancelledAt),
	}
}

func toStatusDisplay(d domain.StatusDisplay) StatusDisplayResponse {
	return StatusDisplayResponse{Label: d.Label, Color: d.Color, Icon: d.Icon}
}

func decimalString(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.String()
	return &s
}

func timeString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func reasonString(r *domain.CancellationReason) *string {
	if r == nil {
		return nil
	}
	s := string(*r)
	return &s
}

func actorString(a *domain.Actor) *string {
	if a == nil {
		return nil
	}
	s := string(*a)
	return &s
}
