package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventStatus is the status shown for an event. Only EventStatusOpen and
// EventStatusInvited are ever stored on the event row itself; the rest are
// derived from the event's bookings (see DeriveEventStatus).
type EventStatus string

const (
	EventStatusOpen                EventStatus = "open"
	EventStatusInvited             EventStatus = "invited"
	EventStatusApplicationReceived EventStatus = "application_received"
	EventStatusSelected            EventStatus = "selected"
	EventStatusConfirmed           EventStatus = "confirmed"
	EventStatusCancelRequested     EventStatus = "cancel_requested"
	EventStatusCancelled           EventStatus = "cancelled"
	EventStatusCompleted           EventStatus = "completed"
)

func (s EventStatus) String() string {
	return string(s)
}

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusOpen, EventStatusInvited, EventStatusApplicationReceived,
		EventStatusSelected, EventStatusConfirmed, EventStatusCancelRequested,
		EventStatusCancelled, EventStatusCompleted:
		return true
	default:
		return false
	}
}

// Event is a venue's gig listing. Status holds the stored fallback only;
// the displayed status comes from DeriveEventStatus.
type Event struct {
	ID          string              `json:"id"`
	VenueID     string              `json:"venue_id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	City        string              `json:"city"`
	Genre       string              `json:"genre"`
	EventDate   time.Time           `json:"event_date"`
	Status      EventStatus         `json:"status"`
	BudgetRate  decimal.NullDecimal `json:"budget_rate"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// EventSummary pairs an event with its derived status for listing screens.
type EventSummary struct {
	Event         Event       `json:"event"`
	DerivedStatus EventStatus `json:"derived_status"`
}

type EventDetails struct {
	Event         Event       `json:"event"`
	DerivedStatus EventStatus `json:"derived_status"`
	Bookings      []Booking   `json:"bookings"`
}

type CreateEventInput struct {
	VenueID     string
	Title       string
	Description string
	City        string
	Genre       string
	EventDate   time.Time
	BudgetRate  decimal.NullDecimal
}
