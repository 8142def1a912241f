package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusApplied       BookingStatus = "applied"
	BookingStatusSelected      BookingStatus = "selected"
	BookingStatusConfirmed     BookingStatus = "confirmed"
	BookingStatusCompleted     BookingStatus = "completed"
	BookingStatusCancelled     BookingStatus = "cancelled"
	BookingStatusPendingCancel BookingStatus = "pending_cancel"
)

// Actor identifies which side of the marketplace performed a transition.
// ActorSystem is used by the background sweep.
type Actor string

const (
	ActorVenue    Actor = "venue"
	ActorMusician Actor = "musician"
	ActorSystem   Actor = "system"
)

func (a Actor) IsValid() bool {
	switch a {
	case ActorVenue, ActorMusician, ActorSystem:
		return true
	default:
		return false
	}
}

// CancellationReason is a closed set of labels. The lifecycle does not
// interpret them.
type CancellationReason string

const (
	ReasonScheduleConflict    CancellationReason = "schedule_conflict"
	ReasonVenueChangedMind    CancellationReason = "venue_changed_mind"
	ReasonMusicianChangedMind CancellationReason = "musician_changed_mind"
	ReasonEventCancelled      CancellationReason = "event_cancelled"
	ReasonPricingIssue        CancellationReason = "pricing_issue"
	ReasonOther               CancellationReason = "other"
)

func (r CancellationReason) IsValid() bool {
	switch r {
	case ReasonScheduleConflict, ReasonVenueChangedMind, ReasonMusicianChangedMind,
		ReasonEventCancelled, ReasonPricingIssue, ReasonOther:
		return true
	default:
		return false
	}
}

// Booking is one musician's claim on one event. Identity fields are
// immutable after creation; status changes only through lifecycle-validated
// transitions and bookings are never deleted, terminal rows stay for history.
type Booking struct {
	ID         string `json:"id"`
	EventID    string `json:"event_id"`
	MusicianID string `json:"musician_id"`
	VenueID    string `json:"venue_id"`

	Status             BookingStatus       `json:"status"`
	ProposedRate       decimal.NullDecimal `json:"proposed_rate"`
	Pitch              string              `json:"pitch"`
	CancellationReason *CancellationReason `json:"cancellation_reason,omitempty"`
	CancelledBy        *Actor              `json:"cancelled_by,omitempty"`
	CompletedBy        *Actor              `json:"completed_by,omitempty"`

	AppliedAt         time.Time  `json:"applied_at"`
	SelectedAt        *time.Time `json:"selected_at,omitempty"`
	ConfirmedAt       *time.Time `json:"confirmed_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CancelRequestedAt *time.Time `json:"cancel_requested_at,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransitionMeta carries the bookkeeping that accompanies a status change:
// when it happened, who acted and, on the cancellation path, why.
type TransitionMeta struct {
	At     time.Time
	Actor  *Actor
	Reason *CancellationReason
}
