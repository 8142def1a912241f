package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func eventWith(status EventStatus) *Event {
	return &Event{ID: "e1", Status: status}
}

func bookingsFor(eventID string, statuses ...BookingStatus) []*Booking {
	out := make([]*Booking, 0, len(statuses))
	for i, s := range statuses {
		out = append(out, &Booking{
			ID:      string(rune('a' + i)),
			EventID: eventID,
			Status:  s,
		})
	}
	return out
}

func TestDeriveEventStatus_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		stored   EventStatus
		statuses []BookingStatus
		want     EventStatus
	}{
		{"completed wins over everything", EventStatusOpen,
			[]BookingStatus{BookingStatusCompleted, BookingStatusCancelled, BookingStatusConfirmed, BookingStatusApplied},
			EventStatusCompleted},
		{"cancelled does not mask confirmed", EventStatusOpen,
			[]BookingStatus{BookingStatusCancelled, BookingStatusConfirmed},
			EventStatusConfirmed},
		{"cancelled wins without confirmed", EventStatusOpen,
			[]BookingStatus{BookingStatusCancelled, BookingStatusApplied},
			EventStatusCancelled},
		// Only confirmed shields an event from showing cancelled; a
		// coexisting selected booking does not. Deliberate asymmetry,
		// flagged to the product owner, do not "fix" silently.
		{"cancelled wins over selected", EventStatusOpen,
			[]BookingStatus{BookingStatusCancelled, BookingStatusSelected},
			EventStatusCancelled},
		{"pending cancel beats applied", EventStatusOpen,
			[]BookingStatus{BookingStatusPendingCancel, BookingStatusApplied},
			EventStatusCancelRequested},
		{"pending cancel beats confirmed", EventStatusOpen,
			[]BookingStatus{BookingStatusPendingCancel, BookingStatusConfirmed},
			EventStatusCancelRequested},
		{"confirmed beats selected", EventStatusOpen,
			[]BookingStatus{BookingStatusConfirmed, BookingStatusSelected},
			EventStatusConfirmed},
		{"selected beats applied", EventStatusOpen,
			[]BookingStatus{BookingStatusSelected, BookingStatusApplied},
			EventStatusSelected},
		{"applied alone", EventStatusOpen,
			[]BookingStatus{BookingStatusApplied},
			EventStatusApplicationReceived},
		{"bookings beat stored invited", EventStatusInvited,
			[]BookingStatus{BookingStatusApplied},
			EventStatusApplicationReceived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveEventStatus(eventWith(tt.stored), bookingsFor("e1", tt.statuses...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveEventStatus_EmptyBookingsFallsBackToStored(t *testing.T) {
	assert.Equal(t, EventStatusInvited, DeriveEventStatus(eventWith(EventStatusInvited), nil))
	assert.Equal(t, EventStatusOpen, DeriveEventStatus(eventWith(EventStatusOpen), nil))
	assert.Equal(t, EventStatusOpen, DeriveEventStatus(eventWith(EventStatusOpen), []*Booking{}))
}

func TestDeriveEventStatus_GarbageStoredStatusDefaultsToOpen(t *testing.T) {
	assert.Equal(t, EventStatusOpen, DeriveEventStatus(eventWith(EventStatus("???")), nil))
	assert.Equal(t, EventStatusOpen, DeriveEventStatus(eventWith(""), nil))
}

func TestDeriveEventStatus_IgnoresOtherEventsAndGarbage(t *testing.T) {
	bookings := []*Booking{
		{ID: "b1", EventID: "other", Status: BookingStatusCompleted},
		{ID: "b2", EventID: "e1", Status: BookingStatus("corrupted")},
		nil,
		{ID: "b3", EventID: "e1", Status: BookingStatusApplied},
	}

	got := DeriveEventStatus(eventWith(EventStatusOpen), bookings)
	assert.Equal(t, EventStatusApplicationReceived, got)
}

func TestDeriveEventStatus_NilEvent(t *testing.T) {
	assert.Equal(t, EventStatusOpen, DeriveEventStatus(nil, bookingsFor("e1", BookingStatusCompleted)))
}

func TestDeriveEventStatus_ToleratesDuplicatePairs(t *testing.T) {
	// Two bookings for the same (event, musician) pair. Uniqueness is the
	// database's job; derivation just reduces what it is given.
	bookings := []*Booking{
		{ID: "b1", EventID: "e1", MusicianID: "m1", Status: BookingStatusCancelled},
		{ID: "b2", EventID: "e1", MusicianID: "m1", Status: BookingStatusConfirmed},
	}
	assert.Equal(t, EventStatusConfirmed, DeriveEventStatus(eventWith(EventStatusOpen), bookings))
}

func TestDeriveEventStatus_OrderIndependence(t *testing.T) {
	statuses := []BookingStatus{
		BookingStatusApplied, BookingStatusSelected, BookingStatusConfirmed,
		BookingStatusCancelled, BookingStatusPendingCancel,
	}
	bookings := bookingsFor("e1", statuses...)
	want := DeriveEventStatus(eventWith(EventStatusOpen), bookings)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		rng.Shuffle(len(bookings), func(a, b int) {
			bookings[a], bookings[b] = bookings[b], bookings[a]
		})
		assert.Equal(t, want, DeriveEventStatus(eventWith(EventStatusOpen), bookings))
	}
}

func TestDeriveEventStatus_CompletedIsMonotonic(t *testing.T) {
	// Adding a completed booking wins no matter what else is present.
	base := []BookingStatus{
		BookingStatusApplied, BookingStatusSelected, BookingStatusConfirmed,
		BookingStatusCancelled, BookingStatusPendingCancel,
	}
	for _, s := range base {
		bookings := bookingsFor("e1", s, BookingStatusCompleted)
		assert.Equal(t, EventStatusCompleted, DeriveEventStatus(eventWith(EventStatusOpen), bookings))
	}
}
