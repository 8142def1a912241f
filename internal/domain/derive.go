package domain

// DeriveEventStatus reduces the bookings attached to an event into the one
// status shown for it. Callers may pass the full global booking set; rows
// for other events are filtered out here.
//
// Precedence, highest first:
//
//	completed                     any booking completed
//	cancelled                     any cancelled and none confirmed
//	cancel_requested              any pending_cancel
//	confirmed                     any confirmed
//	selected                      any selected
//	application_received          any applied
//	invited                       stored status is invited
//	stored status (default open)
//
// A cancellation does not mask another musician's confirmed booking: an open
// call can have several bookings in flight, and one withdrawal must not hide
// a show that is still going ahead. Note the exemption covers confirmed
// only: [cancelled, selected] still derives to cancelled.
//
// The reduction checks set membership per status, so it is insensitive to
// booking order. Unknown statuses match no precedence level, and a nil or
// empty booking slice falls back to the stored status. Never panics.
func DeriveEventStatus(e *Event, bookings []*Booking) EventStatus {
	if e == nil {
		return EventStatusOpen
	}

	var has struct {
		completed     bool
		cancelled     bool
		pendingCancel bool
		confirmed     bool
		selected      bool
		applied       bool
	}

	for _, b := range bookings {
		if b == nil || b.EventID != e.ID {
			continue
		}
		switch b.Status {
		case BookingStatusCompleted:
			has.completed = true
		case BookingStatusCancelled:
			has.cancelled = true
		case BookingStatusPendingCancel:
			has.pendingCancel = true
		case BookingStatusConfirmed:
			has.confirmed = true
		case BookingStatusSelected:
			has.selected = true
		case BookingStatusApplied:
			has.applied = true
		}
	}

	switch {
	case has.completed:
		return EventStatusCompleted
	case has.cancelled && !has.confirmed:
		return EventStatusCancelled
	case has.pendingCancel:
		return EventStatusCancelRequested
	case has.confirmed:
		return EventStatusConfirmed
	case has.selected:
		return EventStatusSelected
	case has.applied:
		return EventStatusApplicationReceived
	case e.Status == EventStatusInvited:
		return EventStatusInvited
	}

	if e.Status.IsValid() {
		return e.Status
	}
	return EventStatusOpen
}
