package domain

// transitions is the source of truth for the booking lifecycle. A status
// missing from the map, or absent from a row, is an illegal move — that
// covers self-transitions and everything out of the terminal states.
var transitions = map[BookingStatus][]BookingStatus{
	BookingStatusApplied:       {BookingStatusSelected, BookingStatusCancelled, BookingStatusPendingCancel},
	BookingStatusSelected:      {BookingStatusConfirmed, BookingStatusCancelled, BookingStatusPendingCancel},
	BookingStatusConfirmed:     {BookingStatusCompleted, BookingStatusCancelled, BookingStatusPendingCancel},
	BookingStatusPendingCancel: {BookingStatusCancelled},
	BookingStatusCancelled:     {},
	BookingStatusCompleted:     {},
}

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// CanTransitionTo reports whether the lifecycle allows moving from s to
// target. It is a pure lookup; callers must check it before asking the
// persistence layer to write a new status.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from s in one step. Terminal
// and unknown statuses yield an empty slice. The result is a copy.
func (s BookingStatus) NextStatuses() []BookingStatus {
	row := transitions[s]
	out := make([]BookingStatus, len(row))
	copy(out, row)
	return out
}

// ParseBookingStatus parses a raw string into a BookingStatus.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}
