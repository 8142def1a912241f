package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrMusicianNotFound = errors.New("musician not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

var (
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrAlreadyApplied    = errors.New("musician already has an active booking for this event")
	ErrBookingConflict   = errors.New("booking was modified concurrently")
	ErrUnknownStatus     = errors.New("unknown booking status")
)

var (
	ErrValidation = errors.New("validation error")
)
