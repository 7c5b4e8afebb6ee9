package booking

import "errors"

var (
	// ErrSlotTaken means the requested start time no longer has a free chair.
	// The availability list the customer saw was computed moments earlier;
	// this is the write-time check that closes that window.
	ErrSlotTaken = errors.New("requested time slot is fully booked")

	// ErrNoServices means the booking names no service at all.
	ErrNoServices = errors.New("booking must include at least one service")

	// ErrInvalidTransition means the status change is not allowed from the
	// booking's current state.
	ErrInvalidTransition = errors.New("invalid booking status transition")

	// ErrInvalidInput covers malformed dates, times and missing contact details.
	ErrInvalidInput = errors.New("invalid booking input")
)
