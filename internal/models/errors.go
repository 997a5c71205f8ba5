package models

import "errors"

// Domain errors shared by repositories, services and handlers.
// Handlers map these to HTTP status codes with errors.Is.
var (
	// ErrCapacityExceeded is returned when a bed occupancy would exceed
	// the room's capacity. The request is rejected, never adjusted.
	ErrCapacityExceeded = errors.New("room has no free bed")

	// ErrInsufficientStock is returned when dispensing would drive a
	// medicine's stock negative.
	ErrInsufficientStock = errors.New("insufficient medicine stock")

	// ErrItemNotPending is returned when dispensing a prescription item
	// that is no longer pending. The loser of two concurrent dispenses of
	// the same item sees this error.
	ErrItemNotPending = errors.New("prescription item is not pending")

	// ErrInvalidTransition is returned when an admission status change
	// is not allowed by the transition table.
	ErrInvalidTransition = errors.New("invalid admission status transition")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")
)
