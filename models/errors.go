package models

import "errors"

// Domain errors shared across repositories, services and handlers.
// Handlers translate these to HTTP status codes.
var (
	// ErrInvalidID signals a malformed document identifier. It is
	// raised before any storage query runs.
	ErrInvalidID = errors.New("invalid id")

	// ErrServiceNotFound signals a service lookup miss.
	ErrServiceNotFound = errors.New("service not found")

	// ErrSlotTaken signals a booking request whose interval overlaps
	// an existing booking for the same service and date.
	ErrSlotTaken = errors.New("time slot already booked")

	// ErrStorageUnavailable signals that the storage handle is not
	// configured or not reachable.
	ErrStorageUnavailable = errors.New("database not configured")
)
