package services

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionClosed     = errors.New("session is closed")
	ErrInvalidSubmission = errors.New("name and rgm are required")
	ErrDuplicateDevice   = errors.New("this device already checked in")
	ErrDuplicateRGM      = errors.New("this rgm already checked in")
	ErrDuplicateAddress  = errors.New("this address already checked in")
)

// OutOfRangeError rejects a submission outside the geofence and carries the
// computed distance so callers can report it.
type OutOfRangeError struct {
	Distance float64
	Radius   float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("out of range: %.1fm from anchor, limit %.0fm", e.Distance, e.Radius)
}
