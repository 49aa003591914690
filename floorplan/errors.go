package floorplan

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrTableTooSmall    = errors.New("table too small")
	ErrTableUnavailable = errors.New("table unavailable")
)

// AssignmentError explains why a reservation could not be bound to a table.
// It unwraps to one of the sentinel errors above.
type AssignmentError struct {
	Kind          error
	ReservationID string
	TableID       string
	TableNumber   int
	PartySize     int
	Capacity      int
}

func (e *AssignmentError) Error() string {
	switch e.Kind {
	case ErrNotFound:
		if e.ReservationID != "" {
			return fmt.Sprintf("reservation %s not found", e.ReservationID)
		}
		return fmt.Sprintf("table %s not found", e.TableID)
	case ErrTableTooSmall:
		return fmt.Sprintf("table %d seats %d, too small for a party of %d", e.TableNumber, e.Capacity, e.PartySize)
	case ErrTableUnavailable:
		return fmt.Sprintf("table %d is not available", e.TableNumber)
	default:
		return fmt.Sprintf("cannot assign table %s: %v", e.TableID, e.Kind)
	}
}

func (e *AssignmentError) Unwrap() error {
	return e.Kind
}
