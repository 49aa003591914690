package floorplan

import (
	"github.com/yeremiapane/restaurant-floorplan/models"
)

// CheckAssignment validates seating reservation at table. Existence is the
// caller's concern; capacity is checked before status.
func CheckAssignment(reservation models.Reservation, table models.Table) error {
	if table.Capacity < reservation.PartySize {
		return &AssignmentError{
			Kind:          ErrTableTooSmall,
			ReservationID: reservation.ID,
			TableID:       table.ID,
			TableNumber:   table.Number,
			PartySize:     reservation.PartySize,
			Capacity:      table.Capacity,
		}
	}

	switch table.Status {
	case models.TableAvailable, models.TableReserved:
		return nil
	default:
		return &AssignmentError{
			Kind:          ErrTableUnavailable,
			ReservationID: reservation.ID,
			TableID:       table.ID,
			TableNumber:   table.Number,
			PartySize:     reservation.PartySize,
			Capacity:      table.Capacity,
		}
	}
}
