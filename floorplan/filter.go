package floorplan

import (
	"sort"

	"github.com/yeremiapane/restaurant-floorplan/models"
)

// UnassignedReservations returns the reservations on date that have no table
// yet and are still pending or confirmed, earliest first.
func UnassignedReservations(reservations []models.Reservation, date string) []models.Reservation {
	out := make([]models.Reservation, 0)
	for _, r := range reservations {
		if r.Date != date || r.Assigned() || !r.Status.AwaitingTable() {
			continue
		}
		out = append(out, r)
	}
	// "HH:MM" sorts correctly as a plain string
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// ReservationsOn returns the reservations for date ordered by time. An empty
// date returns every reservation ordered by date, then time.
func ReservationsOn(reservations []models.Reservation, date string) []models.Reservation {
	out := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if date == "" || r.Date == date {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}
