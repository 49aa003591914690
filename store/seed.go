package store

import "github.com/yeremiapane/restaurant-floorplan/models"

// MockTables is the demo floor used when SEED_MOCK_DATA is on.
func MockTables() []models.Table {
	return []models.Table{
		{ID: "t1", Number: 1, Capacity: 2, Status: models.TableAvailable, Location: "Main Dining"},
		{ID: "t2", Number: 2, Capacity: 4, Status: models.TableAvailable, Location: "Main Dining"},
		{ID: "t3", Number: 3, Capacity: 4, Status: models.TableOccupied, Location: "Main Dining"},
		{ID: "t4", Number: 4, Capacity: 6, Status: models.TableReserved, Location: "Main Dining"},
		{ID: "t5", Number: 5, Capacity: 2, Status: models.TableAvailable, Location: "Patio"},
		{ID: "t6", Number: 6, Capacity: 4, Status: models.TableUnavailable, Location: "Patio"},
		{ID: "t7", Number: 7, Capacity: 8, Status: models.TableAvailable, Location: "Patio"},
		{ID: "t8", Number: 8, Capacity: 2, Status: models.TableAvailable, Location: "Bar"},
		{ID: "t9", Number: 9, Capacity: 2, Status: models.TableOccupied, Location: "Bar"},
		{ID: "t10", Number: 10, Capacity: 12, Status: models.TableAvailable, Location: "Private Room"},
	}
}

// MockReservations returns demo bookings placed on date ("YYYY-MM-DD").
func MockReservations(date string) []models.Reservation {
	return []models.Reservation{
		{ID: "r1", CustomerName: "John Smith", Phone: "555-0101", Date: date, Time: "18:00", PartySize: 4, Status: models.ReservationConfirmed, TableIDs: []string{}},
		{ID: "r2", CustomerName: "Maria Garcia", Phone: "555-0102", Date: date, Time: "19:30", PartySize: 2, Status: models.ReservationPending, TableIDs: []string{}, Notes: "Anniversary"},
		{ID: "r3", CustomerName: "David Chen", Phone: "555-0103", Date: date, Time: "12:30", PartySize: 6, Status: models.ReservationConfirmed, TableIDs: []string{"t4"}},
		{ID: "r4", CustomerName: "Sarah Johnson", Phone: "555-0104", Date: date, Time: "20:00", PartySize: 10, Status: models.ReservationConfirmed, TableIDs: []string{}, Notes: "Birthday dinner, private room requested"},
		{ID: "r5", CustomerName: "Ahmed Hassan", Phone: "555-0105", Date: date, Time: "13:00", PartySize: 3, Status: models.ReservationSeated, TableIDs: []string{"t3"}},
		{ID: "r6", CustomerName: "Emily Brown", Phone: "555-0106", Date: date, Time: "17:45", PartySize: 2, Status: models.ReservationCancelled, TableIDs: []string{}},
		{ID: "r7", CustomerName: "Luca Rossi", Phone: "555-0107", Date: date, Time: "21:15", PartySize: 5, Status: models.ReservationPending, TableIDs: []string{}},
	}
}
