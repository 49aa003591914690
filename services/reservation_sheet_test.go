package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/yeremiapane/restaurant-floorplan/models"
)

func TestGenerateReservationSheet(t *testing.T) {
	tables := []models.Table{
		{ID: "t2", Number: 2, Capacity: 4, Location: "Main Dining"},
		{ID: "t5", Number: 5, Capacity: 2, Location: "Patio"},
	}
	reservations := []models.Reservation{
		{ID: "r1", CustomerName: "John Smith", Time: "18:00", PartySize: 4, Status: models.ReservationConfirmed, TableIDs: []string{"t2", "t5"}},
		{ID: "r2", CustomerName: "Maria Garcia", Time: "19:30", PartySize: 2, Status: models.ReservationPending, Notes: "Anniversary"},
		{ID: "r3", CustomerName: "Emily Brown", Time: "20:00", PartySize: 3, Status: models.ReservationCancelled},
	}

	data, err := GenerateReservationSheet("2024-06-01", reservations, tables)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := "Reservations 2024-06-01"
	assert.Equal(t, sheet, f.GetSheetName(0))

	cell := func(ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Reservations for 2024-06-01", cell("A1"))
	assert.Equal(t, "Guest", cell("B3"))
	assert.Equal(t, "John Smith", cell("B4"))
	assert.Equal(t, "2, 5", cell("E4"))
	assert.Equal(t, "Main Dining, Patio", cell("F4"))
	assert.Equal(t, "Anniversary", cell("H5"))
	assert.Equal(t, "cancelled", cell("D6"))
	assert.Equal(t, "Expected covers", cell("B8"))
	assert.Equal(t, "6", cell("C8"))
}

func TestDescribeTablesUnknownID(t *testing.T) {
	numbers, sections := describeTables([]string{"gone"}, map[string]models.Table{})
	assert.Equal(t, "gone", numbers)
	assert.Empty(t, sections)
}
