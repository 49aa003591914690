package services

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yeremiapane/restaurant-floorplan/models"
)

var sheetColumns = []struct {
	Col    string
	Header string
	Width  float64
}{
	{"A", "Time", 8},
	{"B", "Guest", 28},
	{"C", "Party", 8},
	{"D", "Status", 12},
	{"E", "Tables", 16},
	{"F", "Section", 16},
	{"G", "Phone", 14},
	{"H", "Notes", 40},
}

// GenerateReservationSheet renders the host-stand sheet for one service day
// as an .xlsx file. reservations should already be filtered and ordered.
func GenerateReservationSheet(date string, reservations []models.Reservation, tables []models.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Reservations " + date
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	for _, c := range sheetColumns {
		if err := f.SetColWidth(sheetName, c.Col, c.Col, c.Width); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c.Col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	if err := f.SetCellValue(sheetName, "A1", "Reservations for "+date); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}

	const headerRow = 3
	for _, c := range sheetColumns {
		if err := f.SetCellValue(sheetName, fmt.Sprintf("%s%d", c.Col, headerRow), c.Header); err != nil {
			return nil, err
		}
	}
	last := sheetColumns[len(sheetColumns)-1].Col
	if err := f.SetCellStyle(sheetName, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("%s%d", last, headerRow), headerStyle); err != nil {
		return nil, err
	}

	byID := make(map[string]models.Table, len(tables))
	for _, t := range tables {
		byID[t.ID] = t
	}

	covers := 0
	for i, r := range reservations {
		row := headerRow + 1 + i
		numbers, sections := describeTables(r.TableIDs, byID)
		values := []interface{}{r.Time, r.CustomerName, r.PartySize, string(r.Status), numbers, sections, r.Phone, r.Notes}
		for j, v := range values {
			cell := fmt.Sprintf("%s%d", sheetColumns[j].Col, row)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
		if r.Status.AwaitingTable() || r.Status == models.ReservationSeated {
			covers += r.PartySize
		}
	}

	totalRow := headerRow + len(reservations) + 2
	if err := f.SetCellValue(sheetName, fmt.Sprintf("B%d", totalRow), "Expected covers"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheetName, fmt.Sprintf("C%d", totalRow), covers); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// describeTables renders table numbers ("2, 4") and their distinct sections.
// Unknown ids are shown as-is.
func describeTables(ids []string, byID map[string]models.Table) (string, string) {
	numbers := make([]string, 0, len(ids))
	sections := make([]string, 0, len(ids))
	seen := make(map[string]bool)
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			numbers = append(numbers, id)
			continue
		}
		numbers = append(numbers, fmt.Sprint(t.Number))
		if !seen[t.Location] {
			seen[t.Location] = true
			sections = append(sections, t.Location)
		}
	}
	return strings.Join(numbers, ", "), strings.Join(sections, ", ")
}
