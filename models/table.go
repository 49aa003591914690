package models

import (
	"fmt"
	"time"
)

type TableStatus string

const (
	TableAvailable   TableStatus = "available"
	TableOccupied    TableStatus = "occupied"
	TableReserved    TableStatus = "reserved"
	TableUnavailable TableStatus = "unavailable"
)

// TableStatuses lists every table status in display order.
var TableStatuses = []TableStatus{TableAvailable, TableOccupied, TableReserved, TableUnavailable}

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved, TableUnavailable:
		return true
	default:
		return false
	}
}

// ParseTableStatus -> mengubah string dari request menjadi TableStatus
func ParseTableStatus(s string) (TableStatus, error) {
	status := TableStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown table status: %q", s)
	}
	return status, nil
}

type Table struct {
	ID        string      `gorm:"primaryKey;type:varchar(64)" json:"id"`
	Number    int         `gorm:"not null" json:"number"`
	Capacity  int         `gorm:"not null" json:"capacity"`
	Status    TableStatus `gorm:"type:varchar(20);not null;default:'available'" json:"status"`
	Location  string      `gorm:"type:varchar(100)" json:"location"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null" json:"updated_at"`
}
