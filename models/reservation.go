package models

import (
	"fmt"
	"slices"
	"time"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationSeated    ReservationStatus = "seated"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationNoShow    ReservationStatus = "no-show"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationPending, ReservationConfirmed, ReservationSeated,
		ReservationCompleted, ReservationCancelled, ReservationNoShow:
		return true
	default:
		return false
	}
}

// AwaitingTable reports whether a reservation in this status still needs a table.
func (s ReservationStatus) AwaitingTable() bool {
	return s == ReservationPending || s == ReservationConfirmed
}

func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown reservation status: %q", s)
	}
	return status, nil
}

// Reservation menyimpan Date sebagai "YYYY-MM-DD" dan Time sebagai "HH:MM"
type Reservation struct {
	ID           string            `gorm:"primaryKey;type:varchar(64)" json:"id"`
	CustomerName string            `gorm:"type:varchar(100);not null" json:"customer_name"`
	Phone        string            `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Date         string            `gorm:"type:varchar(10);not null;index" json:"date"`
	Time         string            `gorm:"type:varchar(5);not null" json:"time"`
	PartySize    int               `gorm:"not null" json:"party_size"`
	Status       ReservationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TableIDs     []string          `gorm:"serializer:json;type:text" json:"table_ids"`
	Notes        string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"not null" json:"updated_at"`
}

func (r Reservation) Assigned() bool {
	return len(r.TableIDs) > 0
}

func (r Reservation) HasTable(tableID string) bool {
	return slices.Contains(r.TableIDs, tableID)
}
