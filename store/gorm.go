package store

import (
	"errors"
	"fmt"

	"github.com/yeremiapane/restaurant-floorplan/floorplan"
	"github.com/yeremiapane/restaurant-floorplan/models"
	"gorm.io/gorm"
)

// GormStore persists the floor in a relational database (SQLite or MySQL).
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Migrate creates or updates the tables and reservations schema.
func (s *GormStore) Migrate() error {
	return s.DB.AutoMigrate(&models.Table{}, &models.Reservation{})
}

// SeedIfEmpty inserts the given floor when the database has no tables yet.
// It reports whether anything was written.
func (s *GormStore) SeedIfEmpty(tables []models.Table, reservations []models.Reservation) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.Table{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if len(tables) > 0 {
			if err := tx.Create(&tables).Error; err != nil {
				return err
			}
		}
		if len(reservations) > 0 {
			if err := tx.Create(&reservations).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormStore) GetTables() ([]models.Table, error) {
	var tables []models.Table
	if err := s.DB.Order("number ASC").Find(&tables).Error; err != nil {
		return nil, err
	}
	return tables, nil
}

func (s *GormStore) GetReservations() ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := s.DB.Order("date ASC, time ASC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	for i := range reservations {
		// NULL column scans to a nil slice
		if reservations[i].TableIDs == nil {
			reservations[i].TableIDs = []string{}
		}
	}
	return reservations, nil
}

func (s *GormStore) AssignTable(reservationID, tableID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, "id = ?", tableID).Error; err != nil {
			return notFound("table", tableID, err)
		}

		var reservation models.Reservation
		if err := tx.First(&reservation, "id = ?", reservationID).Error; err != nil {
			return notFound("reservation", reservationID, err)
		}

		if reservation.HasTable(tableID) {
			return nil
		}
		reservation.TableIDs = append(reservation.TableIDs, tableID)
		return tx.Save(&reservation).Error
	})
}

func (s *GormStore) UpdateTable(table models.Table) error {
	var existing models.Table
	if err := s.DB.First(&existing, "id = ?", table.ID).Error; err != nil {
		return notFound("table", table.ID, err)
	}
	table.CreatedAt = existing.CreatedAt
	return s.DB.Save(&table).Error
}

func notFound(kind, id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %s: %w", kind, id, floorplan.ErrNotFound)
	}
	return err
}
