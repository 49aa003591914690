package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/yeremiapane/restaurant-floorplan/floorplan"
	"github.com/yeremiapane/restaurant-floorplan/models"
)

// MemoryStore keeps tables and reservations in process memory. Reads return
// copies so callers can never mutate the canonical data.
type MemoryStore struct {
	mu           sync.RWMutex
	tables       []models.Table
	reservations []models.Reservation
}

func NewMemoryStore(tables []models.Table, reservations []models.Reservation) *MemoryStore {
	s := &MemoryStore{tables: slices.Clone(tables)}
	for _, r := range reservations {
		s.reservations = append(s.reservations, cloneReservation(r))
	}
	return s
}

func (s *MemoryStore) GetTables() ([]models.Table, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.tables), nil
}

func (s *MemoryStore) GetReservations() ([]models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Reservation, len(s.reservations))
	for i, r := range s.reservations {
		out[i] = cloneReservation(r)
	}
	return out, nil
}

func (s *MemoryStore) AssignTable(reservationID, tableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ri := slices.IndexFunc(s.reservations, func(r models.Reservation) bool { return r.ID == reservationID })
	if ri < 0 {
		return fmt.Errorf("reservation %s: %w", reservationID, floorplan.ErrNotFound)
	}
	if !slices.ContainsFunc(s.tables, func(t models.Table) bool { return t.ID == tableID }) {
		return fmt.Errorf("table %s: %w", tableID, floorplan.ErrNotFound)
	}

	r := &s.reservations[ri]
	if !r.HasTable(tableID) {
		r.TableIDs = append(r.TableIDs, tableID)
	}
	r.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) UpdateTable(table models.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.tables, func(t models.Table) bool { return t.ID == table.ID })
	if i < 0 {
		return fmt.Errorf("table %s: %w", table.ID, floorplan.ErrNotFound)
	}
	table.CreatedAt = s.tables[i].CreatedAt
	table.UpdatedAt = time.Now()
	s.tables[i] = table
	return nil
}

func cloneReservation(r models.Reservation) models.Reservation {
	ids := make([]string, len(r.TableIDs))
	copy(ids, r.TableIDs)
	r.TableIDs = ids
	return r
}
