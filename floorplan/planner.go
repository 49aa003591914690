package floorplan

import (
	"fmt"
	"slices"

	"github.com/yeremiapane/restaurant-floorplan/models"
)

// Store owns the canonical tables and reservations. The planner only reads
// from it and asks it to mutate.
type Store interface {
	GetTables() ([]models.Table, error)
	GetReservations() ([]models.Reservation, error)
	AssignTable(reservationID, tableID string) error
	UpdateTable(table models.Table) error
}

// Assignment is an accepted request to seat Reservation at Table.
// Reservation.TableIDs already includes Table.ID.
type Assignment struct {
	Reservation models.Reservation `json:"reservation"`
	Table       models.Table       `json:"table"`
}

type Planner struct {
	store    Store
	notifier Notifier
}

// NewPlanner wires a planner to its store. notifier may be nil.
func NewPlanner(store Store, notifier Notifier) *Planner {
	return &Planner{store: store, notifier: notifier}
}

func (p *Planner) Tables() ([]models.Table, error) {
	tables, err := p.store.GetTables()
	if err != nil {
		return nil, fmt.Errorf("load tables: %w", err)
	}
	return tables, nil
}

func (p *Planner) TablesByStatus(status models.TableStatus) ([]models.Table, error) {
	tables, err := p.Tables()
	if err != nil {
		return nil, err
	}
	out := make([]models.Table, 0, len(tables))
	for _, t := range tables {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (p *Planner) Table(id string) (models.Table, error) {
	tables, err := p.Tables()
	if err != nil {
		return models.Table{}, err
	}
	i := slices.IndexFunc(tables, func(t models.Table) bool { return t.ID == id })
	if i < 0 {
		return models.Table{}, fmt.Errorf("table %s: %w", id, ErrNotFound)
	}
	return tables[i], nil
}

func (p *Planner) Reservations(date string) ([]models.Reservation, error) {
	reservations, err := p.store.GetReservations()
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	return ReservationsOn(reservations, date), nil
}

// Unassigned lists the reservations on date still waiting for a table.
func (p *Planner) Unassigned(date string) ([]models.Reservation, error) {
	reservations, err := p.store.GetReservations()
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	return UnassignedReservations(reservations, date), nil
}

// TryAssign decides whether reservationID may be seated at tableID without
// changing anything.
func (p *Planner) TryAssign(reservationID, tableID string) (Assignment, error) {
	reservations, err := p.store.GetReservations()
	if err != nil {
		return Assignment{}, fmt.Errorf("load reservations: %w", err)
	}
	tables, err := p.store.GetTables()
	if err != nil {
		return Assignment{}, fmt.Errorf("load tables: %w", err)
	}

	ri := slices.IndexFunc(reservations, func(r models.Reservation) bool { return r.ID == reservationID })
	if ri < 0 {
		return Assignment{}, &AssignmentError{Kind: ErrNotFound, ReservationID: reservationID, TableID: tableID}
	}
	ti := slices.IndexFunc(tables, func(t models.Table) bool { return t.ID == tableID })
	if ti < 0 {
		return Assignment{}, &AssignmentError{Kind: ErrNotFound, TableID: tableID}
	}

	reservation, table := reservations[ri], tables[ti]
	if err := CheckAssignment(reservation, table); err != nil {
		return Assignment{}, err
	}

	// copy so the store's slice is never aliased
	ids := make([]string, 0, len(reservation.TableIDs)+1)
	ids = append(ids, reservation.TableIDs...)
	if !reservation.HasTable(tableID) {
		ids = append(ids, tableID)
	}
	reservation.TableIDs = ids

	return Assignment{Reservation: reservation, Table: table}, nil
}

// Assign validates the request and, when accepted, asks the store to bind
// the table. On rejection nothing is written.
func (p *Planner) Assign(reservationID, tableID string) (Assignment, error) {
	a, err := p.TryAssign(reservationID, tableID)
	if err != nil {
		return Assignment{}, err
	}
	if err := p.store.AssignTable(reservationID, tableID); err != nil {
		return Assignment{}, fmt.Errorf("assign table %s to reservation %s: %w", tableID, reservationID, err)
	}
	p.notify(NewEvent(EventTableAssigned, &a.Table, &a.Reservation))
	return a, nil
}

// SetStatus moves table to status. Every status is reachable from every other.
func (p *Planner) SetStatus(table models.Table, status models.TableStatus) (models.Table, error) {
	if !status.Valid() {
		return models.Table{}, fmt.Errorf("unknown table status: %q", status)
	}
	table.Status = status
	if err := p.store.UpdateTable(table); err != nil {
		return models.Table{}, fmt.Errorf("update table %s: %w", table.ID, err)
	}
	p.notify(NewEvent(EventTableUpdate, &table, nil))
	return table, nil
}

func (p *Planner) FloorPlan() ([]Section, error) {
	tables, err := p.Tables()
	if err != nil {
		return nil, err
	}
	return GroupByLocation(tables), nil
}

func (p *Planner) Stats() (Stats, error) {
	tables, err := p.Tables()
	if err != nil {
		return Stats{}, err
	}
	return Summarize(tables), nil
}

func (p *Planner) notify(ev Event) {
	if p.notifier != nil {
		p.notifier.Notify(ev)
	}
}
