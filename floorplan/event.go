package floorplan

import (
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/restaurant-floorplan/models"
)

const (
	EventTableUpdate   = "table_update"
	EventTableAssigned = "table_assigned"
)

// Event is pushed to floor-plan screens and downstream consumers after a
// successful mutation.
type Event struct {
	ID          string              `json:"id"`
	Type        string              `json:"event"`
	Table       *models.Table       `json:"table,omitempty"`
	Reservation *models.Reservation `json:"reservation,omitempty"`
	At          time.Time           `json:"at"`
}

func NewEvent(eventType string, table *models.Table, reservation *models.Reservation) Event {
	return Event{
		ID:          uuid.New().String(),
		Type:        eventType,
		Table:       table,
		Reservation: reservation,
		At:          time.Now().UTC(),
	}
}

// Notifier receives events. Implementations must not block the caller for
// long and handle their own delivery errors.
type Notifier interface {
	Notify(ev Event)
}

// Fanout delivers every event to each notifier in order. Nil entries are skipped.
type Fanout []Notifier

func (f Fanout) Notify(ev Event) {
	for _, n := range f {
		if n != nil {
			n.Notify(ev)
		}
	}
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(ev Event)

func (fn NotifierFunc) Notify(ev Event) {
	fn(ev)
}
