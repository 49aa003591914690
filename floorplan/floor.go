package floorplan

import (
	"sort"

	"github.com/yeremiapane/restaurant-floorplan/models"
)

// Section is one physical area of the floor plan.
type Section struct {
	Location string         `json:"location"`
	Tables   []models.Table `json:"tables"`
	Seats    int            `json:"seats"`
}

// GroupByLocation groups tables into sections in first-seen order, with the
// tables of each section ordered by number.
func GroupByLocation(tables []models.Table) []Section {
	index := make(map[string]int)
	sections := make([]Section, 0)
	for _, t := range tables {
		i, ok := index[t.Location]
		if !ok {
			i = len(sections)
			index[t.Location] = i
			sections = append(sections, Section{Location: t.Location})
		}
		sections[i].Tables = append(sections[i].Tables, t)
		sections[i].Seats += t.Capacity
	}
	for i := range sections {
		ts := sections[i].Tables
		sort.SliceStable(ts, func(a, b int) bool { return ts[a].Number < ts[b].Number })
	}
	return sections
}

type Stats struct {
	ByStatus       map[models.TableStatus]int `json:"by_status"`
	Total          int                        `json:"total"`
	TotalSeats     int                        `json:"total_seats"`
	AvailableSeats int                        `json:"available_seats"`
}

func Summarize(tables []models.Table) Stats {
	stats := Stats{ByStatus: make(map[models.TableStatus]int, len(models.TableStatuses))}
	for _, s := range models.TableStatuses {
		stats.ByStatus[s] = 0
	}
	for _, t := range tables {
		stats.ByStatus[t.Status]++
		stats.Total++
		stats.TotalSeats += t.Capacity
		if t.Status == models.TableAvailable {
			stats.AvailableSeats += t.Capacity
		}
	}
	return stats
}
