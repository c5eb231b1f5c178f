// Package matrix lays out a day's shifts on the production time grid. Each
// grid row is one half-hour slot on the linearized production-day axis; each
// column is a location. A shift renders as exactly one block, anchored in
// the slot containing its start instant and drawn tall enough to cover the
// slots it runs through; those later slots are suppressed as
// continuation-occupied cells.
package matrix

import (
	"sort"

	"production-brief/internal/models"
	"production-brief/internal/timeline"
)

// Block is one positioned shift inside a cell. TopPct and HeightPct are
// percentages of the slot height, so a long shift overflows its cell and
// visually spans the following rows.
type Block struct {
	Shift     *models.Shift
	TopPct    float64
	HeightPct float64
}

// Cell is one (slot, location) intersection.
type Cell struct {
	LocationKey string
	// Blocks are the shifts starting in this slot, ascending by linearized
	// start (ties broken by id). Shifts that truly overlap in one location
	// stack in this order; no lane assignment is attempted.
	Blocks []Block
	// Occupied marks a cell covered by a shift that started earlier and is
	// still running: no blocks, no empty-slot affordance.
	Occupied bool
}

// Row is one half-hour slot across all locations.
type Row struct {
	Hour  float64
	Label string
	Cells []Cell
}

// Grid is the full layout for one day.
type Grid struct {
	Locations []models.Location
	Rows      []Row
}

// Build lays out a day against the fixed location and slot lists. Unknown
// location keys yield empty columns; a nil day yields an all-empty grid.
func Build(day *models.DaySchedule, locations []models.Location) Grid {
	grid := Grid{Locations: locations}
	for _, hour := range timeline.Slots() {
		row := Row{Hour: hour, Label: timeline.Format(hour)}
		rowStart := timeline.Linearize(hour)
		rowEnd := rowStart + timeline.SlotHours

		for _, loc := range locations {
			var shifts []*models.Shift
			if day != nil {
				shifts = day.Shifts[loc.Key]
			}
			row.Cells = append(row.Cells, buildCell(loc.Key, shifts, rowStart, rowEnd))
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

func buildCell(locKey string, shifts []*models.Shift, rowStart, rowEnd float64) Cell {
	cell := Cell{LocationKey: locKey}

	var starting []*models.Shift
	overlap := false
	for _, s := range shifts {
		start := timeline.Linearize(s.Start)
		if start >= rowStart && start < rowEnd {
			starting = append(starting, s)
		}
		// Zero-duration markers never occupy a slot; they only ever start
		// in one.
		if start < rowEnd && start+s.Duration > rowStart {
			overlap = true
		}
	}

	if len(starting) == 0 {
		cell.Occupied = overlap
		return cell
	}

	sort.SliceStable(starting, func(i, j int) bool {
		si, sj := timeline.Linearize(starting[i].Start), timeline.Linearize(starting[j].Start)
		if si != sj {
			return si < sj
		}
		return starting[i].ID < starting[j].ID
	})

	for _, s := range starting {
		offset := timeline.Linearize(s.Start) - rowStart
		if offset < 0 {
			offset = 0
		}
		display := s.Duration
		if display < timeline.MinDisplayDuration {
			display = timeline.MinDisplayDuration
		}
		cell.Blocks = append(cell.Blocks, Block{
			Shift:     s,
			TopPct:    offset / timeline.SlotHours * 100,
			HeightPct: display / timeline.SlotHours * 100,
		})
	}
	return cell
}
