package matrix

import (
	"testing"

	"production-brief/internal/models"
	"production-brief/internal/timeline"
)

var testLocations = []models.Location{
	{Key: "main", Name: "Freak Stage (Main)"},
	{Key: "under", Name: "Underground"},
}

func day(shifts map[string][]*models.Shift) *models.DaySchedule {
	return &models.DaySchedule{Key: "wk1_thu", Label: "WK1: Thursday", Date: "Thu Feb 5", Shifts: shifts}
}

func rowAt(t *testing.T, g Grid, hour float64) Row {
	t.Helper()
	for _, r := range g.Rows {
		if r.Hour == hour {
			return r
		}
	}
	t.Fatalf("no row at hour %v", hour)
	return Row{}
}

func cellAt(t *testing.T, g Grid, hour float64, loc string) Cell {
	t.Helper()
	row := rowAt(t, g, hour)
	for _, c := range row.Cells {
		if c.LocationKey == loc {
			return c
		}
	}
	t.Fatalf("no cell for location %q", loc)
	return Cell{}
}

func TestContinuationOccupiedSuppression(t *testing.T) {
	// A 2.5h shift starting at 22:00 covers the 23:00 slot without starting
	// in it: no block, no empty affordance.
	g := Build(day(map[string][]*models.Shift{
		"main": {{ID: "s1", Start: 22, Duration: 2.5, Task: "SET: Late", Team: models.TeamBroadcast}},
	}), testLocations)

	c := cellAt(t, g, 23.0, "main")
	if !c.Occupied {
		t.Error("23:00 cell should be continuation-occupied")
	}
	if len(c.Blocks) != 0 {
		t.Errorf("23:00 cell has %d blocks, want 0", len(c.Blocks))
	}

	start := cellAt(t, g, 22.0, "main")
	if len(start.Blocks) != 1 {
		t.Fatalf("22:00 cell has %d blocks, want 1", len(start.Blocks))
	}
	// 2.5h in a 0.5h slot: the block spans five rows.
	if start.Blocks[0].HeightPct != 500 {
		t.Errorf("HeightPct = %v, want 500", start.Blocks[0].HeightPct)
	}
}

func TestSingleBlockPerShift(t *testing.T) {
	shifts := map[string][]*models.Shift{
		"main": {
			{ID: "doors", Start: 18, Duration: 0, Task: "Doors open", Team: models.TeamBroadcast},
			{ID: "set1", Start: timeline.HM(18, 10), Duration: timeline.Duration(18, 10, 19, 5), Task: "SET: DJ Bliss", Team: models.TeamBroadcast},
			{ID: "late", Start: timeline.HM(23, 30), Duration: timeline.Duration(23, 30, 2, 30), Task: "SET: Closer", Team: models.TeamBroadcast},
			{ID: "dawn", Start: timeline.HM(2, 35), Duration: timeline.Duration(2, 35, 4, 0), Task: "SET: Headliner", Team: models.TeamBroadcast},
		},
	}
	g := Build(day(shifts), testLocations)

	seen := make(map[string]int)
	for _, row := range g.Rows {
		for _, c := range row.Cells {
			for _, b := range c.Blocks {
				seen[b.Shift.ID]++
			}
		}
	}
	for _, s := range shifts["main"] {
		if seen[s.ID] != 1 {
			t.Errorf("shift %q rendered %d times, want exactly 1", s.ID, seen[s.ID])
		}
	}
}

func TestZeroDurationMarkerVisible(t *testing.T) {
	g := Build(day(map[string][]*models.Shift{
		"main": {{ID: "doors", Start: 18, Duration: 0, Task: "Doors open", Team: models.TeamBroadcast}},
	}), testLocations)

	c := cellAt(t, g, 18.0, "main")
	if c.Occupied {
		t.Error("marker slot wrongly continuation-occupied")
	}
	if len(c.Blocks) != 1 {
		t.Fatalf("marker cell has %d blocks, want 1", len(c.Blocks))
	}
	if c.Blocks[0].HeightPct <= 0 {
		t.Errorf("marker HeightPct = %v, want > 0", c.Blocks[0].HeightPct)
	}
	if c.Blocks[0].Shift.Duration != 0 {
		t.Error("display clamp must not alter the underlying duration")
	}

	// The marker does not occupy the following slot.
	next := cellAt(t, g, 18.5, "main")
	if next.Occupied || len(next.Blocks) != 0 {
		t.Errorf("18:30 cell after marker: occupied=%v blocks=%d, want empty", next.Occupied, len(next.Blocks))
	}
}

func TestDoorsAndFirstSetShareSlot(t *testing.T) {
	// Doors at 18:00 and a set at 18:10 both start inside [18.0, 18.5),
	// ascending by start.
	g := Build(day(map[string][]*models.Shift{
		"main": {
			{ID: "set1", Start: timeline.HM(18, 10), Duration: timeline.Duration(18, 10, 19, 5), Task: "SET: DJ Bliss", Team: models.TeamBroadcast},
			{ID: "doors", Start: 18, Duration: 0, Task: "Doors open", Team: models.TeamBroadcast},
		},
	}), testLocations)

	c := cellAt(t, g, 18.0, "main")
	if len(c.Blocks) != 2 {
		t.Fatalf("18:00 cell has %d blocks, want 2", len(c.Blocks))
	}
	if c.Blocks[0].Shift.ID != "doors" || c.Blocks[1].Shift.ID != "set1" {
		t.Errorf("blocks out of order: %s, %s", c.Blocks[0].Shift.ID, c.Blocks[1].Shift.ID)
	}
	if c.Blocks[1].TopPct <= 0 {
		t.Errorf("set starting mid-slot should be offset, TopPct = %v", c.Blocks[1].TopPct)
	}

	// 18:30 is covered by the running set: continuation-occupied.
	next := cellAt(t, g, 18.5, "main")
	if !next.Occupied || len(next.Blocks) != 0 {
		t.Errorf("18:30 cell: occupied=%v blocks=%d, want occupied with no blocks", next.Occupied, len(next.Blocks))
	}
}

func TestCrossMidnightShiftStaysContiguous(t *testing.T) {
	g := Build(day(map[string][]*models.Shift{
		"under": {{ID: "closer", Start: timeline.HM(23, 30), Duration: 3, Task: "SET: Closer", Team: models.TeamBroadcast}},
	}), testLocations)

	start := cellAt(t, g, 23.5, "under")
	if len(start.Blocks) != 1 {
		t.Fatalf("23:30 cell has %d blocks, want 1", len(start.Blocks))
	}
	// Every slot from midnight to 02:00 is continuation-occupied.
	for _, hour := range []float64{0, 0.5, 1, 1.5, 2} {
		c := cellAt(t, g, hour, "under")
		if !c.Occupied || len(c.Blocks) != 0 {
			t.Errorf("%v cell: occupied=%v blocks=%d, want occupied", hour, c.Occupied, len(c.Blocks))
		}
	}
	// 02:30 is past the end.
	after := cellAt(t, g, 2.5, "under")
	if after.Occupied || len(after.Blocks) != 0 {
		t.Error("02:30 cell should be empty after the set ends")
	}
}

func TestTrueOverlapsStackDeterministically(t *testing.T) {
	g := Build(day(map[string][]*models.Shift{
		"main": {
			{ID: "b", Start: 20, Duration: 1, Task: "Micro task B", Team: models.TeamPhoto},
			{ID: "a", Start: 20, Duration: 1, Task: "Micro task A", Team: models.TeamVideo},
		},
	}), testLocations)

	c := cellAt(t, g, 20.0, "main")
	if len(c.Blocks) != 2 {
		t.Fatalf("overlap cell has %d blocks, want 2", len(c.Blocks))
	}
	if c.Blocks[0].Shift.ID != "a" || c.Blocks[1].Shift.ID != "b" {
		t.Errorf("equal starts must order by id: got %s, %s", c.Blocks[0].Shift.ID, c.Blocks[1].Shift.ID)
	}
}

func TestUnknownLocationAndNilDay(t *testing.T) {
	locs := append(testLocations, models.Location{Key: "ghost", Name: "Ghost Stage"})
	g := Build(day(map[string][]*models.Shift{}), locs)
	for _, row := range g.Rows {
		for _, c := range row.Cells {
			if c.Occupied || len(c.Blocks) != 0 {
				t.Fatalf("empty day produced non-empty cell at %v/%s", row.Hour, c.LocationKey)
			}
		}
	}

	g = Build(nil, testLocations)
	if len(g.Rows) == 0 {
		t.Error("nil day must still produce the slot rows")
	}
}
