// Package schedule holds the per-day shift schedule. All mutation goes
// through Store methods; handlers never splice the underlying slices
// directly.
package schedule

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"production-brief/internal/models"
)

// Source is what the matrix and its handlers need from a schedule backend.
// MemoryStore serves the compiled-in brief; store.PostgresStore serves a
// database-backed one.
type Source interface {
	Day(key string) (*models.DaySchedule, error)
	Days() []*models.DaySchedule
	ShiftsFor(day, location string) []*models.Shift
	AddShift(day, location string, shift *models.Shift) error
}

// ErrUnknownDay is returned for day keys absent from the day index.
var ErrUnknownDay = fmt.Errorf("unknown schedule day")

// NewShiftID generates an id for an ad-hoc shift. View identity only;
// nothing persists across sessions under these ids.
func NewShiftID() string {
	return uuid.NewString()
}

// MemoryStore keeps the schedule in memory, seeded once at startup.
// Single writer per session; the lock covers the handler goroutines.
type MemoryStore struct {
	mu    sync.RWMutex
	days  map[string]*models.DaySchedule
	order []string
}

func NewMemoryStore(days []*models.DaySchedule) *MemoryStore {
	s := &MemoryStore{days: make(map[string]*models.DaySchedule, len(days))}
	for _, d := range days {
		if d.Shifts == nil {
			d.Shifts = make(map[string][]*models.Shift)
		}
		s.days[d.Key] = d
		s.order = append(s.order, d.Key)
	}
	return s
}

// Day looks up one schedule day. Unknown keys are the only failure mode.
func (s *MemoryStore) Day(key string) (*models.DaySchedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.days[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDay, key)
	}
	return d, nil
}

// Days returns all schedule days in seed order.
func (s *MemoryStore) Days() []*models.DaySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.DaySchedule, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.days[key])
	}
	return out
}

// ShiftsFor returns the shifts for a day/location pair. Missing days or
// locations behave as empty, never as errors.
func (s *MemoryStore) ShiftsFor(day, location string) []*models.Shift {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.days[day]
	if !ok {
		return nil
	}
	shifts := d.Shifts[location]
	out := make([]*models.Shift, len(shifts))
	copy(out, shifts)
	return out
}

// AddShift appends a shift to the day/location list. No ordering is
// enforced here; the grid sorts for display.
func (s *MemoryStore) AddShift(day, location string, shift *models.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.days[day]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	d.Shifts[location] = append(d.Shifts[location], shift)
	return nil
}
