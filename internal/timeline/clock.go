// Package timeline models the production day: a schedule that starts at a
// fixed anchor hour (09:00) and runs through the following morning (05:00),
// so a set from 23:30 to 02:30 is one continuous interval. Hours below the
// anchor are shifted forward by 24 to form a single increasing axis; this
// holds as long as no schedule spans more than 24 hours.
package timeline

import "fmt"

const (
	// DayStart is the anchor hour of the production day.
	DayStart = 9.0
	// DayEnd is the last displayed hour of the following morning.
	DayEnd = 5.0
	// SlotHours is the grid granularity.
	SlotHours = 0.5
	// MinDisplayDuration clamps the rendered height of marker events so a
	// zero-duration shift stays visible and clickable. The underlying
	// duration is untouched for occupancy math.
	MinDisplayDuration = 0.1

	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// HM builds a fractional hour value from an hour and minute pair.
func HM(h, m int) float64 {
	return float64(h) + float64(m)/minutesPerHour
}

// Linearize maps an hour-of-day onto the production-day axis: hours before
// the anchor belong to the next calendar day and are shifted forward by 24.
func Linearize(hour float64) float64 {
	if hour < DayStart {
		return hour + 24
	}
	return hour
}

// Duration computes elapsed hours from a start to an end wall-clock time.
// An end earlier than the start is taken to be on the next day.
func Duration(startH, startM, endH, endM int) float64 {
	start := startH*minutesPerHour + startM
	end := endH*minutesPerHour + endM
	if end < start {
		end += minutesPerDay
	}
	return float64(end-start) / minutesPerHour
}

// Format renders a fractional hour as a 24h HH:MM string, wrapping values
// outside [0,24) modulo one day. Linearized hours round-trip back to their
// wall-clock form.
func Format(hour float64) string {
	total := ((int(hour*minutesPerHour+0.5) % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", total/minutesPerHour, total%minutesPerHour)
}

// Slots returns the fixed display timeline: half-hour steps from the anchor
// through midnight and on to DayEnd inclusive, in wall-clock hours.
func Slots() []float64 {
	var slots []float64
	for h := DayStart; h < 24; h += SlotHours {
		slots = append(slots, h)
	}
	for h := 0.0; h <= DayEnd; h += SlotHours {
		slots = append(slots, h)
	}
	return slots
}
