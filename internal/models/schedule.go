package models

// Location is a named venue zone used as a column in the production matrix.
// The set of locations is fixed for a deployment.
type Location struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// DaySchedule holds every shift for one scheduling day, keyed by location.
type DaySchedule struct {
	Key    string              `json:"key"`
	Label  string              `json:"label"`
	Date   string              `json:"date"`
	Shifts map[string][]*Shift `json:"shifts"`
}
