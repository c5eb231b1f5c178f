package models

// CrewMember is one entry in the fixed crew roster, e.g. code "P2" on the
// photo team. Roster data is static reference data, never mutated at runtime.
type CrewMember struct {
	Code string `json:"code"`
	Role string `json:"role"`
}

// ShotCategory is a static checklist of shots referenced by id from shifts.
type ShotCategory struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}
