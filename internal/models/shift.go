package models

// Team is the functional unit a shift belongs to.
type Team string

const (
	TeamBroadcast Team = "broadcast"
	TeamPhoto     Team = "photo"
	TeamVideo     Team = "video"
	TeamDrone     Team = "drone"
	TeamSocial    Team = "social"
	TeamMgmt      Team = "mgmt"
)

// Teams lists every functional team in display order.
var Teams = []Team{TeamBroadcast, TeamPhoto, TeamVideo, TeamDrone, TeamSocial, TeamMgmt}

type Priority string

const (
	PriorityNormal   Priority = "normal"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Shift is one time-boxed unit of work at a location: an artist's set or a
// crew mission. Start is a fractional hour-of-day in [0,24); Duration is in
// hours and may be zero for marker events like "Doors open".
type Shift struct {
	ID             string   `json:"id"`
	Start          float64  `json:"start"`
	Duration       float64  `json:"duration"`
	Task           string   `json:"task"`
	Crew           []string `json:"crew"`
	Team           Team     `json:"team"`
	Priority       Priority `json:"priority"`
	ShotCategories []string `json:"shot_categories,omitempty"`
}
