package models

// Task is one card on the master-plan kanban board.
type Task struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Time  string `json:"time"`
	Area  string `json:"area"`
	Crew  string `json:"crew"`
	Team  Team   `json:"team"`
}

// Column is one kanban lane holding an ordered list of tasks.
type Column struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Tasks []*Task `json:"tasks"`
}
