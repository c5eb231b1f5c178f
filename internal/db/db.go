package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type ScheduleDay struct {
	Key       string
	Label     string
	Date      string
	Position  int32
	CreatedAt time.Time
}

type Shift struct {
	ID             string
	DayKey         string
	LocationKey    string
	StartHour      float64
	DurationHours  float64
	Task           string
	Crew           []string
	Team           string
	Priority       string
	ShotCategories []string
	CreatedAt      time.Time
}

type CrewMember struct {
	Code      string
	Team      string
	Role      string
	CreatedAt time.Time
}

// Queries wraps the raw connection, mimicking sqlc generated code.
type Queries struct {
	db *sql.DB
}

func New(db *sql.DB) *Queries {
	return &Queries{db: db}
}

func (q *Queries) ListScheduleDays(ctx context.Context) ([]ScheduleDay, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT key, label, date, position FROM schedule_days ORDER BY position ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ScheduleDay
	for rows.Next() {
		var i ScheduleDay
		if err := rows.Scan(&i.Key, &i.Label, &i.Date, &i.Position); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (q *Queries) ListShiftsByDay(ctx context.Context, dayKey string) ([]Shift, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT id, day_key, location_key, start_hour, duration_hours, task, crew, team, priority, shot_categories FROM shifts WHERE day_key = $1",
		dayKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Shift
	for rows.Next() {
		var i Shift
		if err := rows.Scan(&i.ID, &i.DayKey, &i.LocationKey, &i.StartHour, &i.DurationHours, &i.Task,
			pq.Array(&i.Crew), &i.Team, &i.Priority, pq.Array(&i.ShotCategories)); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (q *Queries) CreateShift(ctx context.Context, arg Shift) error {
	_, err := q.db.ExecContext(ctx,
		"INSERT INTO shifts (id, day_key, location_key, start_hour, duration_hours, task, crew, team, priority, shot_categories) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
		arg.ID, arg.DayKey, arg.LocationKey, arg.StartHour, arg.DurationHours, arg.Task,
		pq.Array(arg.Crew), arg.Team, arg.Priority, pq.Array(arg.ShotCategories),
	)
	return err
}

func (q *Queries) ListCrewMembers(ctx context.Context) ([]CrewMember, error) {
	rows, err := q.db.QueryContext(ctx, "SELECT code, team, role FROM crew_members ORDER BY team, code")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CrewMember
	for rows.Next() {
		var i CrewMember
		if err := rows.Scan(&i.Code, &i.Team, &i.Role); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
