// Package store provides the Postgres-backed schedule source for
// deployments that keep the brief in a database instead of the compiled-in
// seed data. It satisfies the same interface as the in-memory store.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"production-brief/internal/crew"
	"production-brief/internal/db"
	"production-brief/internal/models"
	"production-brief/internal/schedule"
)

type PostgresStore struct {
	q *db.Queries
}

func NewPostgresStore(conn *sql.DB) *PostgresStore {
	return &PostgresStore{q: db.New(conn)}
}

func (s *PostgresStore) Day(key string) (*models.DaySchedule, error) {
	days, err := s.q.ListScheduleDays(context.Background())
	if err != nil {
		return nil, err
	}
	for _, d := range days {
		if d.Key == key {
			return s.loadDay(d)
		}
	}
	return nil, fmt.Errorf("%w: %q", schedule.ErrUnknownDay, key)
}

func (s *PostgresStore) Days() []*models.DaySchedule {
	rows, err := s.q.ListScheduleDays(context.Background())
	if err != nil {
		log.Printf("Failed to list schedule days: %v", err)
		return nil
	}
	var days []*models.DaySchedule
	for _, row := range rows {
		d, err := s.loadDay(row)
		if err != nil {
			log.Printf("Failed to load schedule day %q: %v", row.Key, err)
			continue
		}
		days = append(days, d)
	}
	return days
}

func (s *PostgresStore) ShiftsFor(day, location string) []*models.Shift {
	rows, err := s.q.ListShiftsByDay(context.Background(), day)
	if err != nil {
		log.Printf("Failed to list shifts for day %q: %v", day, err)
		return nil
	}
	var shifts []*models.Shift
	for _, row := range rows {
		if row.LocationKey == location {
			shifts = append(shifts, shiftFromRow(row))
		}
	}
	return shifts
}

func (s *PostgresStore) AddShift(day, location string, shift *models.Shift) error {
	return s.q.CreateShift(context.Background(), db.Shift{
		ID:             shift.ID,
		DayKey:         day,
		LocationKey:    location,
		StartHour:      shift.Start,
		DurationHours:  shift.Duration,
		Task:           shift.Task,
		Crew:           shift.Crew,
		Team:           string(shift.Team),
		Priority:       string(shift.Priority),
		ShotCategories: shift.ShotCategories,
	})
}

// Roster loads the crew roster, for deployments that manage it in the
// database alongside the schedule.
func (s *PostgresStore) Roster() (crew.Roster, error) {
	rows, err := s.q.ListCrewMembers(context.Background())
	if err != nil {
		return nil, err
	}
	roster := make(crew.Roster)
	for _, row := range rows {
		team := models.Team(row.Team)
		roster[team] = append(roster[team], models.CrewMember{Code: row.Code, Role: row.Role})
	}
	return roster, nil
}

func (s *PostgresStore) loadDay(row db.ScheduleDay) (*models.DaySchedule, error) {
	shiftRows, err := s.q.ListShiftsByDay(context.Background(), row.Key)
	if err != nil {
		return nil, err
	}
	day := &models.DaySchedule{
		Key:    row.Key,
		Label:  row.Label,
		Date:   row.Date,
		Shifts: make(map[string][]*models.Shift),
	}
	for _, sr := range shiftRows {
		day.Shifts[sr.LocationKey] = append(day.Shifts[sr.LocationKey], shiftFromRow(sr))
	}
	return day, nil
}

func shiftFromRow(row db.Shift) *models.Shift {
	return &models.Shift{
		ID:             row.ID,
		Start:          row.StartHour,
		Duration:       row.DurationHours,
		Task:           row.Task,
		Crew:           row.Crew,
		Team:           models.Team(row.Team),
		Priority:       models.Priority(row.Priority),
		ShotCategories: row.ShotCategories,
	}
}
