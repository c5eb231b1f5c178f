package main

import (
	"net/http"
	"strings"

	"production-brief/internal/models"
	"production-brief/internal/schedule"
)

type BoardData struct {
	Columns []*models.Column
	Teams   []models.Team
}

func handleBoard(w http.ResponseWriter, r *http.Request) {
	boardMu.RLock()
	// Deep-ish copy so the template never races with a move.
	cols := make([]*models.Column, len(boardColumns))
	for i, c := range boardColumns {
		tasks := make([]*models.Task, len(c.Tasks))
		copy(tasks, c.Tasks)
		cols[i] = &models.Column{ID: c.ID, Title: c.Title, Tasks: tasks}
	}
	boardMu.RUnlock()

	render(w, r, "board", BoardData{Columns: cols, Teams: models.Teams}, "ui/templates/board.html")
}

func handleAPIBoardTasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		http.Redirect(w, r, "/board", http.StatusSeeOther)
		return
	}

	columnID := r.FormValue("column")
	team := models.Team(r.FormValue("team"))
	if !validTeam(team) {
		team = models.TeamMgmt
	}

	task := &models.Task{
		ID:    schedule.NewShiftID(),
		Title: title,
		Time:  r.FormValue("time"),
		Area:  r.FormValue("area"),
		Crew:  r.FormValue("crew"),
		Team:  team,
	}

	boardMu.Lock()
	for _, c := range boardColumns {
		if c.ID == columnID {
			c.Tasks = append(c.Tasks, task)
			break
		}
	}
	boardMu.Unlock()

	http.Redirect(w, r, "/board", http.StatusSeeOther)
}

func handleBoardMove(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	taskID := r.FormValue("task")
	targetID := r.FormValue("target")

	boardMu.Lock()
	var moved *models.Task
	var origin *models.Column
	for _, c := range boardColumns {
		for i, t := range c.Tasks {
			if t.ID == taskID {
				moved = t
				origin = c
				c.Tasks = append(c.Tasks[:i], c.Tasks[i+1:]...)
				break
			}
		}
		if moved != nil {
			break
		}
	}
	if moved != nil {
		dest := origin
		for _, c := range boardColumns {
			if c.ID == targetID {
				dest = c
				break
			}
		}
		// Unknown target keeps the task in its origin column.
		dest.Tasks = append(dest.Tasks, moved)
	}
	boardMu.Unlock()

	http.Redirect(w, r, "/board", http.StatusSeeOther)
}
