package main

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"production-brief/internal/matrix"
	"production-brief/internal/models"
	"production-brief/internal/schedule"
	"production-brief/internal/timeline"
)

type SlotOption struct {
	Value float64
	Label string
}

type ShotList struct {
	Title string
	Items []string
}

type ShiftDetail struct {
	Shift      *models.Shift
	TimeRange  string
	FullSet    bool
	Crew       []string
	TeamCounts []TeamCount
	ShotLists  []ShotList
}

type TeamCount struct {
	Team  models.Team
	Count int
}

type TeamOverview struct {
	Team       models.Team
	RosterSize int
	ShiftCount int
}

type MatrixData struct {
	Days      []*models.DaySchedule
	Day       *models.DaySchedule
	Grid      matrix.Grid
	Detail    *ShiftDetail
	Overview  []TeamOverview
	Slots     []SlotOption
	Durations []float64
	Teams     []models.Team
	Locations []models.Location
}

func handleMatrix(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	days := sched.Days()
	if len(days) == 0 {
		http.Error(w, "No schedule loaded", http.StatusInternalServerError)
		return
	}

	dayKey := r.URL.Query().Get("day")
	if dayKey == "" {
		dayKey = days[0].Key
	}
	day, err := sched.Day(dayKey)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := MatrixData{
		Days:      days,
		Day:       day,
		Grid:      matrix.Build(day, locations),
		Detail:    shiftDetail(day, r.URL.Query().Get("shift")),
		Overview:  teamOverview(day),
		Slots:     slotOptions(),
		Durations: []float64{1, 2, 3, 4},
		Teams:     models.Teams,
		Locations: locations,
	}

	render(w, r, "matrix", data, "ui/templates/matrix.html")
}

func handleAPIMatrixShifts(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	dayKey := r.FormValue("day")
	task := strings.TrimSpace(r.FormValue("task"))
	if task == "" {
		http.Redirect(w, r, "/?day="+dayKey, http.StatusSeeOther)
		return
	}

	start, _ := strconv.ParseFloat(r.FormValue("start"), 64)
	duration, _ := strconv.ParseFloat(r.FormValue("duration"), 64)
	if duration < 1 {
		duration = 1
	}
	if duration > 4 {
		duration = 4
	}

	location := r.FormValue("location")
	team := models.Team(r.FormValue("team"))
	if !validTeam(team) {
		team = models.TeamMgmt
	}

	shift := &models.Shift{
		ID:             schedule.NewShiftID(),
		Start:          start,
		Duration:       duration,
		Task:           task,
		Crew:           []string{strings.ToUpper(string(team)) + " Team"},
		Team:           team,
		Priority:       models.PriorityNormal,
		ShotCategories: []string{"dj_set"},
	}

	if err := sched.AddShift(dayKey, location, shift); err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/?day="+dayKey, http.StatusSeeOther)
}

func validTeam(t models.Team) bool {
	for _, known := range models.Teams {
		if t == known {
			return true
		}
	}
	return false
}

func slotOptions() []SlotOption {
	hours := timeline.Slots()
	opts := make([]SlotOption, 0, len(hours))
	for _, h := range hours {
		opts = append(opts, SlotOption{Value: h, Label: timeline.Format(h)})
	}
	return opts
}

func shiftDetail(day *models.DaySchedule, shiftID string) *ShiftDetail {
	if shiftID == "" {
		return nil
	}
	var found *models.Shift
	for _, loc := range locations {
		for _, s := range day.Shifts[loc.Key] {
			if s.ID == shiftID {
				found = s
				break
			}
		}
	}
	if found == nil {
		return nil
	}

	counts := aggregator.TeamCounts(found.Crew)
	var teamCounts []TeamCount
	for _, t := range models.Teams {
		if counts[t] > 0 {
			teamCounts = append(teamCounts, TeamCount{Team: t, Count: counts[t]})
		}
	}

	var shots []ShotList
	for _, id := range found.ShotCategories {
		cat, ok := shotCatalog[id]
		if !ok {
			continue
		}
		shots = append(shots, ShotList{Title: cat.Title, Items: cat.Items})
	}

	return &ShiftDetail{
		Shift:      found,
		TimeRange:  timeline.Format(found.Start) + " - " + timeline.Format(found.Start+found.Duration),
		FullSet:    strings.HasPrefix(found.Task, "SET:"),
		Crew:       found.Crew,
		TeamCounts: teamCounts,
		ShotLists:  shots,
	}
}

func teamOverview(day *models.DaySchedule) []TeamOverview {
	counts := make(map[models.Team]int)
	for _, loc := range locations {
		for _, s := range day.Shifts[loc.Key] {
			counts[s.Team]++
		}
	}

	overview := make([]TeamOverview, 0, len(models.Teams))
	for _, t := range models.Teams {
		overview = append(overview, TeamOverview{
			Team:       t,
			RosterSize: len(crewRoster[t]),
			ShiftCount: counts[t],
		})
	}
	sort.SliceStable(overview, func(i, j int) bool {
		return overview[i].ShiftCount > overview[j].ShiftCount
	})
	return overview
}
