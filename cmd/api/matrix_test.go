package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"production-brief/internal/schedule"
)

func resetSchedule() {
	sched = schedule.NewMemoryStore(seedDays())
}

func TestHandleAPIMatrixShifts(t *testing.T) {
	resetSchedule()
	before := len(sched.ShiftsFor("build", "main"))

	form := url.Values{}
	form.Add("day", "build")
	form.Add("location", "main")
	form.Add("task", "Extra Pyro Coverage")
	form.Add("start", "14")
	form.Add("duration", "2")
	form.Add("team", "video")

	req := httptest.NewRequest("POST", "/api/matrix/shifts", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handleAPIMatrixShifts(w, req)

	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected redirect 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/?day=build" {
		t.Errorf("Redirect location mismatch: %s", loc)
	}

	shifts := sched.ShiftsFor("build", "main")
	if len(shifts) != before+1 {
		t.Fatalf("Expected %d shifts, got %d", before+1, len(shifts))
	}
	s := shifts[len(shifts)-1]
	if s.Task != "Extra Pyro Coverage" {
		t.Errorf("Task mismatch: %s", s.Task)
	}
	if s.Start != 14 || s.Duration != 2 {
		t.Errorf("Time mismatch: start %v duration %v", s.Start, s.Duration)
	}
	if s.ID == "" {
		t.Error("Expected generated shift ID")
	}
}

func TestHandleAPIMatrixShiftsEmptyTask(t *testing.T) {
	resetSchedule()
	before := len(sched.ShiftsFor("build", "main"))

	form := url.Values{}
	form.Add("day", "build")
	form.Add("location", "main")
	form.Add("task", "   ")

	req := httptest.NewRequest("POST", "/api/matrix/shifts", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	handleAPIMatrixShifts(w, req)

	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected redirect 303, got %d", w.Code)
	}
	if got := len(sched.ShiftsFor("build", "main")); got != before {
		t.Errorf("Blank task should not add a shift: %d -> %d", before, got)
	}
}

func TestHandleAPIMatrixShiftsDurationClamped(t *testing.T) {
	resetSchedule()

	form := url.Values{}
	form.Add("day", "build")
	form.Add("location", "hq")
	form.Add("task", "Marathon")
	form.Add("start", "12")
	form.Add("duration", "9")
	form.Add("team", "mgmt")

	req := httptest.NewRequest("POST", "/api/matrix/shifts", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	handleAPIMatrixShifts(httptest.NewRecorder(), req)

	shifts := sched.ShiftsFor("build", "hq")
	s := shifts[len(shifts)-1]
	if s.Duration != 4 {
		t.Errorf("Expected duration clamped to 4, got %v", s.Duration)
	}
}

func TestHandleMatrixRendersGrid(t *testing.T) {
	resetSchedule()

	req := httptest.NewRequest("GET", "/?day=wk1_thu", nil)
	w := httptest.NewRecorder()
	handleMatrix(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{"SET: DJ Bliss", "SET: Alesso", "Freak Stage (Main)", "Underground"} {
		if !strings.Contains(body, want) {
			t.Errorf("Body missing %q", want)
		}
	}
}

func TestHandleMatrixUnknownDayRedirects(t *testing.T) {
	resetSchedule()

	req := httptest.NewRequest("GET", "/?day=nope", nil)
	w := httptest.NewRecorder()
	handleMatrix(w, req)

	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected redirect 303, got %d", w.Code)
	}
}

func TestShiftDetail(t *testing.T) {
	resetSchedule()
	day, err := sched.Day("wk1_thu")
	if err != nil {
		t.Fatal(err)
	}

	detail := shiftDetail(day, "wk1_thu_main_3")
	if detail == nil {
		t.Fatal("Expected detail for known shift")
	}
	if !detail.FullSet {
		t.Error("SET: prefixed task should flag full set recording")
	}
	if detail.TimeRange != "18:10 - 19:05" {
		t.Errorf("TimeRange mismatch: %s", detail.TimeRange)
	}
	if len(detail.ShotLists) != 1 || detail.ShotLists[0].Title != shotCatalog["dj_set"].Title {
		t.Errorf("Expected dj_set shot list, got %+v", detail.ShotLists)
	}

	if shiftDetail(day, "missing") != nil {
		t.Error("Unknown shift id should yield nil detail")
	}
	if shiftDetail(day, "") != nil {
		t.Error("Empty shift id should yield nil detail")
	}
}

func TestTeamOverviewCountsShifts(t *testing.T) {
	resetSchedule()
	day, err := sched.Day("build")
	if err != nil {
		t.Fatal(err)
	}

	overview := teamOverview(day)
	total := 0
	for _, o := range overview {
		total += o.ShiftCount
	}
	want := 0
	for _, loc := range locations {
		want += len(day.Shifts[loc.Key])
	}
	if total != want {
		t.Errorf("Overview counts %d shifts, day has %d", total, want)
	}
	for i := 1; i < len(overview); i++ {
		if overview[i].ShiftCount > overview[i-1].ShiftCount {
			t.Error("Overview not sorted by shift count")
			break
		}
	}
}
