package main

import (
	"net/http"

	"production-brief/internal/models"
)

type TimelineData struct {
	Phases []phase
}

func handleTimeline(w http.ResponseWriter, r *http.Request) {
	render(w, r, "timeline", TimelineData{Phases: operationPhases}, "ui/templates/timeline.html")
}

type BriefsData struct {
	Mission string
	Briefs  []teamBrief
	Roster  map[models.Team][]models.CrewMember
	Teams   []models.Team
}

func handleBriefs(w http.ResponseWriter, r *http.Request) {
	render(w, r, "briefs", BriefsData{
		Mission: missionStatement,
		Briefs:  teamBriefs,
		Roster:  crewRoster,
		Teams:   models.Teams,
	}, "ui/templates/briefs.html")
}

type ChecklistsData struct {
	Photo []checklistSection
	Video []string
}

func handleChecklists(w http.ResponseWriter, r *http.Request) {
	render(w, r, "checklists", ChecklistsData{
		Photo: photoChecklist,
		Video: videoChecklist,
	}, "ui/templates/checklists.html")
}

type ContactsData struct {
	Contacts []contact
}

func handleContacts(w http.ResponseWriter, r *http.Request) {
	render(w, r, "contacts", ContactsData{Contacts: contacts}, "ui/templates/contacts.html")
}
