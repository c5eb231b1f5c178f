package main

import (
	"database/sql"
	"html/template"
	"log"
	"net/http"
	"os"
	"sync"

	_ "github.com/lib/pq"

	"production-brief/internal/commands"
	"production-brief/internal/crew"
	"production-brief/internal/middleware"
	"production-brief/internal/models"
	"production-brief/internal/schedule"
	"production-brief/internal/store"
)

var (
	// Schedule for the matrix. The memory store serves the compiled-in
	// brief; a Postgres-backed store (internal/store) can be swapped in
	// behind the same interface.
	sched schedule.Source

	aggregator *crew.Aggregator

	// Kanban master plan.
	boardMu      sync.RWMutex
	boardColumns []*models.Column
)

func init() {
	sched = schedule.NewMemoryStore(seedDays())
	aggregator = crew.NewAggregator(crewRoster)
	boardColumns = seedBoard()
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		commands.HashPassword(os.Args[2:])
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := loadGateSecret(); err != nil {
		log.Fatalf("Failed to load gate secret: %v", err)
	}

	// DATABASE_URL switches the schedule to Postgres; without it the
	// compiled-in brief from data.go serves everything.
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		conn, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		if err := conn.Ping(); err != nil {
			log.Fatalf("Failed to reach database: %v", err)
		}
		pg := store.NewPostgresStore(conn)
		sched = pg
		if roster, err := pg.Roster(); err == nil && len(roster) > 0 {
			aggregator = crew.NewAggregator(roster)
		}
		log.Print("Schedule source: postgres")
	}

	http.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("ui/static"))))
	http.HandleFunc("/login", middleware.CSRF(handleLogin))

	protect := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.Gate(gateEnabled, middleware.CSRF(h))
	}

	http.HandleFunc("/", protect(handleMatrix))
	http.HandleFunc("/api/matrix/shifts", protect(handleAPIMatrixShifts))

	http.HandleFunc("/timeline", protect(handleTimeline))

	http.HandleFunc("/board", protect(handleBoard))
	http.HandleFunc("/api/board/tasks", protect(handleAPIBoardTasks))
	http.HandleFunc("/api/board/move", protect(handleBoardMove))

	http.HandleFunc("/briefs", protect(handleBriefs))
	http.HandleFunc("/checklists", protect(handleChecklists))
	http.HandleFunc("/contacts", protect(handleContacts))

	http.HandleFunc("/api/search", protect(handleActiveSearch))

	log.Printf("Production brief server started on :%s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func resolveTemplatePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Tests run from cmd/api.
		p2 := "../../" + path
		if _, err := os.Stat(p2); err == nil {
			return p2
		}
	}
	return path
}

func render(w http.ResponseWriter, r *http.Request, tmplName string, data interface{}, files ...string) {
	allFiles := []string{resolveTemplatePath("ui/templates/layout.html")}
	for _, f := range files {
		allFiles = append(allFiles, resolveTemplatePath(f))
	}

	tmpl, err := template.ParseFiles(allFiles...)
	if err != nil {
		http.Error(w, "Template Parse Error: "+err.Error(), http.StatusInternalServerError)
		return
	}

	token, _ := r.Context().Value(middleware.CSRFTokenKey).(string)
	wrapper := struct {
		Data      interface{}
		CSRFToken string
	}{
		Data:      data,
		CSRFToken: token,
	}

	if err := tmpl.ExecuteTemplate(w, "layout", wrapper); err != nil {
		http.Error(w, "Template Execute Error: "+err.Error(), http.StatusInternalServerError)
	}
}
