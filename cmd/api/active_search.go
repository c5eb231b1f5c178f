package main

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"production-brief/internal/models"
)

type ActiveSearchSignals struct {
	Search     string `json:"search"`
	CrewSearch string `json:"crewSearch"`
	ShotSearch string `json:"shotSearch"`
}

// Levenshtein calculates the Levenshtein distance between two strings.
func Levenshtein(s1, s2 string) int {
	r1, r2 := []rune(s1), []rune(s2)
	n, m := len(r1), len(r2)
	if n > m {
		r1, r2 = r2, r1
		n, m = m, n
	}

	currentRow := make([]int, n+1)
	for i := 0; i <= n; i++ {
		currentRow[i] = i
	}

	for i := 1; i <= m; i++ {
		previousRow := currentRow
		currentRow = make([]int, n+1)
		currentRow[0] = i
		for j := 1; j <= n; j++ {
			add, del, change := previousRow[j]+1, currentRow[j-1]+1, previousRow[j-1]
			if r1[j-1] != r2[i-1] {
				change++
			}
			currentRow[j] = min(add, min(del, change))
		}
	}
	return currentRow[n]
}

func handleActiveSearch(w http.ResponseWriter, r *http.Request) {
	signals := &ActiveSearchSignals{}
	if err := datastar.ReadSignals(r, signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	searchType := r.URL.Query().Get("type")
	var query string

	// Reject unknown types before opening the SSE stream: NewSSE flushes
	// the headers, after which the 400 could no longer be sent.
	switch searchType {
	case "crew":
		query = signals.CrewSearch
	case "shots":
		query = signals.ShotSearch
	default:
		http.Error(w, "Invalid search type", http.StatusBadRequest)
		return
	}
	if query == "" && signals.Search != "" {
		query = signals.Search
	}

	query = strings.ToLower(strings.TrimSpace(query))
	sse := datastar.NewSSE(w, r)

	switch searchType {
	case "crew":
		handleCrewSearch(sse, query)
	case "shots":
		handleShotSearch(sse, query)
	}
}

func handleCrewSearch(sse *datastar.ServerSentEventGenerator, query string) {
	type ScoredMember struct {
		Code  string
		Role  string
		Team  models.Team
		Score int
	}

	var results []ScoredMember

	for _, team := range models.Teams {
		for _, member := range crewRoster[team] {
			if query == "" {
				results = append(results, ScoredMember{Code: member.Code, Role: member.Role, Team: team, Score: 0})
				continue
			}

			code := strings.ToLower(member.Code)
			role := strings.ToLower(member.Role)

			// Simple scoring: contains = 0, fuzzy = distance
			score := 1000
			if strings.Contains(code, query) || strings.Contains(role, query) || strings.Contains(strings.ToLower(string(team)), query) {
				score = 0
			} else {
				dist := min(Levenshtein(query, code), Levenshtein(query, role))
				if dist < 5 {
					score = dist
				}
			}

			if score < 1000 {
				results = append(results, ScoredMember{Code: member.Code, Role: member.Role, Team: team, Score: score})
			}
		}
	}

	slices.SortFunc(results, func(a, b ScoredMember) int {
		return a.Score - b.Score
	})

	if len(results) > 15 {
		results = results[:15]
	}

	var sb strings.Builder
	sb.WriteString(`<div id="crew-results" class="list">`)
	for _, res := range results {
		sb.WriteString(fmt.Sprintf(`
			<div class="row">
				<div class="col">
					<span>%s</span>
					<label>%s &middot; %s</label>
				</div>
			</div>`, res.Code, res.Role, res.Team))
	}
	if len(results) == 0 {
		sb.WriteString(`<div class="padding">No results found</div>`)
	}
	sb.WriteString("</div>")

	sse.PatchElements(sb.String())
}

func handleShotSearch(sse *datastar.ServerSentEventGenerator, query string) {
	type ScoredCategory struct {
		ID    string
		Title string
		Items int
		Score int
	}

	ids := make([]string, 0, len(shotCatalog))
	for id := range shotCatalog {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var results []ScoredCategory

	for _, id := range ids {
		cat := shotCatalog[id]
		if query == "" {
			results = append(results, ScoredCategory{ID: cat.ID, Title: cat.Title, Items: len(cat.Items), Score: 0})
			continue
		}

		title := strings.ToLower(cat.Title)

		score := 1000
		if strings.Contains(title, query) || strings.Contains(id, query) {
			score = 0
		} else {
			matched := false
			for _, item := range cat.Items {
				if strings.Contains(strings.ToLower(item), query) {
					matched = true
					break
				}
			}
			if matched {
				score = 1
			} else {
				dist := Levenshtein(query, title)
				if dist < 5 {
					score = dist
				}
			}
		}

		if score < 1000 {
			results = append(results, ScoredCategory{ID: cat.ID, Title: cat.Title, Items: len(cat.Items), Score: score})
		}
	}

	slices.SortFunc(results, func(a, b ScoredCategory) int {
		return a.Score - b.Score
	})

	if len(results) > 15 {
		results = results[:15]
	}

	var sb strings.Builder
	sb.WriteString(`<div id="shot-results" class="list">`)
	for _, res := range results {
		sb.WriteString(fmt.Sprintf(`
			<div class="row">
				<div class="col">
					<span>%s</span>
					<label>%d shots &middot; %s</label>
				</div>
			</div>`, res.Title, res.Items, res.ID))
	}
	if len(results) == 0 {
		sb.WriteString(`<div class="padding">No results found</div>`)
	}
	sb.WriteString("</div>")

	sse.PatchElements(sb.String())
}
