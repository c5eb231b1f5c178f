package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func searchRequest(t *testing.T, searchType string, signals map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	signalsJSON, _ := json.Marshal(signals)
	query := url.Values{}
	query.Set("type", searchType)
	query.Set("datastar", string(signalsJSON))

	req, err := http.NewRequest("GET", "/api/search?"+query.Encode(), nil)
	if err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	http.HandlerFunc(handleActiveSearch).ServeHTTP(rr, req)
	return rr
}

func TestHandleActiveSearch_Crew(t *testing.T) {
	rr := searchRequest(t, "crew", map[string]string{"crewSearch": "drone"})

	if rr.Code != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "D1") || !strings.Contains(body, "Drone FPV") {
		t.Errorf("handler returned unexpected body: does not contain drone crew. Body: %s", body)
	}
	if strings.Contains(body, "Photo Lead") {
		t.Errorf("unrelated crew leaked into results: %s", body)
	}
}

func TestHandleActiveSearch_CrewByCode(t *testing.T) {
	rr := searchRequest(t, "crew", map[string]string{"crewSearch": "b2"})

	if !strings.Contains(rr.Body.String(), "Cam 1 (Front)") {
		t.Errorf("code search missed B2: %s", rr.Body.String())
	}
}

func TestHandleActiveSearch_Shots(t *testing.T) {
	rr := searchRequest(t, "shots", map[string]string{"shotSearch": "wristband"})

	if rr.Code != http.StatusOK {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	// "wristband" appears in titles and items of the id category.
	if !strings.Contains(rr.Body.String(), "Wristbands / Passes / ID") {
		t.Errorf("shot search missed wristband category: %s", rr.Body.String())
	}
}

func TestHandleActiveSearch_InvalidType(t *testing.T) {
	rr := searchRequest(t, "bogus", map[string]string{"search": "x"})
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid type, got %d", rr.Code)
	}
	// The stream must not have been opened before the rejection.
	if ct := rr.Header().Get("Content-Type"); strings.Contains(ct, "text/event-stream") {
		t.Errorf("invalid type opened an SSE stream: Content-Type %q", ct)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"a", "a", 0},
		{"", "abc", 3},
	}

	for _, tt := range tests {
		if got := Levenshtein(tt.s1, tt.s2); got != tt.want {
			t.Errorf("Levenshtein(%q, %q) = %v, want %v", tt.s1, tt.s2, got, tt.want)
		}
	}
}
