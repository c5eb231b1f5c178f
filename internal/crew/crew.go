// Package crew resolves the free-text crew tokens carried on shifts into
// per-team headcounts. A token is either an individual roster code ("P2",
// possibly followed by a role hint like "P2 (Main)") or a group wildcard
// ("ALL LEADS", "ALL VIDEO CREW"). Tokens are parsed once into a tagged Ref;
// malformed or unknown tokens contribute nothing rather than failing.
package crew

import (
	"strings"

	"production-brief/internal/models"
)

// Roster maps each team to its fixed list of members.
type Roster map[models.Team][]models.CrewMember

// Size returns the total number of crew members across all teams.
func (r Roster) Size() int {
	n := 0
	for _, members := range r {
		n += len(members)
	}
	return n
}

// RefKind tags a parsed crew token.
type RefKind int

const (
	// Individual references one roster code.
	Individual RefKind = iota
	// GroupVideo expands to the full video team.
	GroupVideo
	// GroupMgmt expands to the full management team.
	GroupMgmt
	// GroupLeads adds one lead per team.
	GroupLeads
	// GroupCrew expands every team to its full roster ("all hands").
	GroupCrew
	// GroupNone is an ALL token with an unrecognized modifier; it is inert.
	GroupNone
)

// Ref is a crew token parsed into its tagged form.
type Ref struct {
	Kind RefKind
	Code string
}

// ParseRef classifies one crew token. The first word is the code; "ALL"
// selects a group by its remaining words, matched case-insensitively.
func ParseRef(token string) Ref {
	words := strings.Fields(token)
	if len(words) == 0 {
		return Ref{Kind: GroupNone}
	}
	code := words[0]
	if code != "ALL" {
		return Ref{Kind: Individual, Code: code}
	}
	modifier := strings.ToUpper(strings.Join(words[1:], " "))
	switch {
	case strings.Contains(modifier, "VIDEO"):
		return Ref{Kind: GroupVideo}
	case strings.Contains(modifier, "MGMT"):
		return Ref{Kind: GroupMgmt}
	case strings.Contains(modifier, "LEADS"):
		return Ref{Kind: GroupLeads}
	case strings.Contains(modifier, "CREW"), strings.Contains(modifier, "UNITS"):
		return Ref{Kind: GroupCrew}
	}
	return Ref{Kind: GroupNone}
}

// Aggregator counts implied crew per team for a shift's token list.
type Aggregator struct {
	roster Roster
	index  map[string]models.Team
}

// NewAggregator builds the roster reverse index once.
func NewAggregator(roster Roster) *Aggregator {
	index := make(map[string]models.Team)
	for team, members := range roster {
		for _, m := range members {
			index[m.Code] = team
		}
	}
	return &Aggregator{roster: roster, index: index}
}

// TeamCounts returns how many individuals each team contributes for the
// given crew tokens. Every team is present in the result, defaulting to 0.
// Unknown codes and unrecognized wildcards are ignored.
func (a *Aggregator) TeamCounts(tokens []string) map[models.Team]int {
	counts := make(map[models.Team]int, len(models.Teams))
	for _, team := range models.Teams {
		counts[team] = 0
	}

	for _, token := range tokens {
		switch ref := ParseRef(token); ref.Kind {
		case Individual:
			if team, ok := a.index[ref.Code]; ok {
				counts[team]++
			}
		case GroupVideo:
			counts[models.TeamVideo] += len(a.roster[models.TeamVideo])
		case GroupMgmt:
			counts[models.TeamMgmt] += len(a.roster[models.TeamMgmt])
		case GroupLeads:
			for _, team := range models.Teams {
				counts[team]++
			}
		case GroupCrew:
			for _, team := range models.Teams {
				counts[team] += len(a.roster[team])
			}
		}
	}
	return counts
}
