// internal/ranking/scorer.go
// Package ranking orders candidate events by additive relevance and drops
// non-event inventory (parking, private functions) before presentation.
package ranking

import (
	"sort"
	"strings"
	"time"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/feed"
	"ticket-scout/internal/resolver"
)

// Score contributions. Tuned values, kept in one place.
const (
	scoreExactQueryMatch  = 100
	scoreKeywordInName    = 10
	scoreKeywordInVenue   = 5
	scoreLocationMatch    = 15
	scoreHeadToHead       = 40
	scoreParkingPenalty   = -25
	scoreDateWithinDay    = 20
	scoreDateWithinWeek   = 10
	scoreDateWithinMonth  = 5
	minScoreKeywordLength = 2
)

// ScoredEvent pairs a candidate with its relevance score. Higher is better;
// negative contributions are allowed.
type ScoredEvent struct {
	Event          feed.Event `json:"event"`
	RelevanceScore int        `json:"relevanceScore"`
}

// Params carries the request context the scorer ranks against.
type Params struct {
	Query    string
	Location string
	Date     *time.Time
}

type Ranker struct {
	catalog *catalog.Catalog
}

func NewRanker(cat *catalog.Catalog) *Ranker {
	return &Ranker{catalog: cat}
}

// Rank scores every candidate and returns them sorted by descending score.
// The sort is stable, so equal scores keep their collection order and the
// whole pass is deterministic.
func (r *Ranker) Rank(events []feed.Event, resolved *resolver.ResolvedQuery, p Params) []ScoredEvent {
	scored := make([]ScoredEvent, 0, len(events))
	for _, event := range events {
		scored = append(scored, ScoredEvent{
			Event:          event,
			RelevanceScore: r.score(event, resolved, p),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	return scored
}

func (r *Ranker) score(event feed.Event, resolved *resolver.ResolvedQuery, p Params) int {
	name := catalog.Normalize(event.Name)
	venueName := catalog.Normalize(event.Venue.Name)
	venueCity := catalog.Normalize(event.Venue.City)
	score := 0

	if query := catalog.Normalize(p.Query); query != "" && strings.Contains(name, query) {
		score += scoreExactQueryMatch
	}

	for _, keyword := range distinctKeywords(p.Query) {
		if strings.Contains(name, keyword) {
			score += scoreKeywordInName
		}
		if strings.Contains(venueName, keyword) {
			score += scoreKeywordInVenue
		}
	}

	if location := catalog.Normalize(p.Location); location != "" {
		if strings.Contains(venueName, location) || strings.Contains(venueCity, location) {
			score += scoreLocationMatch
		}
	}

	if len(resolved.ResolvedTeams) == 2 && r.mentionsTeam(name, resolved.ResolvedTeams[0]) && r.mentionsTeam(name, resolved.ResolvedTeams[1]) {
		score += scoreHeadToHead
	}

	if strings.Contains(name, "parking") {
		score += scoreParkingPenalty
	}

	if p.Date != nil {
		score += dateProximityBonus(*p.Date, event.OccursAt)
	}

	return score
}

func (r *Ranker) mentionsTeam(normName, teamKey string) bool {
	for _, alias := range r.catalog.TeamAliases(teamKey) {
		norm := catalog.Normalize(alias)
		if norm != "" && strings.Contains(normName, norm) {
			return true
		}
	}
	return false
}

func dateProximityBonus(wanted, occurs time.Time) int {
	delta := occurs.Sub(wanted)
	if delta < 0 {
		delta = -delta
	}
	switch {
	case delta <= 24*time.Hour:
		return scoreDateWithinDay
	case delta <= 7*24*time.Hour:
		return scoreDateWithinWeek
	case delta <= 30*24*time.Hour:
		return scoreDateWithinMonth
	}
	return 0
}

// distinctKeywords returns the unique normalized query tokens longer than two
// characters, preserving first-seen order.
func distinctKeywords(query string) []string {
	var keywords []string
	seen := make(map[string]bool)
	for _, token := range strings.Fields(query) {
		norm := catalog.Normalize(token)
		if len(norm) <= minScoreKeywordLength || seen[norm] {
			continue
		}
		seen[norm] = true
		keywords = append(keywords, norm)
	}
	return keywords
}
