// internal/ranking/livefilter.go
package ranking

import (
	"strings"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/feed"
)

// nonEventKeywords mark inventory that is not a ticketed occurrence.
var nonEventKeywords = []string{
	"parking", "lot", "garage", "shuttle",
	"private party", "wedding", "funeral",
	"auction", "raffle",
}

var sportsIndicators = []string{
	"vs", "at", "versus",
	"nba", "nfl", "mlb", "nhl", "mls", "ncaa",
	"playoff", "playoffs", "championship", "finals", "series", "bowl",
	"boxing", "ufc", "wrestling",
}

var entertainmentIndicators = []string{
	"concert", "tour", "festival", "live", "comedy", "standup", "stand up",
	"broadway", "musical", "symphony", "orchestra", "opera", "ballet",
	"residency",
}

// LiveEventFilter is the second, independent pass after scoring: it drops
// anything that is not a real sports or entertainment occurrence, no matter
// how well it scored.
type LiveEventFilter struct {
	catalog *catalog.Catalog
}

func NewLiveEventFilter(cat *catalog.Catalog) *LiveEventFilter {
	return &LiveEventFilter{catalog: cat}
}

// Apply keeps only live events, preserving input order. Excluded counts per
// reason are returned for caller transparency.
func (f *LiveEventFilter) Apply(scored []ScoredEvent) ([]ScoredEvent, map[string]int) {
	kept := make([]ScoredEvent, 0, len(scored))
	removed := make(map[string]int)

	for _, candidate := range scored {
		if reason, excluded := f.exclusionReason(candidate.Event); excluded {
			removed[reason]++
			continue
		}
		kept = append(kept, candidate)
	}
	return kept, removed
}

// IsLiveEvent reports whether a single event would survive the filter.
func (f *LiveEventFilter) IsLiveEvent(event feed.Event) bool {
	_, excluded := f.exclusionReason(event)
	return !excluded
}

func (f *LiveEventFilter) exclusionReason(event feed.Event) (string, bool) {
	// Padded for whole-word matching: "lot" must not match inside "charlotte".
	name := " " + catalog.Normalize(event.Name) + " "

	for _, keyword := range nonEventKeywords {
		if containsWord(name, keyword) {
			return "non_event_keyword", true
		}
	}

	if f.hasSportsIndicator(name) || f.hasEntertainmentIndicator(name) {
		return "", false
	}
	return "no_live_indicator", true
}

func (f *LiveEventFilter) hasSportsIndicator(name string) bool {
	for _, indicator := range sportsIndicators {
		if containsWord(name, indicator) {
			return true
		}
	}

	found := false
	f.catalog.EachTeamAlias(func(alias, teamKey string) {
		if !found && containsWord(name, alias) {
			found = true
		}
	})
	return found
}

func (f *LiveEventFilter) hasEntertainmentIndicator(name string) bool {
	for _, indicator := range entertainmentIndicators {
		if containsWord(name, indicator) {
			return true
		}
	}

	found := false
	f.catalog.EachArtistAlias(func(alias, artistKey string) {
		if !found && containsWord(name, alias) {
			found = true
		}
	})
	return found
}

// containsWord expects name to be normalized and space-padded.
func containsWord(name, word string) bool {
	return strings.Contains(name, " "+word+" ")
}
