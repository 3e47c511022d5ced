// internal/search/strategy_fuzzy.go
package search

import (
	"context"
	"strings"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/feed"
)

// fuzzyStopWords are tokens dropped before phrase extraction and keyword
// matching. Shared with the other strategies' keyword filters.
var fuzzyStopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "near": true,
	"tickets": true, "ticket": true, "show": true, "shows": true,
	"get": true, "find": true, "see": true, "want": true, "going": true,
	"this": true, "that": true, "next": true, "some": true, "any": true,
	"tonight": true, "weekend": true, "event": true, "events": true,
}

// genericEntertainmentWords lower the acceptance bar when they appear in the
// candidate event's own name.
var genericEntertainmentWords = []string{
	"concert", "tour", "live", "festival", "comedy", "standup", "musical",
}

// Per-phrase match weights. Multi-word phrase hits are strong signals; the
// exact values are tuned, not derived.
const (
	fuzzyWeightPerWord = 3
	maxPhraseWords     = 3
)

// fuzzyFallback is strategy 5, the last resort for entertainment queries
// nothing else matched: sweep the candidate locations, then score each event
// name by weighted overlap with 1-to-3-word phrases drawn from the query.
type fuzzyFallback struct{}

func (s *fuzzyFallback) Name() string { return "fuzzy_fallback" }

func (s *fuzzyFallback) Applicable(sc *Context) bool {
	return len(sc.Resolved.EventTypeHints) > 0 && len(queryKeywords(sc.Req.Query)) > 0
}

func (s *fuzzyFallback) Attempt(ctx context.Context, sc *Context) ([]feed.Event, error) {
	phrases := candidatePhrases(sc.Req.Query, sc.Config.FuzzyMinTokenChars)
	if len(phrases) == 0 {
		return nil, nil
	}

	gte, lt := broadWindow(sc)
	var events []feed.Event

	for _, loc := range candidateLocations(sc) {
		sc.CountFeedCall()
		resp, err := sc.Feed.ListEvents(ctx, feed.ListEventsParams{
			Lat:         loc.Lat,
			Lon:         loc.Lon,
			WithinMiles: sc.Config.BroadRadiusMiles,
			OccursAtGTE: gte,
			OccursAtLT:  lt,
		})
		if err != nil {
			sc.Logger.Warn("fuzzy location search failed", map[string]interface{}{
				"location": loc.Label,
				"error":    err.Error(),
			})
			continue
		}

		for _, event := range resp.Events {
			score := fuzzyScore(event.Name, phrases)
			if score >= acceptThreshold(sc, event.Name) {
				events = append(events, event)
			}
		}
	}

	return events, nil
}

// candidatePhrases extracts every 1-to-3-word window of the stop-word-filtered
// query tokens, longest phrases first so they score before their sub-phrases.
func candidatePhrases(query string, minTokenChars int) []string {
	if minTokenChars <= 0 {
		minTokenChars = 4
	}

	var tokens []string
	for _, token := range strings.Fields(query) {
		norm := catalog.Normalize(token)
		if len(norm) >= minTokenChars && !fuzzyStopWords[norm] {
			tokens = append(tokens, norm)
		}
	}

	var phrases []string
	for size := maxPhraseWords; size >= 1; size-- {
		for i := 0; i+size <= len(tokens); i++ {
			phrases = append(phrases, strings.Join(tokens[i:i+size], " "))
		}
	}
	return phrases
}

// fuzzyScore sums weighted phrase hits against the event name. A phrase of n
// words contributes n*n*fuzzyWeightPerWord, and once a longer phrase matches
// its constituent words are not re-counted via shorter phrases.
func fuzzyScore(name string, phrases []string) int {
	norm := catalog.Normalize(name)
	score := 0
	consumed := make(map[string]bool)

	for _, phrase := range phrases {
		if !strings.Contains(norm, phrase) {
			continue
		}
		words := strings.Fields(phrase)
		covered := true
		for _, word := range words {
			if !consumed[word] {
				covered = false
			}
		}
		if covered {
			continue
		}
		for _, word := range words {
			consumed[word] = true
		}
		score += len(words) * len(words) * fuzzyWeightPerWord
	}
	return score
}

// acceptThreshold picks the configured bar, dropping to the generic one when
// the event's own name signals entertainment content.
func acceptThreshold(sc *Context, name string) int {
	accept := sc.Config.FuzzyAcceptScore
	if accept <= 0 {
		accept = 12
	}
	generic := sc.Config.FuzzyGenericScore
	if generic <= 0 {
		generic = 8
	}

	norm := catalog.Normalize(name)
	for _, word := range genericEntertainmentWords {
		if strings.Contains(norm, word) {
			return generic
		}
	}
	return accept
}
