// internal/resolver/resolver.go
// Package resolver turns a free-text query into resolved catalog entities,
// event-type hints and ambiguity flags.
package resolver

import (
	"sort"
	"strings"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/common/logger"
)

// partialMinTokenChars is the minimum token length considered in the
// partial-match fallback. Empirically tuned; treat as approximate.
const partialMinTokenChars = 4

// maxPhraseTokens bounds candidate phrase length; multi-word names in the
// catalog never exceed four tokens.
const maxPhraseTokens = 4

type Resolver struct {
	catalog *catalog.Catalog
	logger  logger.Logger
}

func New(cat *catalog.Catalog, log logger.Logger) *Resolver {
	return &Resolver{
		catalog: cat,
		logger:  log.WithFields(map[string]interface{}{"component": "resolver"}),
	}
}

// Resolve parses the query once. The returned value is never mutated after
// this call.
func (r *Resolver) Resolve(query string) *ResolvedQuery {
	resolved := &ResolvedQuery{
		OriginalText:    query,
		ResolvedTeams:   []string{},
		ResolvedArtists: []string{},
		ResolvedVenues:  []string{},
		EventTypeHints:  []string{},
	}

	tokens := strings.Fields(query)
	if len(tokens) == 0 {
		return resolved
	}

	// Exact alias pass over candidate phrases of 1..4 contiguous tokens.
	// Longer phrases run first so "new york yankees" wins over "new york".
	// Matches are collected with their token position and emitted in query
	// order: "Yankees at Red Sox" must resolve to [yankees, red-sox] so the
	// matchup strategy can read home and away off the list.
	type aliasMatch struct {
		ref   catalog.Ref
		start int
	}
	var matches []aliasMatch
	seen := map[catalog.Ref]bool{}
	for length := maxPhraseTokens; length >= 1; length-- {
		for start := 0; start+length <= len(tokens); start++ {
			phrase := strings.Join(tokens[start:start+length], " ")
			ref, ok := r.catalog.LookupAlias(phrase)
			if !ok || seen[ref] {
				continue
			}
			seen[ref] = true
			matches = append(matches, aliasMatch{ref: ref, start: start})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})
	for _, m := range matches {
		r.addRef(resolved, m.ref)
	}

	// Partial fallback when nothing exact resolved for teams or artists:
	// tokens of length >= 4 tested by substring containment against the
	// leading word of every known alias.
	if len(resolved.ResolvedTeams) == 0 && len(resolved.ResolvedArtists) == 0 {
		r.partialPass(resolved, tokens, seen)
	}

	r.detectHints(resolved, tokens)
	r.detectAmbiguity(resolved, tokens)

	r.logger.Debug("query resolved", map[string]interface{}{
		"query":     query,
		"teams":     resolved.ResolvedTeams,
		"artists":   resolved.ResolvedArtists,
		"venues":    resolved.ResolvedVenues,
		"hints":     resolved.EventTypeHints,
		"ambiguous": resolved.IsAmbiguous,
	})

	return resolved
}

func (r *Resolver) addRef(resolved *ResolvedQuery, ref catalog.Ref) {
	switch ref.Kind {
	case catalog.KindTeam:
		resolved.ResolvedTeams = append(resolved.ResolvedTeams, ref.Key)
	case catalog.KindArtist:
		resolved.ResolvedArtists = append(resolved.ResolvedArtists, ref.Key)
	case catalog.KindVenue:
		resolved.ResolvedVenues = append(resolved.ResolvedVenues, ref.Key)
	}
}

func (r *Resolver) partialPass(resolved *ResolvedQuery, tokens []string, seen map[catalog.Ref]bool) {
	for _, token := range tokens {
		norm := catalog.Normalize(token)
		if len(norm) < partialMinTokenChars || stopWords[norm] {
			continue
		}

		r.catalog.EachTeamAlias(func(alias, teamKey string) {
			leading := leadingWord(alias)
			if len(leading) < partialMinTokenChars {
				return
			}
			if strings.Contains(leading, norm) || strings.Contains(norm, leading) {
				ref := catalog.Ref{Kind: catalog.KindTeam, Key: teamKey}
				if !seen[ref] {
					seen[ref] = true
					resolved.ResolvedTeams = append(resolved.ResolvedTeams, teamKey)
				}
			}
		})

		r.catalog.EachArtistAlias(func(alias, artistKey string) {
			leading := leadingWord(alias)
			if len(leading) < partialMinTokenChars {
				return
			}
			if strings.Contains(leading, norm) || strings.Contains(norm, leading) {
				ref := catalog.Ref{Kind: catalog.KindArtist, Key: artistKey}
				if !seen[ref] {
					seen[ref] = true
					resolved.ResolvedArtists = append(resolved.ResolvedArtists, artistKey)
				}
			}
		})
	}
}

func (r *Resolver) detectHints(resolved *ResolvedQuery, tokens []string) {
	hints := map[string]bool{}
	for _, token := range tokens {
		norm := catalog.Normalize(token)
		switch {
		case sportsKeywords[norm]:
			hints[HintSports] = true
		case boxingKeywords[norm]:
			hints[HintBoxing] = true
		case concertKeywords[norm]:
			hints[HintConcert] = true
		case theaterKeywords[norm]:
			hints[HintTheater] = true
		}
	}

	// Resolved entities imply a type even without keywords.
	if len(resolved.ResolvedTeams) > 0 {
		hints[HintSports] = true
	}
	if len(resolved.ResolvedArtists) > 0 && !hints[HintTheater] {
		hints[HintConcert] = true
	}

	for _, hint := range []string{HintSports, HintBoxing, HintConcert, HintTheater} {
		if hints[hint] {
			resolved.EventTypeHints = append(resolved.EventTypeHints, hint)
		}
	}
}

// detectAmbiguity flags the terminal case: a city name mapping to multiple
// teams with no team or artist resolved. A resolved venue alone does not say
// which of the city's teams the caller means, so it never suppresses the
// check. The orchestrator is never invoked for an ambiguous query.
func (r *Resolver) detectAmbiguity(resolved *ResolvedQuery, tokens []string) {
	if len(resolved.ResolvedTeams) > 0 || len(resolved.ResolvedArtists) > 0 {
		return
	}

	for length := 2; length >= 1; length-- {
		for start := 0; start+length <= len(tokens); start++ {
			phrase := strings.Join(tokens[start:start+length], " ")
			teams := r.catalog.TeamsByCity(phrase)
			if len(teams) > 1 {
				resolved.IsAmbiguous = true
				resolved.AmbiguousTerms = append(resolved.AmbiguousTerms, phrase)
				resolved.CandidateTeams = teams
				return
			}
		}
	}
}

func leadingWord(alias string) string {
	if idx := strings.IndexByte(alias, ' '); idx > 0 {
		return alias[:idx]
	}
	return alias
}
