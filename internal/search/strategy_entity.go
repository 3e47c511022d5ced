// internal/search/strategy_entity.go
package search

import (
	"context"
	"strings"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/feed"
)

// awayMarketLimit bounds the away-game fan-out over major markets.
const awayMarketLimit = 5

// resolvedEntity is strategy 3: query by what the resolver actually matched.
// A head-to-head matchup restricts to the home team's venue and requires
// every resolved team to appear in the candidate name; a single team fans out
// from its home venue to the major markets to catch away games; artists are
// hydrated into performer-id queries.
type resolvedEntity struct{}

func (s *resolvedEntity) Name() string { return "resolved_entity" }

func (s *resolvedEntity) Applicable(sc *Context) bool {
	return len(sc.Resolved.ResolvedTeams) > 0 || len(sc.Resolved.ResolvedArtists) > 0
}

func (s *resolvedEntity) Attempt(ctx context.Context, sc *Context) ([]feed.Event, error) {
	if len(sc.Resolved.ResolvedTeams) >= 2 && isMatchupQuery(sc.Req.Query) {
		return s.matchup(ctx, sc)
	}
	if len(sc.Resolved.ResolvedTeams) == 1 {
		return s.singleTeam(ctx, sc)
	}
	if len(sc.Resolved.ResolvedArtists) > 0 {
		return s.artists(ctx, sc)
	}
	if len(sc.Resolved.ResolvedTeams) >= 2 {
		// Multiple teams without a matchup connective: search each home venue.
		var events []feed.Event
		for _, teamKey := range sc.Resolved.ResolvedTeams {
			found, err := s.venueSearch(ctx, sc, teamKey)
			if err != nil {
				sc.Logger.Warn("team venue search failed", map[string]interface{}{
					"team":  teamKey,
					"error": err.Error(),
				})
				continue
			}
			events = append(events, found...)
		}
		return events, nil
	}
	return nil, nil
}

// matchup restricts to the home team's venue and keeps only candidates whose
// name mentions every resolved team.
func (s *resolvedEntity) matchup(ctx context.Context, sc *Context) ([]feed.Event, error) {
	homeKey := homeTeamKey(sc.Req.Query, sc.Resolved.ResolvedTeams)

	candidates, err := s.venueSearch(ctx, sc, homeKey)
	if err != nil {
		return nil, err
	}

	var events []feed.Event
	for _, event := range candidates {
		if s.mentionsAllTeams(sc, event.Name) {
			events = append(events, event)
		}
	}
	return events, nil
}

func (s *resolvedEntity) singleTeam(ctx context.Context, sc *Context) ([]feed.Event, error) {
	teamKey := sc.Resolved.ResolvedTeams[0]

	events, err := s.venueSearch(ctx, sc, teamKey)
	if err != nil {
		sc.Logger.Warn("home venue search failed", map[string]interface{}{
			"team":  teamKey,
			"error": err.Error(),
		})
	}
	for _, event := range events {
		sc.TagEvent(event.ID, "home")
	}

	// Away-game fan-out over the fixed major-market list, sequential to keep
	// call volume predictable.
	aliases := normalizedAliases(sc.Catalog, teamKey)
	gte, lt := sc.Window()
	fanned := 0
	for _, market := range sc.Catalog.Markets() {
		if fanned >= awayMarketLimit {
			break
		}
		if team, ok := sc.Catalog.Team(teamKey); ok && catalog.Normalize(team.City) == catalog.Normalize(market.City) {
			continue // home market already covered
		}
		fanned++

		sc.CountFeedCall()
		resp, err := sc.Feed.ListEvents(ctx, feed.ListEventsParams{
			Lat:         market.Lat,
			Lon:         market.Lon,
			WithinMiles: sc.Config.BroadRadiusMiles,
			OccursAtGTE: gte,
			OccursAtLT:  lt,
		})
		if err != nil {
			sc.Logger.Warn("away market search failed", map[string]interface{}{
				"market": market.Name,
				"error":  err.Error(),
			})
			continue
		}

		for _, event := range resp.Events {
			if containsAnyAlias(event.Name, aliases) {
				sc.TagEvent(event.ID, "away")
				events = append(events, event)
			}
		}
	}

	return events, nil
}

func (s *resolvedEntity) artists(ctx context.Context, sc *Context) ([]feed.Event, error) {
	gte, lt := sc.Window()
	var events []feed.Event

	for _, artistKey := range sc.Resolved.ResolvedArtists {
		artist, ok := sc.Catalog.Artist(artistKey)
		if !ok {
			continue
		}

		// Hydrate the catalog artist into a feed performer id first.
		sc.CountFeedCall()
		suggestions, err := sc.Feed.SearchSuggestions(ctx, artist.Name, 1, false)
		if err != nil || len(suggestions.Performers) == 0 {
			if err != nil {
				sc.Logger.Warn("artist hydration failed", map[string]interface{}{
					"artist": artistKey,
					"error":  err.Error(),
				})
			}
			continue
		}

		sc.CountFeedCall()
		resp, err := sc.Feed.ListEvents(ctx, feed.ListEventsParams{
			PerformerID: suggestions.Performers[0].ID,
			OccursAtGTE: gte,
			OccursAtLT:  lt,
		})
		if err != nil {
			sc.Logger.Warn("artist event search failed", map[string]interface{}{
				"artist": artistKey,
				"error":  err.Error(),
			})
			continue
		}
		events = append(events, resp.Events...)
	}

	return events, nil
}

// venueSearch queries the feed around a team's home venue coordinates.
func (s *resolvedEntity) venueSearch(ctx context.Context, sc *Context, teamKey string) ([]feed.Event, error) {
	venue, ok := sc.Catalog.TeamVenue(teamKey)
	if !ok {
		return nil, nil
	}

	gte, lt := sc.Window()
	sc.CountFeedCall()
	resp, err := sc.Feed.ListEvents(ctx, feed.ListEventsParams{
		Lat:         venue.Lat,
		Lon:         venue.Lon,
		WithinMiles: sc.Config.DirectRadiusMiles,
		OccursAtGTE: gte,
		OccursAtLT:  lt,
	})
	if err != nil {
		return nil, err
	}
	return resp.Events, nil
}

func (s *resolvedEntity) mentionsAllTeams(sc *Context, name string) bool {
	for _, teamKey := range sc.Resolved.ResolvedTeams {
		if !containsAnyAlias(name, normalizedAliases(sc.Catalog, teamKey)) {
			return false
		}
	}
	return true
}

// isMatchupQuery detects a head-to-head connective in the raw query.
func isMatchupQuery(query string) bool {
	for _, token := range strings.Fields(strings.ToLower(query)) {
		if token == "vs" || token == "vs." || token == "versus" || token == "at" || token == "@" {
			return true
		}
	}
	return false
}

// homeTeamKey picks the home side of a matchup: with an "at" connective the
// second listed team hosts, otherwise the first does.
func homeTeamKey(query string, teamKeys []string) string {
	lowered := strings.ToLower(query)
	hasAt := false
	for _, token := range strings.Fields(lowered) {
		if token == "at" || token == "@" {
			hasAt = true
			break
		}
	}
	if hasAt && len(teamKeys) >= 2 {
		return teamKeys[len(teamKeys)-1]
	}
	return teamKeys[0]
}

func normalizedAliases(cat *catalog.Catalog, teamKey string) []string {
	raw := cat.TeamAliases(teamKey)
	aliases := make([]string, 0, len(raw))
	for _, alias := range raw {
		aliases = append(aliases, catalog.Normalize(alias))
	}
	return aliases
}

func containsAnyAlias(name string, aliases []string) bool {
	norm := catalog.Normalize(name)
	for _, alias := range aliases {
		if alias != "" && strings.Contains(norm, alias) {
			return true
		}
	}
	return false
}
