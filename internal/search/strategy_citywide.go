// internal/search/strategy_citywide.go
package search

import (
	"context"
	"time"

	"ticket-scout/internal/feed"
)

// searchLocation is one lat/lon candidate for a broad sweep.
type searchLocation struct {
	Label string
	Lat   float64
	Lon   float64
}

// cityKeyword is strategy 4: sweep up to MaxBroadLocations candidate areas
// with a wide radius and window, keeping events whose name shares at least
// min(2, queryWordCount) words with the query.
type cityKeyword struct{}

func (s *cityKeyword) Name() string { return "city_keyword" }

func (s *cityKeyword) Applicable(sc *Context) bool {
	return len(queryKeywords(sc.Req.Query)) > 0
}

func (s *cityKeyword) Attempt(ctx context.Context, sc *Context) ([]feed.Event, error) {
	keywords := queryKeywords(sc.Req.Query)
	required := 2
	if len(keywords) < required {
		required = len(keywords)
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
			sc.Logger.Warn("broad location search failed", map[string]interface{}{
				"location": loc.Label,
				"error":    err.Error(),
			})
			continue
		}

		for _, event := range resp.Events {
			matched := 0
			for _, keyword := range keywords {
				if nameContains(event.Name, keyword) {
					matched++
				}
			}
			if matched >= required {
				events = append(events, event)
			}
		}
	}

	return events, nil
}

// candidateLocations picks the areas worth sweeping, best guess first: the
// explicit location, then resolved teams' home venues, then the default major
// markets, capped at MaxBroadLocations.
func candidateLocations(sc *Context) []searchLocation {
	max := sc.Config.MaxBroadLocations
	if max <= 0 {
		max = 3
	}

	var locations []searchLocation
	seen := make(map[string]bool)
	add := func(label string, lat, lon float64) {
		if len(locations) >= max || seen[label] {
			return
		}
		seen[label] = true
		locations = append(locations, searchLocation{Label: label, Lat: lat, Lon: lon})
	}

	if sc.Req.Location != "" {
		if market, ok := sc.Catalog.MarketByName(sc.Req.Location); ok {
			add(market.Name, market.Lat, market.Lon)
		}
	}
	for _, teamKey := range sc.Resolved.ResolvedTeams {
		if venue, ok := sc.Catalog.TeamVenue(teamKey); ok {
			add(venue.Name, venue.Lat, venue.Lon)
		}
	}
	for _, market := range sc.Catalog.Markets() {
		add(market.Name, market.Lat, market.Lon)
	}

	return locations
}

// broadWindow widens the search window for sweep strategies: an explicit date
// becomes date minus/plus the broad-window span, otherwise now through it.
func broadWindow(sc *Context) (time.Time, time.Time) {
	days := sc.Config.BroadWindowDays
	if days <= 0 {
		days = 14
	}
	if sc.Req.Date != nil {
		day := sc.Req.Date.Truncate(24 * time.Hour)
		return day.AddDate(0, 0, -days), day.AddDate(0, 0, days+1)
	}
	now := sc.Now()
	return now, now.AddDate(0, 0, days)
}
