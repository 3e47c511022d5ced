// internal/search/strategy_suggest.go
package search

import (
	"context"

	"ticket-scout/internal/feed"
)

// Hydration caps keep the upstream call volume predictable: the loop over
// suggestion hits is sequential by design.
const (
	maxPerformerHydrations = 3
	maxVenueHydrations     = 2
)

// suggestionDiscovery is strategy 2: run the free-text query against the
// autosuggest endpoint, accept directly named events, then hydrate performer
// and venue hits into follow-up event queries within the computed window.
type suggestionDiscovery struct{}

func (s *suggestionDiscovery) Name() string { return "suggestion_discovery" }

func (s *suggestionDiscovery) Applicable(sc *Context) bool {
	return sc.Req.Query != ""
}

func (s *suggestionDiscovery) Attempt(ctx context.Context, sc *Context) ([]feed.Event, error) {
	sc.CountFeedCall()
	suggestions, err := sc.Feed.SearchSuggestions(ctx, sc.Req.Query, sc.Config.SuggestLimit, true)
	if err != nil {
		return nil, err
	}

	events := append([]feed.Event{}, suggestions.Events...)
	gte, lt := sc.Window()

	for i, performer := range suggestions.Performers {
		if i >= maxPerformerHydrations {
			break
		}
		sc.CountFeedCall()
		resp, err := sc.Feed.ListEvents(ctx, feed.ListEventsParams{
			PerformerID: performer.ID,
			OccursAtGTE: gte,
			OccursAtLT:  lt,
		})
		if err != nil {
			sc.Logger.Warn("performer hydration failed", map[string]interface{}{
				"performerId": performer.ID,
				"error":       err.Error(),
			})
			continue
		}
		events = append(events, resp.Events...)
	}

	for i, venue := range suggestions.Venues {
		if i >= maxVenueHydrations {
			break
		}
		sc.CountFeedCall()
		resp, err := sc.Feed.ListEvents(ctx, feed.ListEventsParams{
			VenueID:     venue.ID,
			OccursAtGTE: gte,
			OccursAtLT:  lt,
		})
		if err != nil {
			sc.Logger.Warn("venue hydration failed", map[string]interface{}{
				"venueId": venue.ID,
				"error":   err.Error(),
			})
			continue
		}
		events = append(events, resp.Events...)
	}

	return events, nil
}
