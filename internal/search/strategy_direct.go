// internal/search/strategy_direct.go
package search

import (
	"context"

	"ticket-scout/internal/feed"
)

// directDateLocation is strategy 1: a single tight-radius, exact-day feed
// query, keyword-filtered by the query tokens. Requires both an explicit date
// and a location the catalog can place on the map.
type directDateLocation struct{}

func (s *directDateLocation) Name() string { return "direct_date_location" }

func (s *directDateLocation) Applicable(sc *Context) bool {
	if sc.Req.Date == nil || sc.Req.Location == "" {
		return false
	}
	_, ok := sc.Catalog.MarketByName(sc.Req.Location)
	return ok
}

func (s *directDateLocation) Attempt(ctx context.Context, sc *Context) ([]feed.Event, error) {
	market, _ := sc.Catalog.MarketByName(sc.Req.Location)
	gte, lt := sc.Window()

	sc.CountFeedCall()
	resp, err := sc.Feed.ListEvents(ctx, feed.ListEventsParams{
		Lat:         market.Lat,
		Lon:         market.Lon,
		WithinMiles: sc.Config.DirectRadiusMiles,
		OccursAtGTE: gte,
		OccursAtLT:  lt,
	})
	if err != nil {
		return nil, err
	}

	keywords := queryKeywords(sc.Req.Query)
	if len(keywords) == 0 {
		return resp.Events, nil
	}

	var matched []feed.Event
	for _, event := range resp.Events {
		for _, keyword := range keywords {
			if nameContains(event.Name, keyword) {
				matched = append(matched, event)
				break
			}
		}
	}
	return matched, nil
}
