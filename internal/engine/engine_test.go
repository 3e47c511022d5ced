// internal/engine/engine_test.go
package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/common/cache"
	"ticket-scout/internal/common/config"
	apperrors "ticket-scout/internal/common/errors"
	"ticket-scout/internal/common/logger"
	"ticket-scout/internal/feed"
)

// stubFeed answers with canned data and records call counts. When strict is
// set, any call fails the test: used to prove an operation never went upstream.
type stubFeed struct {
	t      *testing.T
	strict bool

	listCalls   int
	listEvents  []feed.Event
	event       *feed.Event
	eventErr    error
	getCalls    int
	listings    []feed.Listing
	listingsErr error
	suggestions *feed.Suggestions
}

func (f *stubFeed) ListEvents(_ context.Context, _ feed.ListEventsParams) (*feed.ListEventsResponse, error) {
	if f.strict {
		f.t.Errorf("unexpected ListEvents call")
	}
	f.listCalls++
	return &feed.ListEventsResponse{Events: f.listEvents}, nil
}

func (f *stubFeed) GetEvent(_ context.Context, eventID int64) (*feed.Event, error) {
	if f.strict {
		f.t.Errorf("unexpected GetEvent call")
	}
	f.getCalls++
	if f.eventErr != nil {
		return nil, f.eventErr
	}
	if f.event != nil {
		return f.event, nil
	}
	return &feed.Event{ID: eventID, Name: "Chicago Cubs vs St Louis Cardinals"}, nil
}

func (f *stubFeed) GetListings(_ context.Context, _ int64) (*feed.ListingsResponse, error) {
	if f.strict {
		f.t.Errorf("unexpected GetListings call")
	}
	if f.listingsErr != nil {
		return nil, f.listingsErr
	}
	return &feed.ListingsResponse{TicketGroups: f.listings}, nil
}

func (f *stubFeed) SearchSuggestions(_ context.Context, _ string, _ int, _ bool) (*feed.Suggestions, error) {
	if f.strict {
		f.t.Errorf("unexpected SearchSuggestions call")
	}
	if f.suggestions != nil {
		return f.suggestions, nil
	}
	return &feed.Suggestions{}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Search: config.SearchConfig{
			WeeksAheadDefault:  4,
			DirectRadiusMiles:  25,
			BroadRadiusMiles:   50,
			BroadWindowDays:    14,
			MaxBroadLocations:  3,
			SuggestLimit:       10,
			FuzzyAcceptScore:   12,
			FuzzyGenericScore:  8,
			FuzzyMinTokenChars: 4,
		},
		Tiering: config.TieringConfig{MaxRecommendations: 5},
		Cache:   config.CacheConfig{DefaultTTL: 600000, RequestScopedTTL: 300000},
	}
}

func newTestEngine(t *testing.T, fd Feed) *Engine {
	store := cache.NewMemoryStore(100, 10*1024*1024)
	return New(catalog.Default(), fd, store, testConfig(), logger.NewTestLogger(t), nil)
}

func TestFindEvents_ValidationRunsBeforeUpstream(t *testing.T) {
	fd := &stubFeed{t: t, strict: true}
	eng := newTestEngine(t, fd)

	_, err := eng.FindEvents(context.Background(), map[string]interface{}{})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidParameters, apperrors.CodeOf(err))
}

func TestFindEvents_CityDisambiguationSkipsSearch(t *testing.T) {
	fd := &stubFeed{t: t, strict: true}
	eng := newTestEngine(t, fd)

	result, err := eng.FindEvents(context.Background(), map[string]interface{}{
		"query": "Chicago",
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	require.NotNil(t, result.Disambiguation)
	assert.GreaterOrEqual(t, len(result.Disambiguation.Candidates), 2)
	assert.Empty(t, result.StrategiesAttempted)
	assert.Zero(t, result.FeedCalls)
	assert.NotEmpty(t, result.RequestID)
}

func TestFindEvents_HappyPath(t *testing.T) {
	fd := &stubFeed{
		t: t,
		listEvents: []feed.Event{
			{ID: 1, Name: "Chicago Cubs vs St Louis Cardinals"},
			{ID: 2, Name: "Chicago Cubs Parking Pass"},
		},
	}
	eng := newTestEngine(t, fd)

	result, err := eng.FindEvents(context.Background(), map[string]interface{}{
		"query":    "cubs game",
		"location": "Chicago",
		"date":     "2026-09-12",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "direct_date_location", result.WinningStrategy)
	require.Len(t, result.Events, 1, "parking is filtered out")
	assert.Equal(t, int64(1), result.Events[0].Event.ID)
	assert.Greater(t, result.Events[0].RelevanceScore, 0)
	assert.Equal(t, 1, result.RemovedByFilter["non_event_keyword"])
}

func TestFindEvents_CachesByParams(t *testing.T) {
	fd := &stubFeed{
		t:          t,
		listEvents: []feed.Event{{ID: 1, Name: "Chicago Cubs vs St Louis Cardinals"}},
	}
	eng := newTestEngine(t, fd)

	params := map[string]interface{}{
		"query":    "cubs game",
		"location": "Chicago",
		"date":     "2026-09-12",
	}

	first, err := eng.FindEvents(context.Background(), params)
	require.NoError(t, err)
	second, err := eng.FindEvents(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, 1, fd.listCalls, "repeat query is served from cache")
	assert.Equal(t, first.Events, second.Events)
	assert.NotEmpty(t, second.RequestID)
	assert.NotEqual(t, first.RequestID, second.RequestID, "a cache hit is still a new request")
}

func TestFindEvents_RejectsBadDate(t *testing.T) {
	fd := &stubFeed{t: t, strict: true}
	eng := newTestEngine(t, fd)

	_, err := eng.FindEvents(context.Background(), map[string]interface{}{
		"query": "cubs game",
		"date":  "next friday",
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidParameters, apperrors.CodeOf(err))
}

func TestFindMatchup_ComposesQueryAndLocation(t *testing.T) {
	fd := &stubFeed{
		t:          t,
		listEvents: []feed.Event{{ID: 1, Name: "New York Yankees at Boston Red Sox"}},
	}
	eng := newTestEngine(t, fd)

	result, err := eng.FindMatchup(context.Background(), map[string]interface{}{
		"awayTeam": "Yankees",
		"homeTeam": "Red Sox",
		"date":     "2026-09-12",
	})

	require.NoError(t, err)
	assert.Equal(t, "Yankees at Red Sox", result.Query)
	assert.True(t, result.Success)
	require.Len(t, result.Events, 1)
}

func TestGetEventListings_MapsUpstream404(t *testing.T) {
	fd := &stubFeed{
		t:        t,
		eventErr: apperrors.NewFeedRequestFailedError("/events/999", fmt.Errorf("status 404")),
	}
	eng := newTestEngine(t, fd)

	_, err := eng.GetEventListings(context.Background(), map[string]interface{}{
		"eventId":  999,
		"quantity": 2,
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeEventNotFound, apperrors.CodeOf(err))
}

func TestGetEventListings_FiltersAndReports(t *testing.T) {
	fd := &stubFeed{
		t: t,
		listings: []feed.Listing{
			{ID: 1, Section: "112", RetailPrice: 80, AvailableQuantity: 6, Splits: []int{1, 2, 3, 6}},
			{ID: 2, Section: "205", RetailPrice: 100, AvailableQuantity: 4, Splits: []int{1, 2, 4}},
		},
	}
	eng := newTestEngine(t, fd)

	result, err := eng.GetEventListings(context.Background(), map[string]interface{}{
		"eventId":  42,
		"quantity": 3,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(42), result.EventID)
	require.NotNil(t, result.Event)
	require.Len(t, result.Options, 1)
	assert.Equal(t, 240.0, result.Options[0].TotalPrice)
	assert.Equal(t, 1, result.Report.RemovedBy["splits"])
}

func TestRecommendTickets_Flow(t *testing.T) {
	fd := &stubFeed{
		t: t,
		listings: []feed.Listing{
			{ID: 1, Section: "Upper 320", Row: "12", RetailPrice: 60, AvailableQuantity: 4, Splits: []int{2}},
			{ID: 2, Section: "214", Row: "8", RetailPrice: 90, AvailableQuantity: 4, Splits: []int{2}},
			{ID: 3, Section: "Floor A", Row: "3", RetailPrice: 140, AvailableQuantity: 4, Splits: []int{2}},
			{ID: 4, Section: "Suite 1", Row: "1", RetailPrice: 200, AvailableQuantity: 4, Splits: []int{2}},
		},
	}
	eng := newTestEngine(t, fd)

	result, err := eng.RecommendTickets(context.Background(), map[string]interface{}{
		"eventId":         42,
		"quantity":        2,
		"budgetPerTicket": 150,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "best_value", result.Preference, "empty preference defaults to best value")
	require.NotEmpty(t, result.Recommendations)
	assert.LessOrEqual(t, len(result.Recommendations), 5)
	for _, rec := range result.Recommendations {
		assert.LessOrEqual(t, rec.Option.PricePerTicket, 150.0)
	}
	assert.InDelta(t, 90.0, result.Analysis.BudgetThreshold, 0.001)
}

func TestRecommendTickets_RejectsUnknownPreference(t *testing.T) {
	fd := &stubFeed{t: t, strict: true}
	eng := newTestEngine(t, fd)

	_, err := eng.RecommendTickets(context.Background(), map[string]interface{}{
		"eventId":           42,
		"quantity":          2,
		"budgetPerTicket":   150,
		"seatingPreference": "cheapest",
	})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidParameters, apperrors.CodeOf(err))
}
