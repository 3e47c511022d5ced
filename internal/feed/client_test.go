// internal/feed/client_test.go
package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-scout/internal/common/config"
	apperrors "ticket-scout/internal/common/errors"
	"ticket-scout/internal/common/logger"
)

func newTestClient(t *testing.T, serverURL string) *Client {
	return NewClient(config.FeedConfig{
		BaseURL:            serverURL,
		APIToken:           "test-token",
		Timeout:            2000,
		RateLimitPerSecond: 0, // disabled, tests control timing themselves
		MaxRetries:         2,
		BackoffInitial:     1,
		BackoffMax:         5,
		PerPage:            100,
	}, logger.NewTestLogger(t), nil)
}

func TestListEvents(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Token"))

		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"events": [
				{"id": 101, "name": "Chicago Cubs vs St. Louis Cardinals",
				 "occurs_at": "2026-09-12T19:05:00Z",
				 "venue": {"id": 7, "name": "Wrigley Field", "city": "Chicago", "state": "IL",
				           "latitude": 41.9484, "longitude": -87.6553}}
			],
			"total_entries": 1
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp, err := client.ListEvents(context.Background(), ListEventsParams{
		Lat:         41.8781,
		Lon:         -87.6298,
		WithinMiles: 25,
		OccursAtGTE: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		OccursAtLT:  time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, int64(101), resp.Events[0].ID)
	assert.Equal(t, "Wrigley Field", resp.Events[0].Venue.Name)
	assert.Equal(t, 1, resp.TotalEntries)

	assert.Equal(t, "41.8781", gotQuery["lat"])
	assert.Equal(t, "25", gotQuery["within"])
	assert.Equal(t, "2026-09-12T00:00:00Z", gotQuery["occurs_at.gte"])
	assert.Equal(t, "100", gotQuery["per_page"])
}

func TestDoJSON_RetriesOn5xxThenSucceeds(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"events": [], "total_entries": 0}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.ListEvents(context.Background(), ListEventsParams{PerformerID: 1})

	require.NoError(t, err)
	assert.Equal(t, 3, calls, "two failures then success within maxRetries")
}

func TestDoJSON_RateLimitedExhaustsRetries(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.ListEvents(context.Background(), ListEventsParams{PerformerID: 1})

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeFeedRateLimited, apperrors.CodeOf(err))
	assert.True(t, apperrors.IsRetryable(err))
	assert.Equal(t, 3, calls, "initial attempt plus maxRetries")
}

func TestDoJSON_404IsNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.SearchSuggestions(context.Background(), "cubs", 5, true)

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestGetEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/show", r.URL.Path)
		assert.Equal(t, "101", r.URL.Query().Get("id"))
		w.Write([]byte(`{"id": 101, "name": "Bulls vs Celtics", "occurs_at": "2026-11-01T19:00:00Z"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	event, err := client.GetEvent(context.Background(), 101)

	require.NoError(t, err)
	assert.Equal(t, "Bulls vs Celtics", event.Name)
}

func TestGetEvent_EmptyBodyIsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GetEvent(context.Background(), 999)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeEventNotFound, apperrors.CodeOf(err))
}

func TestGetListings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/listings", r.URL.Path)
		assert.Equal(t, "101", r.URL.Query().Get("event_id"))
		w.Write([]byte(`{"ticket_groups": [
			{"id": 1, "section": "112", "row": "4", "available_quantity": 6,
			 "splits": [1,2,3,6], "retail_price": 80.0, "format": "eticket",
			 "instant_delivery": true, "in_hand": true, "wheelchair": false, "type": "event"}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	resp, err := client.GetListings(context.Background(), 101)

	require.NoError(t, err)
	require.Len(t, resp.TicketGroups, 1)
	assert.Equal(t, []int{1, 2, 3, 6}, resp.TicketGroups[0].Splits)
	assert.Equal(t, 80.0, resp.TicketGroups[0].RetailPrice)
}

func TestGetListings_WrapsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	_, err := client.GetListings(context.Background(), 999)

	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeListingsFetchFailed, apperrors.CodeOf(err))
}

func TestRateLimiter_RollingWindow(t *testing.T) {
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var slept []time.Duration

	limiter := newRateLimiter(2)
	limiter.now = func() time.Time { return current }
	limiter.sleep = func(d time.Duration) {
		slept = append(slept, d)
		current = current.Add(d)
	}

	ctx := context.Background()
	require.NoError(t, limiter.Wait(ctx))
	require.NoError(t, limiter.Wait(ctx))
	assert.Empty(t, slept, "first two requests pass immediately")

	require.NoError(t, limiter.Wait(ctx))
	assert.NotEmpty(t, slept, "third request in the window must wait")
}

func TestRateLimiter_CancelledContext(t *testing.T) {
	limiter := newRateLimiter(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Error(t, limiter.Wait(ctx))
}
