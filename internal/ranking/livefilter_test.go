// internal/ranking/livefilter_test.go
package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/feed"
)

func TestLiveEventFilter_NonEventKeywords(t *testing.T) {
	filter := NewLiveEventFilter(catalog.Default())

	tests := []struct {
		name  string
		event string
		live  bool
	}{
		{name: "parking pass", event: "Chicago Cubs Parking Pass", live: false},
		{name: "lot", event: "Cubs vs Cardinals Lot A", live: false},
		{name: "garage", event: "Stadium Garage Access - Yankees", live: false},
		{name: "shuttle", event: "Game Day Shuttle - Red Sox", live: false},
		{name: "wedding", event: "Private Wedding Reception", live: false},
		{name: "auction", event: "Memorabilia Auction Night", live: false},
		{name: "real game", event: "Chicago Cubs vs St Louis Cardinals", live: true},
		{name: "real concert", event: "Taylor Swift - The Eras Tour", live: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.live, filter.IsLiveEvent(feed.Event{Name: tt.event}))
		})
	}
}

func TestLiveEventFilter_RequiresAnIndicator(t *testing.T) {
	filter := NewLiveEventFilter(catalog.Default())

	// No non-event keyword, but also nothing saying sports or entertainment.
	assert.False(t, filter.IsLiveEvent(feed.Event{Name: "Annual Shareholder Meeting"}))

	// Sports terminology alone qualifies.
	assert.True(t, filter.IsLiveEvent(feed.Event{Name: "Championship Qualifier Night"}))

	// A recognized team alias alone qualifies.
	assert.True(t, filter.IsLiveEvent(feed.Event{Name: "An Evening With the Yankees"}))

	// A recognized artist alias alone qualifies.
	assert.True(t, filter.IsLiveEvent(feed.Event{Name: "Taylor Swift Acoustic Evening"}))
}

func TestLiveEventFilter_DropsHighScorers(t *testing.T) {
	filter := NewLiveEventFilter(catalog.Default())

	scored := []ScoredEvent{
		{Event: feed.Event{ID: 1, Name: "Cubs vs Cardinals Parking"}, RelevanceScore: 500},
		{Event: feed.Event{ID: 2, Name: "Chicago Cubs vs St Louis Cardinals"}, RelevanceScore: 40},
	}

	kept, removed := filter.Apply(scored)

	assert.Len(t, kept, 1)
	assert.Equal(t, int64(2), kept[0].Event.ID, "parking is dropped even with a huge score")
	assert.Equal(t, 1, removed["non_event_keyword"])
}

func TestLiveEventFilter_ReportsReasons(t *testing.T) {
	filter := NewLiveEventFilter(catalog.Default())

	scored := []ScoredEvent{
		{Event: feed.Event{ID: 1, Name: "Stadium Garage Access"}},
		{Event: feed.Event{ID: 2, Name: "Corporate Mixer"}},
		{Event: feed.Event{ID: 3, Name: "Bulls vs Celtics"}},
	}

	kept, removed := filter.Apply(scored)

	assert.Len(t, kept, 1)
	assert.Equal(t, 1, removed["non_event_keyword"])
	assert.Equal(t, 1, removed["no_live_indicator"])
}
