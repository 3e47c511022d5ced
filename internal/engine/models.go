// internal/engine/models.go
package engine

import (
	"context"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/feed"
	"ticket-scout/internal/listings"
	"ticket-scout/internal/resolver"
	"ticket-scout/internal/tiering"
)

// Feed is the slice of the marketplace client the engine consumes.
type Feed interface {
	ListEvents(ctx context.Context, p feed.ListEventsParams) (*feed.ListEventsResponse, error)
	GetEvent(ctx context.Context, eventID int64) (*feed.Event, error)
	GetListings(ctx context.Context, eventID int64) (*feed.ListingsResponse, error)
	SearchSuggestions(ctx context.Context, query string, limit int, fuzzy bool) (*feed.Suggestions, error)
}

// RankedEvent is one presented candidate with its relevance score and, for
// team searches, a home/away tag.
type RankedEvent struct {
	Event          feed.Event `json:"event"`
	RelevanceScore int        `json:"relevanceScore"`
	HomeAway       string     `json:"homeAway,omitempty"`
}

// Disambiguation is the payload returned instead of results when a bare city
// maps to several teams.
type Disambiguation struct {
	Term       string         `json:"term"`
	Candidates []catalog.Team `json:"candidates"`
	Message    string         `json:"message"`
}

// FindEventsResult is the response of the findEvents and findMatchup
// operations. Success is false for a clean no-match; Disambiguation set means
// no search ran at all.
type FindEventsResult struct {
	Success             bool                    `json:"success"`
	RequestID           string                  `json:"requestId"`
	Query               string                  `json:"query"`
	Resolved            *resolver.ResolvedQuery `json:"resolved,omitempty"`
	Events              []RankedEvent           `json:"events"`
	StrategiesAttempted []string                `json:"strategiesAttempted"`
	WinningStrategy     string                  `json:"winningStrategy,omitempty"`
	FeedCalls           int                     `json:"feedCalls"`
	RemovedByFilter     map[string]int          `json:"removedByFilter,omitempty"`
	Disambiguation      *Disambiguation         `json:"disambiguation,omitempty"`
	Message             string                  `json:"message,omitempty"`
}

// ListingsResult is the response of the getEventListings operation.
type ListingsResult struct {
	Success   bool              `json:"success"`
	RequestID string            `json:"requestId"`
	EventID   int64             `json:"eventId"`
	Event     *feed.Event       `json:"event,omitempty"`
	Options   []listings.Option `json:"options"`
	Report    *listings.Report  `json:"report"`
}

// RecommendationsResult is the response of the recommendTickets operation.
type RecommendationsResult struct {
	Success         bool                    `json:"success"`
	RequestID       string                  `json:"requestId"`
	EventID         int64                   `json:"eventId"`
	Event           *feed.Event             `json:"event,omitempty"`
	Preference      string                  `json:"seatingPreference"`
	Recommendations []tiering.Recommendation `json:"recommendations"`
	Analysis        tiering.BudgetAnalysis  `json:"budgetAnalysis"`
}
