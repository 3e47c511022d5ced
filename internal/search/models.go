// internal/search/models.go
package search

import (
	"context"
	"strings"
	"time"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/common/config"
	"ticket-scout/internal/common/logger"
	"ticket-scout/internal/feed"
	"ticket-scout/internal/resolver"
)

// Feed is the slice of the marketplace client the strategies consume.
type Feed interface {
	ListEvents(ctx context.Context, p feed.ListEventsParams) (*feed.ListEventsResponse, error)
	SearchSuggestions(ctx context.Context, query string, limit int, fuzzy bool) (*feed.Suggestions, error)
}

// Request carries the caller's discovery parameters alongside the query text.
type Request struct {
	Query           string     `json:"query"`
	Date            *time.Time `json:"date,omitempty"`
	Location        string     `json:"location,omitempty"`
	WeeksAhead      int        `json:"weeksAhead,omitempty"`
	Quantity        int        `json:"quantity,omitempty"`
	BudgetPerTicket float64    `json:"budgetPerTicket,omitempty"`
}

// Result is the deduplicated candidate set plus the cascade bookkeeping. The
// bookkeeping is observability metadata only and never affects ranking.
type Result struct {
	Events              []feed.Event     `json:"events"`
	StrategiesAttempted []string         `json:"strategiesAttempted"`
	WinningStrategy     string           `json:"winningStrategy,omitempty"`
	FeedCalls           int              `json:"feedCalls"`
	Tags                map[int64]string `json:"-"` // home/away annotations per event id
}

// Context is the shared state one cascade run threads through its strategies.
type Context struct {
	Resolved *resolver.ResolvedQuery
	Req      *Request
	Catalog  *catalog.Catalog
	Feed     Feed
	Config   config.SearchConfig
	Logger   logger.Logger
	Now      func() time.Time

	feedCalls int
	tags      map[int64]string
}

// CountFeedCall increments the upstream-call tally for this run.
func (c *Context) CountFeedCall() {
	c.feedCalls++
}

// TagEvent annotates an event id (e.g. home/away) without touching the event.
func (c *Context) TagEvent(id int64, tag string) {
	if c.tags == nil {
		c.tags = make(map[int64]string)
	}
	c.tags[id] = tag
}

// Window returns the time window for feed queries: the explicit date's day
// when one was given, otherwise now through the weeks-ahead horizon.
func (c *Context) Window() (time.Time, time.Time) {
	if c.Req.Date != nil {
		day := c.Req.Date.Truncate(24 * time.Hour)
		return day, day.Add(24 * time.Hour)
	}

	weeks := c.Req.WeeksAhead
	if weeks <= 0 {
		weeks = c.Config.WeeksAheadDefault
	}
	now := c.Now()
	return now, now.AddDate(0, 0, weeks*7)
}

// Strategy is one self-contained method of querying the feed, tried in fixed
// priority order with early exit on first success.
type Strategy interface {
	Name() string
	Applicable(sc *Context) bool
	Attempt(ctx context.Context, sc *Context) ([]feed.Event, error)
}

// queryKeywords returns the normalized query tokens longer than two
// characters, stop words removed.
func queryKeywords(query string) []string {
	var keywords []string
	for _, token := range strings.Fields(query) {
		norm := catalog.Normalize(token)
		if len(norm) > 2 && !fuzzyStopWords[norm] {
			keywords = append(keywords, norm)
		}
	}
	return keywords
}

// nameContains reports a case-insensitive substring match on an event name.
func nameContains(name, keyword string) bool {
	return strings.Contains(catalog.Normalize(name), keyword)
}
