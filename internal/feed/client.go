// internal/feed/client.go
// Package feed implements the marketplace events-feed collaborator:
// listEvents, getEvent, getListings and searchSuggestions over signed HTTP,
// with a client-side request-rate ceiling and bounded backoff on retryable
// failures. The engine above never inspects transport-level details.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ticket-scout/internal/common/config"
	apperrors "ticket-scout/internal/common/errors"
	"ticket-scout/internal/common/logger"
	"ticket-scout/internal/common/observability"
)

type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	limiter    *rateLimiter
	maxRetries int
	backoffMin time.Duration
	backoffMax time.Duration
	perPage    int
	logger     logger.Logger
	obs        *observability.Observability
}

func NewClient(cfg config.FeedConfig, log logger.Logger, obs *observability.Observability) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		apiToken: cfg.APIToken,
		httpClient: &http.Client{
			Timeout: config.GetDuration(cfg.Timeout),
		},
		limiter:    newRateLimiter(cfg.RateLimitPerSecond),
		maxRetries: cfg.MaxRetries,
		backoffMin: config.GetDuration(cfg.BackoffInitial),
		backoffMax: config.GetDuration(cfg.BackoffMax),
		perPage:    cfg.PerPage,
		logger:     log.WithFields(map[string]interface{}{"component": "feed"}),
		obs:        obs,
	}
}

// ListEvents queries the feed's event index with the given filters.
func (c *Client) ListEvents(ctx context.Context, p ListEventsParams) (*ListEventsResponse, error) {
	q := url.Values{}
	if p.PerformerID != 0 {
		q.Set("performer_id", strconv.FormatInt(p.PerformerID, 10))
	}
	if p.VenueID != 0 {
		q.Set("venue_id", strconv.FormatInt(p.VenueID, 10))
	}
	if p.Lat != 0 || p.Lon != 0 {
		q.Set("lat", strconv.FormatFloat(p.Lat, 'f', 4, 64))
		q.Set("lon", strconv.FormatFloat(p.Lon, 'f', 4, 64))
	}
	if p.WithinMiles > 0 {
		q.Set("within", strconv.FormatFloat(p.WithinMiles, 'f', 0, 64))
	}
	if !p.OccursAtGTE.IsZero() {
		q.Set("occurs_at.gte", p.OccursAtGTE.UTC().Format(time.RFC3339))
	}
	if !p.OccursAtLT.IsZero() {
		q.Set("occurs_at.lt", p.OccursAtLT.UTC().Format(time.RFC3339))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	perPage := p.PerPage
	if perPage <= 0 || perPage > 100 {
		perPage = c.perPage
	}
	q.Set("per_page", strconv.Itoa(perPage))

	var resp ListEventsResponse
	if err := c.doJSON(ctx, "/events", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetEvent hydrates a single event by id.
func (c *Client) GetEvent(ctx context.Context, eventID int64) (*Event, error) {
	q := url.Values{}
	q.Set("id", strconv.FormatInt(eventID, 10))

	var resp Event
	if err := c.doJSON(ctx, "/events/show", q, &resp); err != nil {
		return nil, err
	}
	if resp.ID == 0 {
		return nil, apperrors.NewEventNotFoundError(eventID)
	}
	return &resp, nil
}

// GetListings fetches the raw ticket inventory for one event.
func (c *Client) GetListings(ctx context.Context, eventID int64) (*ListingsResponse, error) {
	q := url.Values{}
	q.Set("event_id", strconv.FormatInt(eventID, 10))

	var resp ListingsResponse
	if err := c.doJSON(ctx, "/listings", q, &resp); err != nil {
		return nil, apperrors.NewListingsFetchFailedError(eventID, err)
	}
	return &resp, nil
}

// SearchSuggestions runs the autosuggest endpoint for directly named events,
// performers and venues.
func (c *Client) SearchSuggestions(ctx context.Context, query string, limit int, fuzzy bool) (*Suggestions, error) {
	q := url.Values{}
	q.Set("q", query)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if fuzzy {
		q.Set("fuzzy", "true")
	}

	var resp Suggestions
	if err := c.doJSON(ctx, "/searches/suggestions", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doJSON executes one signed GET with rate limiting and bounded exponential
// backoff with jitter on retryable failures (timeouts, 429, 5xx).
func (c *Client) doJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoffDelay(attempt)
			c.logger.Warn("retrying feed request", map[string]interface{}{
				"endpoint": path,
				"attempt":  attempt,
				"delay":    delay.String(),
				"error":    lastErr.Error(),
			})
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return apperrors.NewFeedTimeoutError(path)
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return apperrors.NewFeedTimeoutError(path)
		}

		if c.obs != nil {
			c.obs.RecordFeedCall(ctx, path)
		}

		retryable, err := c.attempt(ctx, endpoint, query, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable {
			return err
		}
	}

	return lastErr
}

// attempt performs a single request. The bool reports whether the failure is
// retryable.
func (c *Client) attempt(ctx context.Context, endpoint string, query url.Values, out interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return false, apperrors.NewFeedRequestFailedError(endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Token", c.apiToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
			return true, apperrors.NewFeedTimeoutError(endpoint)
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return true, apperrors.NewFeedTimeoutError(endpoint)
		}
		return true, apperrors.NewFeedRequestFailedError(endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return true, apperrors.NewFeedRateLimitedError(endpoint)
	case resp.StatusCode >= 500:
		return true, apperrors.NewFeedRequestFailedError(endpoint, fmt.Errorf("status %d", resp.StatusCode))
	case resp.StatusCode == http.StatusNotFound:
		return false, apperrors.NewFeedRequestFailedError(endpoint, fmt.Errorf("status %d", resp.StatusCode))
	case resp.StatusCode != http.StatusOK:
		return false, apperrors.NewFeedRequestFailedError(endpoint, fmt.Errorf("status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, apperrors.NewFeedRequestFailedError(endpoint, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return false, apperrors.NewFeedRequestFailedError(endpoint, fmt.Errorf("decode response: %w", err))
	}

	return false, nil
}

// backoffDelay doubles per attempt, capped, with up to 25% jitter.
func (c *Client) backoffDelay(attempt int) time.Duration {
	delay := c.backoffMin << (attempt - 1)
	if delay > c.backoffMax {
		delay = c.backoffMax
	}
	jitter := time.Duration(rand.Int63n(int64(delay)/4 + 1))
	return delay + jitter
}
