// internal/engine/engine.go
// Package engine is the operation facade: it validates flat parameter
// objects, drives resolution, search, ranking, listings filtering, and
// tiering, and shapes the caller-facing payloads. Every operation is pure
// with respect to its inputs except for cache reads/writes and feed calls.
package engine

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/common/cache"
	"ticket-scout/internal/common/config"
	apperrors "ticket-scout/internal/common/errors"
	"ticket-scout/internal/common/logger"
	"ticket-scout/internal/common/observability"
	"ticket-scout/internal/common/validation"
	"ticket-scout/internal/feed"
	"ticket-scout/internal/listings"
	"ticket-scout/internal/ranking"
	"ticket-scout/internal/resolver"
	"ticket-scout/internal/search"
	"ticket-scout/internal/tiering"
)

type Engine struct {
	catalog      *catalog.Catalog
	resolver     *resolver.Resolver
	orchestrator *search.Orchestrator
	ranker       *ranking.Ranker
	liveFilter   *ranking.LiveEventFilter
	optimizer    *tiering.Optimizer
	feed         Feed
	cache        cache.Store
	config       *config.Config
	logger       logger.Logger
	obs          *observability.Observability
	now          func() time.Time
}

func New(cat *catalog.Catalog, fd Feed, store cache.Store, cfg *config.Config, log logger.Logger, obs *observability.Observability) *Engine {
	return &Engine{
		catalog:      cat,
		resolver:     resolver.New(cat, log),
		orchestrator: search.NewOrchestrator(cat, fd, cfg.Search, log, obs),
		ranker:       ranking.NewRanker(cat),
		liveFilter:   ranking.NewLiveEventFilter(cat),
		optimizer:    tiering.NewOptimizer(cfg.Tiering.MaxRecommendations),
		feed:         fd,
		cache:        store,
		config:       cfg,
		logger:       log.WithFields(map[string]interface{}{"component": "engine"}),
		obs:          obs,
		now:          time.Now,
	}
}

// FindEvents resolves a free-text query and runs the search cascade, ranking
// and live-filtering the candidates. A multi-team city with nothing else
// resolved short-circuits into a disambiguation payload before any feed call.
func (e *Engine) FindEvents(ctx context.Context, params map[string]interface{}) (*FindEventsResult, error) {
	started := e.now()
	result, err := e.findEvents(ctx, params)
	e.recordOperation(ctx, "find_events", started, err)
	return result, err
}

func (e *Engine) findEvents(ctx context.Context, params map[string]interface{}) (*FindEventsResult, error) {
	if err := validate(params, findEventsSchema); err != nil {
		return nil, err
	}

	req := &search.Request{
		Query:           stringParam(params, "query"),
		Location:        stringParam(params, "location"),
		WeeksAhead:      intParam(params, "weeksAhead"),
		Quantity:        intParam(params, "quantity"),
		BudgetPerTicket: floatParam(params, "budgetPerTicket"),
	}
	if raw := stringParam(params, "date"); raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	cacheKey := cache.GenerateKey("find_events", params)
	if cached, ok := e.cachedFindEvents(ctx, cacheKey); ok {
		return cached, nil
	}

	requestID := uuid.NewString()
	resolved := e.resolver.Resolve(req.Query)

	if resolved.IsAmbiguous {
		term := ""
		if len(resolved.AmbiguousTerms) > 0 {
			term = resolved.AmbiguousTerms[0]
		}
		return &FindEventsResult{
			Success:             false,
			RequestID:           requestID,
			Query:               req.Query,
			Resolved:            resolved,
			Events:              []RankedEvent{},
			StrategiesAttempted: []string{},
			Disambiguation: &Disambiguation{
				Term:       term,
				Candidates: resolved.CandidateTeams,
				Message:    fmt.Sprintf("%q matches multiple teams; specify one", term),
			},
		}, nil
	}

	searched, err := e.orchestrator.Search(ctx, resolved, req)
	if err != nil {
		return nil, err
	}

	scored := e.ranker.Rank(searched.Events, resolved, ranking.Params{
		Query:    req.Query,
		Location: req.Location,
		Date:     req.Date,
	})
	live, removed := e.liveFilter.Apply(scored)

	events := make([]RankedEvent, 0, len(live))
	for _, candidate := range live {
		events = append(events, RankedEvent{
			Event:          candidate.Event,
			RelevanceScore: candidate.RelevanceScore,
			HomeAway:       searched.Tags[candidate.Event.ID],
		})
	}

	result := &FindEventsResult{
		Success:             len(events) > 0,
		RequestID:           requestID,
		Query:               req.Query,
		Resolved:            resolved,
		Events:              events,
		StrategiesAttempted: searched.StrategiesAttempted,
		WinningStrategy:     searched.WinningStrategy,
		FeedCalls:           searched.FeedCalls,
		RemovedByFilter:     removed,
	}
	if len(events) == 0 {
		result.Message = "no live events matched the query"
	}

	e.storeFindEvents(ctx, cacheKey, result)
	return result, nil
}

// FindMatchup looks up a named head-to-head game by composing the canonical
// "away at home" query and delegating to the discovery pipeline.
func (e *Engine) FindMatchup(ctx context.Context, params map[string]interface{}) (*FindEventsResult, error) {
	started := e.now()
	result, err := e.findMatchup(ctx, params)
	e.recordOperation(ctx, "find_matchup", started, err)
	return result, err
}

func (e *Engine) findMatchup(ctx context.Context, params map[string]interface{}) (*FindEventsResult, error) {
	if err := validate(params, findMatchupSchema); err != nil {
		return nil, err
	}

	away := strings.TrimSpace(stringParam(params, "awayTeam"))
	home := strings.TrimSpace(stringParam(params, "homeTeam"))

	composed := map[string]interface{}{
		"query": fmt.Sprintf("%s at %s", away, home),
	}
	if raw := stringParam(params, "date"); raw != "" {
		composed["date"] = raw
	}
	if weeks := intParam(params, "weeksAhead"); weeks > 0 {
		composed["weeksAhead"] = weeks
	}
	if team, found := e.teamByAlias(home); found {
		composed["location"] = team.City
	}

	return e.findEvents(ctx, composed)
}

// GetEventListings fetches one event's inventory and applies the eligibility
// filters and ordering. The raw inventory is request-scoped cached so a
// follow-up recommendation call does not refetch it.
func (e *Engine) GetEventListings(ctx context.Context, params map[string]interface{}) (*ListingsResult, error) {
	started := e.now()
	result, err := e.getEventListings(ctx, params)
	e.recordOperation(ctx, "get_event_listings", started, err)
	return result, err
}

func (e *Engine) getEventListings(ctx context.Context, params map[string]interface{}) (*ListingsResult, error) {
	if err := validate(params, getListingsSchema); err != nil {
		return nil, err
	}

	eventID := int64(intParam(params, "eventId"))
	event, err := e.fetchEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	raw, err := e.fetchListings(ctx, eventID)
	if err != nil {
		return nil, err
	}

	filterParams := listings.FilterParams{
		Quantity:        intParam(params, "quantity"),
		PriceMin:        floatPtrParam(params, "priceMin"),
		PriceMax:        floatPtrParam(params, "priceMax"),
		Section:         stringPtrParam(params, "section"),
		Row:             stringPtrParam(params, "row"),
		Type:            stringPtrParam(params, "type"),
		Format:          stringPtrParam(params, "format"),
		InstantDelivery: boolPtrParam(params, "instantDelivery"),
		Wheelchair:      boolPtrParam(params, "wheelchair"),
		SectionPattern:  stringParam(params, "sectionPattern"),
		OrderBy:         stringParam(params, "orderBy"),
		Limit:           intParam(params, "limit"),
	}

	options, report, err := listings.Filter(raw, filterParams)
	if err != nil {
		return nil, err
	}

	return &ListingsResult{
		Success:   len(options) > 0,
		RequestID: uuid.NewString(),
		EventID:   eventID,
		Event:     event,
		Options:   options,
		Report:    report,
	}, nil
}

// RecommendTickets builds budget-tiered seat recommendations for a known
// event from its full eligible (pre-cap) listing set.
func (e *Engine) RecommendTickets(ctx context.Context, params map[string]interface{}) (*RecommendationsResult, error) {
	started := e.now()
	result, err := e.recommendTickets(ctx, params)
	e.recordOperation(ctx, "recommend_tickets", started, err)
	return result, err
}

func (e *Engine) recommendTickets(ctx context.Context, params map[string]interface{}) (*RecommendationsResult, error) {
	if err := validate(params, recommendSchema); err != nil {
		return nil, err
	}

	eventID := int64(intParam(params, "eventId"))
	quantity := intParam(params, "quantity")
	budget := floatParam(params, "budgetPerTicket")
	preference := stringParam(params, "seatingPreference")

	event, err := e.fetchEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	raw, err := e.fetchListings(ctx, eventID)
	if err != nil {
		return nil, err
	}

	// Eligibility only here: the optimizer wants the pre-cap set.
	eligible, _, err := listings.Filter(raw, listings.FilterParams{
		Quantity: quantity,
		Limit:    len(raw) + 1,
	})
	if err != nil {
		return nil, err
	}

	tiered, err := e.optimizer.Optimize(eligible, preference, budget)
	if err != nil {
		return nil, err
	}
	if preference == "" {
		preference = tiering.PreferenceBestValue
	}

	return &RecommendationsResult{
		Success:         len(tiered.Recommendations) > 0,
		RequestID:       uuid.NewString(),
		EventID:         eventID,
		Event:           event,
		Preference:      preference,
		Recommendations: tiered.Recommendations,
		Analysis:        tiered.Analysis,
	}, nil
}

// fetchEvent hydrates a single event, request-scoped cached. A 404 from the
// feed surfaces as EVENT_NOT_FOUND.
func (e *Engine) fetchEvent(ctx context.Context, eventID int64) (*feed.Event, error) {
	key := cache.GenerateKey("event", map[string]interface{}{"eventId": eventID})
	if data, ok, err := e.cache.GetRequestScoped(ctx, key); err == nil && ok {
		var cached feed.Event
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	event, err := e.feed.GetEvent(ctx, eventID)
	if err != nil {
		var stdErr *apperrors.StandardError
		if stderrors.As(err, &stdErr) && strings.Contains(stdErr.Details, "status 404") {
			return nil, apperrors.NewEventNotFoundError(eventID)
		}
		return nil, err
	}

	if data, err := json.Marshal(event); err == nil {
		if err := e.cache.SetRequestScoped(ctx, key, data); err != nil {
			e.logger.Warn("request-scoped cache write failed", map[string]interface{}{
				"eventId": eventID,
				"error":   err.Error(),
			})
		}
	}
	return event, nil
}

// fetchListings returns one event's raw ticket groups, request-scoped cached.
func (e *Engine) fetchListings(ctx context.Context, eventID int64) ([]feed.Listing, error) {
	key := cache.GenerateKey("listings", map[string]interface{}{"eventId": eventID})
	if data, ok, err := e.cache.GetRequestScoped(ctx, key); err == nil && ok {
		var cached []feed.Listing
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	resp, err := e.feed.GetListings(ctx, eventID)
	if err != nil {
		var stdErr *apperrors.StandardError
		if stderrors.As(err, &stdErr) && stdErr.Code == apperrors.ErrCodeListingsFetchFailed && strings.Contains(stdErr.Details, "status 404") {
			return nil, apperrors.NewEventNotFoundError(eventID)
		}
		return nil, err
	}

	if data, err := json.Marshal(resp.TicketGroups); err == nil {
		if err := e.cache.SetRequestScoped(ctx, key, data); err != nil {
			e.logger.Warn("request-scoped cache write failed", map[string]interface{}{
				"eventId": eventID,
				"error":   err.Error(),
			})
		}
	}
	return resp.TicketGroups, nil
}

func (e *Engine) cachedFindEvents(ctx context.Context, key string) (*FindEventsResult, bool) {
	data, ok, err := e.cache.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var result FindEventsResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	// The stored id belongs to the request that populated the cache.
	result.RequestID = uuid.NewString()
	return &result, true
}

func (e *Engine) storeFindEvents(ctx context.Context, key string, result *FindEventsResult) {
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	ttl := config.GetDuration(e.config.Cache.DefaultTTL)
	if err := e.cache.Set(ctx, key, data, ttl); err != nil {
		e.logger.Warn("cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func (e *Engine) teamByAlias(alias string) (catalog.Team, bool) {
	ref, ok := e.catalog.LookupAlias(alias)
	if !ok || ref.Kind != catalog.KindTeam {
		return catalog.Team{}, false
	}
	return e.catalog.Team(ref.Key)
}

func (e *Engine) recordOperation(ctx context.Context, operation string, started time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	if e.obs != nil {
		e.obs.RecordOperationDuration(ctx, operation, e.now().Sub(started), status)
	}
}

func validate(params map[string]interface{}, schema validation.JSONSchema) error {
	result := validation.ValidateInput(params, schema)
	if result.Valid {
		return nil
	}
	details := make([]string, 0, len(result.Errors))
	for _, verr := range result.Errors {
		details = append(details, fmt.Sprintf("%s: %s", verr.Field, verr.Message))
	}
	return apperrors.NewInvalidParametersError(strings.Join(details, "; "))
}

// parseDate accepts a bare day or a full RFC3339 timestamp.
func parseDate(raw string) (time.Time, error) {
	if date, err := time.Parse("2006-01-02", raw); err == nil {
		return date, nil
	}
	if date, err := time.Parse(time.RFC3339, raw); err == nil {
		return date, nil
	}
	return time.Time{}, apperrors.NewInvalidParametersError(fmt.Sprintf("unparseable date %q", raw))
}
