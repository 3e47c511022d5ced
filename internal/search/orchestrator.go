// internal/search/orchestrator.go
// Package search runs the cascading multi-strategy discovery against the
// marketplace feed. Strategies execute strictly sequentially in a fixed
// priority order, short-circuiting at the first one that yields results;
// per-strategy upstream errors are logged and the cascade moves on.
package search

import (
	"context"
	"time"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/common/config"
	"ticket-scout/internal/common/logger"
	"ticket-scout/internal/common/observability"
	"ticket-scout/internal/feed"
	"ticket-scout/internal/resolver"
)

type Orchestrator struct {
	strategies []Strategy
	catalog    *catalog.Catalog
	feed       Feed
	config     config.SearchConfig
	logger     logger.Logger
	obs        *observability.Observability
	now        func() time.Time
}

func NewOrchestrator(cat *catalog.Catalog, fd Feed, cfg config.SearchConfig, log logger.Logger, obs *observability.Observability) *Orchestrator {
	return &Orchestrator{
		strategies: []Strategy{
			&directDateLocation{},
			&suggestionDiscovery{},
			&resolvedEntity{},
			&cityKeyword{},
			&fuzzyFallback{},
		},
		catalog: cat,
		feed:    fd,
		config:  cfg,
		logger:  log.WithFields(map[string]interface{}{"component": "search"}),
		obs:     obs,
		now:     time.Now,
	}
}

// Search runs the cascade. The returned events are deduplicated by id across
// strategies; collection order is preserved for stable downstream sorting.
func (o *Orchestrator) Search(ctx context.Context, resolved *resolver.ResolvedQuery, req *Request) (*Result, error) {
	sc := &Context{
		Resolved: resolved,
		Req:      req,
		Catalog:  o.catalog,
		Feed:     o.feed,
		Config:   o.config,
		Logger:   o.logger,
		Now:      o.now,
	}

	result := &Result{
		Events:              []feed.Event{},
		StrategiesAttempted: []string{},
	}
	seen := make(map[int64]bool)

	for _, strategy := range o.strategies {
		if !strategy.Applicable(sc) {
			continue
		}

		result.StrategiesAttempted = append(result.StrategiesAttempted, strategy.Name())

		events, err := strategy.Attempt(ctx, sc)
		if err != nil {
			// Per-strategy failures never abort the whole query.
			o.logger.Warn("search strategy failed", map[string]interface{}{
				"strategy": strategy.Name(),
				"error":    err.Error(),
			})
			if o.obs != nil {
				o.obs.RecordStrategyAttempt(ctx, strategy.Name(), "error")
			}
			continue
		}

		added := 0
		for _, event := range events {
			if seen[event.ID] {
				continue
			}
			seen[event.ID] = true
			result.Events = append(result.Events, event)
			added++
		}

		outcome := "empty"
		if added > 0 {
			outcome = "hit"
		}
		if o.obs != nil {
			o.obs.RecordStrategyAttempt(ctx, strategy.Name(), outcome)
		}

		if added > 0 {
			result.WinningStrategy = strategy.Name()
			break
		}
	}

	result.FeedCalls = sc.feedCalls
	result.Tags = sc.tags

	o.logger.Info("search cascade finished", map[string]interface{}{
		"query":      req.Query,
		"strategies": result.StrategiesAttempted,
		"winner":     result.WinningStrategy,
		"events":     len(result.Events),
		"feedCalls":  result.FeedCalls,
	})

	return result, nil
}
