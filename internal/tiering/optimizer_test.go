// internal/tiering/optimizer_test.go
package tiering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ticket-scout/internal/common/errors"
	"ticket-scout/internal/listings"
)

// Four eligible options around a 150 budget: three affordable, one over.
// Affordable span is 60..150, so bands break at 90 and 120.
func spreadOptions() []listings.Option {
	return []listings.Option{
		{ListingID: 1, Section: "Upper 320", Row: "12", PricePerTicket: 60},
		{ListingID: 2, Section: "214", Row: "8", PricePerTicket: 90},
		{ListingID: 3, Section: "Floor A", Row: "3", PricePerTicket: 140},
		{ListingID: 4, Section: "Suite 1", Row: "1", PricePerTicket: 200},
	}
}

func TestOptimize_BestValueOrdersByScoreNotPrice(t *testing.T) {
	result, err := NewOptimizer(0).Optimize(spreadOptions(), PreferenceBestValue, 150)
	require.NoError(t, err)

	require.Len(t, result.Recommendations, 3, "the 200 option is over budget")

	ids := make([]int64, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		assert.LessOrEqual(t, rec.Option.PricePerTicket, 150.0)
		ids = append(ids, rec.Option.ListingID)
	}
	// Floor seat in a low row beats the cheap upper seat despite the price gap.
	assert.Equal(t, []int64{3, 2, 1}, ids)
	for i := 1; i < len(result.Recommendations); i++ {
		assert.GreaterOrEqual(t, result.Recommendations[i-1].ValueScore, result.Recommendations[i].ValueScore)
	}
}

func TestOptimize_BudgetAnalysisThirds(t *testing.T) {
	result, err := NewOptimizer(0).Optimize(spreadOptions(), PreferenceBestValue, 150)
	require.NoError(t, err)

	analysis := result.Analysis
	assert.Equal(t, 60.0, analysis.CheapestPrice)
	assert.Equal(t, 200.0, analysis.MostExpensivePrice)
	assert.InDelta(t, 122.5, analysis.AveragePrice, 0.001)
	assert.InDelta(t, 90.0, analysis.BudgetThreshold, 0.001)
	assert.InDelta(t, 120.0, analysis.MidThreshold, 0.001)
	assert.Equal(t, 90.0, analysis.SavingsVsBudget)

	assert.Equal(t, 2, analysis.Bands[TierBudget].Count)
	assert.Equal(t, 1, analysis.Bands[TierPremium].Count)
	assert.Zero(t, analysis.Bands[TierMid].Count)
}

func TestOptimize_BudgetPreference(t *testing.T) {
	result, err := NewOptimizer(0).Optimize(spreadOptions(), PreferenceBudget, 150)
	require.NoError(t, err)

	require.Len(t, result.Recommendations, 2)
	assert.Equal(t, int64(1), result.Recommendations[0].Option.ListingID, "cheapest first")
	assert.Equal(t, int64(2), result.Recommendations[1].Option.ListingID)
	for _, rec := range result.Recommendations {
		assert.Equal(t, TierBudget, rec.SeatingTier)
	}
}

func TestOptimize_PremiumBackfillsDownward(t *testing.T) {
	result, err := NewOptimizer(0).Optimize(spreadOptions(), PreferencePremium, 150)
	require.NoError(t, err)

	ids := make([]int64, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		ids = append(ids, rec.Option.ListingID)
	}
	// Premium tier first, then the budget band in descending price order.
	assert.Equal(t, []int64{3, 2, 1}, ids)
	assert.Equal(t, TierPremium, result.Recommendations[0].SeatingTier)
}

func TestOptimize_MixedSpansBands(t *testing.T) {
	result, err := NewOptimizer(0).Optimize(spreadOptions(), PreferenceMixed, 150)
	require.NoError(t, err)

	ids := make([]int64, 0, len(result.Recommendations))
	for _, rec := range result.Recommendations {
		ids = append(ids, rec.Option.ListingID)
	}
	// Cheapest of each populated band, then backfill from the biggest band.
	assert.Equal(t, []int64{1, 3, 2}, ids)
}

func TestOptimize_EmptyPreferenceDefaultsToBestValue(t *testing.T) {
	explicit, err := NewOptimizer(0).Optimize(spreadOptions(), PreferenceBestValue, 150)
	require.NoError(t, err)
	defaulted, err := NewOptimizer(0).Optimize(spreadOptions(), "", 150)
	require.NoError(t, err)

	assert.Equal(t, explicit.Recommendations, defaulted.Recommendations)
}

func TestOptimize_NothingAffordable(t *testing.T) {
	result, err := NewOptimizer(0).Optimize(spreadOptions(), PreferenceBestValue, 50)
	require.NoError(t, err)

	assert.Empty(t, result.Recommendations)
	assert.Equal(t, 60.0, result.Analysis.CheapestPrice, "analysis still covers the eligible set")
	assert.Zero(t, result.Analysis.BudgetThreshold)
}

func TestOptimize_CapsAtFive(t *testing.T) {
	options := make([]listings.Option, 0, 8)
	for i := int64(1); i <= 8; i++ {
		options = append(options, listings.Option{ListingID: i, Section: "110", PricePerTicket: float64(40 + i)})
	}

	result, err := NewOptimizer(0).Optimize(options, PreferenceBestValue, 100)
	require.NoError(t, err)
	assert.Len(t, result.Recommendations, 5)
}

func TestOptimize_InvalidInput(t *testing.T) {
	_, err := NewOptimizer(0).Optimize(spreadOptions(), PreferenceBestValue, 0)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidParameters, apperrors.CodeOf(err))

	_, err = NewOptimizer(0).Optimize(spreadOptions(), "cheapest", 100)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidParameters, apperrors.CodeOf(err))
}

func TestValueScore_StaysInRange(t *testing.T) {
	tests := []struct {
		name   string
		option listings.Option
		budget float64
	}{
		{name: "everything good", option: listings.Option{Section: "Suite Box 1", Row: "1", PricePerTicket: 1, InHand: true}, budget: 1000},
		{name: "everything bad", option: listings.Option{Section: "Upper Balcony Obstructed", Row: "ZZ", PricePerTicket: 100}, budget: 100},
		{name: "no section or row", option: listings.Option{PricePerTicket: 75}, budget: 100},
		{name: "price equals budget", option: listings.Option{Section: "110", PricePerTicket: 100}, budget: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ValueScore(tt.option, tt.budget)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

func TestValueScore_SeatCues(t *testing.T) {
	budget := 100.0
	plain := ValueScore(listings.Option{Section: "110", PricePerTicket: 80}, budget)
	floor := ValueScore(listings.Option{Section: "Floor B", PricePerTicket: 80}, budget)
	suite := ValueScore(listings.Option{Section: "Suite 4", PricePerTicket: 80}, budget)
	upper := ValueScore(listings.Option{Section: "Upper 300", PricePerTicket: 80}, budget)

	assert.Greater(t, floor, plain)
	assert.Greater(t, suite, floor, "box and suite outrank floor")
	assert.Less(t, upper, plain)

	backRow := ValueScore(listings.Option{Section: "110", Row: "22", PricePerTicket: 80}, budget)
	frontRow := ValueScore(listings.Option{Section: "110", Row: "3", PricePerTicket: 80}, budget)
	assert.Greater(t, frontRow, backRow)

	shipped := ValueScore(listings.Option{Section: "110", PricePerTicket: 80}, budget)
	instant := ValueScore(listings.Option{Section: "110", PricePerTicket: 80, InstantDelivery: true}, budget)
	inHand := ValueScore(listings.Option{Section: "110", PricePerTicket: 80, InHand: true}, budget)
	assert.Greater(t, instant, shipped)
	assert.Greater(t, inHand, instant)
}
