// internal/tiering/models.go
// Package tiering turns an event's eligible listings into budget-aware seat
// recommendations across price bands.
package tiering

import "ticket-scout/internal/listings"

// Seating preferences accepted by Optimize.
const (
	PreferenceBudget    = "budget"
	PreferencePremium   = "premium"
	PreferenceMixed     = "mixed"
	PreferenceBestValue = "best_value"
)

// Tier labels attached to recommendations.
const (
	TierBudget  = "budget"
	TierMid     = "mid-tier"
	TierPremium = "premium"
)

// Recommendation is one suggested purchase with its scoring rationale.
type Recommendation struct {
	Option             listings.Option `json:"option"`
	SeatingTier        string          `json:"seatingTier"`
	ValueScore         int             `json:"valueScore"`
	QualityIndicators  []string        `json:"qualityIndicators"`
	PotentialDrawbacks []string        `json:"potentialDrawbacks"`
}

// BandSummary describes one price band of the eligible set.
type BandSummary struct {
	Count    int     `json:"count"`
	MinPrice float64 `json:"minPrice,omitempty"`
	MaxPrice float64 `json:"maxPrice,omitempty"`
}

// BudgetAnalysis is the overall price picture returned alongside the
// recommendations.
type BudgetAnalysis struct {
	BudgetPerTicket    float64                `json:"budgetPerTicket"`
	CheapestPrice      float64                `json:"cheapestPrice"`
	MostExpensivePrice float64                `json:"mostExpensivePrice"`
	AveragePrice       float64                `json:"averagePrice"`
	BudgetThreshold    float64                `json:"budgetTierThreshold"`
	MidThreshold       float64                `json:"midTierThreshold"`
	Bands              map[string]BandSummary `json:"bands"`
	SavingsVsBudget    float64                `json:"savingsVsBudget"`
}

// Result bundles the capped recommendations with the analysis.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Analysis        BudgetAnalysis   `json:"budgetAnalysis"`
}
