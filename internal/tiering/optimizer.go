// internal/tiering/optimizer.go
package tiering

import (
	"sort"
	"strings"

	"ticket-scout/internal/common/errors"
	"ticket-scout/internal/listings"
)

// Value-score adjustments. Empirically tuned, kept as named constants.
const (
	valueBase              = 50
	valueUnderBudgetMax    = 30
	valueFloorBonus        = 15
	valueBoxSuiteBonus     = 20
	valueUpperPenalty      = 10
	valueObstructedPenalty = 15
	valueLowRowBonus       = 10
	valueInstantBonus      = 5
	valueInHandBonus       = 10
	lowRowCutoff           = 5
)

const maxRecommendations = 5

type Optimizer struct {
	maxRecommendations int
}

func NewOptimizer(max int) *Optimizer {
	if max <= 0 || max > maxRecommendations {
		max = maxRecommendations
	}
	return &Optimizer{maxRecommendations: max}
}

// Optimize selects up to five recommendations from the eligible listings
// according to the seating preference, with a budget analysis of the whole
// eligible set. Listings priced above the budget are never recommended.
func (o *Optimizer) Optimize(eligible []listings.Option, preference string, budgetPerTicket float64) (*Result, error) {
	if budgetPerTicket <= 0 {
		return nil, errors.NewInvalidParametersError("budgetPerTicket must be positive")
	}
	switch preference {
	case PreferenceBudget, PreferencePremium, PreferenceMixed, PreferenceBestValue:
	case "":
		preference = PreferenceBestValue
	default:
		return nil, errors.NewInvalidParametersError("unknown seating preference " + preference)
	}

	var affordable []listings.Option
	for _, option := range eligible {
		if option.PricePerTicket <= budgetPerTicket {
			affordable = append(affordable, option)
		}
	}

	analysis := o.analyze(eligible, affordable, budgetPerTicket)
	if len(affordable) == 0 {
		return &Result{Recommendations: []Recommendation{}, Analysis: analysis}, nil
	}

	byPrice := append([]listings.Option(nil), affordable...)
	sort.SliceStable(byPrice, func(i, j int) bool {
		return byPrice[i].PricePerTicket < byPrice[j].PricePerTicket
	})

	var picked []listings.Option
	switch preference {
	case PreferenceBudget:
		picked = o.pickBudget(byPrice, analysis)
	case PreferencePremium:
		picked = o.pickPremium(byPrice, analysis)
	case PreferenceMixed:
		picked = o.pickMixed(byPrice, analysis)
	case PreferenceBestValue:
		picked = o.pickBestValue(byPrice, budgetPerTicket)
	}

	if len(picked) > o.maxRecommendations {
		picked = picked[:o.maxRecommendations]
	}

	recommendations := make([]Recommendation, 0, len(picked))
	for _, option := range picked {
		recommendations = append(recommendations, o.recommend(option, analysis, budgetPerTicket))
	}

	return &Result{Recommendations: recommendations, Analysis: analysis}, nil
}

// analyze computes the thirds-based band thresholds between the cheapest
// affordable price and the budget ceiling, plus the summary statistics.
func (o *Optimizer) analyze(eligible, affordable []listings.Option, budget float64) BudgetAnalysis {
	analysis := BudgetAnalysis{
		BudgetPerTicket: budget,
		Bands:           make(map[string]BandSummary),
	}
	if len(eligible) > 0 {
		min, max, sum := eligible[0].PricePerTicket, eligible[0].PricePerTicket, 0.0
		for _, option := range eligible {
			if option.PricePerTicket < min {
				min = option.PricePerTicket
			}
			if option.PricePerTicket > max {
				max = option.PricePerTicket
			}
			sum += option.PricePerTicket
		}
		analysis.CheapestPrice = min
		analysis.MostExpensivePrice = max
		analysis.AveragePrice = sum / float64(len(eligible))
	}

	if len(affordable) == 0 {
		return analysis
	}

	cheapest := affordable[0].PricePerTicket
	for _, option := range affordable {
		if option.PricePerTicket < cheapest {
			cheapest = option.PricePerTicket
		}
	}
	span := budget - cheapest
	analysis.BudgetThreshold = cheapest + span/3
	analysis.MidThreshold = cheapest + 2*span/3

	for _, option := range affordable {
		tier := tierFor(option.PricePerTicket, analysis)
		band := analysis.Bands[tier]
		if band.Count == 0 || option.PricePerTicket < band.MinPrice {
			band.MinPrice = option.PricePerTicket
		}
		if option.PricePerTicket > band.MaxPrice {
			band.MaxPrice = option.PricePerTicket
		}
		band.Count++
		analysis.Bands[tier] = band
	}

	analysis.SavingsVsBudget = budget - cheapest
	return analysis
}

func tierFor(price float64, analysis BudgetAnalysis) string {
	switch {
	case price <= analysis.BudgetThreshold:
		return TierBudget
	case price <= analysis.MidThreshold:
		return TierMid
	default:
		return TierPremium
	}
}

// pickBudget returns the cheapest band only, cheapest first.
func (o *Optimizer) pickBudget(byPrice []listings.Option, analysis BudgetAnalysis) []listings.Option {
	var picked []listings.Option
	for _, option := range byPrice {
		if tierFor(option.PricePerTicket, analysis) == TierBudget {
			picked = append(picked, option)
		}
	}
	return picked
}

// pickPremium prefers the most expensive affordable tickets, backfilling from
// mid-tier then budget when premium supply is thin.
func (o *Optimizer) pickPremium(byPrice []listings.Option, analysis BudgetAnalysis) []listings.Option {
	desc := append([]listings.Option(nil), byPrice...)
	sort.SliceStable(desc, func(i, j int) bool {
		return desc[i].PricePerTicket > desc[j].PricePerTicket
	})

	var picked []listings.Option
	for _, tier := range []string{TierPremium, TierMid, TierBudget} {
		for _, option := range desc {
			if len(picked) >= o.maxRecommendations {
				return picked
			}
			if tierFor(option.PricePerTicket, analysis) == tier {
				picked = append(picked, option)
			}
		}
	}
	return picked
}

// pickMixed takes the cheapest option from each populated band, then fills the
// remaining slots from the most populous band.
func (o *Optimizer) pickMixed(byPrice []listings.Option, analysis BudgetAnalysis) []listings.Option {
	byTier := make(map[string][]listings.Option)
	for _, option := range byPrice {
		tier := tierFor(option.PricePerTicket, analysis)
		byTier[tier] = append(byTier[tier], option)
	}

	var picked []listings.Option
	taken := make(map[int64]bool)
	for _, tier := range []string{TierBudget, TierMid, TierPremium} {
		if options := byTier[tier]; len(options) > 0 {
			picked = append(picked, options[0])
			taken[options[0].ListingID] = true
		}
	}

	largest := ""
	for _, tier := range []string{TierBudget, TierMid, TierPremium} {
		if largest == "" || len(byTier[tier]) > len(byTier[largest]) {
			largest = tier
		}
	}
	for _, option := range byTier[largest] {
		if len(picked) >= o.maxRecommendations {
			break
		}
		if !taken[option.ListingID] {
			picked = append(picked, option)
			taken[option.ListingID] = true
		}
	}
	return picked
}

// pickBestValue ranks every affordable ticket by value score, ignoring bands.
func (o *Optimizer) pickBestValue(byPrice []listings.Option, budget float64) []listings.Option {
	ranked := append([]listings.Option(nil), byPrice...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ValueScore(ranked[i], budget) > ValueScore(ranked[j], budget)
	})
	return ranked
}

func (o *Optimizer) recommend(option listings.Option, analysis BudgetAnalysis, budget float64) Recommendation {
	quality, drawbacks := seatNotes(option, budget)
	return Recommendation{
		Option:             option,
		SeatingTier:        tierFor(option.PricePerTicket, analysis),
		ValueScore:         ValueScore(option, budget),
		QualityIndicators:  quality,
		PotentialDrawbacks: drawbacks,
	}
}

// ValueScore rates one affordable option on a 0-100 scale: price headroom,
// seat-location cues, and delivery convenience.
func ValueScore(option listings.Option, budget float64) int {
	score := valueBase

	if budget > 0 && option.PricePerTicket < budget {
		headroom := (budget - option.PricePerTicket) / budget
		score += int(headroom * valueUnderBudgetMax)
	}

	section := strings.ToLower(option.Section)
	switch {
	case strings.Contains(section, "box") || strings.Contains(section, "suite"):
		score += valueBoxSuiteBonus
	case strings.Contains(section, "floor") || strings.Contains(section, "field") || strings.Contains(section, "court"):
		score += valueFloorBonus
	}
	if strings.Contains(section, "upper") || strings.Contains(section, "balcony") || strings.Contains(section, "nosebleed") {
		score -= valueUpperPenalty
	}
	if strings.Contains(section, "obstructed") || strings.Contains(section, "limited view") {
		score -= valueObstructedPenalty
	}

	if row := rowNumber(option.Row); row > 0 && row <= lowRowCutoff {
		score += valueLowRowBonus
	}

	if option.InHand {
		score += valueInHandBonus
	} else if option.InstantDelivery {
		score += valueInstantBonus
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func seatNotes(option listings.Option, budget float64) (quality, drawbacks []string) {
	section := strings.ToLower(option.Section)

	if budget > 0 && option.PricePerTicket <= budget*0.7 {
		quality = append(quality, "well under budget")
	}
	if strings.Contains(section, "box") || strings.Contains(section, "suite") {
		quality = append(quality, "box or suite seating")
	}
	if strings.Contains(section, "floor") || strings.Contains(section, "field") || strings.Contains(section, "court") {
		quality = append(quality, "close to the action")
	}
	if row := rowNumber(option.Row); row > 0 && row <= lowRowCutoff {
		quality = append(quality, "low row")
	}
	if option.InHand {
		quality = append(quality, "tickets in hand")
	} else if option.InstantDelivery {
		quality = append(quality, "instant delivery")
	}

	if strings.Contains(section, "upper") || strings.Contains(section, "balcony") {
		drawbacks = append(drawbacks, "upper level")
	}
	if strings.Contains(section, "obstructed") || strings.Contains(section, "limited view") {
		drawbacks = append(drawbacks, "possible obstructed view")
	}
	if budget > 0 && option.PricePerTicket > budget*0.9 {
		drawbacks = append(drawbacks, "close to budget ceiling")
	}
	return quality, drawbacks
}

// rowNumber parses a numeric row label, 0 when the row is lettered or empty.
func rowNumber(row string) int {
	n := 0
	for _, r := range strings.TrimSpace(row) {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
