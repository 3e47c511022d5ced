// internal/listings/filter.go
package listings

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"ticket-scout/internal/common/errors"
	"ticket-scout/internal/feed"
)

const defaultLimit = 5

// Filter applies the eligibility rules and ordering to one event's raw
// listings. The report records how much each filter removed.
func Filter(raw []feed.Listing, p FilterParams) ([]Option, *Report, error) {
	if p.Quantity < 1 {
		return nil, nil, errors.NewInvalidParametersError("quantity must be at least 1")
	}
	if p.PriceMin != nil && p.PriceMax != nil && *p.PriceMin > *p.PriceMax {
		return nil, nil, errors.NewInvalidParametersError("priceMin exceeds priceMax")
	}

	pattern, err := parseSectionPattern(p.SectionPattern)
	if err != nil {
		return nil, nil, err
	}

	report := &Report{
		TotalListings: len(raw),
		RemovedBy:     make(map[string]int),
	}

	var eligible []Option
	for _, listing := range raw {
		if reason := ineligibleReason(listing, p, pattern); reason != "" {
			report.RemovedBy[reason]++
			continue
		}
		eligible = append(eligible, newOption(listing, p.Quantity))
	}
	report.Eligible = len(eligible)

	sortOptions(eligible, p.OrderBy)

	limit := p.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if len(eligible) > limit {
		eligible = eligible[:limit]
	}
	report.Returned = len(eligible)

	return eligible, report, nil
}

// ineligibleReason returns the empty string for eligible listings, otherwise
// the name of the first filter that rejects it.
func ineligibleReason(l feed.Listing, p FilterParams, pattern []sectionToken) string {
	if l.AvailableQuantity < p.Quantity {
		return "available_quantity"
	}
	if !splitAllows(l.Splits, p.Quantity) {
		return "splits"
	}
	if p.PriceMin != nil && l.RetailPrice < *p.PriceMin {
		return "price_min"
	}
	if p.PriceMax != nil && l.RetailPrice > *p.PriceMax {
		return "price_max"
	}
	if p.Section != nil && !strings.EqualFold(l.Section, *p.Section) {
		return "section"
	}
	if p.Row != nil && !strings.EqualFold(l.Row, *p.Row) {
		return "row"
	}
	if p.Type != nil && !strings.EqualFold(l.Type, *p.Type) {
		return "type"
	}
	if p.Format != nil && !strings.EqualFold(l.Format, *p.Format) {
		return "format"
	}
	if p.InstantDelivery != nil && l.InstantDelivery != *p.InstantDelivery {
		return "instant_delivery"
	}
	if p.Wheelchair != nil && l.Wheelchair != *p.Wheelchair {
		return "wheelchair"
	}
	if len(pattern) > 0 && !matchesSectionPattern(l.Section, pattern) {
		return "section_pattern"
	}
	return ""
}

func splitAllows(splits []int, quantity int) bool {
	for _, split := range splits {
		if split == quantity {
			return true
		}
	}
	return false
}

// sectionToken is one comma-separated term of a section pattern: either an
// inclusive numeric range or a literal prefix.
type sectionToken struct {
	isRange bool
	lo, hi  int
	prefix  string
}

func parseSectionPattern(pattern string) ([]sectionToken, error) {
	if pattern == "" {
		return nil, nil
	}

	var tokens []sectionToken
	for _, part := range strings.Split(pattern, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if lo, hi, ok := parseNumericRange(part); ok {
			if lo > hi {
				return nil, errors.NewInvalidParametersError(fmt.Sprintf("invalid section range %q", part))
			}
			tokens = append(tokens, sectionToken{isRange: true, lo: lo, hi: hi})
			continue
		}
		tokens = append(tokens, sectionToken{prefix: strings.ToLower(part)})
	}
	return tokens, nil
}

func parseNumericRange(part string) (int, int, bool) {
	lo, hi, found := strings.Cut(part, "-")
	if !found {
		return 0, 0, false
	}
	low, err1 := strconv.Atoi(strings.TrimSpace(lo))
	high, err2 := strconv.Atoi(strings.TrimSpace(hi))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return low, high, true
}

// matchesSectionPattern accepts a section when any token matches: a range
// token against the digits embedded in the section, a prefix token against
// the literal string.
func matchesSectionPattern(section string, tokens []sectionToken) bool {
	lowered := strings.ToLower(section)
	digits := sectionDigits(section)

	for _, token := range tokens {
		if token.isRange {
			if digits >= 0 && digits >= token.lo && digits <= token.hi {
				return true
			}
			continue
		}
		if strings.HasPrefix(lowered, token.prefix) {
			return true
		}
	}
	return false
}

// sectionDigits extracts the first run of digits in a section name, -1 when
// there is none.
func sectionDigits(section string) int {
	start := -1
	for i, r := range section {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(section[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(section[start:])
		return n
	}
	return -1
}

func sortOptions(options []Option, orderBy string) {
	switch orderBy {
	case OrderPriceDesc:
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].PricePerTicket > options[j].PricePerTicket
		})
	case OrderSectionAsc:
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].Section < options[j].Section
		})
	case OrderSectionDesc:
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].Section > options[j].Section
		})
	case OrderRowAsc:
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].Row < options[j].Row
		})
	case OrderRowDesc:
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].Row > options[j].Row
		})
	case OrderFormatAsc:
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].Format < options[j].Format
		})
	case OrderFormatDesc:
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].Format > options[j].Format
		})
	default:
		// Price ascending with the deterministic tie-break cascade.
		sort.SliceStable(options, func(i, j int) bool {
			a, b := options[i], options[j]
			if a.PricePerTicket != b.PricePerTicket {
				return a.PricePerTicket < b.PricePerTicket
			}
			if a.Section != b.Section {
				return a.Section < b.Section
			}
			if a.Row != b.Row {
				return a.Row < b.Row
			}
			if a.InHand != b.InHand {
				return a.InHand
			}
			if a.InstantDelivery != b.InstantDelivery {
				return a.InstantDelivery
			}
			return false
		})
	}
}
