// internal/engine/schemas.go
package engine

import "ticket-scout/internal/common/validation"

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// findEventsSchema validates the free-text discovery parameters.
var findEventsSchema = validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		"query":           {Type: "string", MinLength: intPtr(1), MaxLength: intPtr(200), Description: "free-text event query"},
		"date":            {Type: "string", Description: "explicit event date, YYYY-MM-DD or RFC3339"},
		"location":        {Type: "string", MaxLength: intPtr(100)},
		"weeksAhead":      {Type: "integer", Minimum: floatPtr(1), Maximum: floatPtr(52)},
		"quantity":        {Type: "integer", Minimum: floatPtr(1), Maximum: floatPtr(20)},
		"budgetPerTicket": {Type: "number", Minimum: floatPtr(1)},
	},
	Required: []string{"query"},
}

// findMatchupSchema validates a named head-to-head lookup.
var findMatchupSchema = validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		"awayTeam":   {Type: "string", MinLength: intPtr(2), MaxLength: intPtr(60)},
		"homeTeam":   {Type: "string", MinLength: intPtr(2), MaxLength: intPtr(60)},
		"date":       {Type: "string"},
		"weeksAhead": {Type: "integer", Minimum: floatPtr(1), Maximum: floatPtr(52)},
	},
	Required: []string{"awayTeam", "homeTeam"},
}

// getListingsSchema validates the per-event listings filter parameters.
var getListingsSchema = validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		"eventId":         {Type: "integer", Minimum: floatPtr(1)},
		"quantity":        {Type: "integer", Minimum: floatPtr(1), Maximum: floatPtr(20)},
		"priceMin":        {Type: "number", Minimum: floatPtr(0)},
		"priceMax":        {Type: "number", Minimum: floatPtr(0)},
		"section":         {Type: "string", MaxLength: intPtr(40)},
		"row":             {Type: "string", MaxLength: intPtr(10)},
		"type":            {Type: "string", MaxLength: intPtr(30)},
		"format":          {Type: "string", MaxLength: intPtr(30)},
		"instantDelivery": {Type: "boolean"},
		"wheelchair":      {Type: "boolean"},
		"sectionPattern":  {Type: "string", MaxLength: intPtr(100)},
		"orderBy": {Type: "string", Enum: []string{
			"price_asc", "price_desc", "section_asc", "section_desc",
			"row_asc", "row_desc", "format_asc", "format_desc",
		}},
		"limit": {Type: "integer", Minimum: floatPtr(1), Maximum: floatPtr(20)},
	},
	Required: []string{"eventId", "quantity"},
}

// recommendSchema validates the budget-tiered recommendation parameters.
var recommendSchema = validation.JSONSchema{
	Type: "object",
	Properties: map[string]validation.Property{
		"eventId":           {Type: "integer", Minimum: floatPtr(1)},
		"quantity":          {Type: "integer", Minimum: floatPtr(1), Maximum: floatPtr(20)},
		"budgetPerTicket":   {Type: "number", Minimum: floatPtr(1)},
		"seatingPreference": {Type: "string", Enum: []string{"budget", "premium", "mixed", "best_value"}},
	},
	Required: []string{"eventId", "quantity", "budgetPerTicket"},
}
