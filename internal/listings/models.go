// internal/listings/models.go
// Package listings filters and ranks the raw ticket groups of one event
// against the caller's quantity, price, and seat constraints.
package listings

import "ticket-scout/internal/feed"

// Order keys accepted by FilterParams.OrderBy.
const (
	OrderPriceAsc    = "price_asc"
	OrderPriceDesc   = "price_desc"
	OrderSectionAsc  = "section_asc"
	OrderSectionDesc = "section_desc"
	OrderRowAsc      = "row_asc"
	OrderRowDesc     = "row_desc"
	OrderFormatAsc   = "format_asc"
	OrderFormatDesc  = "format_desc"
)

// FilterParams are the caller's constraints. Quantity is required; nil
// pointers mean "no constraint".
type FilterParams struct {
	Quantity        int      `json:"quantity"`
	PriceMin        *float64 `json:"priceMin,omitempty"`
	PriceMax        *float64 `json:"priceMax,omitempty"`
	Section         *string  `json:"section,omitempty"`
	Row             *string  `json:"row,omitempty"`
	Type            *string  `json:"type,omitempty"`
	Format          *string  `json:"format,omitempty"`
	InstantDelivery *bool    `json:"instantDelivery,omitempty"`
	Wheelchair      *bool    `json:"wheelchair,omitempty"`
	SectionPattern  string   `json:"sectionPattern,omitempty"`
	OrderBy         string   `json:"orderBy,omitempty"`
	Limit           int      `json:"limit,omitempty"`
}

// Option is a listing projected with per-request pricing. Created fresh per
// request, never mutated afterwards.
type Option struct {
	ListingID       int64   `json:"listingId"`
	Section         string  `json:"section"`
	Row             string  `json:"row"`
	PricePerTicket  float64 `json:"pricePerTicket"`
	TotalPrice      float64 `json:"totalPriceForRequestedQuantity"`
	Quantity        int     `json:"quantity"`
	Format          string  `json:"format"`
	InstantDelivery bool    `json:"instantDelivery"`
	InHand          bool    `json:"inHand"`
	Wheelchair      bool    `json:"wheelchair"`
	Type            string  `json:"type"`
}

// Report says which filters actually reduced the candidate set and by how
// many listings.
type Report struct {
	TotalListings int            `json:"totalListings"`
	Eligible      int            `json:"eligible"`
	Returned      int            `json:"returned"`
	RemovedBy     map[string]int `json:"removedBy"`
}

func newOption(l feed.Listing, quantity int) Option {
	return Option{
		ListingID:       l.ID,
		Section:         l.Section,
		Row:             l.Row,
		PricePerTicket:  l.RetailPrice,
		TotalPrice:      l.RetailPrice * float64(quantity),
		Quantity:        quantity,
		Format:          l.Format,
		InstantDelivery: l.InstantDelivery,
		InHand:          l.InHand,
		Wheelchair:      l.Wheelchair,
		Type:            l.Type,
	}
}
