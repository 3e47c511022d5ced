// internal/feed/models.go
package feed

import "time"

// Event is one candidate event as supplied by the marketplace feed. Treated
// as read-only value data; never mutated after decoding.
type Event struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	OccursAt   time.Time   `json:"occurs_at"`
	Venue      Venue       `json:"venue"`
	Performers []Performer `json:"performers"`
}

type Venue struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	City  string  `json:"city"`
	State string  `json:"state"`
	Lat   float64 `json:"latitude"`
	Lon   float64 `json:"longitude"`
}

type Performer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Listing is one sellable ticket group. Splits is the set of group sizes the
// seller will sell together.
type Listing struct {
	ID                int64   `json:"id"`
	Section           string  `json:"section"`
	Row               string  `json:"row"`
	AvailableQuantity int     `json:"available_quantity"`
	Splits            []int   `json:"splits"`
	RetailPrice       float64 `json:"retail_price"`
	Format            string  `json:"format"`
	InstantDelivery   bool    `json:"instant_delivery"`
	InHand            bool    `json:"in_hand"`
	Wheelchair        bool    `json:"wheelchair"`
	Type              string  `json:"type"`
}

// ListEventsParams mirrors the feed's listEvents filters. Zero values are
// omitted from the request.
type ListEventsParams struct {
	PerformerID int64
	VenueID     int64
	Lat         float64
	Lon         float64
	WithinMiles float64
	OccursAtGTE time.Time
	OccursAtLT  time.Time
	Page        int
	PerPage     int
}

type ListEventsResponse struct {
	Events       []Event `json:"events"`
	TotalEntries int     `json:"total_entries"`
}

type ListingsResponse struct {
	TicketGroups []Listing `json:"ticket_groups"`
}

// Suggestions is the autosuggest payload: directly named events plus
// performer and venue hits to hydrate.
type Suggestions struct {
	Events     []Event     `json:"events"`
	Performers []Performer `json:"performers"`
	Venues     []Venue     `json:"venues"`
}
