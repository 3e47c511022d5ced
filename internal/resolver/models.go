// internal/resolver/models.go
package resolver

import "ticket-scout/internal/catalog"

// ResolvedQuery is the immutable output of one resolution pass. Team, artist
// and venue entries are canonical catalog keys.
type ResolvedQuery struct {
	OriginalText    string   `json:"originalText"`
	ResolvedTeams   []string `json:"resolvedTeams"`
	ResolvedArtists []string `json:"resolvedArtists"`
	ResolvedVenues  []string `json:"resolvedVenues"`
	EventTypeHints  []string `json:"eventTypeHints"`
	IsAmbiguous     bool     `json:"isAmbiguous"`
	AmbiguousTerms  []string `json:"ambiguousTerms,omitempty"`

	// CandidateTeams carries the disambiguation choices when IsAmbiguous is
	// set. The engine returns these to the caller instead of guessing.
	CandidateTeams []catalog.Team `json:"candidateTeams,omitempty"`
}

// HasHint reports whether hint was detected in the query.
func (r *ResolvedQuery) HasHint(hint string) bool {
	for _, h := range r.EventTypeHints {
		if h == hint {
			return true
		}
	}
	return false
}

// HasEntity reports whether any team, artist or venue resolved.
func (r *ResolvedQuery) HasEntity() bool {
	return len(r.ResolvedTeams) > 0 || len(r.ResolvedArtists) > 0 || len(r.ResolvedVenues) > 0
}
