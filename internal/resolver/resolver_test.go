// internal/resolver/resolver_test.go
package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-scout/internal/catalog"
	"ticket-scout/internal/common/logger"
)

func newTestResolver(t *testing.T) *Resolver {
	return New(catalog.Default(), logger.NewTestLogger(t))
}

func TestResolve_Matchup(t *testing.T) {
	r := newTestResolver(t)

	resolved := r.Resolve("Yankees at Red Sox")

	assert.Equal(t, []string{"yankees", "red-sox"}, resolved.ResolvedTeams)
	assert.Contains(t, resolved.EventTypeHints, HintSports)
	assert.False(t, resolved.IsAmbiguous)
}

func TestResolve_TeamsKeepQueryOrder(t *testing.T) {
	r := newTestResolver(t)

	// Multi-word aliases are scanned before single-word ones, but the output
	// must still read in query order: the matchup strategy picks the home
	// side off the end of this list.
	assert.Equal(t, []string{"yankees", "red-sox"},
		r.Resolve("Yankees at Red Sox").ResolvedTeams)
	assert.Equal(t, []string{"red-sox", "yankees"},
		r.Resolve("Red Sox at Yankees").ResolvedTeams)
}

func TestResolve_VenueDoesNotSuppressCityAmbiguity(t *testing.T) {
	r := newTestResolver(t)

	resolved := r.Resolve("united center chicago")

	assert.Contains(t, resolved.ResolvedVenues, "united-center")
	assert.True(t, resolved.IsAmbiguous, "a venue does not say which of the city's teams is meant")
	assert.GreaterOrEqual(t, len(resolved.CandidateTeams), 2)
}

func TestResolve_LongerPhraseWins(t *testing.T) {
	r := newTestResolver(t)

	resolved := r.Resolve("New York Yankees tickets")

	require.Len(t, resolved.ResolvedTeams, 1)
	assert.Equal(t, "yankees", resolved.ResolvedTeams[0])
}

func TestResolve_Artist(t *testing.T) {
	r := newTestResolver(t)

	resolved := r.Resolve("Taylor Swift concert")

	assert.Contains(t, resolved.ResolvedArtists, "taylor-swift")
	assert.Contains(t, resolved.EventTypeHints, HintConcert)
	assert.Empty(t, resolved.ResolvedTeams)
}

func TestResolve_ChicagoIsAmbiguous(t *testing.T) {
	r := newTestResolver(t)

	resolved := r.Resolve("Chicago")

	assert.True(t, resolved.IsAmbiguous)
	assert.Contains(t, resolved.AmbiguousTerms, "Chicago")
	assert.GreaterOrEqual(t, len(resolved.CandidateTeams), 2)
	assert.False(t, resolved.HasEntity())
}

func TestResolve_CityWithTeamIsNotAmbiguous(t *testing.T) {
	r := newTestResolver(t)

	resolved := r.Resolve("Chicago Cubs game")

	assert.False(t, resolved.IsAmbiguous)
	assert.Contains(t, resolved.ResolvedTeams, "cubs")
}

func TestResolve_PartialFallback(t *testing.T) {
	r := newTestResolver(t)

	// "yankee" is not an exact alias but matches the leading word of
	// "yankees" by containment.
	resolved := r.Resolve("yankee game tonight")

	assert.Contains(t, resolved.ResolvedTeams, "yankees")
}

func TestResolve_Hints(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "sports connective", query: "someone vs someone else", expected: HintSports},
		{name: "concert keyword", query: "indie rock concert downtown", expected: HintConcert},
		{name: "theater keyword", query: "broadway musical this month", expected: HintTheater},
		{name: "boxing keyword", query: "heavyweight boxing match", expected: HintBoxing},
	}

	r := newTestResolver(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := r.Resolve(tt.query)
			assert.Contains(t, resolved.EventTypeHints, tt.expected)
		})
	}
}

func TestResolve_EmptyQuery(t *testing.T) {
	r := newTestResolver(t)

	resolved := r.Resolve("")

	assert.Empty(t, resolved.ResolvedTeams)
	assert.Empty(t, resolved.ResolvedArtists)
	assert.False(t, resolved.IsAmbiguous)
}

func TestResolve_Immutability(t *testing.T) {
	r := newTestResolver(t)

	first := r.Resolve("Yankees at Red Sox")
	second := r.Resolve("Yankees at Red Sox")

	assert.Equal(t, first.ResolvedTeams, second.ResolvedTeams)
	assert.Equal(t, first.EventTypeHints, second.EventTypeHints)
}
