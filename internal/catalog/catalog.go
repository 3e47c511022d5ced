// internal/catalog/catalog.go
// Package catalog holds the curated entity database: teams, artists, venues
// and major-market coordinates. A Catalog is an explicit constructed value
// passed into the resolver, so tests can inject a minimal one and production
// data can be swapped without code changes.
package catalog

import (
	"strings"
	"unicode"
)

type RefKind string

const (
	KindTeam   RefKind = "team"
	KindArtist RefKind = "artist"
	KindVenue  RefKind = "venue"
)

// Ref points at one canonical entity in the catalog.
type Ref struct {
	Kind RefKind
	Key  string
}

type Venue struct {
	Key     string
	Name    string
	City    string
	State   string
	Lat     float64
	Lon     float64
	Aliases []string
}

type Team struct {
	Key      string
	Name     string
	Sport    string // nba | nfl | mlb | nhl
	City     string
	VenueKey string
	Aliases  []string
}

type Artist struct {
	Key     string
	Name    string
	Genre   string
	Aliases []string
}

// Market is one major-market coordinate used for away-game fan-out and broad
// city searches.
type Market struct {
	Name string
	City string
	Lat  float64
	Lon  float64
}

// Catalog is the assembled entity database with its derived reverse index.
type Catalog struct {
	teams   map[string]Team
	artists map[string]Artist
	venues  map[string]Venue
	markets []Market

	aliasIndex map[string]Ref
	cityTeams  map[string][]string // normalized city -> team keys
}

// New builds a catalog and derives the alias reverse index once. Later entries
// never overwrite an earlier alias claim.
func New(teams []Team, artists []Artist, venues []Venue, markets []Market) *Catalog {
	c := &Catalog{
		teams:      make(map[string]Team, len(teams)),
		artists:    make(map[string]Artist, len(artists)),
		venues:     make(map[string]Venue, len(venues)),
		markets:    markets,
		aliasIndex: make(map[string]Ref),
		cityTeams:  make(map[string][]string),
	}

	for _, v := range venues {
		c.venues[v.Key] = v
		c.index(Ref{Kind: KindVenue, Key: v.Key}, v.Name)
		c.index(Ref{Kind: KindVenue, Key: v.Key}, v.Aliases...)
	}

	for _, t := range teams {
		c.teams[t.Key] = t
		c.index(Ref{Kind: KindTeam, Key: t.Key}, t.Name)
		c.index(Ref{Kind: KindTeam, Key: t.Key}, t.Aliases...)

		city := Normalize(t.City)
		c.cityTeams[city] = append(c.cityTeams[city], t.Key)
	}

	for _, a := range artists {
		c.artists[a.Key] = a
		c.index(Ref{Kind: KindArtist, Key: a.Key}, a.Name)
		c.index(Ref{Kind: KindArtist, Key: a.Key}, a.Aliases...)
	}

	return c
}

func (c *Catalog) index(ref Ref, aliases ...string) {
	for _, alias := range aliases {
		norm := Normalize(alias)
		if norm == "" {
			continue
		}
		if _, taken := c.aliasIndex[norm]; !taken {
			c.aliasIndex[norm] = ref
		}
	}
}

// LookupAlias resolves a normalized phrase against the reverse index.
func (c *Catalog) LookupAlias(phrase string) (Ref, bool) {
	ref, ok := c.aliasIndex[Normalize(phrase)]
	return ref, ok
}

// Team returns the team for a canonical key.
func (c *Catalog) Team(key string) (Team, bool) {
	t, ok := c.teams[key]
	return t, ok
}

// Artist returns the artist for a canonical key.
func (c *Catalog) Artist(key string) (Artist, bool) {
	a, ok := c.artists[key]
	return a, ok
}

// Venue returns the venue for a canonical key.
func (c *Catalog) Venue(key string) (Venue, bool) {
	v, ok := c.venues[key]
	return v, ok
}

// TeamVenue returns the home venue for a team key.
func (c *Catalog) TeamVenue(teamKey string) (Venue, bool) {
	t, ok := c.teams[teamKey]
	if !ok {
		return Venue{}, false
	}
	return c.Venue(t.VenueKey)
}

// TeamsByCity returns all teams whose home city matches, any sport.
func (c *Catalog) TeamsByCity(city string) []Team {
	keys := c.cityTeams[Normalize(city)]
	teams := make([]Team, 0, len(keys))
	for _, key := range keys {
		teams = append(teams, c.teams[key])
	}
	return teams
}

// Markets returns the fixed major-market list in priority order.
func (c *Catalog) Markets() []Market {
	return c.markets
}

// MarketByName finds a market whose name or city matches the location string.
func (c *Catalog) MarketByName(location string) (Market, bool) {
	norm := Normalize(location)
	for _, m := range c.markets {
		if Normalize(m.Name) == norm || Normalize(m.City) == norm {
			return m, true
		}
	}
	return Market{}, false
}

// TeamAliases returns every alias (including the display name) for a team.
func (c *Catalog) TeamAliases(key string) []string {
	t, ok := c.teams[key]
	if !ok {
		return nil
	}
	return append([]string{t.Name}, t.Aliases...)
}

// ArtistAliases returns every alias (including the display name) for an artist.
func (c *Catalog) ArtistAliases(key string) []string {
	a, ok := c.artists[key]
	if !ok {
		return nil
	}
	return append([]string{a.Name}, a.Aliases...)
}

// EachTeamAlias walks every (normalized alias, team key) pair.
func (c *Catalog) EachTeamAlias(fn func(alias, teamKey string)) {
	for alias, ref := range c.aliasIndex {
		if ref.Kind == KindTeam {
			fn(alias, ref.Key)
		}
	}
}

// EachArtistAlias walks every (normalized alias, artist key) pair.
func (c *Catalog) EachArtistAlias(fn func(alias, artistKey string)) {
	for alias, ref := range c.aliasIndex {
		if ref.Kind == KindArtist {
			fn(alias, ref.Key)
		}
	}
}

// Normalize lowercases and strips punctuation so "St. Louis" and "st louis"
// hit the same index slot.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastSpace := true
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
	}

	return strings.TrimSpace(b.String())
}
