// internal/catalog/markets.go
package catalog

// defaultMarkets is the fixed major-market list, in the priority order used
// for away-game fan-out and broad searches.
var defaultMarkets = []Market{
	{Name: "New York", City: "New York", Lat: 40.7128, Lon: -74.0060},
	{Name: "Los Angeles", City: "Los Angeles", Lat: 34.0522, Lon: -118.2437},
	{Name: "Chicago", City: "Chicago", Lat: 41.8781, Lon: -87.6298},
	{Name: "Houston", City: "Houston", Lat: 29.7604, Lon: -95.3698},
	{Name: "Phoenix", City: "Phoenix", Lat: 33.4484, Lon: -112.0740},
	{Name: "Philadelphia", City: "Philadelphia", Lat: 39.9526, Lon: -75.1652},
	{Name: "Dallas", City: "Dallas", Lat: 32.7767, Lon: -96.7970},
	{Name: "Miami", City: "Miami", Lat: 25.7617, Lon: -80.1918},
	{Name: "Atlanta", City: "Atlanta", Lat: 33.7490, Lon: -84.3880},
	{Name: "Boston", City: "Boston", Lat: 42.3601, Lon: -71.0589},
	{Name: "San Francisco", City: "San Francisco", Lat: 37.7749, Lon: -122.4194},
	{Name: "Seattle", City: "Seattle", Lat: 47.6062, Lon: -122.3321},
	{Name: "Denver", City: "Denver", Lat: 39.7392, Lon: -104.9903},
	{Name: "Las Vegas", City: "Las Vegas", Lat: 36.1699, Lon: -115.1398},
}

// Default assembles the production catalog from the curated tables.
func Default() *Catalog {
	return New(defaultTeams, defaultArtists, defaultVenues, defaultMarkets)
}
