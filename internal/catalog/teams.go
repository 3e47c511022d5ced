// internal/catalog/teams.go
package catalog

// defaultVenues is the curated venue table. Coordinates drive radius-limited
// feed queries, so they only need city-level precision.
var defaultVenues = []Venue{
	{Key: "yankee-stadium", Name: "Yankee Stadium", City: "New York", State: "NY", Lat: 40.8296, Lon: -73.9262, Aliases: []string{"the stadium bronx"}},
	{Key: "citi-field", Name: "Citi Field", City: "New York", State: "NY", Lat: 40.7571, Lon: -73.8458},
	{Key: "madison-square-garden", Name: "Madison Square Garden", City: "New York", State: "NY", Lat: 40.7505, Lon: -73.9934, Aliases: []string{"msg", "the garden"}},
	{Key: "barclays-center", Name: "Barclays Center", City: "Brooklyn", State: "NY", Lat: 40.6826, Lon: -73.9754},
	{Key: "fenway-park", Name: "Fenway Park", City: "Boston", State: "MA", Lat: 42.3467, Lon: -71.0972, Aliases: []string{"fenway"}},
	{Key: "td-garden", Name: "TD Garden", City: "Boston", State: "MA", Lat: 42.3662, Lon: -71.0621},
	{Key: "wrigley-field", Name: "Wrigley Field", City: "Chicago", State: "IL", Lat: 41.9484, Lon: -87.6553, Aliases: []string{"wrigley"}},
	{Key: "guaranteed-rate-field", Name: "Guaranteed Rate Field", City: "Chicago", State: "IL", Lat: 41.8300, Lon: -87.6339},
	{Key: "united-center", Name: "United Center", City: "Chicago", State: "IL", Lat: 41.8807, Lon: -87.6742},
	{Key: "soldier-field", Name: "Soldier Field", City: "Chicago", State: "IL", Lat: 41.8623, Lon: -87.6167},
	{Key: "dodger-stadium", Name: "Dodger Stadium", City: "Los Angeles", State: "CA", Lat: 34.0739, Lon: -118.2400},
	{Key: "crypto-arena", Name: "Crypto.com Arena", City: "Los Angeles", State: "CA", Lat: 34.0430, Lon: -118.2673, Aliases: []string{"staples center"}},
	{Key: "sofi-stadium", Name: "SoFi Stadium", City: "Inglewood", State: "CA", Lat: 33.9535, Lon: -118.3392},
	{Key: "chase-center", Name: "Chase Center", City: "San Francisco", State: "CA", Lat: 37.7680, Lon: -122.3877},
	{Key: "oracle-park", Name: "Oracle Park", City: "San Francisco", State: "CA", Lat: 37.7786, Lon: -122.3893},
	{Key: "american-airlines-center", Name: "American Airlines Center", City: "Dallas", State: "TX", Lat: 32.7905, Lon: -96.8103},
	{Key: "att-stadium", Name: "AT&T Stadium", City: "Arlington", State: "TX", Lat: 32.7473, Lon: -97.0945, Aliases: []string{"jerry world"}},
	{Key: "minute-maid-park", Name: "Minute Maid Park", City: "Houston", State: "TX", Lat: 29.7573, Lon: -95.3555},
	{Key: "chase-field", Name: "Chase Field", City: "Phoenix", State: "AZ", Lat: 33.4453, Lon: -112.0667},
	{Key: "footprint-center", Name: "Footprint Center", City: "Phoenix", State: "AZ", Lat: 33.4457, Lon: -112.0712},
	{Key: "kaseya-center", Name: "Kaseya Center", City: "Miami", State: "FL", Lat: 25.7814, Lon: -80.1870},
	{Key: "lincoln-financial-field", Name: "Lincoln Financial Field", City: "Philadelphia", State: "PA", Lat: 39.9008, Lon: -75.1675, Aliases: []string{"the linc"}},
	{Key: "wells-fargo-center", Name: "Wells Fargo Center", City: "Philadelphia", State: "PA", Lat: 39.9012, Lon: -75.1720},
	{Key: "lambeau-field", Name: "Lambeau Field", City: "Green Bay", State: "WI", Lat: 44.5013, Lon: -88.0622},
	{Key: "arrowhead-stadium", Name: "GEHA Field at Arrowhead Stadium", City: "Kansas City", State: "MO", Lat: 39.0489, Lon: -94.4839, Aliases: []string{"arrowhead"}},
	{Key: "ball-arena", Name: "Ball Arena", City: "Denver", State: "CO", Lat: 39.7487, Lon: -105.0076},
	{Key: "little-caesars-arena", Name: "Little Caesars Arena", City: "Detroit", State: "MI", Lat: 42.3410, Lon: -83.0552},
	{Key: "truist-park", Name: "Truist Park", City: "Atlanta", State: "GA", Lat: 33.8908, Lon: -84.4678},
	{Key: "climate-pledge-arena", Name: "Climate Pledge Arena", City: "Seattle", State: "WA", Lat: 47.6221, Lon: -122.3541},
	{Key: "t-mobile-park", Name: "T-Mobile Park", City: "Seattle", State: "WA", Lat: 47.5914, Lon: -122.3325},
}

// defaultTeams is the curated team table. Alias lists carry the short names a
// caller actually types ("yankees", "the cubs", "lakers").
var defaultTeams = []Team{
	// MLB
	{Key: "yankees", Name: "New York Yankees", Sport: "mlb", City: "New York", VenueKey: "yankee-stadium", Aliases: []string{"yankees", "ny yankees", "the yankees", "bronx bombers"}},
	{Key: "mets", Name: "New York Mets", Sport: "mlb", City: "New York", VenueKey: "citi-field", Aliases: []string{"mets", "ny mets", "the mets"}},
	{Key: "red-sox", Name: "Boston Red Sox", Sport: "mlb", City: "Boston", VenueKey: "fenway-park", Aliases: []string{"red sox", "sox", "the red sox", "bosox"}},
	{Key: "cubs", Name: "Chicago Cubs", Sport: "mlb", City: "Chicago", VenueKey: "wrigley-field", Aliases: []string{"cubs", "the cubs", "cubbies"}},
	{Key: "white-sox", Name: "Chicago White Sox", Sport: "mlb", City: "Chicago", VenueKey: "guaranteed-rate-field", Aliases: []string{"white sox", "the white sox", "south siders"}},
	{Key: "dodgers", Name: "Los Angeles Dodgers", Sport: "mlb", City: "Los Angeles", VenueKey: "dodger-stadium", Aliases: []string{"dodgers", "la dodgers", "the dodgers"}},
	{Key: "giants-mlb", Name: "San Francisco Giants", Sport: "mlb", City: "San Francisco", VenueKey: "oracle-park", Aliases: []string{"sf giants", "san francisco giants"}},
	{Key: "astros", Name: "Houston Astros", Sport: "mlb", City: "Houston", VenueKey: "minute-maid-park", Aliases: []string{"astros", "the astros", "stros"}},
	{Key: "braves", Name: "Atlanta Braves", Sport: "mlb", City: "Atlanta", VenueKey: "truist-park", Aliases: []string{"braves", "the braves"}},
	{Key: "diamondbacks", Name: "Arizona Diamondbacks", Sport: "mlb", City: "Phoenix", VenueKey: "chase-field", Aliases: []string{"diamondbacks", "dbacks", "d-backs"}},
	{Key: "mariners", Name: "Seattle Mariners", Sport: "mlb", City: "Seattle", VenueKey: "t-mobile-park", Aliases: []string{"mariners", "the mariners"}},

	// NBA
	{Key: "knicks", Name: "New York Knicks", Sport: "nba", City: "New York", VenueKey: "madison-square-garden", Aliases: []string{"knicks", "ny knicks", "the knicks"}},
	{Key: "nets", Name: "Brooklyn Nets", Sport: "nba", City: "Brooklyn", VenueKey: "barclays-center", Aliases: []string{"nets", "the nets"}},
	{Key: "celtics", Name: "Boston Celtics", Sport: "nba", City: "Boston", VenueKey: "td-garden", Aliases: []string{"celtics", "the celtics"}},
	{Key: "bulls", Name: "Chicago Bulls", Sport: "nba", City: "Chicago", VenueKey: "united-center", Aliases: []string{"bulls", "the bulls"}},
	{Key: "lakers", Name: "Los Angeles Lakers", Sport: "nba", City: "Los Angeles", VenueKey: "crypto-arena", Aliases: []string{"lakers", "la lakers", "the lakers"}},
	{Key: "clippers", Name: "Los Angeles Clippers", Sport: "nba", City: "Los Angeles", VenueKey: "crypto-arena", Aliases: []string{"clippers", "la clippers", "the clippers"}},
	{Key: "warriors", Name: "Golden State Warriors", Sport: "nba", City: "San Francisco", VenueKey: "chase-center", Aliases: []string{"warriors", "golden state", "the warriors", "dubs"}},
	{Key: "mavericks", Name: "Dallas Mavericks", Sport: "nba", City: "Dallas", VenueKey: "american-airlines-center", Aliases: []string{"mavericks", "mavs", "the mavs"}},
	{Key: "suns", Name: "Phoenix Suns", Sport: "nba", City: "Phoenix", VenueKey: "footprint-center", Aliases: []string{"suns", "the suns"}},
	{Key: "heat", Name: "Miami Heat", Sport: "nba", City: "Miami", VenueKey: "kaseya-center", Aliases: []string{"heat", "the heat"}},
	{Key: "sixers", Name: "Philadelphia 76ers", Sport: "nba", City: "Philadelphia", VenueKey: "wells-fargo-center", Aliases: []string{"sixers", "76ers", "the sixers"}},
	{Key: "nuggets", Name: "Denver Nuggets", Sport: "nba", City: "Denver", VenueKey: "ball-arena", Aliases: []string{"nuggets", "the nuggets"}},
	{Key: "pistons", Name: "Detroit Pistons", Sport: "nba", City: "Detroit", VenueKey: "little-caesars-arena", Aliases: []string{"pistons", "the pistons"}},

	// NFL
	{Key: "bears", Name: "Chicago Bears", Sport: "nfl", City: "Chicago", VenueKey: "soldier-field", Aliases: []string{"bears", "the bears", "da bears"}},
	{Key: "cowboys", Name: "Dallas Cowboys", Sport: "nfl", City: "Dallas", VenueKey: "att-stadium", Aliases: []string{"cowboys", "the cowboys", "americas team"}},
	{Key: "eagles", Name: "Philadelphia Eagles", Sport: "nfl", City: "Philadelphia", VenueKey: "lincoln-financial-field", Aliases: []string{"eagles", "the eagles nfl", "birds"}},
	{Key: "packers", Name: "Green Bay Packers", Sport: "nfl", City: "Green Bay", VenueKey: "lambeau-field", Aliases: []string{"packers", "the packers", "pack"}},
	{Key: "chiefs", Name: "Kansas City Chiefs", Sport: "nfl", City: "Kansas City", VenueKey: "arrowhead-stadium", Aliases: []string{"chiefs", "the chiefs", "kc chiefs"}},
	{Key: "rams", Name: "Los Angeles Rams", Sport: "nfl", City: "Los Angeles", VenueKey: "sofi-stadium", Aliases: []string{"rams", "la rams", "the rams"}},

	// NHL
	{Key: "blackhawks", Name: "Chicago Blackhawks", Sport: "nhl", City: "Chicago", VenueKey: "united-center", Aliases: []string{"blackhawks", "the blackhawks", "hawks"}},
	{Key: "bruins", Name: "Boston Bruins", Sport: "nhl", City: "Boston", VenueKey: "td-garden", Aliases: []string{"bruins", "the bruins", "bs"}},
	{Key: "rangers-nhl", Name: "New York Rangers", Sport: "nhl", City: "New York", VenueKey: "madison-square-garden", Aliases: []string{"ny rangers", "new york rangers", "broadway blueshirts"}},
	{Key: "kraken", Name: "Seattle Kraken", Sport: "nhl", City: "Seattle", VenueKey: "climate-pledge-arena", Aliases: []string{"kraken", "the kraken"}},
	{Key: "red-wings", Name: "Detroit Red Wings", Sport: "nhl", City: "Detroit", VenueKey: "little-caesars-arena", Aliases: []string{"red wings", "the red wings", "wings"}},
}
