// internal/catalog/artists.go
package catalog

// defaultArtists is the curated artist/performer table.
var defaultArtists = []Artist{
	{Key: "taylor-swift", Name: "Taylor Swift", Genre: "pop", Aliases: []string{"taylor swift", "tswift", "eras tour"}},
	{Key: "beyonce", Name: "Beyoncé", Genre: "pop", Aliases: []string{"beyonce", "queen b", "renaissance tour"}},
	{Key: "bad-bunny", Name: "Bad Bunny", Genre: "latin", Aliases: []string{"bad bunny", "benito"}},
	{Key: "drake", Name: "Drake", Genre: "hip-hop", Aliases: []string{"drake", "drizzy"}},
	{Key: "billie-eilish", Name: "Billie Eilish", Genre: "pop", Aliases: []string{"billie eilish", "billie"}},
	{Key: "the-weeknd", Name: "The Weeknd", Genre: "r&b", Aliases: []string{"the weeknd", "weeknd"}},
	{Key: "bruce-springsteen", Name: "Bruce Springsteen", Genre: "rock", Aliases: []string{"bruce springsteen", "springsteen", "the boss", "e street band"}},
	{Key: "coldplay", Name: "Coldplay", Genre: "rock", Aliases: []string{"coldplay"}},
	{Key: "foo-fighters", Name: "Foo Fighters", Genre: "rock", Aliases: []string{"foo fighters", "foos"}},
	{Key: "metallica", Name: "Metallica", Genre: "metal", Aliases: []string{"metallica"}},
	{Key: "olivia-rodrigo", Name: "Olivia Rodrigo", Genre: "pop", Aliases: []string{"olivia rodrigo", "guts tour"}},
	{Key: "morgan-wallen", Name: "Morgan Wallen", Genre: "country", Aliases: []string{"morgan wallen"}},
	{Key: "luke-combs", Name: "Luke Combs", Genre: "country", Aliases: []string{"luke combs"}},
	{Key: "zach-bryan", Name: "Zach Bryan", Genre: "country", Aliases: []string{"zach bryan"}},
	{Key: "sza", Name: "SZA", Genre: "r&b", Aliases: []string{"sza"}},
	{Key: "karol-g", Name: "Karol G", Genre: "latin", Aliases: []string{"karol g"}},
	{Key: "ed-sheeran", Name: "Ed Sheeran", Genre: "pop", Aliases: []string{"ed sheeran", "sheeran"}},
	{Key: "adele", Name: "Adele", Genre: "pop", Aliases: []string{"adele"}},
	{Key: "kendrick-lamar", Name: "Kendrick Lamar", Genre: "hip-hop", Aliases: []string{"kendrick lamar", "kendrick", "kdot"}},
	{Key: "dave-chappelle", Name: "Dave Chappelle", Genre: "comedy", Aliases: []string{"dave chappelle", "chappelle"}},
	{Key: "kevin-hart", Name: "Kevin Hart", Genre: "comedy", Aliases: []string{"kevin hart"}},
	{Key: "hamilton", Name: "Hamilton", Genre: "theater", Aliases: []string{"hamilton musical", "hamilton broadway"}},
	{Key: "wicked", Name: "Wicked", Genre: "theater", Aliases: []string{"wicked musical", "wicked broadway"}},
}
