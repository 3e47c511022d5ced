// internal/resolver/keywords.go
package resolver

// Event-type hint labels attached to a ResolvedQuery.
const (
	HintSports  = "sports"
	HintBoxing  = "boxing"
	HintConcert = "concert"
	HintTheater = "theater"
)

var sportsKeywords = map[string]bool{
	"vs": true, "versus": true, "at": true, "game": true, "playoff": true,
	"playoffs": true, "championship": true, "finals": true, "series": true,
}

var boxingKeywords = map[string]bool{
	"boxing": true, "fight": true, "bout": true, "ufc": true, "mma": true,
	"heavyweight": true, "title": true,
}

var concertKeywords = map[string]bool{
	"concert": true, "tour": true, "live": true, "festival": true,
	"show": true, "music": true, "band": true, "dj": true,
}

var theaterKeywords = map[string]bool{
	"theater": true, "theatre": true, "broadway": true, "comedy": true,
	"musical": true, "play": true, "standup": true, "ballet": true,
	"opera": true,
}

// stopWords are dropped before fuzzy phrase extraction.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "of": true,
	"in": true, "on": true, "for": true, "to": true, "with": true,
	"tickets": true, "ticket": true, "near": true, "me": true, "tonight": true,
	"this": true, "next": true, "weekend": true, "find": true, "get": true,
	"see": true, "want": true,
}
