package models

// Source tags mark which collaborator produced a search result.
const (
	SourceLocal    = "local"
	SourceDatabase = "database"
	SourceOnline   = "online"
)

// SearchResult is the canonical record produced by the search aggregator.
// ID is a string because the sources disagree on the type: the curated list
// and the database use numeric ids, Open Food Facts uses product codes.
type SearchResult struct {
	ID          string  `json:"id"`
	Nazwa       string  `json:"nazwa"`
	Kalorie     float64 `json:"kalorie"`
	Bialko      float64 `json:"bialko"`
	Weglowodany float64 `json:"weglowodany"`
	Tluszcze    float64 `json:"tluszcze"`
	Zrodlo      string  `json:"zrodlo"`
}
