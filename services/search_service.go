package services

import (
	"log"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/polycheckone/baza-kalorii/models"
	"github.com/polycheckone/baza-kalorii/utils"
)

const (
	// Queries shorter than this (after trimming) return nothing.
	minQueryLen = 2
	// Cap on the merged result list.
	maxResults = 25
)

// NutritionAPI is the external lookup collaborator; satisfied by
// OpenFoodFactsService.
type NutritionAPI interface {
	Search(query string) ([]models.SearchResult, error)
}

// SearchService merges three sources in fixed order: the curated local list,
// the product database and the online API, de-duplicating by lower-cased
// display name.
type SearchService struct {
	products *ProductService
	api      NutritionAPI
}

func NewSearchService(products *ProductService, api NutritionAPI) *SearchService {
	return &SearchService{products: products, api: api}
}

// diacriticPrefixes restores a likely Polish spelling for queries typed
// without diacritics, e.g. "jabl" → "jabł" so "jablko" also finds "jabłko"
// online. Only the first matching prefix is tried.
var diacriticPrefixes = []struct{ bez, z string }{
	{"jabl", "jabł"},
	{"mie", "mię"},
	{"ogor", "ogór"},
	{"tlu", "tłu"},
	{"wegl", "węgl"},
	{"zol", "żół"},
}

// Search runs the aggregation. A failing source degrades the result instead
// of failing the whole query; the caller always gets a list.
func (s *SearchService) Search(query string) []models.SearchResult {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLen {
		return []models.SearchResult{}
	}

	seen := make(map[string]bool)
	results := make([]models.SearchResult, 0, maxResults)

	add := func(r models.SearchResult) {
		key := strings.ToLower(r.Nazwa)
		if seen[key] {
			return
		}
		seen[key] = true
		results = append(results, r)
	}

	// 1. Curated local list.
	needle := strings.ToLower(utils.StripDiacritics(query))
	for _, p := range LocalProducts {
		if strings.Contains(strings.ToLower(utils.StripDiacritics(p.Nazwa)), needle) {
			add(models.SearchResult{
				ID:          strconv.Itoa(p.ID),
				Nazwa:       p.Nazwa,
				Kalorie:     p.Kalorie,
				Bialko:      p.Bialko,
				Weglowodany: p.Weglowodany,
				Tluszcze:    p.Tluszcze,
				Zrodlo:      models.SourceLocal,
			})
		}
	}

	// 2. Product database.
	rows, err := s.products.SearchByName(query)
	if err != nil {
		log.Printf("wyszukiwanie w bazie nie powiodło się: %v", err)
	}
	for _, p := range rows {
		add(models.SearchResult{
			ID:          strconv.FormatUint(uint64(p.ID), 10),
			Nazwa:       p.Nazwa,
			Kalorie:     p.Kalorie,
			Bialko:      p.Bialko,
			Weglowodany: p.Weglowodany,
			Tluszcze:    p.Tluszcze,
			Zrodlo:      models.SourceDatabase,
		})
	}

	// 3. Online lookup, raw query plus at most one diacritic-restored
	// variant. Network failures are swallowed: partial results beat none.
	for _, q := range onlineQueries(query) {
		hits, err := s.api.Search(q)
		if err != nil {
			log.Printf("wyszukiwanie online %q nie powiodło się: %v", q, err)
			continue
		}
		for _, r := range hits {
			add(r)
		}
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// onlineQueries returns the raw query and, when it carries no diacritics and
// starts with a known prefix, one diacritic-restored variant.
func onlineQueries(query string) []string {
	queries := []string{query}
	if utils.StripDiacritics(query) != query {
		return queries
	}
	lower := strings.ToLower(query)
	for _, p := range diacriticPrefixes {
		if strings.HasPrefix(lower, p.bez) {
			queries = append(queries, p.z+lower[len(p.bez):])
			break
		}
	}
	return queries
}
