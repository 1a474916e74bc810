package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/polycheckone/baza-kalorii/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	results []models.SearchResult
	err     error
	queries []string
}

func (f *fakeAPI) Search(query string) ([]models.SearchResult, error) {
	f.queries = append(f.queries, query)
	return f.results, f.err
}

func newSearchService(t *testing.T, api NutritionAPI) (*SearchService, *ProductService) {
	t.Helper()
	products := NewProductService(newTestDB(t))
	return NewSearchService(products, api), products
}

func TestSearchShortQuery(t *testing.T) {
	api := &fakeAPI{}
	svc, _ := newSearchService(t, api)

	assert.Empty(t, svc.Search(""))
	assert.Empty(t, svc.Search("a"))
	assert.Empty(t, svc.Search("  a  "))
	// No source is consulted for a too-short query.
	assert.Empty(t, api.queries)
}

func TestSearchLocalListDiacritics(t *testing.T) {
	svc, _ := newSearchService(t, &fakeAPI{})

	// Query without diacritics matches the curated "Jabłko".
	results := svc.Search("jablko")
	require.NotEmpty(t, results)
	assert.Equal(t, "Jabłko", results[0].Nazwa)
	assert.Equal(t, models.SourceLocal, results[0].Zrodlo)
}

func TestSearchSourceOrderAndDedup(t *testing.T) {
	api := &fakeAPI{results: []models.SearchResult{
		// Duplicate of the curated entry, differing only in case.
		{ID: "590001", Nazwa: "jabłko", Kalorie: 50, Zrodlo: models.SourceOnline},
		{ID: "590002", Nazwa: "Jabłko prażone (Dawtona)", Kalorie: 70, Zrodlo: models.SourceOnline},
	}}
	svc, products := newSearchService(t, api)

	// Database row duplicating the curated entry plus a unique one.
	require.NoError(t, products.Add(&models.Product{Nazwa: "Jabłko", Kalorie: 52}))
	require.NoError(t, products.Add(&models.Product{Nazwa: "Jabłecznik", Kalorie: 310}))

	results := svc.Search("jabł")

	names := make(map[string]string)
	for _, r := range results {
		_, dup := names[r.Nazwa]
		assert.False(t, dup, "duplicate name %q", r.Nazwa)
		names[r.Nazwa] = r.Zrodlo
	}

	// First occurrence wins: the curated list beats database and online.
	assert.Equal(t, models.SourceLocal, names["Jabłko"])
	assert.Equal(t, models.SourceDatabase, names["Jabłecznik"])
	assert.Equal(t, models.SourceOnline, names["Jabłko prażone (Dawtona)"])
	assert.NotContains(t, names, "jabłko")
}

func TestSearchOnlineFailureDegrades(t *testing.T) {
	api := &fakeAPI{err: errors.New("timeout")}
	svc, products := newSearchService(t, api)
	require.NoError(t, products.Add(&models.Product{Nazwa: "Kompot jabłkowy", Kalorie: 45}))

	results := svc.Search("jabł")
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.NotEqual(t, models.SourceOnline, r.Zrodlo)
	}
}

func TestSearchResultCap(t *testing.T) {
	var online []models.SearchResult
	for i := 0; i < 30; i++ {
		online = append(online, models.SearchResult{
			ID:     fmt.Sprintf("59%04d", i),
			Nazwa:  fmt.Sprintf("Mieszanka studencka %d", i),
			Zrodlo: models.SourceOnline,
		})
	}
	svc, _ := newSearchService(t, &fakeAPI{results: online})

	results := svc.Search("mieszanka")
	assert.Len(t, results, maxResults)
}

func TestOnlineQueries(t *testing.T) {
	// Prefix restored only for diacritic-free queries.
	assert.Equal(t, []string{"jablko", "jabłko"}, onlineQueries("jablko"))
	assert.Equal(t, []string{"mieso", "mięso"}, onlineQueries("mieso"))
	assert.Equal(t, []string{"jabłko"}, onlineQueries("jabłko"))
	assert.Equal(t, []string{"banan"}, onlineQueries("banan"))
}
