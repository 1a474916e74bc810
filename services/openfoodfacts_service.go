package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/polycheckone/baza-kalorii/models"
)

// OpenFoodFactsService queries the Open Food Facts search API for products
// matching a free-text query.
type OpenFoodFactsService struct {
	baseURL string
	client  *http.Client
}

func NewOpenFoodFactsService() *OpenFoodFactsService {
	return &OpenFoodFactsService{
		baseURL: "https://world.openfoodfacts.org",
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type offSearchResponse struct {
	Products []offProduct `json:"products"`
}

// Nutriments is a loose map because Open Food Facts mixes numbers and
// strings in nutrient fields depending on the contributor.
type offProduct struct {
	Code        string                 `json:"code"`
	ProductName string                 `json:"product_name"`
	Brands      string                 `json:"brands"`
	Nutriments  map[string]interface{} `json:"nutriments"`
}

// Search calls the Open Food Facts search endpoint and maps each hit to a
// canonical search result tagged as online.
func (s *OpenFoodFactsService) Search(query string) ([]models.SearchResult, error) {
	u := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=10",
		s.baseURL, url.QueryEscape(query),
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("nie udało się wywołać Open Food Facts: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nie udało się odczytać odpowiedzi Open Food Facts: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("open Food Facts zwrócił %d: %s", resp.StatusCode, string(body))
	}

	var sr offSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("nie udało się sparsować odpowiedzi Open Food Facts: %w", err)
	}

	results := make([]models.SearchResult, 0, len(sr.Products))
	for _, p := range sr.Products {
		nazwa := strings.TrimSpace(p.ProductName)
		if nazwa == "" {
			continue
		}
		if brand := strings.TrimSpace(p.Brands); brand != "" {
			nazwa = fmt.Sprintf("%s (%s)", nazwa, brand)
		}

		results = append(results, models.SearchResult{
			ID:          p.Code,
			Nazwa:       nazwa,
			Kalorie:     round1(extractKcal(p.Nutriments)),
			Bialko:      round1(asFloat(p.Nutriments["proteins_100g"])),
			Weglowodany: round1(asFloat(p.Nutriments["carbohydrates_100g"])),
			Tluszcze:    round1(asFloat(p.Nutriments["fat_100g"])),
			Zrodlo:      models.SourceOnline,
		})
	}
	return results, nil
}

// Values above this in the calorie field are assumed to be kJ mislabeled as
// kcal and are converted. Pure oils top out around 884 kcal/100g, just under.
const kjThreshold = 900

// extractKcal prefers the kcal-denominated field over the kJ-denominated
// one, then applies the kJ heuristic to whatever it picked.
func extractKcal(nutriments map[string]interface{}) float64 {
	kcal := asFloat(nutriments["energy-kcal_100g"])
	if kcal == 0 {
		kcal = asFloat(nutriments["energy_100g"])
	}
	if kcal > kjThreshold {
		kcal = kcal / 4.184
	}
	return kcal
}

// asFloat reads a nutrient value that may be a number, a numeric string, or
// absent. Missing and non-numeric values count as zero.
func asFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case string:
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return f
		}
	}
	return 0
}
