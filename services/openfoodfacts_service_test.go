package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/polycheckone/baza-kalorii/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const offFixture = `{
  "products": [
    {
      "code": "5900001000017",
      "product_name": "Sok jabłkowy",
      "brands": "Tymbark",
      "nutriments": {
        "energy-kcal_100g": 46,
        "proteins_100g": 0.1,
        "carbohydrates_100g": "11.2",
        "fat_100g": 0
      }
    },
    {
      "code": "5900001000024",
      "product_name": "Baton orzechowy",
      "nutriments": {
        "energy_100g": 2000,
        "proteins_100g": 9.04,
        "carbohydrates_100g": 50,
        "fat_100g": "brak"
      }
    },
    {
      "code": "5900001000031",
      "product_name": "",
      "nutriments": {"energy-kcal_100g": 100}
    }
  ]
}`

func newOFFService(t *testing.T, handler http.HandlerFunc) *OpenFoodFactsService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &OpenFoodFactsService{baseURL: server.URL, client: server.Client()}
}

func TestOpenFoodFactsSearch(t *testing.T) {
	svc := newOFFService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sok", r.URL.Query().Get("search_terms"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(offFixture))
	})

	results, err := svc.Search("sok")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Brand appended to the display name, string nutrients parsed.
	first := results[0]
	assert.Equal(t, "5900001000017", first.ID)
	assert.Equal(t, "Sok jabłkowy (Tymbark)", first.Nazwa)
	assert.Equal(t, 46.0, first.Kalorie)
	assert.Equal(t, 0.1, first.Bialko)
	assert.Equal(t, 11.2, first.Weglowodany)
	assert.Equal(t, 0.0, first.Tluszcze)
	assert.Equal(t, models.SourceOnline, first.Zrodlo)

	// kcal field missing: the kJ value is converted (2000/4.184) and the
	// non-numeric fat falls back to zero.
	second := results[1]
	assert.Equal(t, "Baton orzechowy", second.Nazwa)
	assert.Equal(t, 478.0, second.Kalorie)
	assert.Equal(t, 9.0, second.Bialko)
	assert.Equal(t, 0.0, second.Tluszcze)
}

func TestOpenFoodFactsSearchServerError(t *testing.T) {
	svc := newOFFService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "przeciążenie", http.StatusServiceUnavailable)
	})

	_, err := svc.Search("sok")
	assert.Error(t, err)
}

func TestExtractKcal(t *testing.T) {
	// kcal field wins over the kJ field.
	assert.Equal(t, 52.0, extractKcal(map[string]interface{}{
		"energy-kcal_100g": 52.0,
		"energy_100g":      218.0,
	}))
	// Values just under the threshold pass through, e.g. pure oils.
	assert.Equal(t, 884.0, extractKcal(map[string]interface{}{"energy-kcal_100g": 884.0}))
	// Above the threshold the value is treated as kJ.
	assert.InDelta(t, 239.0, extractKcal(map[string]interface{}{"energy-kcal_100g": 1000.0}), 0.1)
	assert.Equal(t, 0.0, extractKcal(map[string]interface{}{}))
}
