package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/polycheckone/baza-kalorii/models"
	"github.com/polycheckone/baza-kalorii/utils"

	"gorm.io/gorm"
)

var (
	// ErrProductExists distinguishes a uniqueness conflict from other insert
	// failures, so callers can skip-and-log instead of crashing.
	ErrProductExists   = errors.New("produkt już istnieje")
	ErrProductNotFound = errors.New("nie znaleziono produktu")
)

// Cap on rows returned by a name search against the store.
const searchLimit = 20

type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// Add inserts a product. Returns ErrProductExists when the name is taken.
func (s *ProductService) Add(p *models.Product) error {
	if err := s.db.Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrProductExists
		}
		return fmt.Errorf("nie udało się dodać produktu: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// List returns all products ordered by name, optionally filtered by exact
// category match.
func (s *ProductService) List(kategoria string) ([]models.Product, error) {
	q := s.db.Order("nazwa")
	if kategoria != "" {
		q = q.Where("kategoria = ?", kategoria)
	}
	var produkty []models.Product
	if err := q.Find(&produkty).Error; err != nil {
		return nil, fmt.Errorf("nie udało się pobrać produktów: %w", err)
	}
	return produkty, nil
}

// GroupedByCategory returns all products keyed by category, products without
// a category under "inne".
func (s *ProductService) GroupedByCategory() (map[string][]models.Product, error) {
	var produkty []models.Product
	if err := s.db.Order("kategoria, nazwa").Find(&produkty).Error; err != nil {
		return nil, fmt.Errorf("nie udało się pobrać produktów: %w", err)
	}

	kategorie := make(map[string][]models.Product)
	for _, p := range produkty {
		kat := p.Kategoria
		if kat == "" {
			kat = "inne"
		}
		kategorie[kat] = append(kategorie[kat], p)
	}
	return kategorie, nil
}

func (s *ProductService) ByID(id uint) (*models.Product, error) {
	var p models.Product
	err := s.db.First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("nie udało się pobrać produktu %d: %w", id, err)
	}
	return &p, nil
}

func (s *ProductService) ByName(nazwa string) (*models.Product, error) {
	var p models.Product
	err := s.db.Where("nazwa = ?", nazwa).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("nie udało się pobrać produktu %q: %w", nazwa, err)
	}
	return &p, nil
}

// SearchByName returns products whose name contains the fragment or its
// diacritic-stripped form, capped at searchLimit rows.
func (s *ProductService) SearchByName(fraza string) ([]models.Product, error) {
	stripped := utils.StripDiacritics(fraza)
	var produkty []models.Product
	err := s.db.
		Where("nazwa LIKE ? OR nazwa LIKE ?", "%"+fraza+"%", "%"+stripped+"%").
		Order("nazwa").
		Limit(searchLimit).
		Find(&produkty).Error
	if err != nil {
		return nil, fmt.Errorf("wyszukiwanie produktów nie powiodło się: %w", err)
	}
	return produkty, nil
}

// Delete removes the product with that exact name and reports whether a row
// was affected.
func (s *ProductService) Delete(nazwa string) (bool, error) {
	res := s.db.Where("nazwa = ?", nazwa).Delete(&models.Product{})
	if res.Error != nil {
		return false, fmt.Errorf("nie udało się usunąć produktu %q: %w", nazwa, res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Portion holds nutrient values scaled to a requested portion size.
type Portion struct {
	Nazwa       string  `json:"nazwa"`
	Gramy       float64 `json:"gramy"`
	Kalorie     float64 `json:"kalorie"`
	Bialko      float64 `json:"bialko"`
	Weglowodany float64 `json:"weglowodany"`
	Tluszcze    float64 `json:"tluszcze"`
}

// ScalePortion multiplies the stored per-100 values by gramy/100 and rounds
// each result to one decimal place, half to even.
func ScalePortion(p *models.Product, gramy float64) Portion {
	mnoznik := gramy / 100
	return Portion{
		Nazwa:       p.Nazwa,
		Gramy:       gramy,
		Kalorie:     round1(p.Kalorie * mnoznik),
		Bialko:      round1(p.Bialko * mnoznik),
		Weglowodany: round1(p.Weglowodany * mnoznik),
		Tluszcze:    round1(p.Tluszcze * mnoznik),
	}
}

func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
