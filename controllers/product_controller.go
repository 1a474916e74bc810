package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/polycheckone/baza-kalorii/config"
	"github.com/polycheckone/baza-kalorii/models"
	"github.com/polycheckone/baza-kalorii/services"

	"github.com/gin-gonic/gin"
)

// Category applied to products stored from search results.
const savedCategory = "zapisane"

const notFoundMessage = "Nie znaleziono produktu"

type productJSON struct {
	ID          uint    `json:"id"`
	Nazwa       string  `json:"nazwa"`
	Kalorie     float64 `json:"kalorie"`
	Bialko      float64 `json:"bialko"`
	Weglowodany float64 `json:"weglowodany"`
	Tluszcze    float64 `json:"tluszcze"`
	Jednostka   string  `json:"jednostka"`
}

// GET /api/produkty — all products grouped by category.
func GetProducts(c *gin.Context) {
	svc := services.NewProductService(config.DB)
	grouped, err := svc.GroupedByCategory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make(map[string][]productJSON, len(grouped))
	for kategoria, produkty := range grouped {
		items := make([]productJSON, 0, len(produkty))
		for _, p := range produkty {
			items = append(items, productJSON{
				ID:          p.ID,
				Nazwa:       p.Nazwa,
				Kalorie:     p.Kalorie,
				Bialko:      p.Bialko,
				Weglowodany: p.Weglowodany,
				Tluszcze:    p.Tluszcze,
				Jednostka:   p.Jednostka,
			})
		}
		out[kategoria] = items
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/produkt/:id — single product by integer id.
func GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}

	svc := services.NewProductService(config.DB)
	p, err := svc.ByID(uint(id))
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          p.ID,
		"nazwa":       p.Nazwa,
		"kalorie":     p.Kalorie,
		"bialko":      p.Bialko,
		"weglowodany": p.Weglowodany,
		"tluszcze":    p.Tluszcze,
		"kategoria":   p.Kategoria,
	})
}

// POST /api/oblicz — body {id, gramy?}; gramy defaults to 100.
func CalculatePortion(c *gin.Context) {
	var req struct {
		ID    uint     `json:"id"`
		Gramy *float64 `json:"gramy"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nieprawidłowe dane"})
		return
	}

	gramy := 100.0
	if req.Gramy != nil {
		gramy = *req.Gramy
	}

	svc := services.NewProductService(config.DB)
	p, err := svc.ByID(req.ID)
	if errors.Is(err, services.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, services.ScalePortion(p, gramy))
}

// POST /api/zapisz — stores a nutrient payload from a search result under
// the "zapisane" category.
func SaveProduct(c *gin.Context) {
	var req struct {
		Nazwa       string  `json:"nazwa"`
		Kalorie     float64 `json:"kalorie"`
		Bialko      float64 `json:"bialko"`
		Weglowodany float64 `json:"weglowodany"`
		Tluszcze    float64 `json:"tluszcze"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nieprawidłowe dane"})
		return
	}

	nazwa := strings.TrimSpace(req.Nazwa)
	if nazwa == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nazwa produktu jest wymagana"})
		return
	}

	p := &models.Product{
		Nazwa:       nazwa,
		Kalorie:     req.Kalorie,
		Bialko:      req.Bialko,
		Weglowodany: req.Weglowodany,
		Tluszcze:    req.Tluszcze,
		Kategoria:   savedCategory,
	}

	svc := services.NewProductService(config.DB)
	if err := svc.Add(p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Produkt już istnieje lub błąd zapisu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "id": p.ID})
}
