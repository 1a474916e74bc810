package controllers

import (
	"net/http"

	"github.com/polycheckone/baza-kalorii/config"
	"github.com/polycheckone/baza-kalorii/services"

	"github.com/gin-gonic/gin"
)

// GET /api/szukaj?q= — merged search across the curated list, the database
// and Open Food Facts. Always returns a JSON array, empty when the query is
// too short.
func SearchProducts(c *gin.Context) {
	svc := services.NewSearchService(
		services.NewProductService(config.DB),
		services.NewOpenFoodFactsService(),
	)
	c.JSON(http.StatusOK, svc.Search(c.Query("q")))
}
