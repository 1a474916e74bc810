package controllers

import (
	"log"
	"net/http"

	"github.com/polycheckone/baza-kalorii/config"
	"github.com/polycheckone/baza-kalorii/services"

	"github.com/gin-gonic/gin"
)

// GET / — home page; bumps the visit counter once per render.
func Home(c *gin.Context) {
	stats := services.NewStatsService(config.DB)
	odwiedziny, err := stats.IncrementVisits()
	if err != nil {
		log.Printf("licznik odwiedzin: %v", err)
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Login":      c.GetString("login"),
		"Gosc":       c.GetBool("gosc"),
		"Odwiedziny": odwiedziny,
	})
}
