package main

import (
	"log"

	"github.com/polycheckone/baza-kalorii/config"
	"github.com/polycheckone/baza-kalorii/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := config.GetEnv("PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("serwer zakończył działanie: %v", err)
	}
}
