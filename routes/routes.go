package routes

import (
	"github.com/polycheckone/baza-kalorii/controllers"
	"github.com/polycheckone/baza-kalorii/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.GET("/login", controllers.LoginPage)
	r.POST("/login", controllers.Login)
	r.GET("/logout", controllers.Logout)

	// Product detail and portion calculation stay open, the rest is gated.
	r.GET("/api/produkt/:id", controllers.GetProduct)
	r.POST("/api/oblicz", controllers.CalculatePortion)

	gated := r.Group("/")
	gated.Use(middlewares.AuthMiddleware())
	{
		gated.GET("/", controllers.Home)
		gated.GET("/api/produkty", controllers.GetProducts)
		gated.GET("/api/szukaj", controllers.SearchProducts)
		gated.POST("/api/zapisz", controllers.SaveProduct)
	}

	return r
}
