package controllers

import (
	"log"
	"net/http"

	"github.com/polycheckone/baza-kalorii/config"
	"github.com/polycheckone/baza-kalorii/services"
	"github.com/polycheckone/baza-kalorii/utils"

	"github.com/gin-gonic/gin"
)

// Login name of the passwordless guest account.
const guestLogin = "Gość"

const loginErrorMessage = "Nieprawidłowy login lub hasło."

// GET /login
func LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// POST /login — form fields `login` and `haslo`. On success sets the session
// cookie and redirects home; on failure re-renders the form.
func Login(c *gin.Context) {
	login := c.PostForm("login")
	haslo := c.PostForm("haslo")

	auth := services.NewAuthService(config.DB)
	if !auth.Authenticate(login, haslo) {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Blad": loginErrorMessage})
		return
	}

	token, err := utils.GenerateSessionToken(login, login == guestLogin)
	if err != nil {
		log.Printf("nie udało się utworzyć sesji dla %q: %v", login, err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{"Blad": "Nie udało się utworzyć sesji."})
		return
	}

	c.SetCookie("sesja", token, 24*3600, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// GET /logout — clears all session state.
func Logout(c *gin.Context) {
	c.SetCookie("sesja", "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
