package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/polycheckone/baza-kalorii/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/chronione", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"login": c.GetString("login"),
			"gosc":  c.GetBool("gosc"),
		})
	})
	return r
}

func TestAuthMiddlewareRedirectsWithoutSession(t *testing.T) {
	r := newGatedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chronione", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	r := newGatedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chronione", nil)
	req.AddCookie(&http.Cookie{Name: "sesja", Value: "podrobiony"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAuthMiddlewarePassesValidSession(t *testing.T) {
	r := newGatedRouter()

	token, err := utils.GenerateSessionToken("anna", false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/chronione", nil)
	req.AddCookie(&http.Cookie{Name: "sesja", Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"login":"anna"`)
}
