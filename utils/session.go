package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Fallback used when SECRET_KEY is not set. Insecure, fine for local use;
// kept to match the original deployment.
const defaultSecretKey = "dev-tajny-klucz-zmien-mnie"

func secretKey() []byte {
	if v := os.Getenv("SECRET_KEY"); v != "" {
		return []byte(v)
	}
	return []byte(defaultSecretKey)
}

// GenerateSessionToken signs the per-browser session state: the logged-in
// login and the guest flag.
func GenerateSessionToken(login string, gosc bool) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"login": login,
		"gosc":  gosc,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(secretKey())
}

// ParseSessionToken validates a session token and returns the login and
// guest flag stored in it.
func ParseSessionToken(tokenString string) (string, bool, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return "", false, err
	}
	if !token.Valid {
		return "", false, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false, errors.New("invalid claims")
	}

	login, _ := claims["login"].(string)
	if login == "" {
		return "", false, errors.New("login claim missing")
	}
	gosc, _ := claims["gosc"].(bool)

	return login, gosc, nil
}
