package services

import (
	"errors"
	"fmt"

	"github.com/polycheckone/baza-kalorii/models"
	"github.com/polycheckone/baza-kalorii/utils"

	"gorm.io/gorm"
)

var ErrUserExists = errors.New("użytkownik już istnieje")

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Authenticate checks submitted credentials against the stored hash.
// Unknown login → false. An empty stored hash is the guest account and
// matches only an empty submitted password.
func (s *AuthService) Authenticate(login, haslo string) bool {
	var user models.User
	if err := s.db.Where("login = ?", login).First(&user).Error; err != nil {
		return false
	}

	if user.Haslo == "" {
		return haslo == ""
	}

	return utils.CheckPasswordHash(haslo, user.Haslo)
}

// AddUser creates an account. An empty password is stored as-is and marks
// the guest account; anything else is bcrypt-hashed. Administrative helper,
// not exposed over HTTP.
func (s *AuthService) AddUser(login, haslo string) error {
	hash := ""
	if haslo != "" {
		h, err := utils.HashPassword(haslo)
		if err != nil {
			return fmt.Errorf("nie udało się zahashować hasła: %w", err)
		}
		hash = h
	}

	if err := s.db.Create(&models.User{Login: login, Haslo: hash}).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrUserExists
		}
		return fmt.Errorf("nie udało się dodać użytkownika: %w", err)
	}
	return nil
}
