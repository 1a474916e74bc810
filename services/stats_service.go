package services

import (
	"errors"
	"fmt"

	"github.com/polycheckone/baza-kalorii/models"

	"gorm.io/gorm"
)

const visitsKey = "odwiedziny"

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// IncrementVisits bumps the visit counter by one in a single statement and
// returns the new value. The read-back is a separate statement, so under
// concurrent traffic the returned value may be off by a few; acceptable for
// a single-user tool.
func (s *StatsService) IncrementVisits() (int64, error) {
	err := s.db.Model(&models.Stat{}).
		Where("klucz = ?", visitsKey).
		UpdateColumn("wartosc", gorm.Expr("wartosc + 1")).Error
	if err != nil {
		return 0, fmt.Errorf("nie udało się zwiększyć licznika odwiedzin: %w", err)
	}
	return s.Visits()
}

// Visits returns the current visit count, zero when the counter row is
// missing.
func (s *StatsService) Visits() (int64, error) {
	var stat models.Stat
	err := s.db.First(&stat, "klucz = ?", visitsKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("nie udało się odczytać licznika odwiedzin: %w", err)
	}
	return stat.Wartosc, nil
}
