package config

import (
	"log"
	"os"

	"github.com/polycheckone/baza-kalorii/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var DB *gorm.DB

// GetEnv returns the value of an environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// InitDB opens the SQLite database file, creates the schema if absent and
// seeds the visit counter. Idempotent; fatal only when the file cannot be
// opened or migrated.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env, używam zmiennych środowiskowych")
	}

	path := GetEnv("DB_PATH", "kalorie.db")

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("Nie udało się otworzyć bazy danych %s: %v", path, err)
	}

	err = DB.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.Stat{},
	)
	if err != nil {
		log.Fatalf("Migracja bazy danych nie powiodła się: %v", err)
	}

	// Licznik odwiedzin startuje od zera, ale tylko przy pierwszym uruchomieniu.
	DB.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Stat{Klucz: "odwiedziny", Wartosc: 0})

	log.Println("Baza danych zainicjalizowana.")
}
