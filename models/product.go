package models

import "time"

// Product is a food product with nutrient values per 100 units of mass
// (grams unless Jednostka says otherwise). Nazwa is unique in the store.
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Nazwa       string    `gorm:"uniqueIndex;not null" json:"nazwa"`
	Kalorie     float64   `gorm:"not null" json:"kalorie"`
	Bialko      float64   `gorm:"not null" json:"bialko"`
	Weglowodany float64   `gorm:"not null" json:"weglowodany"`
	Tluszcze    float64   `gorm:"not null" json:"tluszcze"`
	Kategoria   string    `json:"kategoria"`
	Jednostka   string    `gorm:"default:g" json:"jednostka"`
	Utworzono   time.Time `gorm:"autoCreateTime" json:"-"`
}

func (Product) TableName() string { return "produkty" }
