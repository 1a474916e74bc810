package models

// Stat is a named persistent counter, e.g. the home page visit count.
type Stat struct {
	Klucz   string `gorm:"primaryKey" json:"klucz"`
	Wartosc int64  `gorm:"default:0" json:"wartosc"`
}

func (Stat) TableName() string { return "statystyki" }
