package models

import "time"

// User holds login credentials. Haslo is a bcrypt hash; an empty string
// marks the passwordless guest account.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Login     string    `gorm:"uniqueIndex;not null" json:"login"`
	Haslo     string    `json:"-"`
	Utworzono time.Time `gorm:"autoCreateTime" json:"-"`
}

func (User) TableName() string { return "uzytkownicy" }
