package models

import (
	"time"

	"gorm.io/datatypes"
)

// User is the session-identity record kept for the planned auth
// integration. No API endpoint reads or writes it yet; it exists so the
// session manager has somewhere to upsert identities.
type User struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	Email           *string   `json:"email" gorm:"uniqueIndex"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Session rows are owned entirely by the external session manager; the
// core only migrates the table.
type Session struct {
	SID    string         `gorm:"primaryKey;column:sid"`
	Sess   datatypes.JSON `gorm:"not null"`
	Expire time.Time      `gorm:"not null;index:idx_session_expire"`
}

func (Session) TableName() string {
	return "sessions"
}
