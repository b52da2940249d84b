package models

import (
	"time"

	"gorm.io/datatypes"
)

// Availability values for a painting.
const (
	AvailabilityAvailable  = "available"
	AvailabilitySold       = "sold"
	AvailabilityNotForSale = "not-for-sale"
)

// ValidAvailability reports whether s is one of the three sale states.
func ValidAvailability(s string) bool {
	switch s {
	case AvailabilityAvailable, AvailabilitySold, AvailabilityNotForSale:
		return true
	}
	return false
}

type Painting struct {
	ID           uint                        `json:"id" gorm:"primaryKey"`
	Title        string                      `json:"title" gorm:"not null"`
	Year         int                         `json:"year" gorm:"not null"`
	Medium       string                      `json:"medium" gorm:"not null"`
	Size         string                      `json:"size" gorm:"not null"` // free-form, e.g. "40 × 50 cm"
	Description  *string                     `json:"description"`
	ImageURL     string                      `json:"imageUrl" gorm:"not null"`
	Availability string                      `json:"availability" gorm:"not null;default:available"`
	Tags         datatypes.JSONSlice[string] `json:"tags"`
	Featured     bool                        `json:"featured" gorm:"default:false"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}
