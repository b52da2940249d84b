package models

import "time"

// ContactMessage is an inbound inquiry from the public contact form.
// Messages are immutable once created; there is no update or delete path.
type ContactMessage struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"not null"`
	Email      string    `json:"email" gorm:"not null"`
	Subject    string    `json:"subject" gorm:"not null"`
	Message    string    `json:"message" gorm:"not null"`
	PaintingID *uint     `json:"paintingId"` // display context only, not a hard foreign key
	CreatedAt  time.Time `json:"createdAt"`
}
