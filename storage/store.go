package storage

import (
	"gorm.io/datatypes"

	"github.com/TillGrassi/My-Portfolio/models"
)

// PaintingPatch carries the subset of painting fields supplied by an
// admin update. Nil fields are left untouched.
type PaintingPatch struct {
	Title        *string
	Year         *int
	Medium       *string
	Size         *string
	Description  *string
	ImageURL     *string
	Availability *string
	Tags         *[]string
	Featured     *bool
}

func (patch PaintingPatch) apply(p *models.Painting) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Year != nil {
		p.Year = *patch.Year
	}
	if patch.Medium != nil {
		p.Medium = *patch.Medium
	}
	if patch.Size != nil {
		p.Size = *patch.Size
	}
	if patch.Description != nil {
		p.Description = patch.Description
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Availability != nil {
		p.Availability = *patch.Availability
	}
	if patch.Tags != nil {
		p.Tags = datatypes.NewJSONSlice(*patch.Tags)
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
}

// Store defines persistence operations for paintings, contact messages
// and the placeholder identity records.
//
// Lookups return (zero value, false, nil) for a missing id rather than
// an error; errors are reserved for store failures.
type Store interface {
	ListPaintings() ([]models.Painting, error)
	GetPainting(id uint) (models.Painting, bool, error)
	CreatePainting(p models.Painting) (models.Painting, error)
	UpdatePainting(id uint, patch PaintingPatch) (models.Painting, bool, error)
	DeletePainting(id uint) error

	CreateContactMessage(m models.ContactMessage) (models.ContactMessage, error)
	ListContactMessages() ([]models.ContactMessage, error)

	GetUser(id string) (models.User, bool, error)
	UpsertUser(u models.User) (models.User, error)
}
