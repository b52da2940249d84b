package storage

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/TillGrassi/My-Portfolio/models"
)

// GormStore implements Store on a relational database through GORM.
// Postgres is the production driver; sqlite covers local development
// and tests without a running server.
type GormStore struct {
	db *gorm.DB
}

// Open connects to the database and runs auto-migrations, including the
// session table owned by the external session manager.
func Open(driver, dsn string) (*GormStore, error) {
	var dial gorm.Dialector
	switch driver {
	case "postgres":
		dial = postgres.Open(dsn)
	case "sqlite":
		dial = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Session{}, &models.Painting{}, &models.ContactMessage{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// ListPaintings returns all paintings, newest first.
func (s *GormStore) ListPaintings() ([]models.Painting, error) {
	var paintings []models.Painting
	if err := s.db.Order("created_at DESC, id DESC").Find(&paintings).Error; err != nil {
		return nil, err
	}
	return paintings, nil
}

// GetPainting returns a painting by id.
func (s *GormStore) GetPainting(id uint) (models.Painting, bool, error) {
	var p models.Painting
	if err := s.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Painting{}, false, nil
		}
		return models.Painting{}, false, err
	}
	return p, true, nil
}

// CreatePainting inserts a painting and returns it with the assigned id
// and timestamps.
func (s *GormStore) CreatePainting(p models.Painting) (models.Painting, error) {
	if err := s.db.Create(&p).Error; err != nil {
		return models.Painting{}, err
	}
	return p, nil
}

// UpdatePainting merges the patch into an existing row and refreshes
// updated_at.
func (s *GormStore) UpdatePainting(id uint, patch PaintingPatch) (models.Painting, bool, error) {
	var p models.Painting
	if err := s.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Painting{}, false, nil
		}
		return models.Painting{}, false, err
	}
	patch.apply(&p)
	if err := s.db.Save(&p).Error; err != nil {
		return models.Painting{}, false, err
	}
	return p, true, nil
}

// DeletePainting removes a painting outright. Deleting an id that does
// not exist is not an error.
func (s *GormStore) DeletePainting(id uint) error {
	return s.db.Delete(&models.Painting{}, id).Error
}

// CreateContactMessage inserts an inquiry and returns it with the
// assigned id and timestamp.
func (s *GormStore) CreateContactMessage(m models.ContactMessage) (models.ContactMessage, error) {
	if err := s.db.Create(&m).Error; err != nil {
		return models.ContactMessage{}, err
	}
	return m, nil
}

// ListContactMessages returns all inquiries, newest first.
func (s *GormStore) ListContactMessages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := s.db.Order("created_at DESC, id DESC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// GetUser returns an identity record by id.
func (s *GormStore) GetUser(id string) (models.User, bool, error) {
	var u models.User
	if err := s.db.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, false, nil
		}
		return models.User{}, false, err
	}
	return u, true, nil
}

// UpsertUser inserts or merges an identity record keyed by id.
func (s *GormStore) UpsertUser(u models.User) (models.User, error) {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "profile_image_url", "updated_at"}),
	}).Create(&u).Error
	if err != nil {
		return models.User{}, err
	}
	var stored models.User
	if err := s.db.First(&stored, "id = ?", u.ID).Error; err != nil {
		return models.User{}, err
	}
	return stored, nil
}
