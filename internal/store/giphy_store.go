package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/models"
)

// GiphyStore runs the giphies-table queries.
type GiphyStore struct {
	db *gorm.DB
}

// NewGiphyStore creates a GiphyStore.
func NewGiphyStore(db *gorm.DB) *GiphyStore {
	return &GiphyStore{db: db}
}

// Add upserts a gif keyed by uuid. Re-adding the same uuid replaces the row.
func (s *GiphyStore) Add(g *models.Giphy) error {
	if g.UUID == "" {
		g.UUID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}
	if g.CreatedAt == "" {
		g.CreatedAt = NowISO()
	}
	if g.Tags == "" {
		g.Tags = "[]"
	}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uuid"}},
		UpdateAll: true,
	}).Create(g).Error
}

// ListForUser returns a user's gifs, newest first.
func (s *GiphyStore) ListForUser(userID uint) ([]models.Giphy, error) {
	if userID == 0 {
		return []models.Giphy{}, nil
	}
	var gifs []models.Giphy
	err := s.db.Where("uploaded_by = ?", userID).Order("id DESC").Find(&gifs).Error
	if err != nil {
		return nil, err
	}
	return gifs, nil
}

// GetByUUID fetches a gif by uuid. A missing row is (nil, nil).
func (s *GiphyStore) GetByUUID(gifUUID string) (*models.Giphy, error) {
	var gif models.Giphy
	err := s.db.Where("uuid = ?", gifUUID).First(&gif).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &gif, nil
}

// DeleteByUUID removes a gif. Deleting an absent uuid is not an error.
func (s *GiphyStore) DeleteByUUID(gifUUID string) error {
	return s.db.Where("uuid = ?", gifUUID).Delete(&models.Giphy{}).Error
}
