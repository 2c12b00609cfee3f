package store

import (
	"gorm.io/gorm"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/models"
)

// CommentStore runs the comments-table queries.
type CommentStore struct {
	db *gorm.DB
}

// NewCommentStore creates a CommentStore.
func NewCommentStore(db *gorm.DB) *CommentStore {
	return &CommentStore{db: db}
}

// Add appends a comment to a gif.
func (s *CommentStore) Add(giphyUUID, text string, aiGenerated bool) (*models.Comment, error) {
	comment := &models.Comment{
		GiphyUUID:   giphyUUID,
		CommentText: text,
		AIGenerated: aiGenerated,
		CreatedAt:   NowISO(),
	}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// ListForGiphy returns a gif's comments, oldest first.
func (s *CommentStore) ListForGiphy(giphyUUID string) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Where("giphy_uuid = ?", giphyUUID).Order("id ASC").Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
