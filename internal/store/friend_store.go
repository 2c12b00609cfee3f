package store

import (
	"errors"
	"sort"

	"gorm.io/gorm"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/models"
)

// PendingRequest is a pending friend_requests row joined with the other
// party's display fields.
type PendingRequest struct {
	ID                  uint                       `gorm:"column:id" json:"id"`
	RequesterID         uint                       `gorm:"column:requester_id" json:"requester_id"`
	ReceiverID          uint                       `gorm:"column:receiver_id" json:"receiver_id"`
	Status              models.FriendRequestStatus `gorm:"column:status" json:"status"`
	CreatedAt           string                     `gorm:"column:created_at" json:"created_at"`
	CounterpartUsername string                     `gorm:"column:counterpart_username" json:"counterpart_username"`
	CounterpartEmail    string                     `gorm:"column:counterpart_email" json:"counterpart_email"`
}

// FriendStore runs the friend_requests-table queries. It holds the UserStore
// so user rows it returns go through the same login-column aliasing.
type FriendStore struct {
	db    *gorm.DB
	users *UserStore
}

// NewFriendStore creates a FriendStore.
func NewFriendStore(db *gorm.DB, users *UserStore) *FriendStore {
	return &FriendStore{db: db, users: users}
}

// Insert creates a fresh pending request row.
func (s *FriendStore) Insert(requesterID, receiverID uint) (*models.FriendRequest, error) {
	req := &models.FriendRequest{
		RequesterID: requesterID,
		ReceiverID:  receiverID,
		Status:      models.StatusPending,
		CreatedAt:   NowISO(),
	}
	if err := s.db.Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

// GetByID fetches a request row by primary key. A missing row is (nil, nil).
func (s *FriendStore) GetByID(id uint) (*models.FriendRequest, error) {
	var req models.FriendRequest
	err := s.db.Where("id = ?", id).First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// LatestBetween returns the most recently created request row between two
// users, in either direction. That row governs the pair's current status;
// older rows are history.
func (s *FriendStore) LatestBetween(a, b uint) (*models.FriendRequest, error) {
	var req models.FriendRequest
	err := s.db.
		Where("(requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("id DESC").
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// SetStatus moves a request to a terminal status and stamps responded_at.
func (s *FriendStore) SetStatus(id uint, status models.FriendRequestStatus) error {
	return s.db.Model(&models.FriendRequest{}).Where("id = ?", id).
		Updates(map[string]any{"status": status, "responded_at": NowISO()}).Error
}

// ListFriends returns every user connected to userID through an accepted
// request in either direction, sorted by display key.
func (s *FriendStore) ListFriends(userID uint) ([]models.User, error) {
	var users []models.User
	err := s.users.scope().
		Where(`users.id IN (
			SELECT receiver_id FROM friend_requests WHERE requester_id = ? AND status = ?
			UNION
			SELECT requester_id FROM friend_requests WHERE receiver_id = ? AND status = ?
		)`, userID, models.StatusAccepted, userID, models.StatusAccepted).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].DisplayKey() < users[j].DisplayKey()
	})
	return users, nil
}

// AreFriends reports whether any accepted request links the two users.
func (s *FriendStore) AreFriends(a, b uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.FriendRequest{}).
		Where("((requester_id = ? AND receiver_id = ?) OR (requester_id = ? AND receiver_id = ?)) AND status = ?",
			a, b, b, a, models.StatusAccepted).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListPendingIncoming returns pending requests addressed to userID, oldest
// first, so the oldest unanswered request is served first.
func (s *FriendStore) ListPendingIncoming(userID uint) ([]PendingRequest, error) {
	var rows []PendingRequest
	err := s.db.Model(&models.FriendRequest{}).
		Select("friend_requests.id, friend_requests.requester_id, friend_requests.receiver_id, friend_requests.status, friend_requests.created_at, u.username AS counterpart_username, u.email AS counterpart_email").
		Joins("JOIN users u ON u.id = friend_requests.requester_id").
		Where("friend_requests.receiver_id = ? AND friend_requests.status = ?", userID, models.StatusPending).
		Order("friend_requests.created_at ASC, friend_requests.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListSentPending returns pending requests userID has sent, newest first.
func (s *FriendStore) ListSentPending(userID uint) ([]PendingRequest, error) {
	var rows []PendingRequest
	err := s.db.Model(&models.FriendRequest{}).
		Select("friend_requests.id, friend_requests.requester_id, friend_requests.receiver_id, friend_requests.status, friend_requests.created_at, u.username AS counterpart_username, u.email AS counterpart_email").
		Joins("JOIN users u ON u.id = friend_requests.receiver_id").
		Where("friend_requests.requester_id = ? AND friend_requests.status = ?", userID, models.StatusPending).
		Order("friend_requests.created_at DESC, friend_requests.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
