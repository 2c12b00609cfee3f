package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/models"
)

// UserStore runs the users-table queries. All lookups that go through the
// login identifier use the column name resolved at construction, so legacy
// databases (external_id, kakao_id) keep working without any runtime
// sniffing.
type UserStore struct {
	db          *gorm.DB
	loginColumn string
}

// NewUserStore creates a UserStore bound to the given login-identifier column.
func NewUserStore(db *gorm.DB, loginColumn string) *UserStore {
	if loginColumn == "" {
		loginColumn = defaultLoginColumn
	}
	return &UserStore{db: db, loginColumn: loginColumn}
}

// LoginColumn reports the resolved login-identifier column name.
func (s *UserStore) LoginColumn() string { return s.loginColumn }

// scope returns a users-table query that aliases a legacy login column back
// onto login_identifier so rows always scan into models.User cleanly.
func (s *UserStore) scope() *gorm.DB {
	q := s.db.Model(&models.User{})
	if s.loginColumn != defaultLoginColumn {
		q = q.Select(fmt.Sprintf("users.*, users.%s AS login_identifier", s.loginColumn))
	}
	return q
}

// Create inserts a user, synthesizing a login identifier when none is given.
// If the identifier is already taken the existing row is returned instead of
// an error.
func (s *UserStore) Create(user *models.User) (*models.User, error) {
	now := NowISO()
	if user.CreatedAt == "" {
		user.CreatedAt = now
	}
	if user.LastLogin == "" {
		user.LastLogin = now
	}
	if user.LoginIdentifier == "" {
		switch {
		case user.Username != "":
			user.LoginIdentifier = user.Username
		case user.Email != "":
			user.LoginIdentifier = user.Email
		default:
			user.LoginIdentifier = "local:" + strings.ReplaceAll(uuid.NewString(), "-", "")
		}
	}

	values := map[string]any{
		s.loginColumn:  user.LoginIdentifier,
		"username":     user.Username,
		"display_name": user.DisplayName,
		"profile_url":  user.ProfileURL,
		"email":        user.Email,
		"created_at":   user.CreatedAt,
		"last_login":   user.LastLogin,
	}
	if err := s.db.Model(&models.User{}).Create(values).Error; err != nil {
		// The identifier may already exist; reuse that row if so.
		existing, lookupErr := s.GetByLoginIdentifier(user.LoginIdentifier)
		if lookupErr == nil && existing != nil {
			return existing, nil
		}
		return nil, err
	}
	return s.GetByLoginIdentifier(user.LoginIdentifier)
}

// GetByID fetches a user by primary key. A missing row is (nil, nil).
func (s *UserStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.scope().Where("users.id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByLoginIdentifier fetches a user by its durable login identifier.
func (s *UserStore) GetByLoginIdentifier(identifier string) (*models.User, error) {
	if identifier == "" {
		return nil, nil
	}
	var user models.User
	err := s.scope().Where(fmt.Sprintf("users.%s = ?", s.loginColumn), identifier).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername fetches a user by exact username.
func (s *UserStore) GetByUsername(username string) (*models.User, error) {
	if username == "" {
		return nil, nil
	}
	var user models.User
	err := s.scope().Where("users.username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail fetches a user by exact email.
func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	if email == "" {
		return nil, nil
	}
	var user models.User
	err := s.scope().Where("users.email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIdentifier looks a user up by username, email, or display name,
// case-insensitively. When several rows match, the lowest id wins so the
// result is deterministic.
func (s *UserStore) FindByIdentifier(identifier string) (*models.User, error) {
	query := strings.TrimSpace(identifier)
	if query == "" {
		return nil, nil
	}
	var user models.User
	err := s.scope().
		Where(
			"lower(users.username) = lower(?) OR lower(users.email) = lower(?) OR lower(users.display_name) = lower(?)",
			query, query, query,
		).
		Order("users.id ASC").
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin stamps last_login on an existing user.
func (s *UserStore) TouchLastLogin(id uint) error {
	return s.db.Model(&models.User{}).Where("id = ?", id).
		Update("last_login", NowISO()).Error
}

// SetLoginIdentifier backfills the login identifier on a record that has none.
func (s *UserStore) SetLoginIdentifier(id uint, identifier string) error {
	return s.db.Model(&models.User{}).Where("id = ?", id).
		Update(s.loginColumn, identifier).Error
}
