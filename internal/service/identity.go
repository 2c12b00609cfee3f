// Package service holds the core logic: the identity resolver, the
// friend-request state machine, and the wall session controller. Public
// operations never return an error; storage faults are logged here and
// reported to callers as failure results with a human-readable message.
package service

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/models"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/store"
)

// LoginResult is the outcome of LoginOrCreate. Conflict marks an ambiguous
// identity (the supplied username and email point at different accounts);
// no session is established and nothing is mutated in that case.
type LoginResult struct {
	OK       bool
	Conflict bool
	Message  string
	User     *models.User
}

// IdentityService resolves free-text identifiers to user records and handles
// the claimed-identity login flow.
type IdentityService struct {
	users *store.UserStore
	log   *zap.Logger
}

// NewIdentityService creates an IdentityService.
func NewIdentityService(users *store.UserStore, log *zap.Logger) *IdentityService {
	return &IdentityService{users: users, log: log}
}

// ResolveByIdentifier matches a free-text identifier against username, email,
// or display name. Blank input and storage faults both resolve to nil.
func (s *IdentityService) ResolveByIdentifier(identifier string) *models.User {
	user, err := s.users.FindByIdentifier(identifier)
	if err != nil {
		s.log.Error("find user by identifier failed", zap.Error(err))
		return nil
	}
	return user
}

// LoginOrCreate signs a user in by username and/or email, creating the user
// record on first login. The two lookups must agree: if the username belongs
// to one account and the email to another, or either field is already bound
// to a different value on the matched record, the login is rejected as a
// conflict with no mutation.
func (s *IdentityService) LoginOrCreate(username, email string) LoginResult {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" && email == "" {
		return LoginResult{Message: "Need a username or email, wow."}
	}

	byUsername, err := s.users.GetByUsername(username)
	if err != nil {
		s.log.Error("username lookup failed", zap.Error(err))
		byUsername = nil
	}
	byEmail, err := s.users.GetByEmail(email)
	if err != nil {
		s.log.Error("email lookup failed", zap.Error(err))
		byEmail = nil
	}

	if byUsername != nil && byEmail != nil && byUsername.ID != byEmail.ID {
		return LoginResult{Conflict: true, Message: "That username and email belong to different frens."}
	}
	if username != "" && email != "" {
		if byUsername != nil && byUsername.Email != "" && byUsername.Email != email {
			return LoginResult{Conflict: true, Message: "That username already has a different email, wow."}
		}
		if byEmail != nil && byEmail.Username != "" && byEmail.Username != username {
			return LoginResult{Conflict: true, Message: "That email already has a different username, wow."}
		}
	}

	match := byUsername
	if match == nil {
		match = byEmail
	}
	if match != nil {
		if match.LoginIdentifier == "" {
			identifier := synthesizeIdentifier(username, email)
			if err := s.users.SetLoginIdentifier(match.ID, identifier); err != nil {
				s.log.Error("login identifier backfill failed", zap.Error(err))
			} else {
				match.LoginIdentifier = identifier
			}
		}
		if err := s.users.TouchLastLogin(match.ID); err != nil {
			s.log.Error("last login stamp failed", zap.Error(err))
		}
		return LoginResult{OK: true, User: match, Message: "Welcome back, fren."}
	}

	created, err := s.users.Create(&models.User{
		LoginIdentifier: synthesizeIdentifier(username, email),
		Username:        username,
		DisplayName:     username,
		Email:           email,
	})
	if err != nil {
		s.log.Error("user creation failed", zap.Error(err))
		return LoginResult{Message: "Cannot make new fren rn. Much sorry."}
	}
	return LoginResult{OK: true, User: created, Message: "New fren made. Very welcome."}
}

// UserByID fetches a user record by id. Missing rows and storage faults
// both resolve to nil.
func (s *IdentityService) UserByID(id uint) *models.User {
	user, err := s.users.GetByID(id)
	if err != nil {
		s.log.Error("user lookup failed", zap.Error(err))
		return nil
	}
	return user
}

func synthesizeIdentifier(username, email string) string {
	switch {
	case username != "":
		return "local:" + username
	case email != "":
		return "local:" + email
	default:
		return "local:" + strings.ReplaceAll(uuid.NewString(), "-", "")
	}
}
