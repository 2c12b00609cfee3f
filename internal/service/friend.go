package service

import (
	"go.uber.org/zap"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/models"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/store"
)

// FriendService is the friend-request state machine. Requests move
// none → pending → accepted|declined; accepted and declined are terminal.
// The most recently created row between a pair of users governs their
// current status, so a decline never blocks a fresh request later.
type FriendService struct {
	friends *store.FriendStore
	users   *store.UserStore
	log     *zap.Logger
}

// NewFriendService creates a FriendService.
func NewFriendService(friends *store.FriendStore, users *store.UserStore, log *zap.Logger) *FriendService {
	return &FriendService{friends: friends, users: users, log: log}
}

// CreateFriendRequest sends a friend request, or auto-accepts the existing
// one when the receiver of a pending request asks back: mutual interest
// collapses straight into friendship without an explicit accept click.
func (s *FriendService) CreateFriendRequest(requesterID, receiverID uint) (bool, string) {
	if requesterID == 0 || receiverID == 0 {
		return false, "Such invalid fren info."
	}
	if requesterID == receiverID {
		return false, "Cannot request own fren-ness, wow."
	}

	receiver, err := s.users.GetByID(receiverID)
	if err != nil {
		s.log.Error("receiver lookup failed", zap.Error(err))
		return false, "Friend req broken rn. Much sorry."
	}
	if receiver == nil {
		return false, "No fren found there, much sad."
	}

	existing, err := s.friends.LatestBetween(requesterID, receiverID)
	if err != nil {
		s.log.Error("latest request lookup failed", zap.Error(err))
		return false, "Friend req broken rn. Much sorry."
	}
	if existing != nil {
		switch existing.Status {
		case models.StatusAccepted:
			return false, "Already frens. Much wow."
		case models.StatusPending:
			if existing.RequesterID == requesterID {
				return false, "Friend req already zoomed."
			}
			if err := s.friends.SetStatus(existing.ID, models.StatusAccepted); err != nil {
				s.log.Error("auto accept failed", zap.Error(err))
				return false, "Friend req broken rn. Much sorry."
			}
			return true, "Auto accept! Fren energy mutual."
		}
	}

	if _, err := s.friends.Insert(requesterID, receiverID); err != nil {
		s.log.Error("request insert failed", zap.Error(err))
		return false, "Friend req broken rn. Much sorry."
	}
	return true, "Friend req launched. Very wow."
}

// RespondToFriendRequest resolves a pending request. Only the receiver may
// respond, and a resolved request cannot be re-answered.
func (s *FriendService) RespondToFriendRequest(requestID, responderID uint, accept bool) (bool, string) {
	req, err := s.friends.GetByID(requestID)
	if err != nil {
		s.log.Error("request lookup failed", zap.Error(err))
		return false, "Cannot update fren req atm."
	}
	if req == nil || req.ReceiverID != responderID {
		return false, "No such fren ping."
	}
	if req.Status != models.StatusPending {
		return false, "Request already handled wow."
	}

	status := models.StatusDeclined
	if accept {
		status = models.StatusAccepted
	}
	if err := s.friends.SetStatus(req.ID, status); err != nil {
		s.log.Error("request update failed", zap.Error(err))
		return false, "Cannot update fren req atm."
	}
	return true, "Fren request updated. Much decision."
}

// ListFriends returns the users connected to userID through an accepted
// request in either direction, sorted by display key. Faults list as empty.
func (s *FriendService) ListFriends(userID uint) []models.User {
	friends, err := s.friends.ListFriends(userID)
	if err != nil {
		s.log.Error("list friends failed", zap.Error(err))
		return []models.User{}
	}
	return friends
}

// ListPendingIncoming returns unanswered requests addressed to userID,
// oldest first.
func (s *FriendService) ListPendingIncoming(userID uint) []store.PendingRequest {
	rows, err := s.friends.ListPendingIncoming(userID)
	if err != nil {
		s.log.Error("list incoming requests failed", zap.Error(err))
		return []store.PendingRequest{}
	}
	return rows
}

// ListSentPending returns unanswered requests userID has sent, newest first.
func (s *FriendService) ListSentPending(userID uint) []store.PendingRequest {
	rows, err := s.friends.ListSentPending(userID)
	if err != nil {
		s.log.Error("list sent requests failed", zap.Error(err))
		return []store.PendingRequest{}
	}
	return rows
}

// IsFriend reports whether the two users share an accepted request. Faults
// report false, which degrades wall access to the viewer's own wall.
func (s *FriendService) IsFriend(a, b uint) bool {
	ok, err := s.friends.AreFriends(a, b)
	if err != nil {
		s.log.Error("friendship check failed", zap.Error(err))
		return false
	}
	return ok
}
