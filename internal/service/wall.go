package service

import (
	"go.uber.org/zap"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/giphy"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/models"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/store"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/wall"
)

// WallService is the wall session controller: it tracks which wall a session
// is viewing, enforces owner-only writes, and keeps the cached gif list in
// step with the active wall owner.
type WallService struct {
	gifs     *store.GiphyStore
	comments *store.CommentStore
	friends  *FriendService
	sessions *wall.Registry
	log      *zap.Logger
}

// NewWallService creates a WallService.
func NewWallService(gifs *store.GiphyStore, comments *store.CommentStore, friends *FriendService, sessions *wall.Registry, log *zap.Logger) *WallService {
	return &WallService{gifs: gifs, comments: comments, friends: friends, sessions: sessions, log: log}
}

// Session returns the wall session for a session id, creating one on the
// viewer's own wall when none exists.
func (s *WallService) Session(sessionID string, userID uint) *wall.Session {
	return s.sessions.Get(sessionID, userID)
}

// SetActiveWall switches the session to the requested owner's wall when that
// owner is the viewer or a current friend. Anything else (a stranger, an
// ex-friend, a stale id) silently falls back to the viewer's own wall.
func (s *WallService) SetActiveWall(sess *wall.Session, requestedOwnerID uint) {
	owner := requestedOwnerID
	if owner != sess.UserID && !s.friends.IsFriend(sess.UserID, owner) {
		owner = sess.UserID
	}
	if owner != sess.ActiveWallUserID {
		sess.ActiveWallUserID = owner
		sess.InvalidateCache()
	}
}

// Gifs returns the active wall's gif list, reloading from storage whenever
// the cache is missing or reflects a different owner. The displayed wall
// never shows a stale owner's content after a switch.
func (s *WallService) Gifs(sess *wall.Session) []models.Giphy {
	if sess.CachedOwnerID != sess.ActiveWallUserID || sess.CachedGifs == nil {
		gifs, err := s.gifs.ListForUser(sess.ActiveWallUserID)
		if err != nil {
			s.log.Error("gif list load failed", zap.Error(err))
			return []models.Giphy{}
		}
		sess.CachedGifs = gifs
		sess.CachedOwnerID = sess.ActiveWallUserID
	}
	return sess.CachedGifs
}

// PostGif adds a gif to the session's own wall. Posting is rejected while
// viewing someone else's wall. A doge comment is attached as a side dish;
// its failure is logged but never fails the post.
func (s *WallService) PostGif(sess *wall.Session, rawURL, title string, tags []string) (bool, string) {
	if !sess.ViewingOwnWall() {
		return false, "Can only post on own wall, wow."
	}

	gifID := giphy.ExtractGifID(rawURL)
	if gifID == "" {
		return false, "Hmm, that link doesn't look like a valid Giphy URL."
	}

	gif := models.Giphy{
		GiphyID:      gifID,
		GiphyURL:     giphy.EnsureProtocol(rawURL),
		ThumbnailURL: giphy.ThumbnailURL(gifID),
		Title:        title,
		UploadedBy:   sess.UserID,
	}
	gif.SetTagList(tags)
	if err := s.gifs.Add(&gif); err != nil {
		s.log.Error("gif insert failed", zap.Error(err))
		return false, "Wall not accepting gifs rn. Much sorry."
	}

	seed := title
	if seed == "" {
		seed = rawURL
	}
	if _, err := s.comments.Add(gif.UUID, giphy.DogeComment(seed), true); err != nil {
		s.log.Error("doge comment insert failed", zap.Error(err))
	}

	sess.InvalidateCache()
	return true, "Giphy added."
}

// DeleteGif removes one of the viewer's own gifs.
func (s *WallService) DeleteGif(sess *wall.Session, gifUUID string) (bool, string) {
	if !sess.ViewingOwnWall() {
		return false, "Can only delete from own wall, wow."
	}

	gif, err := s.gifs.GetByUUID(gifUUID)
	if err != nil {
		s.log.Error("gif lookup failed", zap.Error(err))
		return false, "Cannot touch that gif rn. Much sorry."
	}
	if gif == nil {
		return false, "No such gif, much sad."
	}
	if gif.UploadedBy != sess.UserID {
		return false, "Not your gif to yeet."
	}

	if err := s.gifs.DeleteByUUID(gifUUID); err != nil {
		s.log.Error("gif delete failed", zap.Error(err))
		return false, "Cannot touch that gif rn. Much sorry."
	}
	sess.InvalidateCache()
	return true, "Giphy deleted."
}

// React bumps a reaction counter on the active wall and returns the new
// count. Reactions work on any wall the session can view.
func (s *WallService) React(sess *wall.Session, label string) (int, bool, string) {
	if label == "" {
		return 0, false, "Such empty reaction."
	}
	count := s.sessions.React(sess.ActiveWallUserID, label)
	return count, true, "Reaction registered. Very feel."
}

// Reactions returns the active wall's reaction counters.
func (s *WallService) Reactions(sess *wall.Session) map[string]int {
	return s.sessions.Reactions(sess.ActiveWallUserID)
}

// Comments returns a gif's comments, oldest first. Faults list as empty.
func (s *WallService) Comments(gifUUID string) []models.Comment {
	comments, err := s.comments.ListForGiphy(gifUUID)
	if err != nil {
		s.log.Error("comment list failed", zap.Error(err))
		return []models.Comment{}
	}
	return comments
}
