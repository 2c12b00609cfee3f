package wall

import "github.com/yoojin-jeong-skku/mygiphywall/internal/models"

// Session is the per-browser-session view state: who is signed in, whose
// wall is on screen, and the gif list cached for that wall. It is an explicit
// value threaded through the wall operations rather than hidden host state.
type Session struct {
	UserID           uint
	ActiveWallUserID uint

	// CachedGifs reflects CachedOwnerID's wall. CachedOwnerID of zero means
	// no cache has been loaded yet; whenever it disagrees with
	// ActiveWallUserID the list must be reloaded before rendering.
	CachedGifs    []models.Giphy
	CachedOwnerID uint
}

// ViewingOwnWall reports whether the session is on the signed-in user's own
// wall, which is the precondition for posting and deleting gifs.
func (s *Session) ViewingOwnWall() bool {
	return s.ActiveWallUserID == s.UserID
}

// InvalidateCache drops the cached gif list.
func (s *Session) InvalidateCache() {
	s.CachedGifs = nil
	s.CachedOwnerID = 0
}
