package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yoojin-jeong-skku/mygiphywall/internal/giphy"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/models"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/service"
	"github.com/yoojin-jeong-skku/mygiphywall/internal/wall"
)

// Handler carries the core services into the gin handlers. The handlers are
// the rendering-host side of the system: they pass user-entered text in and
// display the structured results that come back.
type Handler struct {
	identity *service.IdentityService
	friends  *service.FriendService
	walls    *service.WallService
}

// New creates a Handler.
func New(identity *service.IdentityService, friends *service.FriendService, walls *service.WallService) *Handler {
	return &Handler{identity: identity, friends: friends, walls: walls}
}

// session returns the wall session for the authenticated request.
func (h *Handler) session(c *gin.Context) *wall.Session {
	userID, _ := c.Get("userID")
	sessionID, _ := c.Get("sessionID")
	return h.walls.Session(sessionID.(string), userID.(uint))
}

// region --- Shared DTOs ---

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// ResultResponse reports the outcome of a mutating operation.
type ResultResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message" example:"Friend req launched. Very wow."`
}

// UserResponse is a user's public profile.
type UserResponse struct {
	ID          uint   `json:"id" example:"1"`
	Username    string `json:"username" example:"doge"`
	DisplayName string `json:"display_name" example:"doge"`
	Email       string `json:"email" example:"doge@example.com"`
	ProfileURL  string `json:"profile_url"`
}

// GifResponse is one gif on a wall.
type GifResponse struct {
	UUID         string   `json:"uuid"`
	GiphyID      string   `json:"giphy_id"`
	GiphyURL     string   `json:"giphy_url"`
	EmbedURL     string   `json:"embed_url"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Title        string   `json:"title"`
	Tags         []string `json:"tags"`
	UploadedBy   uint     `json:"uploaded_by"`
	CreatedAt    string   `json:"created_at"`
}

// endregion

// region --- Response builders ---

func buildUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		ProfileURL:  user.ProfileURL,
	}
}

func buildGifResponse(gif models.Giphy) GifResponse {
	return GifResponse{
		UUID:         gif.UUID,
		GiphyID:      gif.GiphyID,
		GiphyURL:     gif.GiphyURL,
		EmbedURL:     giphy.EmbedURL(gif.GiphyID),
		ThumbnailURL: gif.ThumbnailURL,
		Title:        gif.Title,
		Tags:         gif.TagList(),
		UploadedBy:   gif.UploadedBy,
		CreatedAt:    gif.CreatedAt,
	}
}

// endregion
