package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary      Get current user's info
// @Description  Retrieves the profile for the currently signed-in user.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	user := h.identity.UserByID(viewerID.(uint))
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, buildUserResponse(*user))
}

// FindUser godoc
// @Summary      Find a user by free-text identifier
// @Description  Resolves a username, email, or display name (case-insensitive) to a user record. When several records match, the lowest id wins.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  true  "Username, email, or display name"
// @Success      200  {object}  UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/find [get]
func (h *Handler) FindUser(c *gin.Context) {
	user := h.identity.ResolveByIdentifier(c.Query("q"))
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No fren found there, much sad."})
		return
	}

	c.JSON(http.StatusOK, buildUserResponse(*user))
}
