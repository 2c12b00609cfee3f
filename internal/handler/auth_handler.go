package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yoojin-jeong-skku/mygiphywall/pkg/jwt"
)

// LoginInput defines the structure for signing in. At least one of the two
// fields must be supplied; there is no password.
type LoginInput struct {
	Username string `json:"username" example:"doge"`
	Email    string `json:"email" example:"doge@example.com"`
}

// LoginResponse carries the session token and the signed-in user.
type LoginResponse struct {
	Token   string       `json:"token"`
	Message string       `json:"message" example:"Welcome back, fren."`
	User    UserResponse `json:"user"`
}

// Login godoc
// @Summary      Sign in or create a user
// @Description  Signs in by username and/or email, creating the user on first login. No password is checked; identity is claimed. Ambiguous identities (username and email pointing at different accounts) are rejected.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  ErrorResponse "Missing or unusable identifiers"
// @Failure      409  {object}  ErrorResponse "Identity conflict"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.identity.LoginOrCreate(input.Username, input.Email)
	if result.Conflict {
		c.JSON(http.StatusConflict, gin.H{"error": result.Message})
		return
	}
	if !result.OK {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Message})
		return
	}

	// A fresh session starts on the user's own wall.
	sessionID := uuid.NewString()
	h.walls.Session(sessionID, result.User.ID)

	token, err := jwt.GenerateToken(result.User.ID, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		Message: result.Message,
		User:    buildUserResponse(*result.User),
	})
}
