package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// FriendRequestInput identifies the receiver of a new friend request, either
// directly by id or by a free-text identifier that goes through identity
// resolution first.
type FriendRequestInput struct {
	ReceiverID uint   `json:"receiver_id" example:"2"`
	Identifier string `json:"identifier" example:"doge@example.com"`
}

// ListFriends godoc
// @Summary      List friends
// @Description  Returns every user connected to the viewer through an accepted friend request, in either direction, sorted by display name.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   UserResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends [get]
func (h *Handler) ListFriends(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	friends := h.friends.ListFriends(viewerID.(uint))
	responses := make([]UserResponse, 0, len(friends))
	for _, friend := range friends {
		responses = append(responses, buildUserResponse(friend))
	}

	c.JSON(http.StatusOK, responses)
}

// ListIncomingRequests godoc
// @Summary      List incoming friend requests
// @Description  Returns pending requests addressed to the viewer, oldest first.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   store.PendingRequest
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/requests/incoming [get]
func (h *Handler) ListIncomingRequests(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	c.JSON(http.StatusOK, h.friends.ListPendingIncoming(viewerID.(uint)))
}

// ListSentRequests godoc
// @Summary      List sent friend requests
// @Description  Returns pending requests the viewer has sent, newest first.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   store.PendingRequest
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/requests/sent [get]
func (h *Handler) ListSentRequests(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	c.JSON(http.StatusOK, h.friends.ListSentPending(viewerID.(uint)))
}

// SendFriendRequest godoc
// @Summary      Send a friend request
// @Description  Sends a friend request to another user. If that user already has a pending request to the viewer, the two collapse into an immediate friendship (auto-accept). A past decline does not block a fresh request.
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body FriendRequestInput true "Receiver id or free-text identifier"
// @Success      201  {object}  ResultResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Receiver not found"
// @Router       /friends/requests [post]
func (h *Handler) SendFriendRequest(c *gin.Context) {
	viewerID, _ := c.Get("userID")

	var input FriendRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receiverID := input.ReceiverID
	if receiverID == 0 && input.Identifier != "" {
		receiver := h.identity.ResolveByIdentifier(input.Identifier)
		if receiver == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No fren found there, much sad."})
			return
		}
		receiverID = receiver.ID
	}

	ok, message := h.friends.CreateFriendRequest(viewerID.(uint), receiverID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, ResultResponse{OK: true, Message: message})
}

// AcceptFriendRequest godoc
// @Summary      Accept a friend request
// @Description  Accepts a pending friend request. Only the receiver may respond, and a resolved request cannot be re-answered.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friend Request ID"
// @Success      200  {object}  ResultResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/requests/{id}/accept [post]
func (h *Handler) AcceptFriendRequest(c *gin.Context) {
	h.respondToRequest(c, true)
}

// DeclineFriendRequest godoc
// @Summary      Decline a friend request
// @Description  Declines a pending friend request. The row is kept as history; the requester may ask again later.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Friend Request ID"
// @Success      200  {object}  ResultResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /friends/requests/{id}/decline [post]
func (h *Handler) DeclineFriendRequest(c *gin.Context) {
	h.respondToRequest(c, false)
}

func (h *Handler) respondToRequest(c *gin.Context, accept bool) {
	viewerID, _ := c.Get("userID")

	requestID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	ok, message := h.friends.RespondToFriendRequest(uint(requestID), viewerID.(uint), accept)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, ResultResponse{OK: true, Message: message})
}
