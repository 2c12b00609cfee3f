package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// SetActiveWallInput selects whose wall the session should display.
type SetActiveWallInput struct {
	OwnerID uint `json:"owner_id" binding:"required" example:"2"`
}

// PostGifInput defines the structure for posting a gif.
type PostGifInput struct {
	URL   string   `json:"url" binding:"required" example:"https://giphy.com/gifs/funny-dog-abc123XYZ"`
	Title string   `json:"title" example:"much funny"`
	Tags  []string `json:"tags" example:"dog,funny"`
}

// ReactInput names the reaction being added.
type ReactInput struct {
	Label string `json:"label" binding:"required" example:"wow"`
}

// WallResponse is the active wall as the session sees it.
type WallResponse struct {
	OwnerID   uint           `json:"owner_id" example:"1"`
	Editable  bool           `json:"editable"`
	Gifs      []GifResponse  `json:"gifs"`
	Reactions map[string]int `json:"reactions"`
}

// ReactionResponse reports a reaction's new count.
type ReactionResponse struct {
	Label   string `json:"label" example:"wow"`
	Count   int    `json:"count" example:"3"`
	Message string `json:"message"`
}

// endregion

// GetWall godoc
// @Summary      Get the active wall
// @Description  Returns the gifs and reaction counters of the wall the session is currently viewing. The gif list is reloaded whenever the wall owner changed since the last view.
// @Tags         wall
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  WallResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /wall [get]
func (h *Handler) GetWall(c *gin.Context) {
	sess := h.session(c)

	gifs := h.walls.Gifs(sess)
	responses := make([]GifResponse, 0, len(gifs))
	for _, gif := range gifs {
		responses = append(responses, buildGifResponse(gif))
	}

	c.JSON(http.StatusOK, WallResponse{
		OwnerID:   sess.ActiveWallUserID,
		Editable:  sess.ViewingOwnWall(),
		Gifs:      responses,
		Reactions: h.walls.Reactions(sess),
	})
}

// SetActiveWall godoc
// @Summary      Switch the active wall
// @Description  Points the session at another user's wall. Only the viewer's own wall and current friends' walls are accessible; anything else silently falls back to the viewer's own wall.
// @Tags         wall
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body SetActiveWallInput true "Wall owner"
// @Success      200  {object}  map[string]uint "{"owner_id": 2}"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /wall/active [post]
func (h *Handler) SetActiveWall(c *gin.Context) {
	var input SetActiveWallInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := h.session(c)
	h.walls.SetActiveWall(sess, input.OwnerID)

	c.JSON(http.StatusOK, gin.H{"owner_id": sess.ActiveWallUserID})
}

// PostGif godoc
// @Summary      Post a gif
// @Description  Adds a Giphy link to the viewer's own wall. Posting while viewing a friend's wall is rejected.
// @Tags         wall
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PostGifInput true "Gif info"
// @Success      201  {object}  ResultResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /wall/gifs [post]
func (h *Handler) PostGif(c *gin.Context) {
	var input PostGifInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := h.session(c)
	ok, message := h.walls.PostGif(sess, input.URL, input.Title, input.Tags)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusCreated, ResultResponse{OK: true, Message: message})
}

// DeleteGif godoc
// @Summary      Delete a gif
// @Description  Removes one of the viewer's own gifs from their wall.
// @Tags         wall
// @Produce      json
// @Security     BearerAuth
// @Param        uuid path      string  true  "Gif UUID"
// @Success      200  {object}  ResultResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /wall/gifs/{uuid} [delete]
func (h *Handler) DeleteGif(c *gin.Context) {
	sess := h.session(c)
	ok, message := h.walls.DeleteGif(sess, c.Param("uuid"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, ResultResponse{OK: true, Message: message})
}

// React godoc
// @Summary      React to the active wall
// @Description  Bumps an ephemeral reaction counter on the wall being viewed. Counters are per wall and label, unattributed, and reset on restart.
// @Tags         wall
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body ReactInput true "Reaction label"
// @Success      200  {object}  ReactionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /wall/reactions [post]
func (h *Handler) React(c *gin.Context) {
	var input ReactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := h.session(c)
	count, ok, message := h.walls.React(sess, input.Label)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, ReactionResponse{Label: input.Label, Count: count, Message: message})
}

// GetComments godoc
// @Summary      List a gif's comments
// @Description  Returns a gif's comments, oldest first. Most are machine written.
// @Tags         wall
// @Produce      json
// @Security     BearerAuth
// @Param        uuid path      string  true  "Gif UUID"
// @Success      200  {array}   models.Comment
// @Failure      401  {object}  ErrorResponse
// @Router       /wall/gifs/{uuid}/comments [get]
func (h *Handler) GetComments(c *gin.Context) {
	c.JSON(http.StatusOK, h.walls.Comments(c.Param("uuid")))
}
