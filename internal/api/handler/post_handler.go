package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/valo-rant/community-api/internal/api/metrics"
	"github.com/valo-rant/community-api/internal/core/domain"
	"github.com/valo-rant/community-api/internal/core/ports"
)

// PostHandler handles HTTP requests for the rant board.
type PostHandler struct {
	store ports.PostStore
}

func NewPostHandler(store ports.PostStore) *PostHandler {
	return &PostHandler{store: store}
}

// List handles GET /api/posts.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {array}  domain.Post
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.List(c.Request().Context()))
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "New post"
// @Success      201   {object}  domain.Post
// @Failure      400   {object}  map[string]string
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.E(domain.ErrValidation, "Post content is required")
	}

	post, err := h.store.Create(c.Request().Context(), ports.CreatePostInput{
		Author:  req.Author,
		Content: req.Content,
		Image:   req.Image,
	})
	if err != nil {
		return err
	}

	metrics.PostsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, post)
}

// Delete handles DELETE /api/posts/:id. Deleting a post removes its replies
// with it.
//
// @Summary      Delete a post (admin only)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      int           true  "Post id"
// @Param        body  body      claimRequest  true  "Privilege assertion"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	var req claimRequest
	_ = c.Bind(&req) // missing body reads as a non-admin claim

	if err := h.store.Delete(c.Request().Context(), pathID(c, "id"), domain.Claim{IsAdmin: req.IsAdmin}); err != nil {
		return err
	}

	metrics.PostsTotal.WithLabelValues("deleted").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Post deleted"})
}

// Reply handles POST /api/posts/:id/reply.
//
// @Summary      Add a reply to a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Post id"
// @Param        body  body      createReplyRequest  true  "New reply"
// @Success      201   {object}  domain.Reply
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/posts/{id}/reply [post]
func (h *PostHandler) Reply(c echo.Context) error {
	var req createReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.E(domain.ErrValidation, "Reply content is required")
	}

	reply, err := h.store.AddReply(c.Request().Context(), pathID(c, "id"), ports.CreateReplyInput{
		Author:  req.Author,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.RepliesTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, reply)
}

// DeleteReply handles DELETE /api/posts/:postId/reply/:replyId.
//
// @Summary      Delete a reply (admin only)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        postId   path      int           true  "Post id"
// @Param        replyId  path      int           true  "Reply id"
// @Param        body     body      claimRequest  true  "Privilege assertion"
// @Success      200      {object}  messageResponse
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Router       /api/posts/{postId}/reply/{replyId} [delete]
func (h *PostHandler) DeleteReply(c echo.Context) error {
	var req claimRequest
	_ = c.Bind(&req)

	err := h.store.DeleteReply(c.Request().Context(), pathID(c, "postId"), pathID(c, "replyId"), domain.Claim{IsAdmin: req.IsAdmin})
	if err != nil {
		return err
	}

	metrics.RepliesTotal.WithLabelValues("deleted").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Reply deleted"})
}

// pathID parses a numeric path parameter. A malformed id yields 0, which
// matches no record; the store's privilege-first precedence still applies.
func pathID(c echo.Context, name string) int64 {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
