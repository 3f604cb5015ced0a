package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devconnector/devconnector-api/internal/api/metrics"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

// PostHandler serves /api/posts. Every route requires a token.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        Idempotency-Key  header    string       false  "Retries with the same key return the first post"
// @Param        body             body      postRequest  true   "Post body"
// @Success      200              {object}  domain.Post
// @Failure      400              {object}  errorsResponse
// @Failure      409              {object}  msgResponse  "Idempotency-Key still in progress"
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req postRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		AuthorID:       userID,
		Text:           req.Text,
		IdempotencyKey: strings.TrimSpace(c.Request().Header.Get("Idempotency-Key")),
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, post)
}

// List handles GET /api/posts.
//
// @Summary      List posts, newest first
// @Tags         posts
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   domain.Post
// @Failure      500  {object}  msgResponse
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/posts/:id.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  msgResponse
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete handles DELETE /api/posts/:id.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  msgResponse
// @Failure      403  {object}  msgResponse
// @Failure      404  {object}  msgResponse
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgResponse{Msg: "Post removed"})
}

// Like handles PUT /api/posts/like/:id.
//
// @Summary      Like a post
// @Tags         posts
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {array}   domain.Like
// @Failure      400  {object}  msgResponse
// @Failure      404  {object}  msgResponse
// @Router       /api/posts/like/{id} [put]
func (h *PostHandler) Like(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	likes, err := h.service.Like(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	metrics.PostReactionsTotal.WithLabelValues("like").Inc()
	return c.JSON(http.StatusOK, likes)
}

// Unlike handles PUT /api/posts/unlike/:id.
//
// @Summary      Remove a like from a post
// @Tags         posts
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {array}   domain.Like
// @Failure      400  {object}  msgResponse
// @Failure      404  {object}  msgResponse
// @Router       /api/posts/unlike/{id} [put]
func (h *PostHandler) Unlike(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	likes, err := h.service.Unlike(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	metrics.PostReactionsTotal.WithLabelValues("unlike").Inc()
	return c.JSON(http.StatusOK, likes)
}

// AddComment handles POST /api/posts/comment/:id.
//
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      string          true  "Post ID"
// @Param        body  body      commentRequest  true  "Comment body"
// @Success      200   {array}   domain.Comment
// @Failure      400   {object}  errorsResponse
// @Failure      404   {object}  msgResponse
// @Router       /api/posts/comment/{id} [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comments, err := h.service.AddComment(c.Request().Context(), c.Param("id"), userID, req.Text)
	if err != nil {
		return err
	}

	metrics.PostReactionsTotal.WithLabelValues("comment").Inc()
	return c.JSON(http.StatusOK, comments)
}

// RemoveComment handles DELETE /api/posts/comment/:id/:comment_id.
//
// @Summary      Delete a comment
// @Tags         posts
// @Produce      json
// @Security     TokenAuth
// @Param        id          path      string  true  "Post ID"
// @Param        comment_id  path      string  true  "Comment ID"
// @Success      200         {array}   domain.Comment
// @Failure      403         {object}  msgResponse
// @Failure      404         {object}  msgResponse
// @Router       /api/posts/comment/{id}/{comment_id} [delete]
func (h *PostHandler) RemoveComment(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	comments, err := h.service.RemoveComment(c.Request().Context(), c.Param("id"), c.Param("comment_id"), userID)
	if err != nil {
		return err
	}

	metrics.PostReactionsTotal.WithLabelValues("uncomment").Inc()
	return c.JSON(http.StatusOK, comments)
}
