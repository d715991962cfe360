package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nkotova/yatube/internal/middleware"
	"github.com/nkotova/yatube/internal/models"
	"github.com/nkotova/yatube/internal/repositories"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(e *echo.Echo, auth *middleware.SessionAuth) {
	e.POST("/posts/:id/comment", h.AddComment, auth.RequireAuth)
}

// AddComment attaches a comment to a post with the caller as author. An
// invalid submission creates nothing; either way the caller lands back on
// the post's detail page.
func (h *CommentHandler) AddComment(c echo.Context) error {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	post, err := h.postRepository.GetPostByID(uint(postID))
	if err != nil {
		return orNotFound(err, "Post")
	}

	detail := "/posts/" + strconv.FormatUint(uint64(post.ID), 10)

	var form models.CommentForm
	if err := c.Bind(&form); err != nil {
		return c.Redirect(http.StatusFound, detail)
	}
	form.Text = strings.TrimSpace(form.Text)
	if err := c.Validate(&form); err != nil {
		// Invalid comments are dropped without a user-visible error.
		return c.Redirect(http.StatusFound, detail)
	}

	comment := &models.Comment{
		Text:     form.Text,
		AuthorID: middleware.CurrentUser(c).ID,
		PostID:   post.ID,
	}
	if err := h.commentRepository.CreateComment(comment); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, detail)
}
