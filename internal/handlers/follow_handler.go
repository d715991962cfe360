package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nkotova/yatube/internal/middleware"
	"github.com/nkotova/yatube/internal/pagination"
	"github.com/nkotova/yatube/internal/repositories"
)

// FollowHandler handles subscriptions and the personalized feed
type FollowHandler struct {
	followRepository repositories.FollowRepository
	userRepository   repositories.UserRepository
	postRepository   repositories.PostRepository
	pageSize         int
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(
	followRepo repositories.FollowRepository,
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	pageSize int,
) *FollowHandler {
	return &FollowHandler{
		followRepository: followRepo,
		userRepository:   userRepo,
		postRepository:   postRepo,
		pageSize:         pageSize,
	}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(e *echo.Echo, auth *middleware.SessionAuth) {
	e.GET("/follow", h.Feed, auth.RequireAuth)
	e.POST("/profile/:username/follow", h.Follow, auth.RequireAuth)
	e.POST("/profile/:username/unfollow", h.Unfollow, auth.RequireAuth)
}

// Feed lists posts by every author the caller follows, newest first,
// paginated like the general listing
func (h *FollowHandler) Feed(c echo.Context) error {
	user := middleware.CurrentUser(c)

	authorIDs, err := h.followRepository.GetFollowedAuthorIDs(user.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	total, err := h.postRepository.CountPostsByAuthors(authorIDs)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	page := pagination.Paginate(int(total), h.pageSize, pageNumber(c))
	posts, err := h.postRepository.ListPostsByAuthors(authorIDs, page.Offset, page.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "follow.html", echo.Map{
		"Title":       "Followed authors",
		"Posts":       posts,
		"Page":        page,
		"CurrentUser": user,
	})
}

// Follow subscribes the caller to the author with the given username. A
// self-follow is a guarded no-op; an existing relation stays as-is. Both
// cases still land on the feed.
func (h *FollowHandler) Follow(c echo.Context) error {
	user := middleware.CurrentUser(c)
	author, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return orNotFound(err, "User")
	}
	if author.ID != user.ID {
		if err := h.followRepository.CreateFollow(user.ID, author.ID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}
	return c.Redirect(http.StatusFound, "/follow")
}

// Unfollow removes the caller's subscription to the author, failing with 404
// when no such relation exists
func (h *FollowHandler) Unfollow(c echo.Context) error {
	user := middleware.CurrentUser(c)
	author, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return orNotFound(err, "User")
	}
	if err := h.followRepository.DeleteFollow(user.ID, author.ID); err != nil {
		return orNotFound(err, "Follow relation")
	}
	return c.Redirect(http.StatusFound, "/follow")
}
