package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nkotova/yatube/internal/middleware"
	"github.com/nkotova/yatube/internal/models"
	"github.com/nkotova/yatube/internal/pagination"
	"github.com/nkotova/yatube/internal/repositories"
	"github.com/nkotova/yatube/internal/storage"
	"github.com/nkotova/yatube/validators"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository    repositories.PostRepository
	groupRepository   repositories.GroupRepository
	userRepository    repositories.UserRepository
	commentRepository repositories.CommentRepository
	followRepository  repositories.FollowRepository
	images            *storage.ImageStore
	pageSize          int
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	groupRepo repositories.GroupRepository,
	userRepo repositories.UserRepository,
	commentRepo repositories.CommentRepository,
	followRepo repositories.FollowRepository,
	images *storage.ImageStore,
	pageSize int,
) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		groupRepository:   groupRepo,
		userRepository:    userRepo,
		commentRepository: commentRepo,
		followRepository:  followRepo,
		images:            images,
		pageSize:          pageSize,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(e *echo.Echo, auth *middleware.SessionAuth) {
	e.GET("/", h.Index)
	e.GET("/group/:slug", h.GroupPosts)
	e.GET("/profile/:username", h.Profile)
	e.GET("/posts/:id", h.PostDetail)
	e.GET("/create", h.CreatePostPage, auth.RequireAuth)
	e.POST("/create", h.CreatePost, auth.RequireAuth)
	e.GET("/posts/:id/edit", h.EditPostPage, auth.RequireAuth)
	e.POST("/posts/:id/edit", h.EditPost, auth.RequireAuth)
}

// Index lists all posts, newest first
func (h *PostHandler) Index(c echo.Context) error {
	total, err := h.postRepository.CountPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	page := pagination.Paginate(int(total), h.pageSize, pageNumber(c))
	posts, err := h.postRepository.ListPosts(page.Offset, page.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "index.html", echo.Map{
		"Title":       "Latest updates",
		"Posts":       posts,
		"Page":        page,
		"CurrentUser": middleware.CurrentUser(c),
	})
}

// GroupPosts lists the posts tagged to the group with the given slug
func (h *PostHandler) GroupPosts(c echo.Context) error {
	group, err := h.groupRepository.GetGroupBySlug(c.Param("slug"))
	if err != nil {
		return orNotFound(err, "Group")
	}
	total, err := h.postRepository.CountPostsByGroup(group.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	page := pagination.Paginate(int(total), h.pageSize, pageNumber(c))
	posts, err := h.postRepository.ListPostsByGroup(group.ID, page.Offset, page.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "group_list.html", echo.Map{
		"Title":       "Posts of " + group.Title,
		"Group":       group,
		"Posts":       posts,
		"Page":        page,
		"CurrentUser": middleware.CurrentUser(c),
	})
}

// Profile lists one author's posts. When the caller is logged in, the context
// also carries whether the caller follows this author.
func (h *PostHandler) Profile(c echo.Context) error {
	author, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if err != nil {
		return orNotFound(err, "User")
	}
	total, err := h.postRepository.CountPostsByAuthor(author.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	page := pagination.Paginate(int(total), h.pageSize, pageNumber(c))
	posts, err := h.postRepository.ListPostsByAuthor(author.ID, page.Offset, page.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	following := false
	if user := middleware.CurrentUser(c); user != nil {
		following, err = h.followRepository.IsFollowing(user.ID, author.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Render(http.StatusOK, "profile.html", echo.Map{
		"Title":       "Posts by " + author.FullName(),
		"Author":      author,
		"Posts":       posts,
		"Page":        page,
		"Following":   following,
		"CurrentUser": middleware.CurrentUser(c),
	})
}

// PostDetail shows a single post with its comments and the comment form
func (h *PostHandler) PostDetail(c echo.Context) error {
	post, err := h.loadPost(c)
	if err != nil {
		return err
	}
	comments, err := h.commentRepository.GetCommentsByPostID(post.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Render(http.StatusOK, "post_detail.html", echo.Map{
		"Title":       "Post by " + post.Author.FullName(),
		"Post":        post,
		"Comments":    comments,
		"CurrentUser": middleware.CurrentUser(c),
	})
}

// CreatePostPage renders the empty post form
func (h *PostHandler) CreatePostPage(c echo.Context) error {
	return h.renderPostForm(c, echo.Map{
		"Title":      "New post",
		"CardHeader": "New post",
		"SubmitBtn":  "Add",
	})
}

// CreatePost validates the submitted form and persists a new post with the
// caller as author. Invalid submissions re-render the form with field errors
// and persist nothing.
func (h *PostHandler) CreatePost(c echo.Context) error {
	user := middleware.CurrentUser(c)

	form, groupID, image, errs := h.bindPostForm(c)
	if len(errs) > 0 {
		return h.renderPostForm(c, echo.Map{
			"Title":      "New post",
			"CardHeader": "New post",
			"SubmitBtn":  "Add",
			"Form":       form,
			"Errors":     errs,
		})
	}

	post := &models.Post{
		Text:     form.Text,
		AuthorID: user.ID,
		GroupID:  groupID,
		Image:    image,
	}
	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, "/profile/"+user.Username)
}

// EditPostPage renders the form prefilled with the post's current values.
// Only the author may edit; anyone else is sent back to the detail page.
func (h *PostHandler) EditPostPage(c echo.Context) error {
	post, err := h.loadPost(c)
	if err != nil {
		return err
	}
	if !isAuthor(c, post) {
		return redirectToDetail(c, post)
	}

	form := models.PostForm{Text: post.Text}
	if post.GroupID != nil {
		form.Group = strconv.FormatUint(uint64(*post.GroupID), 10)
	}
	return h.renderPostForm(c, echo.Map{
		"Title":      "Edit post",
		"CardHeader": "Edit post",
		"SubmitBtn":  "Save",
		"IsEdit":     true,
		"PostID":     post.ID,
		"Form":       form,
	})
}

// EditPost applies an author's edit to text, group and image. Author and
// creation time are immutable.
func (h *PostHandler) EditPost(c echo.Context) error {
	post, err := h.loadPost(c)
	if err != nil {
		return err
	}
	if !isAuthor(c, post) {
		return redirectToDetail(c, post)
	}

	form, groupID, image, errs := h.bindPostForm(c)
	if len(errs) > 0 {
		return h.renderPostForm(c, echo.Map{
			"Title":      "Edit post",
			"CardHeader": "Edit post",
			"SubmitBtn":  "Save",
			"IsEdit":     true,
			"PostID":     post.ID,
			"Form":       form,
			"Errors":     errs,
		})
	}

	post.Text = form.Text
	post.GroupID = groupID
	if image != "" {
		post.Image = image
	}
	if err := h.postRepository.UpdatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return redirectToDetail(c, post)
}

// loadPost fetches the post addressed by the :id param or fails with 404
func (h *PostHandler) loadPost(c echo.Context) (*models.Post, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	post, err := h.postRepository.GetPostByID(uint(id))
	if err != nil {
		return nil, orNotFound(err, "Post")
	}
	return post, nil
}

// isAuthor reports whether the caller owns the post. A non-author edit
// attempt is not an error page; the caller simply lands on the detail view
// with the post untouched.
func isAuthor(c echo.Context, post *models.Post) bool {
	user := middleware.CurrentUser(c)
	return user != nil && user.ID == post.AuthorID
}

func redirectToDetail(c echo.Context, post *models.Post) error {
	return c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(uint64(post.ID), 10))
}

// bindPostForm binds and validates the post form, resolving the optional
// group reference and storing the optional image upload. All problems are
// collected into a per-field error map for inline display.
func (h *PostHandler) bindPostForm(c echo.Context) (models.PostForm, *uint, string, map[string]string) {
	var form models.PostForm
	errs := make(map[string]string)

	if err := c.Bind(&form); err != nil {
		errs["Form"] = "Invalid submission."
		return form, nil, "", errs
	}
	// Whitespace-only text is as empty as no text at all.
	form.Text = strings.TrimSpace(form.Text)
	if err := c.Validate(&form); err != nil {
		for field, msg := range validators.FieldErrors(err) {
			errs[field] = msg
		}
	}

	var groupID *uint
	if form.Group != "" {
		id, err := strconv.ParseUint(form.Group, 10, 32)
		if err != nil {
			errs["Group"] = "Select a valid group."
		} else if _, err := h.groupRepository.GetGroupByID(uint(id)); err != nil {
			errs["Group"] = "Select a valid group."
		} else {
			gid := uint(id)
			groupID = &gid
		}
	}

	image := ""
	if fh, err := c.FormFile("image"); err == nil {
		path, err := h.images.Save(fh)
		if errors.Is(err, storage.ErrInvalidImage) {
			errs["Image"] = "Upload a valid image."
		} else if err != nil {
			errs["Image"] = "Could not store the image."
		} else {
			image = path
		}
	}

	if len(errs) == 0 {
		return form, groupID, image, nil
	}
	return form, groupID, image, errs
}

// renderPostForm renders the shared create/edit template, filling in the
// group choices for the select box.
func (h *PostHandler) renderPostForm(c echo.Context, data echo.Map) error {
	groups, err := h.groupRepository.GetGroups()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	data["Groups"] = groups
	data["CurrentUser"] = middleware.CurrentUser(c)
	return c.Render(http.StatusOK, "create_post.html", data)
}
