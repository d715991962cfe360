package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v4"

	"github.com/nkotova/yatube/internal/models"
	"github.com/nkotova/yatube/internal/repositories"
)

const (
	sessionUserKey = "userID"
	contextUserKey = "currentUser"

	// LoginPath is where unauthenticated callers are sent; the original
	// target is preserved in the next query parameter.
	LoginPath = "/auth/login"
)

// SessionAuth resolves the current user from the scs session.
type SessionAuth struct {
	Sessions *scs.SessionManager
	Users    repositories.UserRepository
}

// NewSessionAuth creates a SessionAuth over the given session manager
func NewSessionAuth(sessions *scs.SessionManager, users repositories.UserRepository) *SessionAuth {
	return &SessionAuth{Sessions: sessions, Users: users}
}

// LoadUser populates the request context with the logged-in user, if any.
// Applied globally so public pages can also show caller-specific state.
func (s *SessionAuth) LoadUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := s.Sessions.GetInt(c.Request().Context(), sessionUserKey)
		if id > 0 {
			if user, err := s.Users.GetUserByID(uint(id)); err == nil {
				c.Set(contextUserKey, user)
			}
		}
		return next(c)
	}
}

// RequireAuth redirects unauthenticated callers to the login page with the
// original path carried in the next parameter.
func (s *SessionAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if CurrentUser(c) == nil {
			return c.Redirect(http.StatusFound, LoginRedirectURL(c.Request().URL.RequestURI()))
		}
		return next(c)
	}
}

// Login marks the session as belonging to user, rotating the session token.
func (s *SessionAuth) Login(c echo.Context, user *models.User) error {
	ctx := c.Request().Context()
	if err := s.Sessions.RenewToken(ctx); err != nil {
		return err
	}
	s.Sessions.Put(ctx, sessionUserKey, int(user.ID))
	return nil
}

// Logout destroys the caller's session.
func (s *SessionAuth) Logout(c echo.Context) error {
	return s.Sessions.Destroy(c.Request().Context())
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(contextUserKey).(*models.User)
	return user
}

// LoginRedirectURL builds the login URL carrying target as the return path.
// Only relative targets are carried, so the parameter cannot send the caller
// off-site after login.
func LoginRedirectURL(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return LoginPath
	}
	return LoginPath + "?next=" + url.QueryEscape(target)
}

// NextPath extracts a safe return path from the request's next parameter,
// falling back to the site root.
func NextPath(c echo.Context) string {
	next := c.QueryParam("next")
	if next == "" {
		next = c.FormValue("next")
	}
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
