package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/nkotova/yatube/internal/middleware"
	"github.com/nkotova/yatube/internal/models"
	"github.com/nkotova/yatube/internal/repositories"
	"github.com/nkotova/yatube/validators"
)

// AuthHandler handles signup, login and logout pages
type AuthHandler struct {
	userRepository repositories.UserRepository
	auth           *middleware.SessionAuth
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userRepo repositories.UserRepository, auth *middleware.SessionAuth) *AuthHandler {
	return &AuthHandler{
		userRepository: userRepo,
		auth:           auth,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(e *echo.Echo) {
	e.GET("/auth/signup", h.SignupPage)
	e.POST("/auth/signup", h.Signup)
	e.GET("/auth/login", h.LoginPage)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/logout", h.Logout)
}

// SignupPage renders the empty signup form
func (h *AuthHandler) SignupPage(c echo.Context) error {
	return c.Render(http.StatusOK, "signup.html", echo.Map{
		"Title":       "Sign up",
		"CurrentUser": middleware.CurrentUser(c),
	})
}

// Signup registers a new user and logs them in
func (h *AuthHandler) Signup(c echo.Context) error {
	var form models.SignupForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&form); err != nil {
		return c.Render(http.StatusOK, "signup.html", echo.Map{
			"Title":  "Sign up",
			"Form":   form,
			"Errors": validators.FieldErrors(err),
		})
	}

	if _, err := h.userRepository.GetUserByUsername(form.Username); err == nil {
		return c.Render(http.StatusOK, "signup.html", echo.Map{
			"Title":  "Sign up",
			"Form":   form,
			"Errors": map[string]string{"Username": "This username is taken."},
		})
	}
	if _, err := h.userRepository.GetUserByEmail(form.Email); err == nil {
		return c.Render(http.StatusOK, "signup.html", echo.Map{
			"Title":  "Sign up",
			"Form":   form,
			"Errors": map[string]string{"Email": "This email is already registered."},
		})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}
	user := &models.User{
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  string(hash),
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if err := h.auth.Login(c, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, "/")
}

// LoginPage renders the login form, keeping the return path if one was given
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{
		"Title":       "Log in",
		"Next":        c.QueryParam("next"),
		"CurrentUser": middleware.CurrentUser(c),
	})
}

// Login verifies credentials and redirects to the caller's original target
func (h *AuthHandler) Login(c echo.Context) error {
	var form models.LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	fail := func() error {
		return c.Render(http.StatusOK, "login.html", echo.Map{
			"Title":  "Log in",
			"Form":   form,
			"Next":   c.FormValue("next"),
			"Errors": map[string]string{"Form": "Wrong username or password."},
		})
	}

	if err := c.Validate(&form); err != nil {
		return fail()
	}
	user, err := h.userRepository.GetUserByUsername(form.Username)
	if err != nil {
		return fail()
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)) != nil {
		return fail()
	}

	if err := h.auth.Login(c, user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, middleware.NextPath(c))
}

// Logout destroys the session and returns to the index
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusFound, "/")
}
