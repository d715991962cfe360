package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nkotova/yatube/internal/render"
	"github.com/nkotova/yatube/internal/router"
	"github.com/nkotova/yatube/pkg/config"
	"github.com/nkotova/yatube/validators"
)

// newTestApp wires the full application against a throwaway sqlite database,
// exactly as cmd/server does against PostgreSQL.
func newTestApp(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	e := echo.New()
	renderer, err := render.New("../../web/templates/*.html")
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = render.HTTPErrorHandler(e)
	e.Validator = validators.NewValidator()

	sessions := scs.New()
	e.Use(echo.WrapMiddleware(sessions.LoadAndSave))

	cfg := &config.Config{PageSize: 10, MediaDir: t.TempDir()}
	if err := router.SetupRoutes(e, db, sessions, cfg); err != nil {
		t.Fatalf("setup routes: %v", err)
	}
	return e, db
}

// do performs a request against the app and returns the recorded response.
func do(e *echo.Echo, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// signup registers a user through the signup form and returns the session
// cookies of the freshly authenticated user.
func signup(t *testing.T, e *echo.Echo, username string) []*http.Cookie {
	t.Helper()
	rec := do(e, http.MethodPost, "/auth/signup", url.Values{
		"username":   {username},
		"first_name": {username},
		"email":      {username + "@example.org"},
		"password":   {"correct horse battery"},
	})
	if rec.Code != http.StatusFound {
		t.Fatalf("signup %s: status %d, body %s", username, rec.Code, rec.Body.String())
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatalf("signup %s: no session cookie", username)
	}
	return cookies
}
