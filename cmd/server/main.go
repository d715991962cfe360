package main

import (
	"log"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v4"

	"github.com/nkotova/yatube/internal/render"
	"github.com/nkotova/yatube/internal/router"
	"github.com/nkotova/yatube/pkg/config"
	"github.com/nkotova/yatube/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connection is closed when main exits

	// Session manager (cookie-backed, in-memory store)
	sessions := scs.New()
	sessions.Lifetime = 14 * 24 * time.Hour
	sessions.Cookie.HttpOnly = true

	// Create Echo instance
	e := echo.New()

	// Template renderer and site-wide 404 page
	renderer, err := render.New(cfg.TemplateDir + "/*.html")
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = render.HTTPErrorHandler(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e, sessions)

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Postgres, sessions, cfg); err != nil {
		log.Fatalf("Failed to set up routes: %v", err)
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
