package router

import (
	"log"

	"github.com/alexedwards/scs/v2"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/nkotova/yatube/internal/handlers"
	"github.com/nkotova/yatube/internal/middleware"
	"github.com/nkotova/yatube/internal/models"
	"github.com/nkotova/yatube/internal/repositories"
	"github.com/nkotova/yatube/internal/storage"
	"github.com/nkotova/yatube/pkg/config"
)

// SetupMiddleware configures global Echo middleware, including the session
// layer every request passes through
func SetupMiddleware(e *echo.Echo, sessions *scs.SessionManager) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.Logger())
	e.Use(echo.WrapMiddleware(sessions.LoadAndSave))
	log.Println("Global middleware configured.")
}

// SetupRoutes migrates the schema, builds repositories and handlers, and
// registers all application routes
func SetupRoutes(e *echo.Echo, db *gorm.DB, sessions *scs.SessionManager, cfg *config.Config) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	)
	if err != nil {
		return err
	}
	log.Println("Auto-migrations completed for all models.")

	images, err := storage.NewImageStore(cfg.MediaDir)
	if err != nil {
		return err
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	groupRepo := repositories.NewPostgresGroupRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)

	// Session-backed current-user resolution on every route
	auth := middleware.NewSessionAuth(sessions, userRepo)
	e.Use(auth.LoadUser)

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// Uploaded post images
	e.Static("/media", images.Root())

	// Auth pages
	authHandler := handlers.NewAuthHandler(userRepo, auth)
	authHandler.RegisterAuthRoutes(e)
	log.Println("Auth routes configured.")

	// Post routes
	postHandler := handlers.NewPostHandler(postRepo, groupRepo, userRepo, commentRepo, followRepo, images, cfg.PageSize)
	postHandler.RegisterPostRoutes(e, auth)
	log.Println("Post routes configured.")

	// Comment routes
	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(e, auth)
	log.Println("Comment routes configured.")

	// Follow + feed routes
	followHandler := handlers.NewFollowHandler(followRepo, userRepo, postRepo, cfg.PageSize)
	followHandler.RegisterFollowRoutes(e, auth)
	log.Println("Follow routes configured.")

	log.Println("All routes configured.")
	return nil
}
