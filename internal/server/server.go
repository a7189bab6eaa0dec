// Package server wires the Fiber application: middleware, routes, and the
// HTML handlers for the blog.
package server

import (
	"context"
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/earlbread/multi-user-blog/internal/auth"
	"github.com/earlbread/multi-user-blog/internal/cache"
	"github.com/earlbread/multi-user-blog/internal/config"
	"github.com/earlbread/multi-user-blog/internal/database"
	"github.com/earlbread/multi-user-blog/internal/middleware"
	"github.com/earlbread/multi-user-blog/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

//go:embed templates
var templatesFS embed.FS

const (
	entriesCacheKey = "entries:recent"
	entriesCacheTTL = 30 * time.Second

	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// Server holds all dependencies and provides handlers
type Server struct {
	config    *config.Config
	db        *gorm.DB
	redis     *redis.Client
	signer    *auth.Signer
	userRepo  repository.UserRepository
	entryRepo repository.EntryRepository
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	return &Server{
		config:    cfg,
		db:        db,
		redis:     redisClient,
		signer:    auth.NewSigner(cfg.SessionSecret),
		userRepo:  repository.NewUserRepository(db),
		entryRepo: repository.NewEntryRepository(db),
	}
}

// NewApp builds the Fiber application with the embedded template engine,
// middleware, and routes.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Multi User Blog",
		Views:   viewsEngine(),
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	return app
}

func viewsEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		// The templates directory is embedded at compile time; this cannot
		// fail at runtime.
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Session resolution before logging so requests are attributed to users
	app.Use(middleware.Session(s.signer, s.userRepo))

	// Structured logging middleware
	app.Use(middleware.StructuredLogger())

	// Prometheus metrics
	prom := fiberprometheus.New("multi-user-blog")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)
}

// SetupRoutes registers all application routes.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/blog")
	})

	blog := app.Group("/blog")

	blog.Get("/", s.ListEntries)
	blog.Get("/about", s.About)

	blog.Get("/newpost", s.NewPostForm)
	blog.Post("/newpost", s.CreateEntry)

	loginLimiter := middleware.RateLimit(s.redis, "auth", loginRateLimit, loginRateWindow)
	blog.Get("/signup", s.SignupForm)
	blog.Post("/signup", loginLimiter, s.Signup)
	blog.Get("/login", s.LoginForm)
	blog.Post("/login", loginLimiter, s.Login)
	blog.Get("/logout", s.Logout)

	// Registered last so the static /blog/* routes above take precedence.
	blog.Get("/:id<int>", s.ShowEntry)
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err == nil {
			return sqlDB.Close()
		}
	}
	return nil
}
