package main

import (
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"scrumcmd/internal/config"
	"scrumcmd/internal/database"
	"scrumcmd/internal/handlers"
	"scrumcmd/internal/logging"
	"scrumcmd/internal/middleware"
	"scrumcmd/internal/services"
	"scrumcmd/pkg/auth"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	// Initialize structured logging (JSON in production, text in dev)
	logging.Init()

	log.Println("🚀 Starting ScrumCMD Server...")

	// Load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️  No .env file found or error loading it: %v", err)
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	// Load configuration
	cfg := config.Load()
	log.Printf("📋 Configuration loaded (Port: %s, DB: %s)", cfg.Port, cfg.DatabaseURL)

	// SQLite needs its parent directory to exist before first open
	if dir := filepath.Dir(cfg.DatabaseURL); dir != "." && !isMySQL(cfg.DatabaseURL) {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("❌ Failed to create data directory: %v", err)
		}
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Initialize(); err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Optional YAML seed for demo and first-run setups
	if cfg.SeedFile != "" {
		if err := db.Seed(cfg.SeedFile); err != nil {
			log.Fatalf("❌ Failed to seed database from %s: %v", cfg.SeedFile, err)
		}
		log.Printf("🌱 Database seeded from %s", cfg.SeedFile)
	}

	// Auth is optional in development. Without JWT_SECRET the API runs
	// unauthenticated and the middleware refuses to start in production.
	var authService *services.AuthService
	if cfg.JWTSecret != "" {
		tokenAuth, err := auth.NewTokenAuth(cfg.JWTSecret, cfg.SessionExpiry)
		if err != nil {
			log.Fatalf("❌ Failed to initialize token auth: %v", err)
		}
		authService = services.NewAuthService(tokenAuth, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash)
		log.Printf("🔒 Authentication enabled (user: %s, session expiry: %s)", cfg.AdminUsername, cfg.SessionExpiry)
	} else {
		log.Println("⚠️  JWT_SECRET not set, API authentication disabled")
	}

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ScrumCMD v1.0",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    1 * 1024 * 1024, // plenty for JSON payloads and YAML seeds
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())

	// Prometheus metrics middleware
	prometheus := fiberprometheus.New("scrumcmd")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)
	services.InitMetrics()
	log.Println("📊 Prometheus metrics endpoint enabled at /metrics")

	// CORS configuration with environment-based origins
	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		// Default to localhost for development
		allowedOrigins = "http://localhost:5173,http://localhost:3000"
		log.Println("⚠️  ALLOWED_ORIGINS not set, using development defaults")
	}

	// Fiber's CORS middleware does not allow AllowCredentials with wildcard origins.
	allowCredentials := allowedOrigins != "*"

	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: allowCredentials,
	}))
	log.Printf("🔒 [SECURITY] CORS allowed origins: %s", allowedOrigins)

	// Global API rate limiter
	app.Use("/api", middleware.RateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow))
	log.Printf("🛡️  [RATE-LIMIT] Global API rate limiter enabled (%d req / %s)", cfg.RateLimitMax, cfg.RateLimitWindow)

	// Routes
	handlers.NewRouter(db, authService).Register(app)

	// Handle graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("\n🛑 Shutting down server...")

		if err := app.Shutdown(); err != nil {
			log.Printf("⚠️ Error shutting down server: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func isMySQL(dsn string) bool {
	return strings.HasPrefix(dsn, "mysql://")
}
