package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"typemood/internal/config"
	"typemood/internal/database"
	"typemood/internal/handlers"
	"typemood/internal/repository"
	"typemood/internal/security"
	"typemood/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	// Run migrations
	if err := db.RunMigrations(cfg.MigrationsPath); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations completed successfully")

	// Load templates
	templates, err := loadTemplates(cfg.TemplatesPath)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Println("Templates loaded successfully")

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)

	// Initialize services
	analysisService := service.NewAnalysisService(sessionRepo)
	statsService := service.NewStatsService(sessionRepo)
	challengeService := service.NewChallengeService(challengeRepo, sessionRepo)
	exportService := service.NewExportService(sessionRepo)

	// Seed default challenge texts
	if err := challengeService.SeedDefaultChallenges(); err != nil {
		log.Printf("Warning: Failed to seed default challenges: %v", err)
	}

	// Initialize handlers
	limiter := security.NewRateLimiter(cfg.AnalyzeRateLimit, time.Minute)
	middleware := handlers.NewMiddleware(cfg.VisitorTokenSecret, cfg.VisitorTokenTTL, limiter)
	pageHandler := handlers.NewPageHandler(templates)
	apiHandler := handlers.NewAPIHandler(analysisService, statsService, challengeService, exportService)

	// Setup routes
	mux := http.NewServeMux()

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticFilesPath))))

	// Pages
	mux.HandleFunc("GET /", middleware.WithVisitor(pageHandler.Home))
	mux.HandleFunc("GET /dashboard", middleware.WithVisitor(pageHandler.Dashboard))

	// API
	mux.HandleFunc("POST /api/analyze", middleware.WithVisitor(middleware.RateLimit(apiHandler.Analyze)))
	mux.HandleFunc("GET /api/sessions", middleware.WithVisitor(apiHandler.Sessions))
	mux.HandleFunc("GET /api/stats", middleware.WithVisitor(apiHandler.Stats))
	mux.HandleFunc("GET /api/export", middleware.WithVisitor(apiHandler.Export))
	mux.HandleFunc("GET /api/challenge", middleware.WithVisitor(apiHandler.Challenge))
	mux.HandleFunc("GET /health", apiHandler.Health)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start background session pruning
	if cfg.RetentionDays > 0 {
		go pruneOldSessions(analysisService, cfg.RetentionDays)
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
}

// loadTemplates loads all template files
func loadTemplates(templatesPath string) (*template.Template, error) {
	pattern := filepath.Join(templatesPath, "*.tmpl")

	tmpl, err := template.ParseGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return tmpl, nil
}

// pruneOldSessions periodically removes sessions past the retention window
func pruneOldSessions(analysisService *service.AnalysisService, retentionDays int) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		pruned, err := analysisService.PruneSessions(retentionDays)
		if err != nil {
			log.Printf("Error pruning old sessions: %v", err)
		} else if pruned > 0 {
			log.Printf("Pruned %d sessions older than %d days", pruned, retentionDays)
		}
	}
}
