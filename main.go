// File: /main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"socialhub-app/apiclient"
	"socialhub-app/config"
	"socialhub-app/database"
	"socialhub-app/jobs"
	"socialhub-app/middleware"
	"socialhub-app/repositories"
	"socialhub-app/routes"
	"socialhub-app/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	gin.SetMode(cfg.GinMode)

	backend, closeBackend, err := openStorage(cfg)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}
	defer closeBackend()

	// Services
	email := services.NewEmailService(cfg)
	if !email.Enabled() {
		log.Println("SMTP is not configured; support mail fallback and confirmation mails are off")
	}
	catalog := services.NewCatalogService(cfg.FallbackEnabled)
	reservations := services.NewReservationService(services.NewTicketSigner(cfg.SessionSecret), email)
	auth := services.NewAuthService(reservations, cfg.SMSResendInterval)
	favorites := services.NewFavoriteService()
	startup := services.NewStartupService(auth, catalog, 2*cfg.APITimeout)

	sessions := services.NewSessionManager(cfg, backend, apiclient.NewHTTPClient(cfg.APITimeout), startup)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)

	sessions.OnClose(favorites.Forget)
	sessions.OnSweep(func(maxIdle time.Duration) {
		rateLimiter.CleanupLimiters(maxIdle)
		auth.CleanupLimiters(maxIdle)
	})

	// Background jobs
	cleanupInterval := cfg.SessionTTL / 4
	if cleanupInterval < time.Minute {
		cleanupInterval = time.Minute
	}
	cleanupJob := jobs.NewSessionCleanupJob(sessions, cleanupInterval, cfg.SessionTTL)
	cleanupJob.Start()

	// Create router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.SecurityHeaders())

	routes.SetupRoutes(router, cfg, routes.Services{
		Sessions:     sessions,
		Catalog:      catalog,
		Auth:         auth,
		Cart:         services.NewCartService(catalog),
		Reservations: reservations,
		Favorites:    favorites,
		Support:      services.NewSupportService(email),
		Location:     services.NewLocationService(cfg.DefaultLocation()),
		RateLimiter:  rateLimiter,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept-Language"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting SocialHub server on port %s (storage: %s)", cfg.Port, cfg.StorageDriver)
		log.Printf("Health check available at: http://localhost:%s/api/v1/health", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	cleanupJob.Stop()
	sessions.Close()
	log.Println("Server exited")
}

// openStorage returns the local-storage backend selected by STORAGE_DRIVER and
// a func releasing its connections.
func openStorage(cfg *config.Config) (repositories.StorageBackend, func(), error) {
	switch cfg.StorageDriver {
	case "mysql":
		db, err := database.Initialize(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, nil, err
		}
		return repositories.NewGormBackend(db), func() {
			if err := database.Close(db); err != nil {
				log.Printf("Failed to close database: %v", err)
			}
		}, nil

	case "redis":
		client := repositories.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		backend := repositories.NewRedisBackend(client, cfg.StorageRetention)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := backend.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return backend, func() {
			if err := client.Close(); err != nil {
				log.Printf("Failed to close redis client: %v", err)
			}
		}, nil

	default:
		return repositories.NewMemoryBackend(), func() {}, nil
	}
}
