// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"socialhub-app/config"
	"socialhub-app/controllers"
	"socialhub-app/middleware"
	"socialhub-app/services"
)

// Services bundles what the controllers act on.
type Services struct {
	Sessions     *services.SessionManager
	Catalog      *services.CatalogService
	Auth         *services.AuthService
	Cart         *services.CartService
	Reservations *services.ReservationService
	Favorites    *services.FavoriteService
	Support      *services.SupportService
	Location     *services.LocationService
	RateLimiter  *middleware.RateLimiter
}

func SetupRoutes(r *gin.Engine, cfg *config.Config, svc Services) {
	// Controllers
	stateController := controllers.NewStateController(cfg.AllowedOrigins)
	eventController := controllers.NewEventController(svc.Catalog, svc.Location)
	socialHubController := controllers.NewSocialHubController(svc.Catalog, svc.Favorites, svc.Location)
	filterController := controllers.NewFilterController()
	authController := controllers.NewAuthController(svc.Auth)
	cartController := controllers.NewCartController(svc.Cart, svc.Reservations)
	reservationController := controllers.NewReservationController(svc.Reservations)
	supportController := controllers.NewSupportController(svc.Support)
	notificationController := controllers.NewNotificationController()
	localeController := controllers.NewLocaleController(svc.Location)
	healthController := controllers.NewHealthController(svc.Sessions, cfg.StorageDriver)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")
	v1.GET("/health", healthController.Health)

	// Everything else runs inside a browser session
	app := v1.Group("/")
	app.Use(
		middleware.RateLimit(svc.RateLimiter),
		middleware.Session(svc.Sessions, middleware.SessionOptions{
			Secret:          cfg.SessionSecret,
			TTL:             cfg.SessionTTL,
			DefaultLanguage: cfg.DefaultLanguage,
			Secure:          cfg.CookieSecure,
		}),
		middleware.ValidateJSON(),
	)
	requireLogin := middleware.RequireLogin()

	app.GET("/state", stateController.GetState)
	app.GET("/ws", stateController.Stream)

	// Event routes
	events := app.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		events.GET("/active", eventController.GetActiveEvents)
		events.GET("/recommended", eventController.GetRecommendedEvents)
		events.GET("/:id", eventController.GetEvent)
	}

	// Social hub routes
	hubs := app.Group("/social-hubs")
	{
		hubs.GET("", socialHubController.GetSocialHubs)
		hubs.GET("/:id", socialHubController.GetSocialHub)
		hubs.GET("/:id/events", socialHubController.GetSocialHubEvents)
		hubs.GET("/:id/favorite", requireLogin, socialHubController.CheckFavorite)
		hubs.POST("/:id/favorite", requireLogin, socialHubController.ToggleFavorite)
	}

	favorites := app.Group("/favorites", requireLogin)
	{
		favorites.GET("", socialHubController.GetFavorites)
		favorites.GET("/count", socialHubController.CountFavorites)
		favorites.DELETE("", socialHubController.ClearFavorites)
	}

	app.GET("/categories", socialHubController.GetCategories)

	// Filter routes
	filters := app.Group("/filters")
	{
		filters.GET("", filterController.GetFilters)
		filters.PUT("", filterController.UpdateFilters)
		filters.DELETE("", filterController.ClearFilters)
		filters.POST("/categories/:id/toggle", filterController.ToggleCategory)
		filters.POST("/social-hubs/:id/toggle", filterController.ToggleSocialHub)
	}

	// Auth routes
	auth := app.Group("/auth")
	{
		auth.POST("/send-code", authController.SendCode)
		auth.POST("/verify-code", authController.VerifyCode)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", requireLogin, authController.Me)
	}

	// Cart routes
	cart := app.Group("/cart")
	{
		cart.GET("", cartController.GetCart)
		cart.POST("", cartController.AddToCart)
		cart.DELETE("", cartController.ClearCart)
		cart.DELETE("/:eventId", cartController.RemoveFromCart)
		cart.POST("/:eventId/checkout", requireLogin, cartController.Checkout)
	}

	// Reservation routes
	reservations := app.Group("/reservations")
	{
		reservations.GET("", requireLogin, reservationController.GetReservations)
		reservations.POST("", reservationController.Reserve)
		reservations.POST("/:id/confirm", requireLogin, reservationController.ConfirmReservation)
		reservations.POST("/:id/cancel", requireLogin, reservationController.CancelReservation)
		reservations.GET("/:id/qr", reservationController.GetTicketQR)
	}
	app.POST("/tickets/verify", reservationController.VerifyTicket)

	// Support routes
	support := app.Group("/support", requireLogin)
	{
		support.GET("/tickets", supportController.GetTickets)
		support.GET("/tickets/:id", supportController.GetTicket)
		support.POST("/tickets", supportController.CreateTicket)
		support.POST("/tickets/:id/comments", supportController.AddComment)
	}

	// Notification routes
	notifications := app.Group("/notifications")
	{
		notifications.GET("", notificationController.GetNotifications)
		notifications.DELETE("/:id", notificationController.DismissNotification)
	}

	// Locale routes
	app.PUT("/locale", localeController.SetLanguage)
	app.PUT("/location", localeController.UpdateLocation)
	app.DELETE("/location", localeController.ClearLocation)
	app.GET("/calendar/convert", localeController.ConvertDate)
}
