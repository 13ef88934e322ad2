package routes

import (
	"time"

	"aptiva/handlers"
	"aptiva/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/guest", hb.Auth.GuestHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.GET("/me", hb.Auth.MeHandler)
	}
}

// RegisterChatRoutes registers the conversational endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.POST("/send", hb.Chat.SendHandler)
	}
}

// RegisterTourRoutes registers tour management endpoints.
func RegisterTourRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tours")
	{
		api.Use(middleware.JWTAuthUserMiddleware())
		api.GET("/upcoming", hb.Tour.ListUpcomingHandler)
		api.DELETE("/:tourID", hb.Tour.CancelHandler)
	}
}

// RegisterListingRoutes registers listing search endpoints.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.GET("/search", hb.Listing.SearchHandler)
		api.GET("/id/:id", hb.Listing.GetByIDHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterTourRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterHealthRoute(r)
}
