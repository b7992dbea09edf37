package api

import (
	"net/http"

	"cosmic-watch-backend/internal/auth/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *Handler) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.authHandler.Register)
			auth.POST("/login", h.authHandler.Login)
		}

		// NEO feed is public, matching the upstream data it proxies
		neo := api.Group("/neo")
		{
			neo.GET("", h.asteroidHandler.ListStored)
			neo.GET("/feed", h.asteroidHandler.GetFeed)
			neo.GET("/:id", h.asteroidHandler.GetAsteroid)
			neo.POST("/refresh", h.asteroidHandler.Refresh)
		}

		// Websocket upgrade carries the JWT as a query parameter because
		// browser websocket clients cannot set an Authorization header.
		api.GET("/ws", func(c *gin.Context) {
			user, err := h.authUsecase.ValidateToken(c.Query("token"))
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			h.hub.ServeWS(c.Writer, c.Request, user.ID)
		})

		// Protected routes
		protected := api.Group("")
		protected.Use(delivery.AuthMiddleware(h.authUsecase))
		{
			watchlist := protected.Group("/watchlist")
			{
				watchlist.POST("", h.watchlistHandler.Add)
				watchlist.GET("", h.watchlistHandler.Get)
				watchlist.DELETE("/:id", h.watchlistHandler.Remove)
			}

			alerts := protected.Group("/alerts")
			{
				alerts.GET("", h.alertHandler.GetAlerts)
				alerts.GET("/unread", h.alertHandler.GetUnreadAlerts)
				alerts.PUT("/:id/read", h.alertHandler.MarkRead)
				alerts.DELETE("/:id", h.alertHandler.Dismiss)
				alerts.POST("/check", h.alertHandler.TriggerCheck)
			}

			protected.POST("/chat", h.chatHandler.Chat)

			fcm := protected.Group("/fcm")
			{
				fcm.POST("/register", h.authHandler.RegisterFCMToken)
				fcm.DELETE("/:token", h.authHandler.UnregisterFCMToken)
			}
		}
	}
}
