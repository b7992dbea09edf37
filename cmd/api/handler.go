package api

import (
	alertDelivery "cosmic-watch-backend/internal/alert/delivery"
	alertUsecasePkg "cosmic-watch-backend/internal/alert/usecase"
	asteroidDelivery "cosmic-watch-backend/internal/asteroid/delivery"
	asteroidUsecasePkg "cosmic-watch-backend/internal/asteroid/usecase"
	authDelivery "cosmic-watch-backend/internal/auth/delivery"
	authRepo "cosmic-watch-backend/internal/auth/repository"
	authUsecasePkg "cosmic-watch-backend/internal/auth/usecase"
	chatDelivery "cosmic-watch-backend/internal/chat/delivery"
	watchlistDelivery "cosmic-watch-backend/internal/watchlist/delivery"
	watchlistUsecasePkg "cosmic-watch-backend/internal/watchlist/usecase"
	"cosmic-watch-backend/pkg/config"
	"cosmic-watch-backend/pkg/realtime"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase      authUsecasePkg.AuthUsecase
	hub              *realtime.Hub
	config           *config.Config
	authHandler      *authDelivery.AuthHandler
	asteroidHandler  *asteroidDelivery.AsteroidHandler
	alertHandler     *alertDelivery.AlertHandler
	watchlistHandler *watchlistDelivery.WatchlistHandler
	chatHandler      *chatDelivery.ChatHandler
}

func NewHandler(
	authUc authUsecasePkg.AuthUsecase,
	asteroidUc asteroidUsecasePkg.AsteroidUsecase,
	alertUc alertUsecasePkg.AlertUsecase,
	fcmRepo authRepo.FCMTokenRepository,
	userRepo authRepo.UserRepository,
	chatService chatDelivery.ChatService,
	hub *realtime.Hub,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:      authUc,
		hub:              hub,
		config:           cfg,
		authHandler:      authDelivery.NewAuthHandler(authUc, fcmRepo),
		asteroidHandler:  asteroidDelivery.NewAsteroidHandler(asteroidUc),
		alertHandler:     alertDelivery.NewAlertHandler(alertUc),
		watchlistHandler: watchlistDelivery.NewWatchlistHandler(watchlistUsecasePkg.NewWatchlistUsecase(userRepo)),
		chatHandler:      chatDelivery.NewChatHandler(chatService),
	}
}

func (h *Handler) Start(addr string) error {
	r := gin.Default()
	gin.SetMode(gin.ReleaseMode)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
