package main

import (
	"context"
	"errors"
	"log"

	api "cosmic-watch-backend/cmd/api"
	alertdomain "cosmic-watch-backend/internal/alert/domain"
	alertRepo "cosmic-watch-backend/internal/alert/repository"
	alertScheduler "cosmic-watch-backend/internal/alert/scheduler"
	alertUsecase "cosmic-watch-backend/internal/alert/usecase"
	asteroiddomain "cosmic-watch-backend/internal/asteroid/domain"
	asteroidRepo "cosmic-watch-backend/internal/asteroid/repository"
	asteroidUsecase "cosmic-watch-backend/internal/asteroid/usecase"
	authdomain "cosmic-watch-backend/internal/auth/domain"
	authRepo "cosmic-watch-backend/internal/auth/repository"
	authUsecase "cosmic-watch-backend/internal/auth/usecase"
	"cosmic-watch-backend/pkg/config"
	"cosmic-watch-backend/pkg/database"
	"cosmic-watch-backend/pkg/fcm"
	"cosmic-watch-backend/pkg/mailer"
	"cosmic-watch-backend/pkg/nasa"
	"cosmic-watch-backend/pkg/openai"
	"cosmic-watch-backend/pkg/realtime"

	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Storage backend is chosen once at startup: a reachable database gives
	// the durable path, anything else falls back to in-memory stores.
	var (
		userRepository     authRepo.UserRepository
		fcmTokenRepository authRepo.FCMTokenRepository
		asteroidRepository asteroidRepo.AsteroidRepository
		alertRepository    alertRepo.AlertRepository
	)

	db, err := connectDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Printf("[DB] connection failed, falling back to in-memory storage: %v", err)
		userRepository = authRepo.NewMemoryUserRepository()
		fcmTokenRepository = authRepo.NewMemoryFCMTokenRepository()
		asteroidRepository = asteroidRepo.NewMemoryAsteroidRepository()
		alertRepository = alertRepo.NewMemoryAlertRepository()
	} else {
		userRepository = authRepo.NewUserRepository(db)
		fcmTokenRepository = authRepo.NewFCMTokenRepository(db)
		asteroidRepository = asteroidRepo.NewGormAsteroidRepository(db)
		alertRepository = alertRepo.NewGormAlertRepository(db)
		log.Println("[DB] connected, using Postgres storage")
	}

	// Initialize websocket hub
	hub := realtime.NewHub()

	// Initialize outbound services
	mailService, err := mailer.New(context.Background(), cfg.AWSRegion, cfg.SESFromEmail)
	if err != nil {
		log.Fatal("Failed to initialize mailer:", err)
	}

	var fcmClient *fcm.Client
	if cfg.FirebaseCredentials != "" {
		fcmClient, err = fcm.NewClient(cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("[FCM] initialization failed, push notifications disabled: %v", err)
		}
	}

	neoClient := nasa.NewClient(cfg.NasaAPIURL, cfg.NasaAPIKey)
	chatService := openai.NewService(cfg.OpenAIAPIKey, cfg.OpenAIAPIURL)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepository, cfg)
	asteroidUsecaseInstance := asteroidUsecase.NewAsteroidUsecase(asteroidRepository, neoClient)

	notifier := api.NewAlertNotifier(mailService, hub, fcmClient, fcmTokenRepository)
	alertUsecaseInstance := alertUsecase.NewAlertUsecase(
		alertRepository, asteroidRepository, userRepository, asteroidUsecaseInstance, notifier)

	// Start the periodic risk analysis
	riskScheduler := alertScheduler.NewRiskAnalysisScheduler(alertUsecaseInstance, cfg.AlertCheckInterval)
	riskScheduler.Start()
	defer riskScheduler.Stop()

	// Initialize HTTP handler
	handler := api.NewHandler(
		authUsecaseInstance, asteroidUsecaseInstance, alertUsecaseInstance,
		fcmTokenRepository, userRepository, chatService, hub, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// connectDatabase opens the Postgres connection and migrates the schema.
func connectDatabase(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}
	db, err := database.NewPostgresConnection(dsn)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&authdomain.User{}, &authdomain.FCMToken{},
		&asteroiddomain.Asteroid{}, &alertdomain.Alert{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
