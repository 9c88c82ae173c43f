package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/nordlicht/nordlicht/internal/config"
	"github.com/nordlicht/nordlicht/internal/db"
	"github.com/nordlicht/nordlicht/internal/repository"
	"github.com/nordlicht/nordlicht/internal/service"
)

type App struct {
	Cfg                 *config.Config
	DB                  *sqlx.DB
	UserRepository      repository.UserRepository
	AuthService         *service.AuthService
	GoalService         *service.GoalService
	AIService           *service.AIService
	MailService         *service.MailService
	NotificationService *service.NotificationService
}

func New(cfg *config.Config) (*App, error) {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)

	// Services
	aiService := service.NewAIService(cfg.ClaudeAPIKey, cfg.ClaudeHaikuModel, cfg.ClaudeSonnetModel)
	mailService := service.NewMailService(cfg.ResendAPIKey, cfg.ResendFromEmail, cfg.ResendFromName, cfg.IsDevelopment())
	goalService := service.NewGoalService(goalRepository)
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry, cfg.IsProduction())
	notificationService := service.NewNotificationService(goalRepository, userRepository, aiService, mailService)

	return &App{
		Cfg:                 cfg,
		DB:                  database,
		UserRepository:      userRepository,
		AuthService:         authService,
		GoalService:         goalService,
		AIService:           aiService,
		MailService:         mailService,
		NotificationService: notificationService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
