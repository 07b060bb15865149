package app

import (
	"errors"
	"fmt"
	"time"

	"agencia_backend/database"
	"agencia_backend/internal/auth"
	"agencia_backend/internal/config"
	"agencia_backend/internal/handlers"
	"agencia_backend/internal/imageprocessor"
	"agencia_backend/internal/logger"
	"agencia_backend/internal/middleware"
	"agencia_backend/internal/models"
	"agencia_backend/internal/repositories"
	"agencia_backend/internal/routes"
	"agencia_backend/internal/services"
	"agencia_backend/internal/storage"
	"agencia_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}
	if err := seedDefaultSettings(gormDB); err != nil {
		logger.Fatal("Failed to seed site settings", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	processor := imageprocessor.NewProcessor(cfg.Upload.ImageQuality)

	serviceContainer := services.NewServiceContainer(services.ContainerDeps{
		UserRepo:     repositories.NewUserRepository(gormDB),
		ProfileRepo:  repositories.NewProfileRepository(gormDB),
		PhotoRepo:    repositories.NewPhotoRepository(gormDB),
		SettingsRepo: repositories.NewSettingsRepository(gormDB),
		Tokens:       tokens,
		Store:        store,
		Processor:    processor,
		Upload: services.UploadConfig{
			MaxSize:      cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		},
	})

	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New(), tokens, cfg.IsProduction())

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))

	routes.RegisterRoutes(router, appHandlers, tokens)

	// uploaded files are served straight off disk
	router.Static(cfg.Storage.BaseURL, store.BasePath())

	return router
}

// seedFirstAdmin creates the initial back-office account from config. Without
// it a fresh deployment has no way to log into the admin panel.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var existing models.User
	result := tx.Where("email = ?", cfg.FirstAdminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", cfg.FirstAdminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Name:         "Administración",
		Role:         models.UserRoleAdmin,
	}
	if err := tx.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", cfg.FirstAdminEmail)
	return tx.Commit().Error
}

// seedDefaultSettings makes sure the settings singleton exists so the public
// homepage never 404s on first boot.
func seedDefaultSettings(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SiteSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	settings := &models.SiteSettings{
		HeroTagline: "Descubre el talento que define la próxima generación",
		Stats:       []byte(`[]`),
		Services:    []byte(`[]`),
	}
	return db.Create(settings).Error
}
