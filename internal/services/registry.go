package services

import (
	"agencia_backend/internal/auth"
	"agencia_backend/internal/imageprocessor"
	"agencia_backend/internal/repositories"
	"agencia_backend/internal/storage"
)

// ServiceContainer wires every service once so handlers share the same
// instances.
type ServiceContainer struct {
	Auth     AuthService
	Profiles ProfileService
	Photos   PhotoService
	Slider   SliderService
	Export   ExportService
	Settings SettingsService
}

type ContainerDeps struct {
	UserRepo     repositories.UserRepository
	ProfileRepo  repositories.ProfileRepository
	PhotoRepo    repositories.PhotoRepository
	SettingsRepo repositories.SettingsRepository
	Tokens       *auth.TokenManager
	Store        storage.Storage
	Processor    *imageprocessor.Processor
	Upload       UploadConfig
}

func NewServiceContainer(deps ContainerDeps) *ServiceContainer {
	return &ServiceContainer{
		Auth:     NewAuthService(deps.UserRepo, deps.ProfileRepo, deps.Tokens),
		Profiles: NewProfileService(deps.ProfileRepo, deps.PhotoRepo, deps.Store),
		Photos:   NewPhotoService(deps.PhotoRepo, deps.ProfileRepo, deps.Store, deps.Processor, deps.Upload),
		Slider:   NewSliderService(deps.PhotoRepo),
		Export:   NewExportService(deps.ProfileRepo),
		Settings: NewSettingsService(deps.SettingsRepo),
	}
}
