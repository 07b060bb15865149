package services

import (
	"agencia_backend/internal/models"
	"agencia_backend/internal/repositories"
	"agencia_backend/internal/services/dto"
	"agencia_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type SettingsService interface {
	Get() (*models.SiteSettings, error)
	Update(req *dto.UpdateSettingsRequest) (*models.SiteSettings, error)
}

type SettingsServiceImpl struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsService {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

func (s *SettingsServiceImpl) Get() (*models.SiteSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return settings, nil
}

// Update merges the given fields into the singleton. Concurrent updates are
// last-writer-wins; the row is pure content, so that is acceptable.
func (s *SettingsServiceImpl) Update(req *dto.UpdateSettingsRequest) (*models.SiteSettings, error) {
	settings, err := s.settingsRepo.Get()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if req.HeroTagline != nil {
		settings.HeroTagline = *req.HeroTagline
	}
	if req.AboutText != nil {
		settings.AboutText = *req.AboutText
	}
	if req.ContactEmail != nil {
		settings.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		settings.ContactPhone = *req.ContactPhone
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.Stats != nil {
		settings.Stats = datatypes.JSON(req.Stats)
	}
	if req.Services != nil {
		settings.Services = datatypes.JSON(req.Services)
	}

	if err := s.settingsRepo.Save(settings); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return settings, nil
}
