package repositories

import (
	"errors"

	"agencia_backend/internal/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get() (*models.SiteSettings, error)
	Save(settings *models.SiteSettings) error
}

type SettingsRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &SettingsRepositoryImpl{db: db}
}

// Get returns the singleton row, creating an empty one on first access.
func (r *SettingsRepositoryImpl) Get() (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.SiteSettings{}
		if err := r.db.Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *SettingsRepositoryImpl) Save(settings *models.SiteSettings) error {
	return r.db.Save(settings).Error
}
