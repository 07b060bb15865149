package handlers

import (
	"agencia_backend/internal/auth"
	"agencia_backend/internal/services"
	"agencia_backend/internal/validator"
)

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	Auth       *AuthHandler
	Catalog    *CatalogHandler
	AdminModel *AdminModelHandler
	Photo      *PhotoHandler
	Slider     *SliderHandler
	Settings   *SettingsHandler
}

func NewAppHandlers(sc *services.ServiceContainer, v *validator.Validator, tokens *auth.TokenManager, production bool) *AppHandlers {
	base := NewBaseHandler(v)
	return &AppHandlers{
		Auth:       NewAuthHandler(base, sc.Auth, tokens, production),
		Catalog:    NewCatalogHandler(base, sc.Profiles, sc.Slider, sc.Settings),
		AdminModel: NewAdminModelHandler(base, sc.Profiles, sc.Export),
		Photo:      NewPhotoHandler(base, sc.Photos),
		Slider:     NewSliderHandler(base, sc.Slider),
		Settings:   NewSettingsHandler(base, sc.Settings),
	}
}
