package handlers

import (
	"net/http"

	"agencia_backend/internal/services"
	"agencia_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the public, unauthenticated site: the model grid,
// profile pages, the homepage slider and site settings.
type CatalogHandler struct {
	*BaseHandler
	profiles services.ProfileService
	slider   services.SliderService
	settings services.SettingsService
}

func NewCatalogHandler(
	base *BaseHandler,
	profiles services.ProfileService,
	slider services.SliderService,
	settings services.SettingsService,
) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler: base,
		profiles:    profiles,
		slider:      slider,
		settings:    settings,
	}
}

func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/models", h.ListModels)
	rg.GET("/models/:slug", h.GetModel)
	rg.GET("/slider", h.GetSlider)
	rg.GET("/settings", h.GetSettings)
}

func (h *CatalogHandler) ListModels(c *gin.Context) {
	var query dto.ListProfilesQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.profiles.ListApproved(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetModel(c *gin.Context) {
	resp, err := h.profiles.GetBySlug(c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) GetSlider(c *gin.Context) {
	photos, err := h.slider.ListPublic()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (h *CatalogHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.Get()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
