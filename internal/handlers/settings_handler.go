package handlers

import (
	"net/http"

	"agencia_backend/internal/services"
	"agencia_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	*BaseHandler
	settings services.SettingsService
}

func NewSettingsHandler(base *BaseHandler, settings services.SettingsService) *SettingsHandler {
	return &SettingsHandler{BaseHandler: base, settings: settings}
}

func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.Get)
	rg.PUT("/settings", h.Update)
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settings.Get()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	settings, err := h.settings.Update(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
