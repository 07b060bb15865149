package handlers

import (
	"fmt"
	"net/http"

	"agencia_backend/internal/services"
	"agencia_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminModelHandler is the back-office side of the catalog: full listing,
// editing, moderation and export.
type AdminModelHandler struct {
	*BaseHandler
	profiles services.ProfileService
	export   services.ExportService
}

func NewAdminModelHandler(base *BaseHandler, profiles services.ProfileService, export services.ExportService) *AdminModelHandler {
	return &AdminModelHandler{
		BaseHandler: base,
		profiles:    profiles,
		export:      export,
	}
}

func (h *AdminModelHandler) RegisterRoutes(rg *gin.RouterGroup) {
	models := rg.Group("/models")
	{
		models.GET("", h.List)
		// registered before /:id so gin does not treat "export" as an id
		models.GET("/export", h.Export)
		models.GET("/:id", h.Get)
		models.PUT("/:id", h.Update)
		models.DELETE("/:id", h.Delete)
		models.POST("/:id/approve", h.Approve)
		models.POST("/:id/reject", h.Reject)
		models.POST("/:id/pending", h.SetPending)
		models.PATCH("/:id/featured", h.SetFeatured)
	}
}

func (h *AdminModelHandler) List(c *gin.Context) {
	var query dto.ListProfilesQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.profiles.List(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminModelHandler) Get(c *gin.Context) {
	resp, err := h.profiles.Get(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminModelHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profiles.Update(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminModelHandler) Delete(c *gin.Context) {
	if err := h.profiles.Delete(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Perfil eliminado"})
}

func (h *AdminModelHandler) Approve(c *gin.Context) {
	resp, err := h.profiles.Approve(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminModelHandler) Reject(c *gin.Context) {
	resp, err := h.profiles.Reject(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminModelHandler) SetPending(c *gin.Context) {
	resp, err := h.profiles.SetPending(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type setFeaturedRequest struct {
	Featured *bool `json:"featured" validate:"required"`
}

func (h *AdminModelHandler) SetFeatured(c *gin.Context) {
	var req setFeaturedRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.profiles.SetFeatured(c.Param("id"), *req.Featured); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"featured": *req.Featured})
}

func (h *AdminModelHandler) Export(c *gin.Context) {
	var query dto.ExportQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	result, err := h.export.Export(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
