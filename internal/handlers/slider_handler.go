package handlers

import (
	"net/http"

	"agencia_backend/internal/services"
	"agencia_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SliderHandler struct {
	*BaseHandler
	slider services.SliderService
}

func NewSliderHandler(base *BaseHandler, slider services.SliderService) *SliderHandler {
	return &SliderHandler{BaseHandler: base, slider: slider}
}

func (h *SliderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	slider := rg.Group("/slider")
	{
		slider.GET("", h.List)
		slider.POST("", h.Add)
		slider.DELETE("/:photoId", h.Remove)
		slider.PATCH("/order", h.Reorder)
	}
}

func (h *SliderHandler) List(c *gin.Context) {
	photos, err := h.slider.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}

func (h *SliderHandler) Add(c *gin.Context) {
	var req dto.SliderAddRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.slider.Add(req.PhotoID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SliderHandler) Remove(c *gin.Context) {
	if err := h.slider.Remove(c.Param("photoId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Foto quitada del slider"})
}

func (h *SliderHandler) Reorder(c *gin.Context) {
	var req dto.SliderReorderRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	photos, err := h.slider.Reorder(req.PhotoIDs)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, photos)
}
