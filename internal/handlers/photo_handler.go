package handlers

import (
	"net/http"

	"agencia_backend/internal/models"
	"agencia_backend/internal/services"
	"agencia_backend/internal/services/dto"
	"agencia_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	*BaseHandler
	photos services.PhotoService
}

func NewPhotoHandler(base *BaseHandler, photos services.PhotoService) *PhotoHandler {
	return &PhotoHandler{BaseHandler: base, photos: photos}
}

// RegisterRoutes registers the authenticated upload endpoint; the caller's
// group already carries AuthMiddleware.
func (h *PhotoHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/photos", h.Upload)
}

// RegisterAdminRoutes registers moderation, deletion and gallery management;
// the caller's group is admin-gated.
func (h *PhotoHandler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	photos := rg.Group("/photos")
	{
		photos.POST("/:id/approve", h.Approve)
		photos.POST("/:id/reject", h.Reject)
		photos.POST("/:id/pending", h.SetPending)
		photos.DELETE("/:id", h.Delete)
	}
	rg.PUT("/models/:id/profile-photo/:photoId", h.SetProfilePhoto)
	rg.PATCH("/models/:id/gallery", h.ReorderGallery)
}

func (h *PhotoHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	role := models.UserRole(c.GetString("role"))

	profileID := c.PostForm("profile_id")
	if profileID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("profile_id is required"))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("file is required"))
		return
	}

	resp, err := h.photos.Upload(c.Request.Context(), userID, role, profileID, c.PostForm("title"), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PhotoHandler) Approve(c *gin.Context) {
	resp, err := h.photos.Approve(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PhotoHandler) Reject(c *gin.Context) {
	var req dto.RejectPhotoRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.photos.Reject(c.Param("id"), req.Reason)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PhotoHandler) SetPending(c *gin.Context) {
	resp, err := h.photos.SetPending(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	if err := h.photos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Foto eliminada"})
}

func (h *PhotoHandler) SetProfilePhoto(c *gin.Context) {
	if err := h.photos.SetProfilePhoto(c.Param("id"), c.Param("photoId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Foto de perfil actualizada"})
}

func (h *PhotoHandler) ReorderGallery(c *gin.Context) {
	var req dto.ReorderGalleryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.photos.ReorderGallery(c.Param("id"), req.PhotoIDs); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Galería reordenada"})
}
