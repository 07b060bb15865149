package dto

import (
	"time"

	"agencia_backend/internal/models"
)

type PhotoResponse struct {
	ID              string                  `json:"id"`
	ProfileID       string                  `json:"profile_id"`
	URL             string                  `json:"url"`
	ThumbnailURL    string                  `json:"thumbnail_url,omitempty"`
	Status          models.ModerationStatus `json:"status"`
	IsProfilePhoto  bool                    `json:"is_profile_photo"`
	IsSliderPhoto   bool                    `json:"is_slider_photo"`
	SliderOrder     int                     `json:"slider_order"`
	Order           int                     `json:"order"`
	Title           *string                 `json:"title,omitempty"`
	RejectionReason *string                 `json:"rejection_reason,omitempty"`
	UploadedAt      time.Time               `json:"uploaded_at"`
}

func NewPhotoResponse(p *models.Photo) *PhotoResponse {
	return &PhotoResponse{
		ID:              p.ID,
		ProfileID:       p.ProfileID,
		URL:             p.URL,
		ThumbnailURL:    p.ThumbnailURL,
		Status:          p.Status,
		IsProfilePhoto:  p.IsProfilePhoto,
		IsSliderPhoto:   p.IsSliderPhoto,
		SliderOrder:     p.SliderOrder,
		Order:           p.Order,
		Title:           p.Title,
		RejectionReason: p.RejectionReason,
		UploadedAt:      p.UploadedAt,
	}
}

type RejectPhotoRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

type ReorderGalleryRequest struct {
	PhotoIDs []string `json:"photo_ids" validate:"required,min=1,dive,uuid"`
}

type SliderAddRequest struct {
	PhotoID string `json:"photo_id" validate:"required,uuid"`
}

type SliderReorderRequest struct {
	PhotoIDs []string `json:"photo_ids" validate:"required,min=1,dive,uuid"`
}
