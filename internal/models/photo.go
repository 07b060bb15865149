package models

import "time"

// SliderOrderNone marks a photo that has never been placed on the slider.
const SliderOrderNone = -1

// Photo belongs to a profile and is moderated independently of it. The
// profile-photo flag is unique per profile; the store does not enforce that,
// the repository does it inside a transaction.
type Photo struct {
	BaseModel
	ProfileID       string           `gorm:"type:uuid;not null;index" json:"profile_id"`
	UploaderID      string           `gorm:"type:uuid;not null" json:"uploader_id"`
	URL             string           `gorm:"not null" json:"url"`
	ThumbnailURL    string           `json:"thumbnail_url"`
	Filename        string           `gorm:"not null" json:"filename"`
	Status          ModerationStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	IsProfilePhoto  bool             `gorm:"default:false" json:"is_profile_photo"`
	IsSliderPhoto   bool             `gorm:"default:false;index" json:"is_slider_photo"`
	SliderOrder     int              `gorm:"default:-1" json:"slider_order"`
	Order           int              `gorm:"column:gallery_order;default:0" json:"order"`
	Title           *string          `json:"title,omitempty"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	UploadedAt      time.Time        `gorm:"default:now()" json:"uploaded_at"`
}
