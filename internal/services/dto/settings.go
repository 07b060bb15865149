package dto

import "encoding/json"

// UpdateSettingsRequest carries the homepage copy; nil fields stay untouched.
type UpdateSettingsRequest struct {
	HeroTagline  *string         `json:"hero_tagline"`
	AboutText    *string         `json:"about_text"`
	ContactEmail *string         `json:"contact_email" validate:"omitempty,email"`
	ContactPhone *string         `json:"contact_phone"`
	Address      *string         `json:"address"`
	Stats        json.RawMessage `json:"stats"`
	Services     json.RawMessage `json:"services"`
}
