package models

import "gorm.io/datatypes"

// SiteSettings is a singleton row holding homepage copy. Pure content, no
// behavioral invariants.
type SiteSettings struct {
	BaseModel
	HeroTagline  string         `json:"hero_tagline"`
	AboutText    string         `json:"about_text"`
	ContactEmail string         `json:"contact_email"`
	ContactPhone string         `json:"contact_phone"`
	Address      string         `json:"address"`
	Stats        datatypes.JSON `json:"stats"`
	Services     datatypes.JSON `json:"services"`
}
