package models

import (
	"time"

	"github.com/lib/pq"
)

// Profile is the public-facing record of a model. One per MODEL-role user,
// created PENDING at registration (or by an admin) and published only after
// moderation approves it.
type Profile struct {
	BaseModel
	UserID       string           `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Slug         string           `gorm:"uniqueIndex;not null" json:"slug"`
	Status       ModerationStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status"`
	Featured     bool             `gorm:"default:false;index" json:"featured"`
	Views        int              `gorm:"default:0" json:"views"`
	ApprovedAt   *time.Time       `json:"approved_at,omitempty"`
	ArtisticName string           `gorm:"not null" json:"artistic_name"`
	Bio          string           `json:"bio"`
	HeightCM     *int             `json:"height_cm,omitempty"`
	WeightKG     *int             `json:"weight_kg,omitempty"`
	Measurements string           `json:"measurements"`
	EyeColor     string           `json:"eye_color"`
	HairColor    string           `json:"hair_color"`
	SkinTone     string           `json:"skin_tone"`
	ShoeSize     string           `json:"shoe_size"`
	Location     string           `json:"location"`
	Nationality  string           `json:"nationality"`
	Languages    pq.StringArray   `gorm:"type:text[]" json:"languages"`
	Specialties  pq.StringArray   `gorm:"type:text[]" json:"specialties"`
	Experience   string           `json:"experience"`
	Availability string           `json:"availability"`
	Instagram    string           `json:"instagram"`
	Twitter      string           `json:"twitter"`
	TikTok       string           `json:"tiktok"`

	// Relations
	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Photos []Photo `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"photos,omitempty"`
}

// ProfilePhoto returns the photo flagged as the profile photo, or nil.
func (p *Profile) ProfilePhoto() *Photo {
	for i := range p.Photos {
		if p.Photos[i].IsProfilePhoto {
			return &p.Photos[i]
		}
	}
	return nil
}
