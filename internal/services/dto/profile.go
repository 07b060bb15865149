package dto

import (
	"time"

	"agencia_backend/internal/models"
)

// ListProfilesQuery is the admin listing filter. Pointers distinguish
// "omitted, use the default" from explicit out-of-range values, which the
// contract rejects instead of clamping.
type ListProfilesQuery struct {
	Status    string `form:"status" validate:"is-status-filter"`
	Featured  string `form:"featured" validate:"omitempty,oneof=all true false"`
	Search    string `form:"search" validate:"omitempty,max=200"`
	SortBy    string `form:"sortBy" validate:"is-sort-field"`
	SortOrder string `form:"sortOrder" validate:"is-sort-order"`
	Page      *int   `form:"page" validate:"omitempty,min=1"`
	Limit     *int   `form:"limit" validate:"omitempty,min=1,max=100"`
}

// ToFilter applies the documented defaults: status ALL, sort createdAt desc,
// page 1, limit 20.
func (q *ListProfilesQuery) ToFilter() ProfileFilterValues {
	f := ProfileFilterValues{
		Status:    q.Status,
		Search:    q.Search,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Page:      1,
		Limit:     20,
	}
	if f.Status == "" {
		f.Status = "ALL"
	}
	if f.SortBy == "" {
		f.SortBy = "createdAt"
	}
	if f.SortOrder == "" {
		f.SortOrder = "desc"
	}
	if q.Page != nil {
		f.Page = *q.Page
	}
	if q.Limit != nil {
		f.Limit = *q.Limit
	}
	switch q.Featured {
	case "true":
		v := true
		f.Featured = &v
	case "false":
		v := false
		f.Featured = &v
	}
	return f
}

// ProfileFilterValues is the resolved filter the service hands to the
// repository.
type ProfileFilterValues struct {
	Status    string
	Featured  *bool
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type ListProfilesResponse struct {
	Items      []*ProfileResponse `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	TotalPages int                `json:"totalPages"`
}

// UpdateProfileRequest is the admin edit payload; nil fields stay untouched.
type UpdateProfileRequest struct {
	ArtisticName *string   `json:"artistic_name" validate:"omitempty,min=2,max=100"`
	Bio          *string   `json:"bio"`
	HeightCM     *int      `json:"height_cm" validate:"omitempty,min=50,max=250"`
	WeightKG     *int      `json:"weight_kg" validate:"omitempty,min=20,max=300"`
	Measurements *string   `json:"measurements"`
	EyeColor     *string   `json:"eye_color"`
	HairColor    *string   `json:"hair_color"`
	SkinTone     *string   `json:"skin_tone"`
	ShoeSize     *string   `json:"shoe_size"`
	Location     *string   `json:"location"`
	Nationality  *string   `json:"nationality"`
	Languages    *[]string `json:"languages"`
	Specialties  *[]string `json:"specialties"`
	Experience   *string   `json:"experience"`
	Availability *string   `json:"availability"`
	Instagram    *string   `json:"instagram"`
	Twitter      *string   `json:"twitter"`
	TikTok       *string   `json:"tiktok"`
}

type ProfileResponse struct {
	ID           string                  `json:"id"`
	Slug         string                  `json:"slug"`
	Status       models.ModerationStatus `json:"status"`
	Featured     bool                    `json:"featured"`
	Views        int                     `json:"views"`
	ArtisticName string                  `json:"artistic_name"`
	Bio          string                  `json:"bio"`
	HeightCM     *int                    `json:"height_cm,omitempty"`
	WeightKG     *int                    `json:"weight_kg,omitempty"`
	Measurements string                  `json:"measurements,omitempty"`
	EyeColor     string                  `json:"eye_color,omitempty"`
	HairColor    string                  `json:"hair_color,omitempty"`
	SkinTone     string                  `json:"skin_tone,omitempty"`
	ShoeSize     string                  `json:"shoe_size,omitempty"`
	Location     string                  `json:"location,omitempty"`
	Nationality  string                  `json:"nationality,omitempty"`
	Languages    []string                `json:"languages,omitempty"`
	Specialties  []string                `json:"specialties,omitempty"`
	Experience   string                  `json:"experience,omitempty"`
	Availability string                  `json:"availability,omitempty"`
	Instagram    string                  `json:"instagram,omitempty"`
	Twitter      string                  `json:"twitter,omitempty"`
	TikTok       string                  `json:"tiktok,omitempty"`
	PhotoCount   int                     `json:"photo_count"`
	ProfilePhoto *PhotoResponse          `json:"profile_photo,omitempty"`
	Photos       []*PhotoResponse        `json:"photos,omitempty"`
	UserName     string                  `json:"user_name,omitempty"`
	UserEmail    string                  `json:"user_email,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
	UpdatedAt    time.Time               `json:"updated_at"`
	ApprovedAt   *time.Time              `json:"approved_at,omitempty"`
}

func NewProfileResponse(p *models.Profile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:           p.ID,
		Slug:         p.Slug,
		Status:       p.Status,
		Featured:     p.Featured,
		Views:        p.Views,
		ArtisticName: p.ArtisticName,
		Bio:          p.Bio,
		HeightCM:     p.HeightCM,
		WeightKG:     p.WeightKG,
		Measurements: p.Measurements,
		EyeColor:     p.EyeColor,
		HairColor:    p.HairColor,
		SkinTone:     p.SkinTone,
		ShoeSize:     p.ShoeSize,
		Location:     p.Location,
		Nationality:  p.Nationality,
		Languages:    p.Languages,
		Specialties:  p.Specialties,
		Experience:   p.Experience,
		Availability: p.Availability,
		Instagram:    p.Instagram,
		Twitter:      p.Twitter,
		TikTok:       p.TikTok,
		PhotoCount:   len(p.Photos),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		ApprovedAt:   p.ApprovedAt,
	}
	if p.User != nil {
		resp.UserName = p.User.Name
		resp.UserEmail = p.User.Email
	}
	for i := range p.Photos {
		photo := NewPhotoResponse(&p.Photos[i])
		resp.Photos = append(resp.Photos, photo)
		if p.Photos[i].IsProfilePhoto {
			resp.ProfilePhoto = photo
		}
	}
	return resp
}

// NewPublicProfileResponse strips moderation-only photos and the owner's
// email for the public catalog.
func NewPublicProfileResponse(p *models.Profile) *ProfileResponse {
	approved := make([]models.Photo, 0, len(p.Photos))
	for _, photo := range p.Photos {
		if photo.Status == models.StatusApproved {
			approved = append(approved, photo)
		}
	}
	clone := *p
	clone.Photos = approved
	clone.User = nil
	return NewProfileResponse(&clone)
}
