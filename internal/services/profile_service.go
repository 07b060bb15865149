package services

import (
	"context"
	"math"
	"time"

	"agencia_backend/internal/logger"
	"agencia_backend/internal/models"
	"agencia_backend/internal/repositories"
	"agencia_backend/internal/services/dto"
	"agencia_backend/internal/slug"
	"agencia_backend/internal/storage"
	"agencia_backend/pkg/apperrors"
)

type ProfileService interface {
	// Public catalog
	ListApproved(query *dto.ListProfilesQuery) (*dto.ListProfilesResponse, error)
	GetBySlug(slugStr string) (*dto.ProfileResponse, error)

	// Admin listing and CRUD
	List(query *dto.ListProfilesQuery) (*dto.ListProfilesResponse, error)
	Get(id string) (*dto.ProfileResponse, error)
	Update(id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	Delete(id string) error

	// Moderation
	Approve(id string) (*dto.ProfileResponse, error)
	Reject(id string) (*dto.ProfileResponse, error)
	SetPending(id string) (*dto.ProfileResponse, error)
	SetFeatured(id string, featured bool) error
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	photoRepo   repositories.PhotoRepository
	store       storage.Storage
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	photoRepo repositories.PhotoRepository,
	store storage.Storage,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		photoRepo:   photoRepo,
		store:       store,
	}
}

// ListApproved is the public grid: approval is forced, whatever the caller
// sent for status.
func (s *ProfileServiceImpl) ListApproved(query *dto.ListProfilesQuery) (*dto.ListProfilesResponse, error) {
	filter := query.ToFilter()
	filter.Status = string(models.StatusApproved)
	return s.list(filter, true)
}

func (s *ProfileServiceImpl) List(query *dto.ListProfilesQuery) (*dto.ListProfilesResponse, error) {
	return s.list(query.ToFilter(), false)
}

func (s *ProfileServiceImpl) list(filter dto.ProfileFilterValues, public bool) (*dto.ListProfilesResponse, error) {
	profiles, total, err := s.profileRepo.List(repositories.ProfileFilter{
		Status:    filter.Status,
		Featured:  filter.Featured,
		Search:    filter.Search,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
		Page:      filter.Page,
		Limit:     filter.Limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.ProfileResponse, 0, len(profiles))
	for i := range profiles {
		if public {
			items = append(items, dto.NewPublicProfileResponse(&profiles[i]))
		} else {
			items = append(items, dto.NewProfileResponse(&profiles[i]))
		}
	}

	return &dto.ListProfilesResponse{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// GetBySlug serves the public detail page and bumps the view counter. Only
// approved profiles are visible through here.
func (s *ProfileServiceImpl) GetBySlug(slugStr string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindBySlug(slugStr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if profile.Status != models.StatusApproved {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
	}

	if err := s.profileRepo.IncrementViews(profile.ID); err != nil {
		// a lost view is not worth failing the page for
		logger.Warn("failed to increment profile views", "profile_id", profile.ID, "error", err)
	}
	profile.Views++

	return dto.NewPublicProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) Get(id string) (*dto.ProfileResponse, error) {
	profile, err := s.findProfile(id)
	if err != nil {
		return nil, err
	}
	return dto.NewProfileResponse(profile), nil
}

func (s *ProfileServiceImpl) Update(id string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.findProfile(id)
	if err != nil {
		return nil, err
	}

	if req.ArtisticName != nil && *req.ArtisticName != profile.ArtisticName {
		profile.ArtisticName = *req.ArtisticName
		// The slug follows the artistic name; no alias is kept for the old
		// one, so the public URL changes on rename.
		candidate := slug.Make(profile.ArtisticName)
		taken, err := s.profileRepo.SlugTaken(candidate, profile.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			candidate = slug.WithSuffix(candidate, profile.ID)
		}
		profile.Slug = candidate
	}

	applyProfileUpdates(profile, req)

	if err := s.profileRepo.Save(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

func applyProfileUpdates(profile *models.Profile, req *dto.UpdateProfileRequest) {
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.HeightCM != nil {
		profile.HeightCM = req.HeightCM
	}
	if req.WeightKG != nil {
		profile.WeightKG = req.WeightKG
	}
	if req.Measurements != nil {
		profile.Measurements = *req.Measurements
	}
	if req.EyeColor != nil {
		profile.EyeColor = *req.EyeColor
	}
	if req.HairColor != nil {
		profile.HairColor = *req.HairColor
	}
	if req.SkinTone != nil {
		profile.SkinTone = *req.SkinTone
	}
	if req.ShoeSize != nil {
		profile.ShoeSize = *req.ShoeSize
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Nationality != nil {
		profile.Nationality = *req.Nationality
	}
	if req.Languages != nil {
		profile.Languages = *req.Languages
	}
	if req.Specialties != nil {
		profile.Specialties = *req.Specialties
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}
	if req.Availability != nil {
		profile.Availability = *req.Availability
	}
	if req.Instagram != nil {
		profile.Instagram = *req.Instagram
	}
	if req.Twitter != nil {
		profile.Twitter = *req.Twitter
	}
	if req.TikTok != nil {
		profile.TikTok = *req.TikTok
	}
}

// Delete hard-deletes the profile, its photos and the owning user, then
// best-effort removes the photo files from disk.
func (s *ProfileServiceImpl) Delete(id string) error {
	photos, err := s.photoRepo.FindByProfile(id)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.profileRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	ctx := context.Background()
	for _, photo := range photos {
		if err := s.store.Delete(ctx, photo.Filename); err != nil {
			logger.Warn("failed to remove photo file", "filename", photo.Filename, "error", err)
		}
		if photo.ThumbnailURL != "" {
			thumb := thumbnailPath(photo.Filename)
			if err := s.store.Delete(ctx, thumb); err != nil {
				logger.Warn("failed to remove thumbnail", "filename", thumb, "error", err)
			}
		}
	}
	return nil
}

func (s *ProfileServiceImpl) Approve(id string) (*dto.ProfileResponse, error) {
	return s.setStatus(id, models.StatusApproved)
}

func (s *ProfileServiceImpl) Reject(id string) (*dto.ProfileResponse, error) {
	return s.setStatus(id, models.StatusRejected)
}

func (s *ProfileServiceImpl) SetPending(id string) (*dto.ProfileResponse, error) {
	return s.setStatus(id, models.StatusPending)
}

// setStatus overwrites the moderation state unconditionally. ApprovedAt is
// stamped only on the first transition into APPROVED; re-approving keeps the
// original timestamp.
func (s *ProfileServiceImpl) setStatus(id string, status models.ModerationStatus) (*dto.ProfileResponse, error) {
	profile, err := s.findProfile(id)
	if err != nil {
		return nil, err
	}

	profile.Status = status
	if status == models.StatusApproved && profile.ApprovedAt == nil {
		now := time.Now()
		profile.ApprovedAt = &now
	}

	if err := s.profileRepo.Save(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProfileResponse(profile), nil
}

// SetFeatured flips the flag regardless of moderation status; featuring a
// rejected profile is an accepted business rule.
func (s *ProfileServiceImpl) SetFeatured(id string, featured bool) error {
	if err := s.profileRepo.SetFeatured(id, featured); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProfileServiceImpl) findProfile(id string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}
