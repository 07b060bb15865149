package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"agencia_backend/internal/imageprocessor"
	"agencia_backend/internal/logger"
	"agencia_backend/internal/models"
	"agencia_backend/internal/repositories"
	"agencia_backend/internal/services/dto"
	"agencia_backend/internal/storage"
	"agencia_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadConfig bounds what the photo endpoint accepts.
type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

type PhotoService interface {
	Upload(ctx context.Context, uploaderID string, uploaderRole models.UserRole, profileID, title string, file *multipart.FileHeader) (*dto.PhotoResponse, error)
	Get(id string) (*dto.PhotoResponse, error)
	Approve(id string) (*dto.PhotoResponse, error)
	Reject(id string, reason string) (*dto.PhotoResponse, error)
	SetPending(id string) (*dto.PhotoResponse, error)
	Delete(ctx context.Context, id string) error
	SetProfilePhoto(profileID, photoID string) error
	ReorderGallery(profileID string, photoIDs []string) error
}

type PhotoServiceImpl struct {
	photoRepo   repositories.PhotoRepository
	profileRepo repositories.ProfileRepository
	store       storage.Storage
	processor   *imageprocessor.Processor
	cfg         UploadConfig
}

func NewPhotoService(
	photoRepo repositories.PhotoRepository,
	profileRepo repositories.ProfileRepository,
	store storage.Storage,
	processor *imageprocessor.Processor,
	cfg UploadConfig,
) PhotoService {
	return &PhotoServiceImpl{
		photoRepo:   photoRepo,
		profileRepo: profileRepo,
		store:       store,
		processor:   processor,
		cfg:         cfg,
	}
}

// Upload stores the file and a thumbnail under a generated name and creates
// the row. Models upload to their own profile only and start PENDING; admin
// uploads are approved immediately.
func (s *PhotoServiceImpl) Upload(ctx context.Context, uploaderID string, uploaderRole models.UserRole, profileID, title string, file *multipart.FileHeader) (*dto.PhotoResponse, error) {
	profile, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	isAdmin := uploaderRole == models.UserRoleAdmin
	if !isAdmin && profile.UserID != uploaderID {
		return nil, apperrors.ErrNoAutorizado
	}

	if file.Size > s.cfg.MaxSize {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("File exceeds the %d byte limit", s.cfg.MaxSize))
	}
	contentType := file.Header.Get("Content-Type")
	if !s.typeAllowed(contentType) {
		return nil, apperrors.NewBadRequestError("Unsupported file type: " + contentType)
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.processor.Validate(bytes.NewReader(data)); err != nil {
		return nil, apperrors.NewBadRequestError("File is not a valid image")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString()
	filename := fmt.Sprintf("photos/%s%s", name, ext)
	thumbName := fmt.Sprintf("photos/thumbs/%s.jpg", name)

	if err := s.store.Save(ctx, filename, bytes.NewReader(data)); err != nil {
		return nil, apperrors.InternalError(err)
	}

	thumbnailURL := ""
	if thumb, err := s.processor.Thumbnail(bytes.NewReader(data)); err == nil {
		if err := s.store.Save(ctx, thumbName, thumb); err == nil {
			thumbnailURL = s.store.URL(thumbName)
		}
	} else {
		logger.Warn("thumbnail generation failed", "filename", filename, "error", err)
	}

	status := models.StatusPending
	if isAdmin {
		status = models.StatusApproved
	}

	gallery, err := s.photoRepo.FindByProfile(profileID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	photo := &models.Photo{
		ProfileID:    profileID,
		UploaderID:   uploaderID,
		URL:          s.store.URL(filename),
		ThumbnailURL: thumbnailURL,
		Filename:     filename,
		Status:       status,
		SliderOrder:  models.SliderOrderNone,
		Order:        len(gallery),
	}
	if title != "" {
		photo.Title = &title
	}

	if err := s.photoRepo.Create(photo); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPhotoResponse(photo), nil
}

func (s *PhotoServiceImpl) typeAllowed(contentType string) bool {
	for _, t := range s.cfg.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

func (s *PhotoServiceImpl) Get(id string) (*dto.PhotoResponse, error) {
	photo, err := s.findPhoto(id)
	if err != nil {
		return nil, err
	}
	return dto.NewPhotoResponse(photo), nil
}

func (s *PhotoServiceImpl) Approve(id string) (*dto.PhotoResponse, error) {
	return s.setStatus(id, models.StatusApproved, nil)
}

func (s *PhotoServiceImpl) Reject(id string, reason string) (*dto.PhotoResponse, error) {
	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}
	return s.setStatus(id, models.StatusRejected, reasonPtr)
}

func (s *PhotoServiceImpl) SetPending(id string) (*dto.PhotoResponse, error) {
	return s.setStatus(id, models.StatusPending, nil)
}

func (s *PhotoServiceImpl) setStatus(id string, status models.ModerationStatus, reason *string) (*dto.PhotoResponse, error) {
	photo, err := s.findPhoto(id)
	if err != nil {
		return nil, err
	}

	photo.Status = status
	photo.RejectionReason = reason

	if err := s.photoRepo.Save(photo); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPhotoResponse(photo), nil
}

// Delete removes the row and then the files; a file already gone from disk is
// not an error.
func (s *PhotoServiceImpl) Delete(ctx context.Context, id string) error {
	photo, err := s.findPhoto(id)
	if err != nil {
		return err
	}

	if err := s.photoRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.store.Delete(ctx, photo.Filename); err != nil {
		logger.Warn("failed to remove photo file", "filename", photo.Filename, "error", err)
	}
	if photo.ThumbnailURL != "" {
		thumb := thumbnailPath(photo.Filename)
		if err := s.store.Delete(ctx, thumb); err != nil {
			logger.Warn("failed to remove thumbnail", "filename", thumb, "error", err)
		}
	}
	return nil
}

// thumbnailPath maps a stored photo path to the path its thumbnail was
// written under.
func thumbnailPath(filename string) string {
	thumb := strings.Replace(filename, "photos/", "photos/thumbs/", 1)
	return strings.TrimSuffix(thumb, filepath.Ext(thumb)) + ".jpg"
}

// SetProfilePhoto keeps at most one profile photo per profile; the sibling
// clear and the set run as one transaction in the repository.
func (s *PhotoServiceImpl) SetProfilePhoto(profileID, photoID string) error {
	photo, err := s.findPhoto(photoID)
	if err != nil {
		return err
	}
	if photo.ProfileID != profileID {
		return apperrors.ErrInvalidOperation("photos", "Photo does not belong to this profile")
	}

	if err := s.photoRepo.SetProfilePhoto(profileID, photoID); err != nil {
		if apperrors.Is(err, repositories.ErrPhotoNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PhotoServiceImpl) ReorderGallery(profileID string, photoIDs []string) error {
	if _, err := s.profileRepo.FindByID(profileID); err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if err := s.photoRepo.ReorderGallery(profileID, photoIDs); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PhotoServiceImpl) findPhoto(id string) (*models.Photo, error) {
	photo, err := s.photoRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPhotoNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return photo, nil
}
