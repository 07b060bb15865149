package services

import (
	"agencia_backend/internal/models"
	"agencia_backend/internal/repositories"
	"agencia_backend/internal/services/dto"
	"agencia_backend/pkg/apperrors"
)

type SliderService interface {
	// List is the admin view; ListPublic only serves approved photos.
	List() ([]*dto.PhotoResponse, error)
	ListPublic() ([]*dto.PhotoResponse, error)
	Add(photoID string) (*dto.PhotoResponse, error)
	Remove(photoID string) error
	Reorder(photoIDs []string) ([]*dto.PhotoResponse, error)
}

type SliderServiceImpl struct {
	photoRepo repositories.PhotoRepository
}

func NewSliderService(photoRepo repositories.PhotoRepository) SliderService {
	return &SliderServiceImpl{photoRepo: photoRepo}
}

func (s *SliderServiceImpl) List() ([]*dto.PhotoResponse, error) {
	photos, err := s.photoRepo.ListSlider()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toPhotoResponses(photos), nil
}

func (s *SliderServiceImpl) ListPublic() ([]*dto.PhotoResponse, error) {
	photos, err := s.photoRepo.ListApprovedSlider()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toPhotoResponses(photos), nil
}

func toPhotoResponses(photos []models.Photo) []*dto.PhotoResponse {
	items := make([]*dto.PhotoResponse, 0, len(photos))
	for i := range photos {
		items = append(items, dto.NewPhotoResponse(&photos[i]))
	}
	return items
}

// Add appends the photo to the end of the slider. Only approved photos make
// it to the homepage; adding an already-present photo is a no-op that keeps
// its position.
func (s *SliderServiceImpl) Add(photoID string) (*dto.PhotoResponse, error) {
	photo, err := s.photoRepo.FindByID(photoID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPhotoNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if photo.Status != models.StatusApproved {
		return nil, apperrors.ErrInvalidOperation("slider", "Only approved photos can join the slider")
	}

	if photo.IsSliderPhoto {
		return dto.NewPhotoResponse(photo), nil
	}

	maxOrder, err := s.photoRepo.MaxSliderOrder()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	photo.IsSliderPhoto = true
	photo.SliderOrder = maxOrder + 1

	if err := s.photoRepo.Save(photo); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPhotoResponse(photo), nil
}

func (s *SliderServiceImpl) Remove(photoID string) error {
	photo, err := s.photoRepo.FindByID(photoID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPhotoNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if !photo.IsSliderPhoto {
		return nil
	}

	photo.IsSliderPhoto = false
	photo.SliderOrder = models.SliderOrderNone

	if err := s.photoRepo.Save(photo); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Reorder assigns slider positions by list index and returns the resulting
// slider. Slider photos omitted from the list keep their current order value.
func (s *SliderServiceImpl) Reorder(photoIDs []string) ([]*dto.PhotoResponse, error) {
	if err := s.photoRepo.ReorderSlider(photoIDs); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.List()
}
