package repositories

import (
	"errors"

	"agencia_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPhotoNotFound = errors.New("photo not found")

type PhotoRepository interface {
	Create(photo *models.Photo) error
	FindByID(id string) (*models.Photo, error)
	FindByProfile(profileID string) ([]models.Photo, error)
	Save(photo *models.Photo) error
	Delete(id string) error

	// SetProfilePhoto clears the flag on every sibling and sets it on
	// photoID as one transaction, keeping the at-most-one invariant even
	// under concurrent admin requests.
	SetProfilePhoto(profileID, photoID string) error

	ReorderGallery(profileID string, photoIDs []string) error

	ListSlider() ([]models.Photo, error)
	ListApprovedSlider() ([]models.Photo, error)
	MaxSliderOrder() (int, error)
	ReorderSlider(photoIDs []string) error
}

type PhotoRepositoryImpl struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &PhotoRepositoryImpl{db: db}
}

func (r *PhotoRepositoryImpl) Create(photo *models.Photo) error {
	return r.db.Create(photo).Error
}

func (r *PhotoRepositoryImpl) FindByID(id string) (*models.Photo, error) {
	var photo models.Photo
	err := r.db.First(&photo, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepositoryImpl) FindByProfile(profileID string) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("profile_id = ?", profileID).
		Order("gallery_order ASC, uploaded_at ASC").
		Find(&photos).Error
	return photos, err
}

func (r *PhotoRepositoryImpl) Save(photo *models.Photo) error {
	return r.db.Save(photo).Error
}

func (r *PhotoRepositoryImpl) Delete(id string) error {
	res := r.db.Delete(&models.Photo{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func (r *PhotoRepositoryImpl) SetProfilePhoto(profileID, photoID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Photo{}).
			Where("id = ? AND profile_id = ?", photoID, profileID).
			Update("is_profile_photo", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPhotoNotFound
		}
		return tx.Model(&models.Photo{}).
			Where("profile_id = ? AND id <> ?", profileID, photoID).
			Update("is_profile_photo", false).Error
	})
}

// ReorderGallery rewrites gallery_order to the index each photo holds in the
// given list. IDs outside the profile are ignored.
func (r *PhotoRepositoryImpl) ReorderGallery(profileID string, photoIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range photoIDs {
			err := tx.Model(&models.Photo{}).
				Where("id = ? AND profile_id = ?", id, profileID).
				Update("gallery_order", i).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// ListSlider is the admin view: every slider row, whatever its status.
func (r *PhotoRepositoryImpl) ListSlider() ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("is_slider_photo = ?", true).
		Order("slider_order ASC").
		Find(&photos).Error
	return photos, err
}

// ListApprovedSlider is what the homepage shows. A slider photo that gets
// rejected afterwards keeps its flag and order but drops out of here.
func (r *PhotoRepositoryImpl) ListApprovedSlider() ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.Where("is_slider_photo = ? AND status = ?", true, models.StatusApproved).
		Order("slider_order ASC").
		Find(&photos).Error
	return photos, err
}

func (r *PhotoRepositoryImpl) MaxSliderOrder() (int, error) {
	var max *int
	err := r.db.Model(&models.Photo{}).
		Where("is_slider_photo = ?", true).
		Select("MAX(slider_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return models.SliderOrderNone, nil
	}
	return *max, nil
}

// ReorderSlider trusts the caller to send the complete slider; ids omitted
// from the list keep whatever order value they had.
func (r *PhotoRepositoryImpl) ReorderSlider(photoIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range photoIDs {
			err := tx.Model(&models.Photo{}).
				Where("id = ? AND is_slider_photo = ?", id, true).
				Update("slider_order", i).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
