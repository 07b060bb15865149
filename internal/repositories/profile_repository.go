package repositories

import (
	"errors"
	"fmt"

	"agencia_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileFilter mirrors the admin listing contract: a pseudo-status ALL, an
// optional featured flag, free-text search over artistic name and location,
// and bounded pagination. Validation happens at the handler boundary; by the
// time a filter reaches the repository its values are trusted.
type ProfileFilter struct {
	Status    string // ALL | PENDING | APPROVED | REJECTED
	Featured  *bool
	Search    string
	SortBy    string // createdAt | artisticName | views | status | updatedAt
	SortOrder string // asc | desc
	Page      int
	Limit     int
}

// sortColumns maps API sort fields to columns. Unknown fields never reach
// here; the validator rejects them first.
var sortColumns = map[string]string{
	"createdAt":    "created_at",
	"artisticName": "artistic_name",
	"views":        "views",
	"status":       "status",
	"updatedAt":    "updated_at",
}

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByID(id string) (*models.Profile, error)
	FindByUserID(userID string) (*models.Profile, error)
	FindBySlug(slug string) (*models.Profile, error)
	SlugTaken(slug, excludeProfileID string) (bool, error)
	Save(profile *models.Profile) error
	SetFeatured(id string, featured bool) error
	IncrementViews(id string) error
	Delete(id string) error
	List(filter ProfileFilter) ([]models.Profile, int64, error)
	ListAll(status string, featured *bool) ([]models.Profile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("User").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("gallery_order ASC, uploaded_at ASC")
		}).
		First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindBySlug(slug string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("Photos", func(db *gorm.DB) *gorm.DB {
		return db.Order("gallery_order ASC, uploaded_at ASC")
	}).First(&profile, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// SlugTaken reports whether another profile already owns the slug.
func (r *ProfileRepositoryImpl) SlugTaken(slug, excludeProfileID string) (bool, error) {
	var count int64
	q := r.db.Model(&models.Profile{}).Where("slug = ?", slug)
	if excludeProfileID != "" {
		q = q.Where("id <> ?", excludeProfileID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProfileRepositoryImpl) Save(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) SetFeatured(id string, featured bool) error {
	res := r.db.Model(&models.Profile{}).Where("id = ?", id).Update("featured", featured)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) IncrementViews(id string) error {
	return r.db.Model(&models.Profile{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

// Delete removes the profile, its photos and its owning user in one
// transaction. Photo files on disk are the service's problem.
func (r *ProfileRepositoryImpl) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var profile models.Profile
		if err := tx.First(&profile, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProfileNotFound
			}
			return err
		}
		if err := tx.Delete(&models.Photo{}, "profile_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Profile{}, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", profile.UserID).Error
	})
}

func (r *ProfileRepositoryImpl) applyFilter(q *gorm.DB, status string, featured *bool, search string) *gorm.DB {
	if status != "" && status != "ALL" {
		q = q.Where("status = ?", status)
	}
	if featured != nil {
		q = q.Where("featured = ?", *featured)
	}
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("artistic_name ILIKE ? OR location ILIKE ?", pattern, pattern)
	}
	return q
}

// List returns one page of profiles plus the total count of the filtered set
// (independent of page/limit).
func (r *ProfileRepositoryImpl) List(filter ProfileFilter) ([]models.Profile, int64, error) {
	q := r.applyFilter(r.db.Model(&models.Profile{}), filter.Status, filter.Featured, filter.Search)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	var profiles []models.Profile
	err := q.Preload("User").Preload("Photos").
		Order(fmt.Sprintf("%s %s", column, direction)).
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// ListAll returns the full filtered set for exports: no search, no paging.
func (r *ProfileRepositoryImpl) ListAll(status string, featured *bool) ([]models.Profile, error) {
	q := r.applyFilter(r.db.Model(&models.Profile{}), status, featured, "")

	var profiles []models.Profile
	err := q.Preload("User").Preload("Photos").
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, err
}
