package repository

import (
	"context"
	"errors"

	"blogicum/internal/models"

	"gorm.io/gorm"
)

// LocationRepository defines persistence operations for locations.
// Mutations are reached only from the admin CLI.
type LocationRepository interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id uint) (*models.Location, error)
	List(ctx context.Context) ([]*models.Location, error)
	Update(ctx context.Context, location *models.Location) error
	Delete(ctx context.Context, id uint) error
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository returns a new LocationRepository implementation.
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Create(ctx context.Context, location *models.Location) error {
	if err := r.db.WithContext(ctx).Create(location).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *locationRepository) GetByID(ctx context.Context, id uint) (*models.Location, error) {
	var location models.Location
	if err := r.db.WithContext(ctx).First(&location, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Location", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &location, nil
}

func (r *locationRepository) List(ctx context.Context) ([]*models.Location, error) {
	var locations []*models.Location
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&locations).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return locations, nil
}

func (r *locationRepository) Update(ctx context.Context, location *models.Location) error {
	if err := r.db.WithContext(ctx).Save(location).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the location and clears the reference on its posts.
func (r *locationRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("location_id = ?", id).
			Update("location_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Location{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
