package repository

import (
	"context"
	"errors"

	"blogicum/internal/cache"
	"blogicum/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines persistence operations for categories.
// Mutations are reached only from the admin CLI.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a new CategoryRepository implementation.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Category slug already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	key := cache.CategoryKey(slug)

	err := cache.Aside(ctx, key, &category, cache.CategoryTTL, func() error {
		if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Category", slug)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateCategory(ctx, category.Slug)
	cache.InvalidateHomeFeed(ctx)
	return nil
}

// Delete removes the category and clears the reference on its posts
// (posts survive category deletion).
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Category", id)
		}
		return models.NewInternalError(err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}

	cache.InvalidateCategory(ctx, category.Slug)
	cache.InvalidateHomeFeed(ctx)
	return nil
}
