package repository

import (
	"context"
	"errors"
	"time"

	"blogicum/internal/cache"
	"blogicum/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListVisible(ctx context.Context, now time.Time, categoryID *uint, limit, offset int) ([]*models.Post, error)
	CountVisible(ctx context.Context, now time.Time, categoryID *uint) (int64, error)
	ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// visibleScope restricts a query to publicly visible posts: published,
// with a publication date in the past, in a published category. The join
// deliberately drops posts without a category from public feeds.
func visibleScope(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN categories ON categories.id = posts.category_id AND categories.deleted_at IS NULL").
			Where("posts.is_published = ?", true).
			Where("posts.pub_date < ?", now).
			Where("categories.is_published = ?", true)
	}
}

// withCommentCount annotates each row with the number of live comments.
// Kept as a correlated subquery so it works on both postgres and sqlite.
func withCommentCount(db *gorm.DB) *gorm.DB {
	return db.Select("posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id AND comments.deleted_at IS NULL) AS comments_count")
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateHomeFeed(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Scopes(withCommentCount).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

func (r *postRepository) ListVisible(ctx context.Context, now time.Time, categoryID *uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	query := r.db.WithContext(ctx).
		Scopes(visibleScope(now), withCommentCount).
		Preload("Author").
		Preload("Category").
		Preload("Location")
	if categoryID != nil {
		query = query.Where("posts.category_id = ?", *categoryID)
	}
	err := query.
		Order("posts.pub_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) CountVisible(ctx context.Context, now time.Time, categoryID *uint) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Scopes(visibleScope(now))
	if categoryID != nil {
		query = query.Where("posts.category_id = ?", *categoryID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// ListByAuthor returns the author's posts regardless of publication state.
// The profile page shows drafts and scheduled posts to every viewer.
func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Scopes(withCommentCount).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Where("posts.author_id = ?", authorID).
		Order("posts.pub_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	if err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Save(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateHomeFeed(ctx)
	return nil
}

// Delete soft-deletes the post together with its comments.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateHomeFeed(ctx)
	return nil
}
