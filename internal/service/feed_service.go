// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"
	"time"

	"blogicum/internal/cache"
	"blogicum/internal/models"
	"blogicum/internal/pagination"
	"blogicum/internal/repository"
)

// FeedPage is one page of a post feed.
type FeedPage struct {
	Posts    []*models.Post   `json:"posts"`
	Page     pagination.Page  `json:"page"`
	Category *models.Category `json:"category,omitempty"`
}

// FeedService assembles the public post feeds.
type FeedService interface {
	HomeFeed(ctx context.Context, page int) (*FeedPage, error)
	CategoryFeed(ctx context.Context, slug string, page int) (*FeedPage, error)
}

type feedService struct {
	posts      repository.PostRepository
	categories repository.CategoryRepository
	pageSize   int
}

// NewFeedService returns a new FeedService implementation.
func NewFeedService(posts repository.PostRepository, categories repository.CategoryRepository, pageSize int) FeedService {
	return &feedService{posts: posts, categories: categories, pageSize: pageSize}
}

// HomeFeed returns publicly visible posts, newest publication first.
// The first page is by far the hottest and is served through Redis.
func (s *feedService) HomeFeed(ctx context.Context, page int) (*FeedPage, error) {
	if page <= 1 {
		var cached FeedPage
		if found, err := cache.GetJSON(ctx, cache.HomeFeedKey(1), &cached); err == nil && found {
			return &cached, nil
		}
	}

	feed, err := s.buildFeed(ctx, nil, page)
	if err != nil {
		return nil, err
	}

	if feed.Page.Number == 1 {
		_ = cache.SetJSON(ctx, cache.HomeFeedKey(1), feed, cache.FeedTTL)
	}
	return feed, nil
}

// CategoryFeed returns visible posts in one category. An unknown or
// unpublished category reads as not found, never as an empty feed.
func (s *feedService) CategoryFeed(ctx context.Context, slug string, page int) (*FeedPage, error) {
	category, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !category.IsPublished {
		return nil, models.NewNotFoundError("Category", slug)
	}

	feed, err := s.buildFeed(ctx, &category.ID, page)
	if err != nil {
		return nil, err
	}
	feed.Category = category
	return feed, nil
}

func (s *feedService) buildFeed(ctx context.Context, categoryID *uint, requested int) (*FeedPage, error) {
	now := time.Now()

	total, err := s.posts.CountVisible(ctx, now, categoryID)
	if err != nil {
		return nil, err
	}

	page := pagination.Paginate(total, s.pageSize, requested)
	posts, err := s.posts.ListVisible(ctx, now, categoryID, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}

	return &FeedPage{Posts: posts, Page: page}, nil
}
