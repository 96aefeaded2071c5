package service

import (
	"context"
	"strings"
	"time"

	"blogicum/internal/models"
	"blogicum/internal/repository"
)

// CreatePostInput carries the fields a user supplies when publishing.
type CreatePostInput struct {
	Title      string     `json:"title"`
	Text       string     `json:"text"`
	ImageURL   string     `json:"image_url"`
	PubDate    *time.Time `json:"pub_date"`
	CategoryID *uint      `json:"category_id"`
	LocationID *uint      `json:"location_id"`
}

// UpdatePostInput mirrors CreatePostInput for edits. Author and
// timestamps are never writable through the API.
type UpdatePostInput struct {
	Title      string     `json:"title"`
	Text       string     `json:"text"`
	ImageURL   string     `json:"image_url"`
	PubDate    *time.Time `json:"pub_date"`
	CategoryID *uint      `json:"category_id"`
	LocationID *uint      `json:"location_id"`
}

// PostDetail is the full context of a post page: the post itself plus
// its comments in conversation order.
type PostDetail struct {
	Post     *models.Post      `json:"post"`
	Comments []*models.Comment `json:"comments"`
}

// PostService implements post lifecycle and the detail view.
type PostService interface {
	GetDetail(ctx context.Context, postID, viewerID uint) (*PostDetail, error)
	GetForAuthor(ctx context.Context, postID uint) (*models.Post, error)
	Create(ctx context.Context, authorID uint, input CreatePostInput) (*models.Post, error)
	Update(ctx context.Context, postID, callerID uint, input UpdatePostInput) (*models.Post, error)
	Delete(ctx context.Context, postID, callerID uint) error
}

type postService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
}

// NewPostService returns a new PostService implementation.
func NewPostService(posts repository.PostRepository, comments repository.CommentRepository) PostService {
	return &postService{posts: posts, comments: comments}
}

// GetDetail loads a post for a viewer. Posts hidden from the viewer read
// as not found so that their existence leaks nothing.
func (s *postService) GetDetail(ctx context.Context, postID, viewerID uint) (*PostDetail, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.VisibleTo(viewerID, time.Now()) {
		return nil, models.NewNotFoundError("Post", postID)
	}

	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &PostDetail{Post: post, Comments: comments}, nil
}

// GetForAuthor loads a post without the visibility filter. Used by the
// edit and delete flows, which gate on authorship instead.
func (s *postService) GetForAuthor(ctx context.Context, postID uint) (*models.Post, error) {
	return s.posts.GetByID(ctx, postID)
}

func (s *postService) Create(ctx context.Context, authorID uint, input CreatePostInput) (*models.Post, error) {
	if err := validatePostInput(input.Title, input.Text); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:      strings.TrimSpace(input.Title),
		Text:       input.Text,
		ImageURL:   strings.TrimSpace(input.ImageURL),
		AuthorID:   authorID,
		CategoryID: input.CategoryID,
		LocationID: input.LocationID,
	}
	if input.PubDate != nil {
		post.PubDate = *input.PubDate
	} else {
		post.PubDate = time.Now()
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.posts.GetByID(ctx, post.ID)
}

func (s *postService) Update(ctx context.Context, postID, callerID uint, input UpdatePostInput) (*models.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.IsAuthor(callerID) {
		return nil, models.NewForbiddenError("Only the author can edit this post")
	}
	if err := validatePostInput(input.Title, input.Text); err != nil {
		return nil, err
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Text = input.Text
	post.ImageURL = strings.TrimSpace(input.ImageURL)
	post.CategoryID = input.CategoryID
	post.LocationID = input.LocationID
	if input.PubDate != nil {
		post.PubDate = *input.PubDate
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.posts.GetByID(ctx, post.ID)
}

func (s *postService) Delete(ctx context.Context, postID, callerID uint) error {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !post.IsAuthor(callerID) {
		return models.NewForbiddenError("Only the author can delete this post")
	}
	return s.posts.Delete(ctx, postID)
}

func validatePostInput(title, text string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > 256 {
		return models.NewValidationError("Title must not exceed 256 characters")
	}
	if strings.TrimSpace(text) == "" {
		return models.NewValidationError("Text is required")
	}
	return nil
}
