package service

import (
	"context"
	"strings"
	"time"

	"blogicum/internal/models"
	"blogicum/internal/repository"
)

// CommentService implements the comment lifecycle under a post.
type CommentService interface {
	Add(ctx context.Context, postID, authorID uint, text string) (*models.Comment, error)
	Get(ctx context.Context, postID, commentID uint) (*models.Comment, error)
	Update(ctx context.Context, postID, commentID, callerID uint, text string) (*models.Comment, error)
	Delete(ctx context.Context, postID, commentID, callerID uint) error
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

// NewCommentService returns a new CommentService implementation.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{comments: comments, posts: posts}
}

// Add attaches a comment to a post the caller can actually see.
func (s *commentService) Add(ctx context.Context, postID, authorID uint, text string) (*models.Comment, error) {
	if err := validateCommentText(text); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.VisibleTo(authorID, time.Now()) {
		return nil, models.NewNotFoundError("Post", postID)
	}

	comment := &models.Comment{
		Text:     strings.TrimSpace(text),
		AuthorID: authorID,
		PostID:   postID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.comments.GetByID(ctx, comment.ID)
}

// Get loads one comment, checking it actually belongs to the post in
// the URL. A mismatched pair reads as not found.
func (s *commentService) Get(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	comment, err := s.comments.GetByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, models.NewNotFoundError("Comment", commentID)
	}
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, postID, commentID, callerID uint, text string) (*models.Comment, error) {
	comment, err := s.Get(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if !comment.IsAuthor(callerID) {
		return nil, models.NewForbiddenError("Only the author can edit this comment")
	}
	if err := validateCommentText(text); err != nil {
		return nil, err
	}

	comment.Text = strings.TrimSpace(text)
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, postID, commentID, callerID uint) error {
	comment, err := s.Get(ctx, postID, commentID)
	if err != nil {
		return err
	}
	if !comment.IsAuthor(callerID) {
		return models.NewForbiddenError("Only the author can delete this comment")
	}
	return s.comments.Delete(ctx, comment.ID)
}

func validateCommentText(text string) error {
	if strings.TrimSpace(text) == "" {
		return models.NewValidationError("Comment text is required")
	}
	if len(text) > 4000 {
		return models.NewValidationError("Comment must not exceed 4000 characters")
	}
	return nil
}
