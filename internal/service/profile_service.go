package service

import (
	"context"
	"strings"

	"blogicum/internal/cache"
	"blogicum/internal/models"
	"blogicum/internal/pagination"
	"blogicum/internal/repository"
	"blogicum/internal/validation"
)

// ProfilePage is one page of a user's profile: the user plus their
// posts, publication state included.
type ProfilePage struct {
	User  *models.User    `json:"user"`
	Posts []*models.Post  `json:"posts"`
	Page  pagination.Page `json:"page"`
}

// UpdateProfileInput carries the editable profile fields.
type UpdateProfileInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

// ProfileService implements public profile pages and self-service edits.
type ProfileService interface {
	GetProfile(ctx context.Context, username string, page int) (*ProfilePage, error)
	UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.User, error)
}

type profileService struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	pageSize int
}

// NewProfileService returns a new ProfileService implementation.
func NewProfileService(users repository.UserRepository, posts repository.PostRepository, pageSize int) ProfileService {
	return &profileService{users: users, posts: posts, pageSize: pageSize}
}

// GetProfile lists every post by the user, drafts and scheduled ones
// included, newest publication first. The profile page is the one feed
// that skips the visibility filter.
func (s *profileService) GetProfile(ctx context.Context, username string, page int) (*ProfilePage, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	total, err := s.posts.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	p := pagination.Paginate(total, s.pageSize, page)
	posts, err := s.posts.ListByAuthor(ctx, user.ID, p.Size, p.Offset())
	if err != nil {
		return nil, err
	}

	return &ProfilePage{User: user, Posts: posts, Page: p}, nil
}

// UpdateProfile edits the caller's own profile. The target is always the
// authenticated user, whatever the request claims.
func (s *profileService) UpdateProfile(ctx context.Context, userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldUsername := user.Username

	if input.Username != "" && input.Username != user.Username {
		if err := validation.ValidateUsername(input.Username); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Username = input.Username
	}
	if input.Email != "" && input.Email != user.Email {
		if err := validation.ValidateEmail(input.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = input.Email
	}
	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)
	user.Bio = strings.TrimSpace(input.Bio)

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	// The cached row under the old name is stale once the rename lands.
	if oldUsername != user.Username {
		cache.InvalidateUsername(ctx, oldUsername)
	}
	return user, nil
}
