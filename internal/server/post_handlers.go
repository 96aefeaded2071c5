package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"blogicum/internal/models"
	"blogicum/internal/service"
)

// GetPost handles GET /posts/:id
// The page context is the post, its comments oldest first, and an empty
// comment form. Posts hidden from the viewer are a 404.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	detail, err := s.postService.GetDetail(c.Context(), postID, currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"post":     detail.Post,
		"comments": detail.Comments,
		"form":     fiber.Map{"text": ""},
	})
}

// CreatePostPage handles GET /posts/create
// Serves the blank form context plus the selectable categories and
// locations.
func (s *Server) CreatePostPage(c *fiber.Ctx) error {
	categories, err := s.categoryRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}
	locations, err := s.locationRepo.List(c.Context())
	if err != nil {
		return respondAppError(c, err)
	}

	// Only published refs are selectable in the form.
	published := categories[:0]
	for _, cat := range categories {
		if cat.IsPublished {
			published = append(published, cat)
		}
	}
	publishedLocs := locations[:0]
	for _, loc := range locations {
		if loc.IsPublished {
			publishedLocs = append(publishedLocs, loc)
		}
	}

	return c.JSON(fiber.Map{
		"form":       fiber.Map{"title": "", "text": "", "image_url": "", "pub_date": nil, "category_id": nil, "location_id": nil},
		"categories": published,
		"locations":  publishedLocs,
	})
}

// CreatePost handles POST /posts/create
// On success the client is redirected to the author's profile.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var input service.CreatePostInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	if _, err := s.postService.Create(c.Context(), userID, input); err != nil {
		return respondAppError(c, err)
	}

	author, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Redirect("/profile/"+author.Username, fiber.StatusFound)
}

// EditPostPage handles GET /posts/:id/edit
// A non-author asking for the edit form is bounced to the post instead
// of being told no.
func (s *Server) EditPostPage(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetForAuthor(c.Context(), postID)
	if err != nil {
		return respondAppError(c, err)
	}
	if !post.IsAuthor(currentUserID(c)) {
		return s.redirectToPost(c, postID)
	}

	return c.JSON(fiber.Map{
		"form": fiber.Map{
			"title":       post.Title,
			"text":        post.Text,
			"image_url":   post.ImageURL,
			"pub_date":    post.PubDate,
			"category_id": post.CategoryID,
			"location_id": post.LocationID,
		},
		"post": post,
	})
}

// EditPost handles POST /posts/:id/edit
// Non-authors get the same redirect as the form page, never a 403.
func (s *Server) EditPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var input service.UpdatePostInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.postService.Update(c.Context(), postID, currentUserID(c), input); err != nil {
		if appErr, ok := err.(*models.AppError); ok && appErr.Code == models.CodeForbidden {
			return s.redirectToPost(c, postID)
		}
		return respondAppError(c, err)
	}
	return s.redirectToPost(c, postID)
}

// DeletePostPage handles GET /posts/:id/delete
// Shows the post about to be removed. Unlike edit, a non-author here
// gets a hard 403.
func (s *Server) DeletePostPage(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetForAuthor(c.Context(), postID)
	if err != nil {
		return respondAppError(c, err)
	}
	if !post.IsAuthor(currentUserID(c)) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only the author can delete this post"))
	}

	return c.JSON(fiber.Map{"post": post})
}

// DeletePost handles POST /posts/:id/delete
// Removes the post and its comments, then sends the client home.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.Context(), postID, currentUserID(c)); err != nil {
		return respondAppError(c, err)
	}
	return c.Redirect("/", fiber.StatusFound)
}

func (s *Server) redirectToPost(c *fiber.Ctx, postID uint) error {
	return c.Redirect(fmt.Sprintf("/posts/%d", postID), fiber.StatusFound)
}
