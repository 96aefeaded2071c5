package server

import (
	"github.com/gofiber/fiber/v2"

	"blogicum/internal/models"
)

type commentInput struct {
	Text string `json:"text"`
}

// AddComment handles POST /posts/:id/comment
// On success the client is bounced back to the post page, where the new
// comment appears at the bottom of the thread.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var input commentInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.commentService.Add(c.Context(), postID, currentUserID(c), input.Text); err != nil {
		return respondAppError(c, err)
	}
	return s.redirectToPost(c, postID)
}

// EditCommentPage handles GET /posts/:id/edit_comment/:commentId
func (s *Server) EditCommentPage(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.Get(c.Context(), postID, commentID)
	if err != nil {
		return respondAppError(c, err)
	}
	if !comment.IsAuthor(currentUserID(c)) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only the author can edit this comment"))
	}

	return c.JSON(fiber.Map{
		"comment": comment,
		"form":    fiber.Map{"text": comment.Text},
	})
}

// EditComment handles POST /posts/:id/edit_comment/:commentId
func (s *Server) EditComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	var input commentInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if _, err := s.commentService.Update(c.Context(), postID, commentID, currentUserID(c), input.Text); err != nil {
		return respondAppError(c, err)
	}
	return s.redirectToPost(c, postID)
}

// DeleteCommentPage handles GET /posts/:id/delete_comment/:commentId
// The confirmation context carries the comment but no form.
func (s *Server) DeleteCommentPage(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.Get(c.Context(), postID, commentID)
	if err != nil {
		return respondAppError(c, err)
	}
	if !comment.IsAuthor(currentUserID(c)) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Only the author can delete this comment"))
	}

	return c.JSON(fiber.Map{"comment": comment})
}

// DeleteComment handles POST /posts/:id/delete_comment/:commentId
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	commentID, err := s.parseID(c, "commentId")
	if err != nil {
		return nil
	}

	if err := s.commentService.Delete(c.Context(), postID, commentID, currentUserID(c)); err != nil {
		return respondAppError(c, err)
	}
	return s.redirectToPost(c, postID)
}
