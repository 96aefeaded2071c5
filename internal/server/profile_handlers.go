package server

import (
	"github.com/gofiber/fiber/v2"

	"blogicum/internal/models"
	"blogicum/internal/service"
)

// GetProfile handles GET /profile/:username
// The profile feed shows every post by the user, including unpublished
// and future-dated ones, to any viewer.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	username := c.Params("username")

	profile, err := s.profileService.GetProfile(c.Context(), username, parsePage(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(profile)
}

// EditProfilePage handles GET /edit-profile/:username
// The form is always the caller's own profile, whatever name is in the
// URL.
func (s *Server) EditProfilePage(c *fiber.Ctx) error {
	user, err := s.userRepo.GetByID(c.Context(), currentUserID(c))
	if err != nil {
		return respondAppError(c, err)
	}

	return c.JSON(fiber.Map{
		"form": fiber.Map{
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"bio":        user.Bio,
		},
	})
}

// EditProfile handles POST /edit-profile/:username
// Edits apply to the caller; the username segment cannot retarget them.
// On success the client is redirected to the (possibly renamed) profile.
func (s *Server) EditProfile(c *fiber.Ctx) error {
	var input service.UpdateProfileInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.profileService.UpdateProfile(c.Context(), currentUserID(c), input)
	if err != nil {
		return respondAppError(c, err)
	}
	return c.Redirect("/profile/"+user.Username, fiber.StatusFound)
}
