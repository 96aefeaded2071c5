package server

import (
	"github.com/gofiber/fiber/v2"

	"blogicum/internal/middleware"
)

// HomeFeed handles GET /
// Returns publicly visible posts, newest publication first, with page
// metadata and per-post comment counts.
func (s *Server) HomeFeed(c *fiber.Ctx) error {
	middleware.FeedRequests.WithLabelValues("home").Inc()

	feed, err := s.feedService.HomeFeed(c.Context(), parsePage(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(feed)
}

// CategoryFeed handles GET /category/:slug
// An unknown or unpublished category is a 404, not an empty feed.
func (s *Server) CategoryFeed(c *fiber.Ctx) error {
	middleware.FeedRequests.WithLabelValues("category").Inc()

	slug := c.Params("slug")
	feed, err := s.feedService.CategoryFeed(c.Context(), slug, parsePage(c))
	if err != nil {
		return respondAppError(c, err)
	}
	return c.JSON(feed)
}
