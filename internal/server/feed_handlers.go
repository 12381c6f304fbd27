package server

import (
	"github.com/gofiber/fiber/v2"

	"plume/internal/models"
)

// GetFeed handles GET /api/feed. The global timeline is public; any page
// number is accepted and clamped into range.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	tp, err := s.feedService.GlobalTimeline(c.Context(), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(tp)
}

// GetFollowingFeed handles GET /api/feed/following. It returns the merged
// timeline of every author the viewer follows.
func (s *Server) GetFollowingFeed(c *fiber.Ctx) error {
	tp, err := s.feedService.FollowTimeline(c.Context(), s.viewerID(c), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(tp)
}

// GetGroupPosts handles GET /api/groups/:slug/posts.
func (s *Server) GetGroupPosts(c *fiber.Ctx) error {
	gt, err := s.feedService.GroupTimeline(c.Context(), c.Params("slug"), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(gt)
}

// GetUserPosts handles GET /api/users/:username/posts. The Following flag in
// the response reflects the requesting viewer when authenticated.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	at, err := s.feedService.AuthorTimeline(c.Context(), c.Params("username"), s.viewerID(c), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(at)
}

// InvalidateFeedCache handles POST /api/admin/cache/feed/invalidate. This is
// the only surface that evicts timeline snapshots before their TTL lapses.
func (s *Server) InvalidateFeedCache(c *fiber.Ctx) error {
	if err := s.feedService.InvalidateGlobalTimeline(c.Context()); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	return c.JSON(fiber.Map{"status": "invalidated"})
}
