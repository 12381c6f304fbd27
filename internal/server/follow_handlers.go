package server

import (
	"github.com/gofiber/fiber/v2"

	"plume/internal/models"
)

// FollowUser handles POST /api/users/:username/follow. Re-following and
// self-follows succeed without effect.
func (s *Server) FollowUser(c *fiber.Ctx) error {
	if err := s.followService.Follow(c.Context(), s.viewerID(c), c.Params("username")); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UnfollowUser handles DELETE /api/users/:username/follow
func (s *Server) UnfollowUser(c *fiber.Ctx) error {
	if err := s.followService.Unfollow(c.Context(), s.viewerID(c), c.Params("username")); err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetMyFollowing handles GET /api/me/following
func (s *Server) GetMyFollowing(c *fiber.Ctx) error {
	users, err := s.followService.Following(c.Context(), s.viewerID(c))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"following": users})
}
