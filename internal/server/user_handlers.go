package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"plume/internal/cache"
	"plume/internal/models"
)

const profileCacheTTL = 10 * time.Minute

// profileView is the cached shape of a user's own profile.
type profileView struct {
	User      *models.User `json:"user"`
	Followers int64        `json:"followers"`
}

// GetMyProfile handles GET /api/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := s.viewerID(c)

	var view profileView
	err := cache.Aside(c.Context(), cache.UserKey(userID), &view, profileCacheTTL, func() error {
		user, err := s.userRepo.GetByID(c.Context(), userID)
		if err != nil {
			return err
		}
		followers, err := s.followRepo.CountFollowers(c.Context(), userID)
		if err != nil {
			return err
		}
		view = profileView{User: user, Followers: followers}
		return nil
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(view)
}

// UpdateMyProfile handles PUT /api/me. Only bio and avatar are editable.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	userID := s.viewerID(c)

	var req struct {
		Bio    *string `json:"bio"`
		Avatar *string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}

	if err := s.userRepo.Update(c.Context(), user); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	cache.Invalidate(c.Context(), cache.UserKey(userID))

	return c.JSON(user)
}
