package server

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"plume/internal/cache"
	"plume/internal/models"
	"plume/internal/validation"
)

// groupCacheTTL bounds staleness of the cached group detail view. Group
// metadata changes rarely, so this can be generous compared to timelines.
const groupCacheTTL = 5 * time.Minute

// GetGroups handles GET /api/groups
func (s *Server) GetGroups(c *fiber.Ctx) error {
	groups, err := s.groupRepo.List(c.Context())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

// GetGroup handles GET /api/groups/:slug. Found groups are served
// cache-aside; misses in the store are never cached.
func (s *Server) GetGroup(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var group models.Group
	err := cache.Aside(c.Context(), cache.GroupKey(slug), &group, groupCacheTTL, func() error {
		g, err := s.groupRepo.GetBySlug(c.Context(), slug)
		if err != nil {
			return err
		}
		group = *g
		return nil
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(group)
}

// CreateGroup handles POST /api/admin/groups
func (s *Server) CreateGroup(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title is required"))
	}
	if err := validation.ValidateSlug(req.Slug); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	if existing, err := s.groupRepo.GetBySlug(c.Context(), req.Slug); err == nil && existing != nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewValidationError("Group slug already in use"))
	} else if err != nil && !models.IsNotFound(err) {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	group := &models.Group{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.groupRepo.Create(c.Context(), group); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	// A stale cached miss cannot exist, but an operator may be re-creating a
	// group whose detail view was cached before deletion.
	cache.Invalidate(c.Context(), cache.GroupKey(group.Slug))

	return c.Status(fiber.StatusCreated).JSON(group)
}
