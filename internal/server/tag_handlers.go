package server

import (
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type tagRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// ListTags handles GET /api/blog/tags
func (s *Server) ListTags(c *fiber.Ctx) error {
	tags, err := s.tagService.ListTags(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"data": tags})
}

// GetTag handles GET /api/blog/tags/:id
func (s *Server) GetTag(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	tag, err := s.tagService.GetTag(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"data": tag})
}

// CreateTag handles POST /api/blog/tags
func (s *Server) CreateTag(c *fiber.Ctx) error {
	var req tagRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tag, err := s.tagService.CreateTag(c.Context(), service.TagInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": tag})
}

// UpdateTag handles PUT /api/blog/tags/:id
func (s *Server) UpdateTag(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req tagRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	tag, err := s.tagService.UpdateTag(c.Context(), id, service.TagInput{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"data": tag})
}

// DeleteTag handles DELETE /api/blog/tags/:id
func (s *Server) DeleteTag(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.tagService.DeleteTag(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Tag deleted successfully"})
}
