package server

import (
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// postRequest is the write payload for posts. TagIDs is a pointer so an
// absent tag_ids key can be told apart from an explicit empty list.
type postRequest struct {
	Title            string  `json:"title"`
	Slug             string  `json:"slug,omitempty"`
	Excerpt          string  `json:"excerpt,omitempty"`
	Content          string  `json:"content"`
	FeaturedImageURL string  `json:"featured_image_url,omitempty"`
	Status           string  `json:"status,omitempty"`
	MetaTitle        string  `json:"meta_title,omitempty"`
	MetaDescription  string  `json:"meta_description,omitempty"`
	CategoryID       *uint   `json:"category_id,omitempty"`
	TagIDs           *[]uint `json:"tag_ids,omitempty"`
}

// ListPosts handles GET /api/blog/posts
func (s *Server) ListPosts(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c, 10)

	posts, total, err := s.postService.ListPosts(ctx, service.ListPostsInput{
		Status:       c.Query("status"),
		CategorySlug: c.Query("category"),
		TagSlug:      c.Query("tag"),
		Limit:        page.Limit,
		Offset:       page.Offset,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"data":   posts,
		"total":  total,
		"limit":  page.Limit,
		"offset": page.Offset,
	})
}

// GetPost handles GET /api/blog/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"data": post})
}

// GetPostBySlug handles GET /api/blog/posts/slug/:slug
func (s *Server) GetPostBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid slug"))
	}

	post, err := s.postService.GetPublishedPostBySlug(c.Context(), slug)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"data": post})
}

// CreatePost handles POST /api/blog/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var tagIDs []uint
	if req.TagIDs != nil {
		tagIDs = *req.TagIDs
	}

	post, err := s.postService.CreatePost(c.Context(), service.CreatePostInput{
		Title:            req.Title,
		Slug:             req.Slug,
		Excerpt:          req.Excerpt,
		Content:          req.Content,
		FeaturedImageURL: req.FeaturedImageURL,
		Status:           req.Status,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
		CategoryID:       req.CategoryID,
		TagIDs:           tagIDs,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": post})
}

// UpdatePost handles PUT /api/blog/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	input := service.UpdatePostInput{
		PostID:           id,
		Title:            req.Title,
		Slug:             req.Slug,
		Excerpt:          req.Excerpt,
		Content:          req.Content,
		FeaturedImageURL: req.FeaturedImageURL,
		Status:           req.Status,
		MetaTitle:        req.MetaTitle,
		MetaDescription:  req.MetaDescription,
		CategoryID:       req.CategoryID,
	}
	if req.TagIDs != nil {
		input.TagIDs = *req.TagIDs
		input.ReconcileTags = true
	}

	post, err := s.postService.UpdatePost(c.Context(), input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"data": post})
}

// DeletePost handles DELETE /api/blog/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}
