package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/cache"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

type CategoryInput struct {
	Name        string
	Slug        string
	Description string
}

func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, in CategoryInput) (*models.Category, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("Name is required")
	}
	slug := in.Slug
	if slug == "" {
		slug = models.Slugify(in.Name)
	}
	if slug == "" {
		return nil, models.NewValidationError("Slug could not be derived from name")
	}

	category := &models.Category{
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, models.NewConflictError("A category with this slug already exists")
		}
		return nil, err
	}
	cache.InvalidateTaxonomy(ctx)
	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Category", id)
		}
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, in CategoryInput) (*models.Category, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Name) == "" {
		return nil, models.NewValidationError("Name is required")
	}
	slug := in.Slug
	if slug == "" {
		slug = models.Slugify(in.Name)
	}

	category.Name = in.Name
	category.Slug = slug
	category.Description = in.Description

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, models.NewConflictError("A category with this slug already exists")
		}
		return nil, err
	}
	cache.InvalidateTaxonomy(ctx)
	return category, nil
}

// DeleteCategory removes the category; posts filed under it keep existing
// without a category.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Category", id)
		}
		return err
	}
	cache.InvalidateTaxonomy(ctx)
	return nil
}
