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

type TagService struct {
	tagRepo repository.TagRepository
}

type TagInput struct {
	Name string
	Slug string
}

func NewTagService(tagRepo repository.TagRepository) *TagService {
	return &TagService{tagRepo: tagRepo}
}

func (s *TagService) CreateTag(ctx context.Context, in TagInput) (*models.Tag, error) {
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

	tag := &models.Tag{Name: in.Name, Slug: slug}
	if err := s.tagRepo.Create(ctx, tag); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, models.NewConflictError("A tag with this slug already exists")
		}
		return nil, err
	}
	cache.InvalidateTaxonomy(ctx)
	return tag, nil
}

func (s *TagService) GetTag(ctx context.Context, id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Tag", id)
		}
		return nil, err
	}
	return tag, nil
}

func (s *TagService) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.tagRepo.List(ctx)
}

func (s *TagService) UpdateTag(ctx context.Context, id uint, in TagInput) (*models.Tag, error) {
	tag, err := s.GetTag(ctx, id)
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

	tag.Name = in.Name
	tag.Slug = slug

	if err := s.tagRepo.Update(ctx, tag); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, models.NewConflictError("A tag with this slug already exists")
		}
		return nil, err
	}
	cache.InvalidateTaxonomy(ctx)
	return tag, nil
}

// DeleteTag removes the tag and detaches it from every post.
func (s *TagService) DeleteTag(ctx context.Context, id uint) error {
	if err := s.tagRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Tag", id)
		}
		return err
	}
	cache.InvalidateTaxonomy(ctx)
	return nil
}
