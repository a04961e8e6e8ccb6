// Package service contains the business logic between HTTP handlers and
// repositories.
package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/cache"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/repository"

	"gorm.io/gorm"
)

const (
	maxTitleLen   = 300
	maxContentLen = 100000
	maxExcerptLen = 500
)

type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

type CreatePostInput struct {
	Title            string
	Slug             string
	Excerpt          string
	Content          string
	FeaturedImageURL string
	Status           string
	MetaTitle        string
	MetaDescription  string
	CategoryID       *uint
	TagIDs           []uint
}

type UpdatePostInput struct {
	PostID           uint
	Title            string
	Slug             string
	Excerpt          string
	Content          string
	FeaturedImageURL string
	Status           string
	MetaTitle        string
	MetaDescription  string
	CategoryID       *uint
	// TagIDs replaces the post's tag set when ReconcileTags is set. An
	// empty-but-present list clears every relation; an absent list leaves
	// them untouched.
	TagIDs        []uint
	ReconcileTags bool
}

type ListPostsInput struct {
	Status       string
	CategorySlug string
	TagSlug      string
	Limit        int
	Offset       int
}

func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

func (s *PostService) validateCommon(ctx context.Context, title, content, status string, categoryID *uint, tagIDs []uint) error {
	if strings.TrimSpace(title) == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 300 characters)")
	}
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxContentLen {
		return models.NewValidationError("Content too long (max 100000 characters)")
	}
	if !models.ValidStatus(status) {
		return models.NewValidationError("Invalid status, must be draft, published or archived")
	}

	if categoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, *categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewValidationError("Category does not exist")
			}
			return err
		}
	}

	if len(tagIDs) > 0 {
		ok, err := s.tagRepo.ExistAll(ctx, tagIDs)
		if err != nil {
			return err
		}
		if !ok {
			return models.NewValidationError("One or more tags do not exist")
		}
	}
	return nil
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	status := in.Status
	if status == "" {
		status = models.StatusDraft
	}
	if err := s.validateCommon(ctx, in.Title, in.Content, status, in.CategoryID, in.TagIDs); err != nil {
		return nil, err
	}

	slug := in.Slug
	if slug == "" {
		slug = models.Slugify(in.Title)
	}
	if slug == "" {
		return nil, models.NewValidationError("Slug could not be derived from title")
	}

	post := &models.Post{
		Title:           in.Title,
		Slug:            slug,
		Excerpt:         truncate(in.Excerpt, maxExcerptLen),
		Content:         in.Content,
		CoverImageURL:   in.FeaturedImageURL,
		Status:          status,
		ReadingTime:     models.EstimateReadingTime(in.Content),
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		CategoryID:      in.CategoryID,
	}
	if status == models.StatusPublished {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}

	if err := s.postRepo.Create(ctx, post, in.TagIDs); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, models.NewConflictError("A post with this slug already exists")
		}
		return nil, err
	}

	// A fresh post changes the front-page listing and the stats counts.
	cache.InvalidatePost(ctx, post.ID, post.Slug)

	return s.postRepo.GetByID(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	var cached models.Post
	if cache.GetJSON(ctx, cache.PostKey(id), &cached) {
		return &cached, nil
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, err
	}

	cache.SetJSON(ctx, cache.PostKey(id), post, cache.PostTTL)
	return post, nil
}

// GetPublishedPostBySlug is the public read path. Drafts and archived posts
// are indistinguishable from missing ones.
func (s *PostService) GetPublishedPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var cached models.Post
	if cache.GetJSON(ctx, cache.PostSlugKey(slug), &cached) {
		return &cached, nil
	}

	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", slug)
		}
		return nil, err
	}
	if post.Status != models.StatusPublished {
		return nil, models.NewNotFoundError("Post", slug)
	}

	cache.SetJSON(ctx, cache.PostSlugKey(slug), post, cache.PostTTL)
	return post, nil
}

func (s *PostService) ListPosts(ctx context.Context, in ListPostsInput) ([]models.Post, int64, error) {
	status := in.Status
	if status == "" {
		status = models.StatusPublished
	}
	if status != "all" && !models.ValidStatus(status) {
		return nil, 0, models.NewValidationError("Invalid status filter")
	}
	if status == "all" {
		status = ""
	}

	limit := in.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	offset := in.Offset
	if offset < 0 {
		offset = 0
	}

	// The default anonymous listing is the hot path; everything else goes
	// straight to the database.
	frontPage := status == models.StatusPublished &&
		in.CategorySlug == "" && in.TagSlug == "" && limit == 10 && offset == 0
	if frontPage {
		var cached cachedPostList
		if cache.GetJSON(ctx, cache.FrontPageKey(), &cached) {
			return cached.Posts, cached.Total, nil
		}
	}

	posts, total, err := s.postRepo.List(ctx, repository.PostListFilter{
		Status:       status,
		CategorySlug: in.CategorySlug,
		TagSlug:      in.TagSlug,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, 0, err
	}

	if frontPage {
		cache.SetJSON(ctx, cache.FrontPageKey(), cachedPostList{Posts: posts, Total: total}, cache.ListTTL)
	}
	return posts, total, nil
}

type cachedPostList struct {
	Posts []models.Post `json:"posts"`
	Total int64         `json:"total"`
}

func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	existing, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", in.PostID)
		}
		return nil, err
	}
	oldSlug := existing.Slug

	status := in.Status
	if status == "" {
		status = existing.Status
	}
	if err := s.validateCommon(ctx, in.Title, in.Content, status, in.CategoryID, in.TagIDs); err != nil {
		return nil, err
	}

	slug := in.Slug
	if slug == "" {
		slug = models.Slugify(in.Title)
	}
	if slug == "" {
		return nil, models.NewValidationError("Slug could not be derived from title")
	}

	existing.Title = in.Title
	existing.Slug = slug
	existing.Excerpt = truncate(in.Excerpt, maxExcerptLen)
	existing.Content = in.Content
	existing.CoverImageURL = in.FeaturedImageURL
	existing.Status = status
	existing.ReadingTime = models.EstimateReadingTime(in.Content)
	existing.MetaTitle = in.MetaTitle
	existing.MetaDescription = in.MetaDescription
	existing.CategoryID = in.CategoryID

	// PublishedAt records the first publish and survives unpublishing.
	if status == models.StatusPublished && existing.PublishedAt == nil {
		now := time.Now().UTC()
		existing.PublishedAt = &now
	}

	// Save ignores the loaded associations; tag changes go through the
	// reconciler below.
	existing.Tags = nil
	existing.Category = nil

	if err := s.postRepo.Update(ctx, existing, in.TagIDs, in.ReconcileTags); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, models.NewConflictError("A post with this slug already exists")
		}
		return nil, err
	}

	cache.InvalidatePost(ctx, existing.ID, oldSlug)
	if existing.Slug != oldSlug {
		cache.Invalidate(ctx, cache.PostSlugKey(existing.Slug))
	}

	return s.postRepo.GetByID(ctx, existing.ID)
}

func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	existing, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Post", id)
		}
		return err
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidatePost(ctx, id, existing.Slug)
	return nil
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
