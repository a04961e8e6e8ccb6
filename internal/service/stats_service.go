package service

import (
	"context"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/cache"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/repository"
)

// BlogStats is the admin dashboard summary.
type BlogStats struct {
	TotalPosts     int64 `json:"total_posts"`
	PublishedPosts int64 `json:"published_posts"`
	DraftPosts     int64 `json:"draft_posts"`
	ArchivedPosts  int64 `json:"archived_posts"`
	Categories     int64 `json:"categories"`
	Tags           int64 `json:"tags"`
}

type StatsService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
}

func NewStatsService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	tagRepo repository.TagRepository,
) *StatsService {
	return &StatsService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
	}
}

func (s *StatsService) GetStats(ctx context.Context) (*BlogStats, error) {
	var cached BlogStats
	if cache.GetJSON(ctx, cache.StatsKey(), &cached) {
		return &cached, nil
	}

	counts, err := s.postRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &BlogStats{
		PublishedPosts: counts[models.StatusPublished],
		DraftPosts:     counts[models.StatusDraft],
		ArchivedPosts:  counts[models.StatusArchived],
		Categories:     int64(len(categories)),
		Tags:           int64(len(tags)),
	}
	stats.TotalPosts = stats.PublishedPosts + stats.DraftPosts + stats.ArchivedPosts

	cache.SetJSON(ctx, cache.StatsKey(), stats, cache.StatsTTL)
	return stats, nil
}
