package service

import (
	"context"
	"testing"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsAggregates(t *testing.T) {
	postRepo := noopPostRepo()
	postRepo.countByStatusFn = func(_ context.Context) (map[string]int64, error) {
		return map[string]int64{
			models.StatusPublished: 4,
			models.StatusDraft:     2,
			models.StatusArchived:  1,
		}, nil
	}
	categoryRepo := noopCategoryRepo()
	categoryRepo.listFn = func(_ context.Context) ([]models.Category, error) {
		return []models.Category{{ID: 1}, {ID: 2}}, nil
	}
	tagRepo := noopTagRepo()
	tagRepo.listFn = func(_ context.Context) ([]models.Tag, error) {
		return []models.Tag{{ID: 1}, {ID: 2}, {ID: 3}}, nil
	}

	svc := NewStatsService(postRepo, categoryRepo, tagRepo)
	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), stats.TotalPosts)
	assert.Equal(t, int64(4), stats.PublishedPosts)
	assert.Equal(t, int64(2), stats.DraftPosts)
	assert.Equal(t, int64(1), stats.ArchivedPosts)
	assert.Equal(t, int64(2), stats.Categories)
	assert.Equal(t, int64(3), stats.Tags)
}
