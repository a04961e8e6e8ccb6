package service

import (
	"context"
	"testing"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCreateCategoryDerivesSlug(t *testing.T) {
	repo := noopCategoryRepo()
	var created *models.Category
	repo.createFn = func(_ context.Context, category *models.Category) error {
		category.ID = 1
		created = category
		return nil
	}
	svc := NewCategoryService(repo)

	cat, err := svc.CreateCategory(context.Background(), CategoryInput{Name: "Web Development"})
	require.NoError(t, err)
	assert.Equal(t, "web-development", cat.Slug)
	assert.Equal(t, created, cat)
}

func TestCreateCategoryValidation(t *testing.T) {
	svc := NewCategoryService(noopCategoryRepo())

	_, err := svc.CreateCategory(context.Background(), CategoryInput{Name: "  "})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	repo := noopCategoryRepo()
	repo.createFn = func(_ context.Context, _ *models.Category) error {
		return gorm.ErrDuplicatedKey
	}
	svc := NewCategoryService(repo)

	_, err := svc.CreateCategory(context.Background(), CategoryInput{Name: "Tech"})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	repo := noopCategoryRepo()
	repo.deleteFn = func(_ context.Context, _ uint) error { return gorm.ErrRecordNotFound }
	svc := NewCategoryService(repo)

	err := svc.DeleteCategory(context.Background(), 7)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}
