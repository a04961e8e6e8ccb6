package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedTags(t *testing.T, db *gorm.DB, names ...string) []models.Tag {
	t.Helper()
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		tag := models.Tag{Name: name, Slug: models.Slugify(name)}
		require.NoError(t, db.Create(&tag).Error)
		tags = append(tags, tag)
	}
	return tags
}

func tagSlugs(post *models.Post) []string {
	slugs := make([]string, 0, len(post.Tags))
	for _, tag := range post.Tags {
		slugs = append(slugs, tag.Slug)
	}
	return slugs
}

func TestPostRepository_CreateWithTags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	tags := seedTags(t, db, "Go", "Testing")
	post := &models.Post{Title: "First", Slug: "first", Content: "hello world", Status: models.StatusDraft}

	// Duplicate IDs in the input collapse to a single relation.
	err := repo.Create(ctx, post, []uint{tags[0].ID, tags[1].ID, tags[0].ID})
	require.NoError(t, err)
	require.NotZero(t, post.ID)

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "testing"}, tagSlugs(got))

	var joinCount int64
	require.NoError(t, db.Model(&models.PostTag{}).Where("post_id = ?", post.ID).Count(&joinCount).Error)
	assert.Equal(t, int64(2), joinCount)
}

func TestPostRepository_CreateDuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Post{Title: "A", Slug: "same", Content: "x"}, nil))
	err := repo.Create(ctx, &models.Post{Title: "B", Slug: "same", Content: "y"}, nil)
	require.Error(t, err)
	assert.True(t, IsDuplicateKey(err))
}

func TestPostRepository_UpdateReconcilesTags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	tags := seedTags(t, db, "Go", "Testing", "Web")
	post := &models.Post{Title: "P", Slug: "p", Content: "c"}
	require.NoError(t, repo.Create(ctx, post, []uint{tags[0].ID, tags[1].ID}))

	// Replace the set: drop "testing", add "web".
	require.NoError(t, repo.Update(ctx, post, []uint{tags[0].ID, tags[2].ID}, true))
	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "web"}, tagSlugs(got))

	// Reconciling to the same set is a no-op in effect.
	require.NoError(t, repo.Update(ctx, post, []uint{tags[0].ID, tags[2].ID}, true))
	got, err = repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"go", "web"}, tagSlugs(got))

	// An empty set clears all relations.
	require.NoError(t, repo.Update(ctx, post, []uint{}, true))
	got, err = repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestPostRepository_UpdateWithoutReconcileKeepsTags(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	tags := seedTags(t, db, "Go")
	post := &models.Post{Title: "P", Slug: "p", Content: "c"}
	require.NoError(t, repo.Create(ctx, post, []uint{tags[0].ID}))

	post.Title = "P2"
	require.NoError(t, repo.Update(ctx, post, nil, false))

	got, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "P2", got.Title)
	assert.ElementsMatch(t, []string{"go"}, tagSlugs(got))
}

func TestPostRepository_DeleteCascadesJoinRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	tags := seedTags(t, db, "Go")
	post := &models.Post{Title: "P", Slug: "p", Content: "c"}
	require.NoError(t, repo.Create(ctx, post, []uint{tags[0].ID}))

	require.NoError(t, repo.Delete(ctx, post.ID))

	_, err := repo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var joinCount int64
	require.NoError(t, db.Model(&models.PostTag{}).Where("post_id = ?", post.ID).Count(&joinCount).Error)
	assert.Zero(t, joinCount)

	// The tag itself survives.
	var tagCount int64
	require.NoError(t, db.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.Equal(t, int64(1), tagCount)
}

func TestPostRepository_DeleteMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	err := repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPostRepository_ListFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	tech := models.Category{Name: "Tech", Slug: "tech"}
	life := models.Category{Name: "Life", Slug: "life"}
	require.NoError(t, db.Create(&tech).Error)
	require.NoError(t, db.Create(&life).Error)
	tags := seedTags(t, db, "Go", "Web")

	require.NoError(t, repo.Create(ctx, &models.Post{
		Title: "Go post", Slug: "go-post", Content: "c",
		Status: models.StatusPublished, CategoryID: &tech.ID,
	}, []uint{tags[0].ID}))
	require.NoError(t, repo.Create(ctx, &models.Post{
		Title: "Web post", Slug: "web-post", Content: "c",
		Status: models.StatusPublished, CategoryID: &life.ID,
	}, []uint{tags[0].ID, tags[1].ID}))
	require.NoError(t, repo.Create(ctx, &models.Post{
		Title: "Draft", Slug: "draft-post", Content: "c",
		Status: models.StatusDraft, CategoryID: &tech.ID,
	}, nil))

	tests := []struct {
		name          string
		filter        PostListFilter
		expectedSlugs []string
		expectedTotal int64
	}{
		{
			name:          "published only",
			filter:        PostListFilter{Status: models.StatusPublished, Limit: 10},
			expectedSlugs: []string{"go-post", "web-post"},
			expectedTotal: 2,
		},
		{
			name:          "by category",
			filter:        PostListFilter{Status: models.StatusPublished, CategorySlug: "tech", Limit: 10},
			expectedSlugs: []string{"go-post"},
			expectedTotal: 1,
		},
		{
			name:          "by tag",
			filter:        PostListFilter{Status: models.StatusPublished, TagSlug: "go", Limit: 10},
			expectedSlugs: []string{"go-post", "web-post"},
			expectedTotal: 2,
		},
		{
			name:          "drafts by category",
			filter:        PostListFilter{Status: models.StatusDraft, CategorySlug: "tech", Limit: 10},
			expectedSlugs: []string{"draft-post"},
			expectedTotal: 1,
		},
		{
			name:          "no match",
			filter:        PostListFilter{Status: models.StatusPublished, TagSlug: "missing", Limit: 10},
			expectedSlugs: []string{},
			expectedTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts, total, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, total)

			slugs := make([]string, 0, len(posts))
			for _, p := range posts {
				slugs = append(slugs, p.Slug)
			}
			assert.ElementsMatch(t, tt.expectedSlugs, slugs)
		})
	}
}

func TestPostRepository_ListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	for _, slug := range []string{"one", "two", "three"} {
		require.NoError(t, repo.Create(ctx, &models.Post{
			Title: slug, Slug: slug, Content: "c", Status: models.StatusPublished,
		}, nil))
	}

	posts, total, err := repo.List(ctx, PostListFilter{Status: models.StatusPublished, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, posts, 2)

	posts, total, err = repo.List(ctx, PostListFilter{Status: models.StatusPublished, Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, posts, 1)
}

func TestPostRepository_CountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Post{Title: "a", Slug: "a", Content: "c", Status: models.StatusPublished}, nil))
	require.NoError(t, repo.Create(ctx, &models.Post{Title: "b", Slug: "b", Content: "c", Status: models.StatusPublished}, nil))
	require.NoError(t, repo.Create(ctx, &models.Post{Title: "d", Slug: "d", Content: "c", Status: models.StatusDraft}, nil))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[models.StatusPublished])
	assert.Equal(t, int64(1), counts[models.StatusDraft])
	assert.Equal(t, int64(0), counts[models.StatusArchived])
}

func TestPostRepository_CreateRollsBackOnTagError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "posts"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "post_tags"`)).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "post_tags"`)).
		WillReturnError(errors.New("insert failed"))
	mock.ExpectRollback()

	err := repo.Create(ctx, &models.Post{Title: "T", Slug: "t", Content: "c"}, []uint{5})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
