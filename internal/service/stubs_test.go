package service

import (
	"context"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"
	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/repository"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn        func(context.Context, *models.Post, []uint) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	getBySlugFn     func(context.Context, string) (*models.Post, error)
	listFn          func(context.Context, repository.PostListFilter) ([]models.Post, int64, error)
	updateFn        func(context.Context, *models.Post, []uint, bool) error
	deleteFn        func(context.Context, uint) error
	countByStatusFn func(context.Context) (map[string]int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post, tagIDs []uint) error {
	return s.createFn(ctx, post, tagIDs)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *postRepoStub) List(ctx context.Context, filter repository.PostListFilter) ([]models.Post, int64, error) {
	return s.listFn(ctx, filter)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post, tagIDs []uint, reconcileTags bool) error {
	return s.updateFn(ctx, post, tagIDs, reconcileTags)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return s.countByStatusFn(ctx)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:    func(_ context.Context, _ *models.Post, _ []uint) error { return nil },
		getByIDFn:   func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		getBySlugFn: func(_ context.Context, _ string) (*models.Post, error) { return &models.Post{}, nil },
		listFn: func(_ context.Context, _ repository.PostListFilter) ([]models.Post, int64, error) {
			return nil, 0, nil
		},
		updateFn: func(_ context.Context, _ *models.Post, _ []uint, _ bool) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
		countByStatusFn: func(_ context.Context) (map[string]int64, error) {
			return map[string]int64{}, nil
		},
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	createFn    func(context.Context, *models.Category) error
	getByIDFn   func(context.Context, uint) (*models.Category, error)
	getBySlugFn func(context.Context, string) (*models.Category, error)
	listFn      func(context.Context) ([]models.Category, error)
	updateFn    func(context.Context, *models.Category) error
	deleteFn    func(context.Context, uint) error
}

func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	return s.createFn(ctx, category)
}
func (s *categoryRepoStub) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.getByIDFn(ctx, id)
}
func (s *categoryRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) Update(ctx context.Context, category *models.Category) error {
	return s.updateFn(ctx, category)
}
func (s *categoryRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		createFn:    func(_ context.Context, _ *models.Category) error { return nil },
		getByIDFn:   func(_ context.Context, _ uint) (*models.Category, error) { return &models.Category{}, nil },
		getBySlugFn: func(_ context.Context, _ string) (*models.Category, error) { return &models.Category{}, nil },
		listFn:      func(_ context.Context) ([]models.Category, error) { return nil, nil },
		updateFn:    func(_ context.Context, _ *models.Category) error { return nil },
		deleteFn:    func(_ context.Context, _ uint) error { return nil },
	}
}

// tagRepoStub is a stub for repository.TagRepository.
type tagRepoStub struct {
	createFn    func(context.Context, *models.Tag) error
	getByIDFn   func(context.Context, uint) (*models.Tag, error)
	getBySlugFn func(context.Context, string) (*models.Tag, error)
	listFn      func(context.Context) ([]models.Tag, error)
	updateFn    func(context.Context, *models.Tag) error
	deleteFn    func(context.Context, uint) error
	existAllFn  func(context.Context, []uint) (bool, error)
}

func (s *tagRepoStub) Create(ctx context.Context, tag *models.Tag) error {
	return s.createFn(ctx, tag)
}
func (s *tagRepoStub) GetByID(ctx context.Context, id uint) (*models.Tag, error) {
	return s.getByIDFn(ctx, id)
}
func (s *tagRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Tag, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *tagRepoStub) List(ctx context.Context) ([]models.Tag, error) {
	return s.listFn(ctx)
}
func (s *tagRepoStub) Update(ctx context.Context, tag *models.Tag) error {
	return s.updateFn(ctx, tag)
}
func (s *tagRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *tagRepoStub) ExistAll(ctx context.Context, ids []uint) (bool, error) {
	return s.existAllFn(ctx, ids)
}

func noopTagRepo() *tagRepoStub {
	return &tagRepoStub{
		createFn:    func(_ context.Context, _ *models.Tag) error { return nil },
		getByIDFn:   func(_ context.Context, _ uint) (*models.Tag, error) { return &models.Tag{}, nil },
		getBySlugFn: func(_ context.Context, _ string) (*models.Tag, error) { return &models.Tag{}, nil },
		listFn:      func(_ context.Context) ([]models.Tag, error) { return nil, nil },
		updateFn:    func(_ context.Context, _ *models.Tag) error { return nil },
		deleteFn:    func(_ context.Context, _ uint) error { return nil },
		existAllFn:  func(_ context.Context, _ []uint) (bool, error) { return true, nil },
	}
}
