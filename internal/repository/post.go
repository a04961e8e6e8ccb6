// Package repository contains the data access layer over GORM.
package repository

import (
	"context"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"

	"gorm.io/gorm"
)

// PostListFilter narrows List results. Zero values mean "no filter";
// Status defaults are applied by the service layer.
type PostListFilter struct {
	Status       string
	CategorySlug string
	TagSlug      string
	Limit        int
	Offset       int
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post, tagIDs []uint) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	List(ctx context.Context, filter PostListFilter) ([]models.Post, int64, error)
	Update(ctx context.Context, post *models.Post, tagIDs []uint, reconcileTags bool) error
	Delete(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context) (map[string]int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and its tag relations in one transaction, so a
// failed tag insert never leaves a tagless post behind.
func (r *postRepository) Create(ctx context.Context, post *models.Post, tagIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Category").Create(post).Error; err != nil {
			return err
		}
		return replaceTagRelations(tx, post.ID, tagIDs)
	})
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, filter PostListFilter) ([]models.Post, int64, error) {
	buildQuery := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&models.Post{})
		if filter.Status != "" {
			query = query.Where("posts.status = ?", filter.Status)
		}
		if filter.CategorySlug != "" {
			query = query.
				Joins("JOIN categories ON categories.id = posts.category_id").
				Where("categories.slug = ?", filter.CategorySlug)
		}
		if filter.TagSlug != "" {
			query = query.
				Joins("JOIN post_tags pt ON pt.post_id = posts.id").
				Joins("JOIN tags ON tags.id = pt.tag_id").
				Where("tags.slug = ?", filter.TagSlug)
		}
		return query
	}

	var total int64
	if err := buildQuery().Distinct("posts.id").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var posts []models.Post
	err := buildQuery().
		Distinct("posts.*").
		Preload("Category").
		Preload("Tags").
		Order("posts.published_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Update saves the post fields and, when reconcileTags is set, replaces the
// post's tag set with exactly tagIDs. When reconcileTags is false the
// relations are left untouched.
func (r *postRepository) Update(ctx context.Context, post *models.Post, tagIDs []uint, reconcileTags bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Tags", "Category").Save(post).Error; err != nil {
			return err
		}
		if !reconcileTags {
			return nil
		}
		return replaceTagRelations(tx, post.ID, tagIDs)
	})
}

// Delete removes the post and its join rows. The explicit join delete keeps
// behavior identical across databases without relying on FK cascade rules.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error
	})
}

func (r *postRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{
		models.StatusDraft:     0,
		models.StatusPublished: 0,
		models.StatusArchived:  0,
	}
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}

// replaceTagRelations makes the post's tag set exactly tagIDs. The
// delete-then-insert runs inside the caller's transaction, so readers never
// observe a half-reconciled set.
func replaceTagRelations(tx *gorm.DB, postID uint, tagIDs []uint) error {
	if err := tx.Where("post_id = ?", postID).Delete(&models.PostTag{}).Error; err != nil {
		return err
	}
	if len(tagIDs) == 0 {
		return nil
	}

	seen := make(map[uint]bool, len(tagIDs))
	relations := make([]models.PostTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		if seen[tagID] {
			continue
		}
		seen[tagID] = true
		relations = append(relations, models.PostTag{PostID: postID, TagID: tagID})
	}
	return tx.Create(&relations).Error
}
