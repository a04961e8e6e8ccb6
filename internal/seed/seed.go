// Package seed provides helpers to create demo blog content. These helpers
// are intended for development and testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"github.com/Brooktek/Zeme-Blog-Library-sub000/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls how much content the seeder generates.
type Options struct {
	Categories int
	Tags       int
	Posts      int
	// MaxDays spreads post creation dates over the past N days.
	MaxDays int
}

// Seeder persists generated blog content.
type Seeder struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	if opts.Categories <= 0 {
		opts.Categories = 5
	}
	if opts.Tags <= 0 {
		opts.Tags = 12
	}
	if opts.Posts <= 0 {
		opts.Posts = 40
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	return &Seeder{
		db:   db,
		opts: opts,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll truncates all blog tables.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.PostTag{}, &models.Post{}, &models.Tag{}, &models.Category{},
	} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}
	return nil
}

// Run generates categories, tags and posts with realistic relations.
func (s *Seeder) Run() error {
	categories, err := s.seedCategories()
	if err != nil {
		return err
	}
	tags, err := s.seedTags()
	if err != nil {
		return err
	}
	return s.seedPosts(categories, tags)
}

func (s *Seeder) seedCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0, s.opts.Categories)
	for i := 0; i < s.opts.Categories; i++ {
		name := uniqueName(func() string { return gofakeit.BuzzWord() }, func(n string) bool {
			for _, c := range categories {
				if c.Slug == models.Slugify(n) {
					return true
				}
			}
			return false
		})
		category := models.Category{
			Name:        titleCase(name),
			Slug:        models.Slugify(name),
			Description: gofakeit.Sentence(8),
		}
		if err := s.db.Create(&category).Error; err != nil {
			return nil, fmt.Errorf("failed to seed category: %w", err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (s *Seeder) seedTags() ([]models.Tag, error) {
	tags := make([]models.Tag, 0, s.opts.Tags)
	for i := 0; i < s.opts.Tags; i++ {
		name := uniqueName(func() string { return gofakeit.HackerNoun() }, func(n string) bool {
			for _, t := range tags {
				if t.Slug == models.Slugify(n) {
					return true
				}
			}
			return false
		})
		tag := models.Tag{Name: name, Slug: models.Slugify(name)}
		if err := s.db.Create(&tag).Error; err != nil {
			return nil, fmt.Errorf("failed to seed tag: %w", err)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

func (s *Seeder) seedPosts(categories []models.Category, tags []models.Tag) error {
	for i := 0; i < s.opts.Posts; i++ {
		title := gofakeit.Sentence(6)
		title = strings.TrimSuffix(title, ".")
		content := gofakeit.Paragraph(4, 8, 60, "\n\n")

		status := models.StatusPublished
		switch s.rng.Intn(10) {
		case 0:
			status = models.StatusDraft
		case 1:
			status = models.StatusArchived
		}

		post := models.Post{
			Title:       title,
			Slug:        fmt.Sprintf("%s-%d", models.Slugify(title), i),
			Excerpt:     gofakeit.Sentence(15),
			Content:     content,
			Status:      status,
			ReadingTime: models.EstimateReadingTime(content),
			CreatedAt:   s.spreadDate(),
		}
		if len(categories) > 0 && s.rng.Intn(5) > 0 {
			post.CategoryID = &categories[s.rng.Intn(len(categories))].ID
		}
		if status != models.StatusDraft {
			publishedAt := post.CreatedAt.Add(time.Duration(s.rng.Intn(48)) * time.Hour)
			post.PublishedAt = &publishedAt
		}

		if err := s.db.Create(&post).Error; err != nil {
			return fmt.Errorf("failed to seed post: %w", err)
		}

		// Attach 0-4 distinct tags.
		for _, idx := range s.rng.Perm(len(tags))[:s.rng.Intn(min(5, len(tags)+1))] {
			relation := models.PostTag{PostID: post.ID, TagID: tags[idx].ID}
			if err := s.db.Create(&relation).Error; err != nil {
				return fmt.Errorf("failed to seed post tag: %w", err)
			}
		}
	}
	return nil
}

func (s *Seeder) spreadDate() time.Time {
	daysBack := s.rng.Intn(s.opts.MaxDays)
	hoursBack := s.rng.Intn(24)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour)
}

// uniqueName keeps drawing from gen until taken reports a fresh value,
// falling back to a suffixed name after a few tries.
func uniqueName(gen func() string, taken func(string) bool) string {
	for i := 0; i < 10; i++ {
		name := gen()
		if !taken(name) {
			return name
		}
	}
	return fmt.Sprintf("%s %d", gen(), time.Now().UnixNano()%1000)
}

// titleCase capitalizes the first letter of every space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
