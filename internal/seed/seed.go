package seed

import (
	"fmt"
	"log/slog"

	"blogicum/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options controls the shape of a seeding run.
type Options struct {
	Users      int
	Categories int
	Locations  int
	Posts      int
}

// DefaultOptions returns a small but representative data set.
func DefaultOptions() Options {
	return Options{Users: 20, Categories: 6, Locations: 8, Posts: 120}
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll hard-deletes all seeded domain data. Order respects foreign keys.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{
		&models.Comment{},
		&models.Post{},
		&models.Category{},
		&models.Location{},
		&models.User{},
	} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	slog.Info("cleared existing data")
	return nil
}

// Run seeds users, categories, locations, posts, and comments. Roughly a
// tenth of the posts end up unpublished and another tenth future-dated,
// so the visibility rules have something to bite on.
func (s *Seeder) Run(opts Options) error {
	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("seeding users: %w", err)
		}
		users = append(users, user)
	}

	categories := make([]*models.Category, 0, opts.Categories)
	for i := 0; i < opts.Categories; i++ {
		category, err := s.factory.CreateCategory(func(c *models.Category) {
			// keep one category hidden to exercise the category filter
			c.IsPublished = i != 0
		})
		if err != nil {
			return fmt.Errorf("seeding categories: %w", err)
		}
		categories = append(categories, category)
	}

	locations := make([]*models.Location, 0, opts.Locations)
	for i := 0; i < opts.Locations; i++ {
		location, err := s.factory.CreateLocation()
		if err != nil {
			return fmt.Errorf("seeding locations: %w", err)
		}
		locations = append(locations, location)
	}

	for i := 0; i < opts.Posts; i++ {
		author := users[gofakeit.Number(0, len(users)-1)]
		category := categories[gofakeit.Number(0, len(categories)-1)]

		var location *models.Location
		if gofakeit.Bool() {
			location = locations[gofakeit.Number(0, len(locations)-1)]
		}

		var overrides []func(*models.Post)
		switch i % 10 {
		case 0:
			overrides = append(overrides, WithUnpublished())
		case 1:
			overrides = append(overrides, WithFuturePubDate(30))
		}

		post, err := s.factory.CreatePost(author, category, location, overrides...)
		if err != nil {
			return fmt.Errorf("seeding posts: %w", err)
		}

		for j := 0; j < gofakeit.Number(0, 6); j++ {
			commenter := users[gofakeit.Number(0, len(users)-1)]
			if _, err := s.factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("seeding comments: %w", err)
			}
		}
	}

	slog.Info("seeding complete",
		"users", opts.Users,
		"categories", opts.Categories,
		"locations", opts.Locations,
		"posts", opts.Posts)
	return nil
}
