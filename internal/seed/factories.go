// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"blogicum/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. The password is
// always "Password123!?" so seeded accounts are usable in development.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123!?"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:     gofakeit.Email(),
		Password:  string(hashed),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Bio:       gofakeit.Sentence(10),
	}
	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateCategory constructs and persists a category with a slug derived
// from its title.
func (f *Factory) CreateCategory(overrides ...func(*models.Category)) (*models.Category, error) {
	title := gofakeit.BuzzWord() + " " + gofakeit.Noun()
	category := &models.Category{
		Title:       title,
		Description: gofakeit.Sentence(12),
		Slug:        slugify(title) + fmt.Sprintf("-%d", gofakeit.Number(100, 999)),
		IsPublished: true,
	}
	for _, override := range overrides {
		override(category)
	}

	if err := f.db.Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// CreateLocation constructs and persists a location.
func (f *Factory) CreateLocation(overrides ...func(*models.Location)) (*models.Location, error) {
	location := &models.Location{
		Name:        gofakeit.City(),
		IsPublished: true,
	}
	for _, override := range overrides {
		override(location)
	}

	if err := f.db.Create(location).Error; err != nil {
		return nil, err
	}
	return location, nil
}

// CreatePost constructs and persists a post by the given author.
// Publication dates are spread over the past 90 days.
func (f *Factory) CreatePost(author *models.User, category *models.Category, location *models.Location, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Title:       gofakeit.Sentence(5),
		Text:        gofakeit.Paragraph(2, 4, 8, "\n\n"),
		ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		PubDate:     randomPastTime(f.rng, 90),
		IsPublished: true,
		AuthorID:    author.ID,
	}
	if category != nil {
		post.CategoryID = &category.ID
	}
	if location != nil {
		post.LocationID = &location.ID
	}
	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a comment by the given author.
func (f *Factory) CreateComment(author *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Text:     gofakeit.Sentence(gofakeit.Number(5, 25)),
		AuthorID: author.ID,
		PostID:   post.ID,
	}
	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// WithFuturePubDate schedules a post up to maxDays into the future.
func WithFuturePubDate(maxDays int) func(*models.Post) {
	return func(p *models.Post) {
		days := gofakeit.Number(1, maxDays)
		p.PubDate = time.Now().Add(time.Duration(days) * 24 * time.Hour)
	}
}

// WithUnpublished marks a post as a draft.
func WithUnpublished() func(*models.Post) {
	return func(p *models.Post) {
		p.IsPublished = false
	}
}

func randomPastTime(rng *rand.Rand, maxDays int) time.Time {
	daysBack := rng.Intn(maxDays)
	hoursBack := rng.Intn(24)
	minsBack := rng.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
