package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"blogicum/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory sqlite database. The DSN is
// derived from the test name so parallel tests don't share state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Location{},
		&models.Post{},
		&models.Comment{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, slug string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{
		Title:       "Category " + slug,
		Slug:        slug,
		IsPublished: published,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func createPost(t *testing.T, db *gorm.DB, author *models.User, category *models.Category, pubDate time.Time, published bool) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       "post",
		Text:        "text",
		PubDate:     pubDate,
		IsPublished: published,
		AuthorID:    author.ID,
	}
	if category != nil {
		post.CategoryID = &category.ID
	}
	require.NoError(t, db.Create(post).Error)
	return post
}

func createComment(t *testing.T, db *gorm.DB, author *models.User, post *models.Post, text string) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		Text:     text,
		AuthorID: author.ID,
		PostID:   post.ID,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

func testCtx() context.Context {
	return context.Background()
}
