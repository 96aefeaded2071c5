package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blogicum/internal/config"
	"blogicum/internal/models"
	"blogicum/internal/repository"
	"blogicum/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "test-secret-key-for-unit-tests-only"

// newTestServer builds a Server over a per-test in-memory sqlite database
// with the full route table registered. Prometheus middleware is left out
// so repeated test setups don't fight over collector registration.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
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

	cfg := &config.Config{
		JWTSecret: testJWTSecret,
		Port:      "0",
		DBDriver:  "sqlite",
		PageSize:  10,
		Env:       "test",
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	locationRepo := repository.NewLocationRepository(db)

	s := &Server{
		config:         cfg,
		db:             db,
		userRepo:       userRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		categoryRepo:   categoryRepo,
		locationRepo:   locationRepo,
		feedService:    service.NewFeedService(postRepo, categoryRepo, cfg.PageSize),
		postService:    service.NewPostService(postRepo, commentRepo),
		commentService: service.NewCommentService(commentRepo, postRepo),
		profileService: service.NewProfileService(userRepo, postRepo, cfg.PageSize),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app, db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("Sup3r$ecret!pass"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, slug string, published bool) *models.Category {
	t.Helper()
	category := &models.Category{
		Title:       "Category " + slug,
		Slug:        slug,
		IsPublished: published,
	}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedPost(t *testing.T, db *gorm.DB, author *models.User, category *models.Category, pubDate time.Time, published bool) *models.Post {
	t.Helper()
	post := &models.Post{
		Title:       "a post",
		Text:        "some text",
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

func seedComment(t *testing.T, db *gorm.DB, author *models.User, post *models.Post, text string) *models.Comment {
	t.Helper()
	comment := &models.Comment{Text: text, AuthorID: author.ID, PostID: post.ID}
	require.NoError(t, db.Create(comment).Error)
	return comment
}

// bearerFor issues a valid token for the given user.
func bearerFor(t *testing.T, s *Server, user *models.User) string {
	t.Helper()
	token, err := s.generateToken(user.ID, user.Username)
	require.NoError(t, err)
	return "Bearer " + token
}

func jsonRequest(method, target string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = strings.NewReader(string(b))
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
