package repository

import (
	"testing"
	"time"

	"blogicum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVisibleFiltersHiddenPosts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	now := time.Now()

	author := createUser(t, db, "author")
	visible := createCategory(t, db, "open", true)
	hidden := createCategory(t, db, "closed", false)

	shown := createPost(t, db, author, visible, now.Add(-time.Hour), true)
	createPost(t, db, author, visible, now.Add(-time.Hour), false)       // draft
	createPost(t, db, author, visible, now.Add(time.Hour), true)         // future
	createPost(t, db, author, hidden, now.Add(-time.Hour), true)         // hidden category
	createPost(t, db, author, nil, now.Add(-time.Hour), true)            // no category

	posts, err := repo.ListVisible(testCtx(), now, nil, 10, 0)
	require.NoError(t, err)

	require.Len(t, posts, 1)
	assert.Equal(t, shown.ID, posts[0].ID)

	count, err := repo.CountVisible(testCtx(), now, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestListVisibleOrderAndCategoryScope(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	now := time.Now()

	author := createUser(t, db, "author")
	travel := createCategory(t, db, "travel", true)
	food := createCategory(t, db, "food", true)

	older := createPost(t, db, author, travel, now.Add(-48*time.Hour), true)
	newer := createPost(t, db, author, travel, now.Add(-time.Hour), true)
	createPost(t, db, author, food, now.Add(-2*time.Hour), true)

	posts, err := repo.ListVisible(testCtx(), now, &travel.ID, 10, 0)
	require.NoError(t, err)

	require.Len(t, posts, 2)
	assert.Equal(t, newer.ID, posts[0].ID, "newest publication first")
	assert.Equal(t, older.ID, posts[1].ID)

	count, err := repo.CountVisible(testCtx(), now, &travel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCommentCountsAnnotation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	now := time.Now()

	author := createUser(t, db, "author")
	reader := createUser(t, db, "reader")
	category := createCategory(t, db, "open", true)
	post := createPost(t, db, author, category, now.Add(-time.Hour), true)

	createComment(t, db, reader, post, "one")
	createComment(t, db, reader, post, "two")
	gone := createComment(t, db, reader, post, "three")
	require.NoError(t, db.Delete(gone).Error)

	posts, err := repo.ListVisible(testCtx(), now, nil, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 2, posts[0].CommentsCount, "soft-deleted comments don't count")

	got, err := repo.GetByID(testCtx(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.CommentsCount)
}

func TestGetByIDPreloadsRefs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	now := time.Now()

	author := createUser(t, db, "author")
	category := createCategory(t, db, "open", true)
	post := createPost(t, db, author, category, now.Add(-time.Hour), true)

	got, err := repo.GetByID(testCtx(), post.ID)
	require.NoError(t, err)

	assert.Equal(t, "author", got.Author.Username)
	require.NotNil(t, got.Category)
	assert.Equal(t, "open", got.Category.Slug)
}

func TestGetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)

	_, err := repo.GetByID(testCtx(), 12345)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestListByAuthorIncludesDrafts(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	now := time.Now()

	author := createUser(t, db, "author")
	other := createUser(t, db, "other")
	category := createCategory(t, db, "open", true)

	createPost(t, db, author, category, now.Add(-time.Hour), true)
	createPost(t, db, author, category, now.Add(-time.Minute), false)     // draft
	createPost(t, db, author, category, now.Add(24*time.Hour), true)      // scheduled
	createPost(t, db, other, category, now.Add(-time.Hour), true)

	posts, err := repo.ListByAuthor(testCtx(), author.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, posts, 3)

	count, err := repo.CountByAuthor(testCtx(), author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestDeleteCascadesComments(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	now := time.Now()

	author := createUser(t, db, "author")
	category := createCategory(t, db, "open", true)
	post := createPost(t, db, author, category, now.Add(-time.Hour), true)
	createComment(t, db, author, post, "soon gone")
	createComment(t, db, author, post, "also gone")

	require.NoError(t, repo.Delete(testCtx(), post.ID))

	var livePosts, liveComments int64
	require.NoError(t, db.Model(&models.Post{}).Count(&livePosts).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&liveComments).Error)
	assert.Zero(t, livePosts)
	assert.Zero(t, liveComments)

	// soft delete keeps the rows around
	var allComments int64
	require.NoError(t, db.Unscoped().Model(&models.Comment{}).Count(&allComments).Error)
	assert.Equal(t, int64(2), allComments)
}
