package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogicum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommentRedirectsToPost(t *testing.T) {
	s, app, db := newTestServer(t)
	now := time.Now()

	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	open := seedCategory(t, db, "open", true)
	seedPost(t, db, author, open, now.Add(-time.Hour), true)

	req := jsonRequest(http.MethodPost, "/posts/1/comment", map[string]any{"text": "great read"})
	req.Header.Set("Authorization", bearerFor(t, s, reader))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/posts/1", resp.Header.Get("Location"))

	var comment models.Comment
	require.NoError(t, db.First(&comment).Error)
	assert.Equal(t, reader.ID, comment.AuthorID)
	assert.Equal(t, "great read", comment.Text)
}

func TestAddCommentOnHiddenPostIs404(t *testing.T) {
	s, app, db := newTestServer(t)
	now := time.Now()

	author := seedUser(t, db, "author")
	reader := seedUser(t, db, "reader")
	open := seedCategory(t, db, "open", true)
	seedPost(t, db, author, open, now.Add(-time.Hour), false)

	req := jsonRequest(http.MethodPost, "/posts/1/comment", map[string]any{"text": "sneaky"})
	req.Header.Set("Authorization", bearerFor(t, s, reader))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddCommentEmptyText(t *testing.T) {
	s, app, db := newTestServer(t)
	now := time.Now()

	author := seedUser(t, db, "author")
	open := seedCategory(t, db, "open", true)
	seedPost(t, db, author, open, now.Add(-time.Hour), true)

	req := jsonRequest(http.MethodPost, "/posts/1/comment", map[string]any{"text": "   "})
	req.Header.Set("Authorization", bearerFor(t, s, author))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEditCommentNonAuthorForbidden(t *testing.T) {
	s, app, db := newTestServer(t)
	now := time.Now()

	author := seedUser(t, db, "author")
	commenter := seedUser(t, db, "commenter")
	intruder := seedUser(t, db, "intruder")
	open := seedCategory(t, db, "open", true)
	post := seedPost(t, db, author, open, now.Add(-time.Hour), true)
	seedComment(t, db, commenter, post, "original")

	req := jsonRequest(http.MethodPost, "/posts/1/edit_comment/1", map[string]any{"text": "tampered"})
	req.Header.Set("Authorization", bearerFor(t, s, intruder))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var got models.Comment
	require.NoError(t, db.First(&got).Error)
	assert.Equal(t, "original", got.Text)
}

func TestEditCommentAuthor(t *testing.T) {
	s, app, db := newTestServer(t)
	now := time.Now()

	author := seedUser(t, db, "author")
	commenter := seedUser(t, db, "commenter")
	open := seedCategory(t, db, "open", true)
	post := seedPost(t, db, author, open, now.Add(-time.Hour), true)
	seedComment(t, db, commenter, post, "original")

	req := jsonRequest(http.MethodPost, "/posts/1/edit_comment/1", map[string]any{"text": "edited"})
	req.Header.Set("Authorization", bearerFor(t, s, commenter))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/posts/1", resp.Header.Get("Location"))

	var got models.Comment
	require.NoError(t, db.First(&got).Error)
	assert.Equal(t, "edited", got.Text)
}

func TestEditCommentWrongPostIs404(t *testing.T) {
	s, app, db := newTestServer(t)
	now := time.Now()

	author := seedUser(t, db, "author")
	open := seedCategory(t, db, "open", true)
	post := seedPost(t, db, author, open, now.Add(-time.Hour), true)
	seedPost(t, db, author, open, now.Add(-time.Hour), true)
	seedComment(t, db, author, post, "on post one")

	// comment 1 belongs to post 1, URL claims post 2
	req := jsonRequest(http.MethodPost, "/posts/2/edit_comment/1", map[string]any{"text": "x"})
	req.Header.Set("Authorization", bearerFor(t, s, author))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteCommentPageOmitsForm(t *testing.T) {
	s, app, db := newTestServer(t)
	now := time.Now()

	author := seedUser(t, db, "author")
	open := seedCategory(t, db, "open", true)
	post := seedPost(t, db, author, open, now.Add(-time.Hour), true)
	seedComment(t, db, author, post, "doomed")

	req := httptest.NewRequest(http.MethodGet, "/posts/1/delete_comment/1", nil)
	req.Header.Set("Authorization", bearerFor(t, s, author))

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body, "comment")
	assert.NotContains(t, body, "form", "delete confirmation carries no form")
}

func TestDeleteComment(t *testing.T) {
	s, app, db := newTestServer(t)
	now := time.Now()

	author := seedUser(t, db, "author")
	commenter := seedUser(t, db, "commenter")
	open := seedCategory(t, db, "open", true)
	post := seedPost(t, db, author, open, now.Add(-time.Hour), true)
	seedComment(t, db, commenter, post, "fleeting")

	req := jsonRequest(http.MethodPost, "/posts/1/delete_comment/1", nil)
	req.Header.Set("Authorization", bearerFor(t, s, commenter))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)

	var comments int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.Zero(t, comments)
}
