package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeFeedShowsOnlyVisiblePosts(t *testing.T) {
	_, app, db := newTestServer(t)
	now := time.Now()

	author := seedUser(t, db, "author")
	open := seedCategory(t, db, "open", true)
	closed := seedCategory(t, db, "closed", false)

	visible := seedPost(t, db, author, open, now.Add(-time.Hour), true)
	seedPost(t, db, author, open, now.Add(-time.Hour), false) // draft
	seedPost(t, db, author, open, now.Add(time.Hour), true)   // scheduled
	seedPost(t, db, author, closed, now.Add(-time.Hour), true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	posts := body["posts"].([]any)
	require.Len(t, posts, 1)
	assert.Equal(t, float64(visible.ID), posts[0].(map[string]any)["id"])

	page := body["page"].(map[string]any)
	assert.Equal(t, float64(1), page["number"])
	assert.Equal(t, float64(1), page["total_items"])
}

func TestHomeFeedOrderAndPagination(t *testing.T) {
	_, app, db := newTestServer(t)
	now := time.Now()

	author := seedUser(t, db, "author")
	open := seedCategory(t, db, "open", true)
	for i := 0; i < 15; i++ {
		seedPost(t, db, author, open, now.Add(-time.Duration(i+1)*time.Hour), true)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/?page=2", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body["posts"].([]any), 5)
	page := body["page"].(map[string]any)
	assert.Equal(t, float64(2), page["number"])
	assert.Equal(t, float64(2), page["total_pages"])
	assert.Equal(t, true, page["has_prev"])
	assert.Equal(t, false, page["has_next"])

	// requesting far past the end clamps to the last page
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?page=99", nil))
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(2), body["page"].(map[string]any)["number"])

	// garbage page parameter reads as page 1
	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?page=banana", nil))
	require.NoError(t, err)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(1), body["page"].(map[string]any)["number"])
}

func TestCategoryFeed(t *testing.T) {
	_, app, db := newTestServer(t)
	now := time.Now()

	author := seedUser(t, db, "author")
	travel := seedCategory(t, db, "travel", true)
	food := seedCategory(t, db, "food", true)
	seedPost(t, db, author, travel, now.Add(-time.Hour), true)
	seedPost(t, db, author, food, now.Add(-time.Hour), true)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/category/travel", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Len(t, body["posts"].([]any), 1)
	assert.Equal(t, "travel", body["category"].(map[string]any)["slug"])
}

func TestCategoryFeedHiddenOrMissingIs404(t *testing.T) {
	_, app, db := newTestServer(t)

	seedCategory(t, db, "secret", false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/category/secret", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/category/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
