package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostVisibleAt(t *testing.T) {
	now := time.Now()
	catID := uint(3)

	tests := []struct {
		name    string
		post    Post
		visible bool
	}{
		{
			name: "published past post in published category",
			post: Post{
				IsPublished: true,
				PubDate:     now.Add(-time.Hour),
				CategoryID:  &catID,
				Category:    &Category{ID: catID, IsPublished: true},
			},
			visible: true,
		},
		{
			name: "draft is hidden",
			post: Post{
				IsPublished: false,
				PubDate:     now.Add(-time.Hour),
			},
			visible: false,
		},
		{
			name: "future pub date is hidden",
			post: Post{
				IsPublished: true,
				PubDate:     now.Add(time.Hour),
			},
			visible: false,
		},
		{
			name: "unpublished category hides the post",
			post: Post{
				IsPublished: true,
				PubDate:     now.Add(-time.Hour),
				CategoryID:  &catID,
				Category:    &Category{ID: catID, IsPublished: false},
			},
			visible: false,
		},
		{
			name: "category set but not loaded reads as hidden",
			post: Post{
				IsPublished: true,
				PubDate:     now.Add(-time.Hour),
				CategoryID:  &catID,
			},
			visible: false,
		},
		{
			name: "no category at all is fine",
			post: Post{
				IsPublished: true,
				PubDate:     now.Add(-time.Hour),
			},
			visible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.visible, tt.post.VisibleAt(now))
		})
	}
}

func TestPostVisibleTo(t *testing.T) {
	now := time.Now()
	draft := Post{AuthorID: 7, IsPublished: false, PubDate: now.Add(-time.Hour)}

	assert.True(t, draft.VisibleTo(7, now), "author sees own draft")
	assert.False(t, draft.VisibleTo(8, now), "others do not")
	assert.False(t, draft.VisibleTo(0, now), "anonymous does not")
}

func TestPostPubDateBoundary(t *testing.T) {
	now := time.Now()

	// pub_date strictly before now; an exact match is not yet visible
	exact := Post{IsPublished: true, PubDate: now}
	assert.True(t, exact.VisibleAt(now.Add(time.Nanosecond)))
	assert.False(t, exact.VisibleAt(now.Add(-time.Nanosecond)))
}
