package services_test

import (
	"testing"
	"time"

	"github.com/plumeworks/plume/pkg/internal/models"
	"github.com/plumeworks/plume/pkg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedContainsExactlyFollowedAuthors(t *testing.T) {
	setupTestDB(t)
	seedTestUsers(t,
		models.User{ID: "u1", Username: "followed", Name: "Followed"},
		models.User{ID: "u2", Username: "stranger", Name: "Stranger"},
		models.User{ID: "u3", Username: "reader", Name: "Reader"},
	)
	now := time.Now()
	seedTestPost(t, "p1", "u1", "Older", now.Add(-48*time.Hour))
	seedTestPost(t, "p2", "u1", "Newer", now)
	seedTestPost(t, "p3", "u2", "Unfollowed", now)

	require.NoError(t, services.Subscribe("u3", "u1"))

	feed, err := services.GetFeedPosts("u3")
	require.NoError(t, err)
	require.Len(t, feed, 2)
	// Newest first by the canonical published instant.
	assert.Equal(t, "p2", feed[0].ID)
	assert.Equal(t, "p1", feed[1].ID)
	require.NotNil(t, feed[0].Author)
	assert.Equal(t, "u1", feed[0].Author.ID)
}

func TestFeedWithoutSubscriptionsIsEmpty(t *testing.T) {
	setupTestDB(t)
	seedTestPost(t, "p1", "u1", "Alone", time.Now())

	feed, err := services.GetFeedPosts("u2")
	require.NoError(t, err)
	assert.Empty(t, feed)
}

// The full walkthrough: publish, like, unlike, follow, read the feed.
func TestEndToEndScenario(t *testing.T) {
	setupTestDB(t)
	seedTestUsers(t,
		models.User{ID: "u1", Username: "alice", Name: "Alice"},
		models.User{ID: "u2", Username: "bob", Name: "Bob"},
	)

	created, err := services.NewPost(models.Post{AuthorID: "u1", Title: "Hello"})
	require.NoError(t, err)

	post, err := services.ToggleLike(created.ID, "u2")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, []string{"u2"}, post.Likes)

	post, err = services.ToggleLike(created.ID, "u2")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Empty(t, post.Likes)

	require.NoError(t, services.Subscribe("u2", "u1"))

	feed, err := services.GetFeedPosts("u2")
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, created.ID, feed[0].ID)
	assert.Equal(t, "Hello", feed[0].Title)
}
