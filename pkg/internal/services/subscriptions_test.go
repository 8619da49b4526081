package services_test

import (
	"testing"

	"github.com/plumeworks/plume/pkg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeIsIdempotent(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, services.Subscribe("u1", "u2"))
	require.NoError(t, services.Subscribe("u1", "u2"))

	edges, err := services.ListSubscriptions()
	require.NoError(t, err)
	require.Len(t, edges, 1)
	assert.Equal(t, "u1", edges[0].UserID)
	assert.Equal(t, "u2", edges[0].SubscribedToID)

	subscribed, err := services.IsSubscribed("u1", "u2")
	require.NoError(t, err)
	assert.True(t, subscribed)
}

func TestUnsubscribeRemovesEdge(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, services.Subscribe("u1", "u2"))
	require.NoError(t, services.Unsubscribe("u1", "u2"))

	subscribed, err := services.IsSubscribed("u1", "u2")
	require.NoError(t, err)
	assert.False(t, subscribed)

	edges, err := services.ListSubscriptions()
	require.NoError(t, err)
	assert.Empty(t, edges)

	// Removing an absent edge stays a no-op.
	require.NoError(t, services.Unsubscribe("u1", "u2"))
}

func TestSubscribeDirectionality(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, services.Subscribe("u1", "u2"))

	subscribed, err := services.IsSubscribed("u2", "u1")
	require.NoError(t, err)
	assert.False(t, subscribed)

	targets, err := services.GetUserSubscriptions("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, targets)

	targets, err = services.GetUserSubscriptions("u2")
	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestSelfSubscriptionIsPermitted(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, services.Subscribe("u1", "u1"))
	subscribed, err := services.IsSubscribed("u1", "u1")
	require.NoError(t, err)
	assert.True(t, subscribed)
}
