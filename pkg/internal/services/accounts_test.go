package services_test

import (
	"testing"

	"github.com/plumeworks/plume/pkg/internal/models"
	"github.com/plumeworks/plume/pkg/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersEmptyStore(t *testing.T) {
	setupTestDB(t)

	users, err := services.ListUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestGetUserPointLookup(t *testing.T) {
	setupTestDB(t)
	seedTestUsers(t, models.User{ID: "u1", Username: "alice", Name: "Alice"})

	user, err := services.GetUser("u1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)

	// Second lookup is served from the profile cache.
	again, err := services.GetUser("u1")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, user.Username, again.Username)

	missing, err := services.GetUser("u404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetUserByUsernameIsCaseInsensitive(t *testing.T) {
	setupTestDB(t)
	seedTestUsers(t, models.User{ID: "u1", Username: "Chen_design", Name: "Blacky Chen"})

	user, err := services.GetUserByUsername("chen_DESIGN")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)

	missing, err := services.GetUserByUsername("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
