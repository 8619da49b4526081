package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/plumeworks/plume/pkg/internal/cache"
	"github.com/plumeworks/plume/pkg/internal/database"
	"github.com/plumeworks/plume/pkg/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB swaps the global store for an in-memory SQLite database. Each
// test gets its own named shared-cache database so connections from the
// pool all see the same schema.
func setupTestDB(t *testing.T) {
	t.Helper()

	require.NoError(t, cache.NewStore())

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.RunMigration(db))

	database.C = db
}

func seedTestUsers(t *testing.T, users ...models.User) {
	t.Helper()
	for i := range users {
		require.NoError(t, database.C.Create(&users[i]).Error)
	}
}

func seedTestPost(t *testing.T, id, authorID, title string, publishedAt time.Time) models.Post {
	t.Helper()
	post := models.Post{
		ID:          id,
		AuthorID:    authorID,
		Title:       title,
		Category:    models.CategoryLifestyle,
		Date:        publishedAt.Format("January 2, 2006"),
		PublishedAt: publishedAt,
	}
	require.NoError(t, database.C.Create(&post).Error)
	return post
}
