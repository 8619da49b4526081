package services

import (
	"fmt"

	"github.com/plumeworks/plume/pkg/internal/database"
	"github.com/plumeworks/plume/pkg/internal/models"
)

// GetFeedPosts composes the personalized feed: every post authored by a
// profile the user follows, newest first. Ordering uses the canonical
// published instant, not the display date string.
func GetFeedPosts(userID string) ([]models.Post, error) {
	authorIDs, err := GetUserSubscriptions(userID)
	if err != nil {
		return nil, err
	}
	if len(authorIDs) == 0 {
		return []models.Post{}, nil
	}

	var items []models.Post
	if err := database.C.
		Where("author_id IN ?", authorIDs).
		Order("published_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return items, fmt.Errorf("unable to list feed posts: %v", err)
	}

	return enrichPosts(items)
}
