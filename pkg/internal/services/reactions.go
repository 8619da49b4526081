package services

import (
	"errors"
	"fmt"

	"github.com/plumeworks/plume/pkg/internal/database"
	"github.com/plumeworks/plume/pkg/internal/models"
	"gorm.io/gorm"
)

// HasLiked reports whether the user is currently in the post's like set.
func HasLiked(postID, userID string) (bool, error) {
	var count int64
	if err := database.C.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("unable to check like: %v", err)
	}
	return count > 0, nil
}

// ToggleLike flips the user's membership in the post's like set: absent
// adds, present removes. Doing it twice is a no-op pair. Returns the
// freshly enriched post, or nil when the post does not exist.
func ToggleLike(postID, userID string) (*models.Post, error) {
	var item models.Post
	if err := database.C.Where("id = ?", postID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get post: %v", err)
	}

	liked, err := HasLiked(postID, userID)
	if err != nil {
		return nil, err
	}

	if liked {
		if err := database.C.
			Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&models.Like{}).Error; err != nil {
			return nil, fmt.Errorf("unable to remove like: %v", err)
		}
	} else {
		edge := models.Like{PostID: postID, UserID: userID}
		if err := database.C.Create(&edge).Error; err != nil {
			return nil, fmt.Errorf("unable to add like: %v", err)
		}
	}

	return GetPost(postID)
}
