package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/plumeworks/plume/pkg/internal/database"
	"github.com/plumeworks/plume/pkg/internal/models"
	"gorm.io/gorm"
)

// AddComment appends a comment to a post and returns it enriched with its
// author profile. Returns nil without an error when the post is missing.
// The commenter id is not validated against the user table.
func AddComment(postID, userID, content string) (*models.Comment, error) {
	var post models.Post
	if err := database.C.Where("id = ?", postID).First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get post: %v", err)
	}

	comment := models.Comment{
		ID:        NewRecordID("comment"),
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	}
	if err := database.C.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("unable to create comment: %v", err)
	}

	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}
	comment.User = user

	return &comment, nil
}

// DeleteComment removes one comment from a post. Returns whether a record
// was actually removed; deleting the same comment twice yields false the
// second time.
func DeleteComment(postID, commentID string) (bool, error) {
	result := database.C.
		Where("id = ? AND post_id = ?", commentID, postID).
		Delete(&models.Comment{})
	if result.Error != nil {
		return false, fmt.Errorf("unable to delete comment: %v", result.Error)
	}
	return result.RowsAffected > 0, nil
}
