package services

import (
	"fmt"

	"github.com/plumeworks/plume/pkg/internal/database"
	"github.com/plumeworks/plume/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// ListSubscriptions returns every follow edge in the store.
func ListSubscriptions() ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	if err := database.C.Find(&subscriptions).Error; err != nil {
		return subscriptions, fmt.Errorf("unable to list subscriptions: %v", err)
	}
	return subscriptions, nil
}

// GetUserSubscriptions returns the ids of the profiles the user follows.
func GetUserSubscriptions(userID string) ([]string, error) {
	var targets []string
	if err := database.C.Model(&models.Subscription{}).
		Where("user_id = ?", userID).
		Pluck("subscribed_to_id", &targets).Error; err != nil {
		return targets, fmt.Errorf("unable to list user subscriptions: %v", err)
	}
	return targets, nil
}

// IsSubscribed reports whether the follow edge already exists.
func IsSubscribed(userID, targetID string) (bool, error) {
	var count int64
	if err := database.C.Model(&models.Subscription{}).
		Where("user_id = ? AND subscribed_to_id = ?", userID, targetID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("unable to check subscription: %v", err)
	}
	return count > 0, nil
}

// Subscribe inserts the follow edge unless it is already there, so calling
// it repeatedly never produces a duplicate. Following yourself is not
// prevented.
func Subscribe(userID, targetID string) error {
	exists, err := IsSubscribed(userID, targetID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	subscription := models.Subscription{
		UserID:         userID,
		SubscribedToID: targetID,
	}
	if err := database.C.Create(&subscription).Error; err != nil {
		return fmt.Errorf("unable to create subscription: %v", err)
	}

	log.Debug().Str("user", userID).Str("target", targetID).Msg("Subscribed to user.")
	return nil
}

// Unsubscribe removes every edge matching the pair. Removing an edge that
// does not exist is a no-op.
func Unsubscribe(userID, targetID string) error {
	if err := database.C.
		Where("user_id = ? AND subscribed_to_id = ?", userID, targetID).
		Delete(&models.Subscription{}).Error; err != nil {
		return fmt.Errorf("unable to delete subscription: %v", err)
	}
	return nil
}
