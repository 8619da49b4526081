package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/plumeworks/plume/pkg/internal/cache"
	"github.com/plumeworks/plume/pkg/internal/database"
	"github.com/plumeworks/plume/pkg/internal/models"
	"gorm.io/gorm"
)

func GetAccountCacheKey(id string) string {
	return fmt.Sprintf("account#%s", id)
}

// ListUsers returns every seeded profile in storage order.
func ListUsers() ([]models.User, error) {
	var users []models.User
	if err := database.C.Order("created_at ASC, id ASC").Find(&users).Error; err != nil {
		return users, fmt.Errorf("unable to list users: %v", err)
	}
	return users, nil
}

// GetUser looks a profile up by id, returning nil without an error when no
// such profile exists. Profiles are immutable once seeded, so a cache hit
// can never be stale.
func GetUser(id string) (*models.User, error) {
	if localCache.S != nil {
		cacheManager := cache.New[any](localCache.S)
		marshal := marshaler.New(cacheManager)

		if hit, err := marshal.Get(context.Background(), GetAccountCacheKey(id), new(models.User)); err == nil {
			return hit.(*models.User), nil
		}
	}

	var user models.User
	if err := database.C.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get user: %v", err)
	}

	if localCache.S != nil {
		cacheManager := cache.New[any](localCache.S)
		marshal := marshaler.New(cacheManager)
		_ = marshal.Set(
			context.Background(),
			GetAccountCacheKey(id),
			user,
			store.WithExpiration(60*time.Minute),
			store.WithTags([]string{"account"}),
		)
	}

	return &user, nil
}

// GetUserByUsername resolves a profile by its handle, case-insensitively.
func GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := database.C.
		Where("LOWER(username) = ?", strings.ToLower(username)).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("unable to get user by username: %v", err)
	}
	return &user, nil
}
