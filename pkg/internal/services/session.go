package services

import (
	"errors"
	"fmt"

	"github.com/plumeworks/plume/pkg/internal/database"
	"github.com/plumeworks/plume/pkg/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const CurrentUserStateKey = "current_user_id"

// Session is the explicit handle to the signed-in profile pointer. The
// pointer used to live as an ambient process-wide scalar; callers now load
// a session and pass it around instead.
type Session struct {
	UserID *string
}

// LoadSession reads the persisted profile pointer. An empty store yields an
// empty session, never an error.
func LoadSession() (Session, error) {
	var entry models.StateEntry
	if err := database.C.Where("key = ?", CurrentUserStateKey).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Session{}, nil
		}
		return Session{}, fmt.Errorf("unable to load session: %v", err)
	}
	return Session{UserID: &entry.Value}, nil
}

// Login points the session at a profile and persists the pointer. The id is
// stored as-is; whether a profile with that id exists is not checked.
func (s *Session) Login(userID string) error {
	entry := models.StateEntry{Key: CurrentUserStateKey, Value: userID}
	if err := database.C.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error; err != nil {
		return fmt.Errorf("unable to persist session: %v", err)
	}
	s.UserID = &userID
	return nil
}

// Logout clears the persisted pointer. Logging out of an empty session is a
// no-op.
func (s *Session) Logout() error {
	if err := database.C.
		Where("key = ?", CurrentUserStateKey).
		Delete(&models.StateEntry{}).Error; err != nil {
		return fmt.Errorf("unable to clear session: %v", err)
	}
	s.UserID = nil
	return nil
}

// CurrentUser resolves the session pointer to a profile. A cleared session
// or a pointer at a vanished profile both yield nil without an error.
func (s Session) CurrentUser() (*models.User, error) {
	if s.UserID == nil {
		return nil, nil
	}
	return GetUser(*s.UserID)
}
