package services

import (
	"github.com/plumeworks/plume/pkg/internal/database"
	"github.com/plumeworks/plume/pkg/internal/models"
	"github.com/rs/zerolog/log"
)

// DoAutoDatabaseCleanup prunes comments and likes whose post is gone. The
// store enforces no foreign keys, so interrupted deletions can leave
// orphans behind; this runs on a timer from the host.
func DoAutoDatabaseCleanup() {
	log.Debug().Msg("Now running auto database cleanup...")

	var count int64
	for _, model := range []any{&models.Comment{}, &models.Like{}} {
		result := database.C.
			Where("post_id NOT IN (?)", database.C.Model(&models.Post{}).Select("id")).
			Delete(model)
		if result.Error != nil {
			log.Error().Err(result.Error).Msg("An error occurred when running auto database cleanup...")
			continue
		}
		count += result.RowsAffected
	}

	log.Debug().Int64("affected", count).Msg("Auto database cleanup finished.")
}
