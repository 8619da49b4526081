// Package seed loads the fixed demo dataset the hosting application ships
// with: four profiles and six posts, no subscriptions. Seeding is
// non-destructive; a store that already holds profiles is left untouched.
package seed

import (
	_ "embed"
	"fmt"

	"github.com/araddon/dateparse"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/plumeworks/plume/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

//go:embed data.json
var demoDataset []byte

type datasetSchema struct {
	Users []models.User `json:"users" validate:"required,dive"`
	Posts []models.Post `json:"posts" validate:"required,dive"`
}

// SeedDatabase fills an empty store with the demo dataset. The dataset is
// validated before anything is written; the store itself never validates,
// so this is the last line of defense against a broken bundle.
func SeedDatabase(source *gorm.DB) error {
	var count int64
	if err := source.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("unable to count users: %v", err)
	}
	if count > 0 {
		log.Debug().Int64("users", count).Msg("Store already holds data, skipping seed.")
		return nil
	}

	var dataset datasetSchema
	if err := jsoniter.Unmarshal(demoDataset, &dataset); err != nil {
		return fmt.Errorf("unable to decode demo dataset: %v", err)
	}
	if err := validator.New().Struct(dataset); err != nil {
		return fmt.Errorf("demo dataset failed validation: %v", err)
	}

	for i := range dataset.Posts {
		post := &dataset.Posts[i]
		if post.PublishedAt.IsZero() && len(post.Date) > 0 {
			when, err := dateparse.ParseAny(post.Date)
			if err != nil {
				return fmt.Errorf("unable to parse seed post date %q: %v", post.Date, err)
			}
			post.PublishedAt = when
		}
	}

	if err := source.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&dataset.Users).Error; err != nil {
			return err
		}
		if err := tx.Create(&dataset.Posts).Error; err != nil {
			return err
		}
		return nil
	}); err != nil {
		return fmt.Errorf("unable to write demo dataset: %v", err)
	}

	log.Info().
		Int("users", len(dataset.Users)).
		Int("posts", len(dataset.Posts)).
		Msg("Seeded the store with the demo dataset.")

	if extras := viper.GetInt("seed.fake_users"); extras > 0 {
		if err := seedFakeProfiles(source, extras); err != nil {
			log.Warn().Err(err).Msg("An error occurred when generating synthetic profiles...")
		}
	}

	return nil
}
