package database

import (
	"github.com/plumeworks/plume/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.User{},
	&models.Post{},
	&models.Comment{},
	&models.Like{},
	&models.Subscription{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Report{},
			&models.StateEntry{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
