package database

import (
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var C *gorm.DB

// NewGorm opens the persistence substrate. The default is an embedded
// SQLite file so the store stays process-private and serverless; a postgres
// DSN can be configured for hosts that want a shared database instead.
func NewGorm() error {
	var dialector gorm.Dialector
	switch viper.GetString("database.driver") {
	case "postgres":
		dialector = postgres.Open(viper.GetString("database.dsn"))
	default:
		path := viper.GetString("database.path")
		if len(path) == 0 {
			path = "plume.db"
		}
		dialector = sqlite.Open(path)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("unable to open database: %v", err)
	}

	C = db
	return nil
}
