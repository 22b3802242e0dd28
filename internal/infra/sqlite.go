package infra

import (
	"os"

	"github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"globehopper/internal/models/db_models"
	"gorm.io/gorm"
)

// InitSQLite opens the embedded snapshot database. All durable state lives
// in this single local file.
func InitSQLite() *gorm.DB {
	path := os.Getenv("GLOBEHOPPER_DB")
	if path == "" {
		path = "globehopper.db"
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.WithError(err).Fatal("Error opening snapshot database")
	}

	if err := db.AutoMigrate(&db_models.Snapshot{}); err != nil {
		log.WithError(err).Fatal("Error migrating snapshot database")
	}

	return db
}

func CloseSQLite(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Error("Error getting database instance")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Error("Error closing database connection")
	} else {
		log.Info("Snapshot database closed")
	}
}
