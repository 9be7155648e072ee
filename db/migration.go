package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	dbmodels "office-workflow-backend/models/db"
)

func AutoMigrateDB() error {
	return AutoMigrate(DB)
}

func AutoMigrate(db *gorm.DB) error {
	log.Info("running migrations")
	if err := db.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate User")
	}
	if err := db.AutoMigrate(&dbmodels.Request{}); err != nil {
		return errors.Wrap(err, "failed to migrate Request")
	}
	if err := db.AutoMigrate(&dbmodels.Task{}); err != nil {
		return errors.Wrap(err, "failed to migrate Task")
	}
	if err := db.AutoMigrate(&dbmodels.RequestHistory{}); err != nil {
		return errors.Wrap(err, "failed to migrate RequestHistory")
	}
	if err := db.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "failed to migrate Notification")
	}
	if err := db.AutoMigrate(&dbmodels.Setting{}); err != nil {
		return errors.Wrap(err, "failed to migrate Setting")
	}
	log.Info("migrations finished")
	return nil
}
