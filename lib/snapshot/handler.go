package snapshothandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"office-workflow-backend/db"
	dbmodels "office-workflow-backend/models/db"
)

type Provider interface {
	Export() (Snapshot, error)
	Import(snapshot Snapshot) error
	ExportToStorage() error
	ImportFromStorage() error
}

var Instance Provider

func NewHandler(storage Storage) {
	Instance = impl{
		db:      db.DB,
		storage: storage,
	}
}

func NewHandlerWithTx(tx *gorm.DB, storage Storage) Provider {
	return impl{
		db:      tx,
		storage: storage,
	}
}

type impl struct {
	db      *gorm.DB
	storage Storage
}

// Export reads every table in a stable order so two exports of the same
// state produce the same document.
func (i impl) Export() (Snapshot, error) {
	var snapshot Snapshot
	err := i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id").Find(&snapshot.Users).Error; err != nil {
			return err
		}
		if err := tx.Order("id").Find(&snapshot.Requests).Error; err != nil {
			return err
		}
		if err := tx.Order("id").Find(&snapshot.Tasks).Error; err != nil {
			return err
		}
		if err := tx.Order("id").Find(&snapshot.Histories).Error; err != nil {
			return err
		}
		if err := tx.Order("id").Find(&snapshot.Notifications).Error; err != nil {
			return err
		}
		if err := tx.Order("id").Find(&snapshot.Settings).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("failed to export snapshot")
		return Snapshot{}, err
	}
	return snapshot, nil
}

// Import upserts the snapshot rows by primary key. Rows created after
// the snapshot was taken are left in place.
func (i impl) Import(snapshot Snapshot) error {
	err := i.db.Transaction(func(tx *gorm.DB) error {
		upsert := tx.Clauses(clause.OnConflict{UpdateAll: true})
		if len(snapshot.Users) != 0 {
			if err := upsert.Create(&snapshot.Users).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Requests) != 0 {
			requests := make([]dbmodels.Request, 0, len(snapshot.Requests))
			for _, rec := range snapshot.Requests {
				rec.Tasks = nil
				rec.History = nil
				requests = append(requests, rec)
			}
			if err := upsert.Omit("Tasks", "History").Create(&requests).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Tasks) != 0 {
			if err := upsert.Create(&snapshot.Tasks).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Histories) != 0 {
			if err := upsert.Create(&snapshot.Histories).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Notifications) != 0 {
			if err := upsert.Create(&snapshot.Notifications).Error; err != nil {
				return err
			}
		}
		if len(snapshot.Settings) != 0 {
			if err := upsert.Create(&snapshot.Settings).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("failed to import snapshot")
		return err
	}
	log.
		WithField("requests", len(snapshot.Requests)).
		WithField("users", len(snapshot.Users)).
		Info("snapshot imported")
	return nil
}

func (i impl) ExportToStorage() error {
	snapshot, err := i.Export()
	if err != nil {
		return err
	}
	return i.storage.Save(snapshot)
}

// ImportFromStorage is a no-op when the storage holds no snapshot.
func (i impl) ImportFromStorage() error {
	snapshot, err := i.storage.Load()
	if err != nil {
		return err
	}
	if snapshot == nil {
		log.Info("no snapshot found, nothing to restore")
		return nil
	}
	return i.Import(*snapshot)
}
