package settingshandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"office-workflow-backend/db"
	settingsstore "office-workflow-backend/lib/settings/store"
	settingsapimodels "office-workflow-backend/models/api/settings"
	dbmodels "office-workflow-backend/models/db"
)

type Provider interface {
	Get() (settingsapimodels.SettingsView, error)
	Update(data settingsapimodels.SettingsData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: settingsstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: settingsstore.NewInstance(tx),
	}
}

type impl struct {
	store settingsstore.Provider
}

func (i impl) Get() (settingsapimodels.SettingsView, error) {
	rec, err := i.store.Get()
	if err != nil {
		return settingsapimodels.SettingsView{}, err
	}
	if rec == nil {
		return settingsapimodels.SettingsView{}, nil
	}
	return settingsapimodels.SettingsConvert(*rec), nil
}

func (i impl) Update(data settingsapimodels.SettingsData) error {
	if err := data.Validate(); err != nil {
		return err
	}
	err := i.store.Save(dbmodels.Setting{
		MasterStorageRootLink:   data.MasterStorageRootLink,
		MasterNotificationEmail: data.MasterNotificationEmail,
	})
	if err != nil {
		log.WithError(err).Error("failed to update settings")
		return err
	}
	log.Info("settings updated")
	return nil
}
