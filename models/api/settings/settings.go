package settingsapimodels

import (
	"strings"

	"github.com/pkg/errors"
	dbmodels "office-workflow-backend/models/db"
)

type SettingsData struct {
	MasterStorageRootLink   string `json:"master_storage_root_link"`
	MasterNotificationEmail string `json:"master_notification_email"`
}

func (r SettingsData) Validate() error {
	if r.MasterNotificationEmail != "" && !strings.Contains(r.MasterNotificationEmail, "@") {
		return errors.New("notification email is not a valid address")
	}
	return nil
}

type SettingsView struct {
	MasterStorageRootLink   string `json:"master_storage_root_link"`
	MasterNotificationEmail string `json:"master_notification_email"`
}

func SettingsConvert(rec dbmodels.Setting) SettingsView {
	return SettingsView{
		MasterStorageRootLink:   rec.MasterStorageRootLink,
		MasterNotificationEmail: rec.MasterNotificationEmail,
	}
}
