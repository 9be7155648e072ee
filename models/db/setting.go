package dbmodels

// Setting is a singleton row: the Master's storage root for deliverable
// folders and the address workflow emails are sent to.
type Setting struct {
	BaseModel
	MasterStorageRootLink   string `gorm:"type:varchar(500)" json:"master_storage_root_link"`
	MasterNotificationEmail string `gorm:"type:varchar(255)" json:"master_notification_email"`
}
