package dbmodels

import (
	"office-workflow-backend/models"
)

type Notification struct {
	BaseModel
	RecipientRole string                  `gorm:"type:varchar(50);index:idx_notification_recipient" json:"recipient_role"`
	Message       string                  `json:"message"`
	Kind          models.NotificationKind `gorm:"type:varchar(20)" json:"kind"`
	IsRead        bool                    `json:"is_read"`
}
