package notificationapimodels

import (
	"time"

	"office-workflow-backend/models"
	dbmodels "office-workflow-backend/models/db"
)

type NotificationView struct {
	ID            string                  `json:"id"`
	RecipientRole string                  `json:"recipient_role"`
	Message       string                  `json:"message"`
	Kind          models.NotificationKind `json:"kind"`
	IsRead        bool                    `json:"is_read"`
	Timestamp     time.Time               `json:"timestamp"`
}

func NotificationConvert(rec dbmodels.Notification) NotificationView {
	return NotificationView{
		ID:            rec.ID,
		RecipientRole: rec.RecipientRole,
		Message:       rec.Message,
		Kind:          rec.Kind,
		IsRead:        rec.IsRead,
		Timestamp:     rec.CreatedAt,
	}
}

type UnreadCountView struct {
	Count int64 `json:"count"`
}
