package historyapimodels

import (
	"time"

	dbmodels "office-workflow-backend/models/db"
)

type HistoryFeedView struct {
	ID        string    `json:"id"`
	RequestID string    `json:"request_id"`
	TaskTitle string    `json:"task_title"`
	Action    string    `json:"action"`
	ActorName string    `json:"actor_name"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func HistoryFeedConvert(rec dbmodels.RequestHistoryExt) HistoryFeedView {
	return HistoryFeedView{
		ID:        rec.ID,
		RequestID: rec.RequestID,
		TaskTitle: rec.TaskTitle,
		Action:    rec.Action,
		ActorName: rec.ActorName,
		Details:   rec.Details,
		Timestamp: rec.CreatedAt,
	}
}
