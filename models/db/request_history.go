package dbmodels

type RequestHistory struct {
	BaseModel
	RequestID string `gorm:"type:varchar(36);index:idx_history_request" json:"request_id"`
	Action    string `gorm:"type:varchar(100)" json:"action"`
	ActorName string `gorm:"type:varchar(255)" json:"actor_name"`
	Details   string `json:"details,omitempty"`
}

// RequestHistoryExt is the aggregated feed row: a history entry joined
// with the title of the request it belongs to.
type RequestHistoryExt struct {
	RequestHistory
	TaskTitle string `json:"task_title"`
}
