package dbmodels

import (
	"office-workflow-backend/models"
)

type Task struct {
	BaseModel
	RequestID               string          `gorm:"type:varchar(36);index:idx_task_request" json:"request_id"`
	Request                 *Request        `json:"-"`
	AssignedToRole          models.UserRole `gorm:"type:varchar(50);index" json:"assigned_to_role"`
	AssignedByUserID        string          `gorm:"type:varchar(36)" json:"assigned_by_user_id"`
	MasterNotes             string          `json:"master_notes,omitempty"`
	EmployeeSubmissionNotes string          `json:"employee_submission_notes,omitempty"`
	DeliverableLink         string          `gorm:"type:varchar(500)" json:"deliverable_link,omitempty"`
	MasterFeedback          string          `json:"master_feedback,omitempty"`
}

func (t Task) IsSubmitted() bool {
	return t.DeliverableLink != ""
}
