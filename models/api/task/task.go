package taskapimodels

import (
	"time"

	"github.com/pkg/errors"
	"office-workflow-backend/models"
	dbmodels "office-workflow-backend/models/db"
)

type AssignTaskData struct {
	TargetRole  models.UserRole `json:"target_role"`
	MasterNotes string          `json:"master_notes"`
}

func (r AssignTaskData) Validate() error {
	if !r.TargetRole.IsTeam() {
		return errors.Errorf("tasks can only be assigned to a team role, got: %v", r.TargetRole)
	}
	return nil
}

type SubmitTaskData struct {
	DeliverableLink string `json:"deliverable_link"`
	SubmissionNotes string `json:"submission_notes"`
}

func (r SubmitTaskData) Validate() error {
	if r.DeliverableLink == "" {
		return errors.Wrap(models.ErrValidation, "deliverable link is not specified")
	}
	return nil
}

type ReviewTaskData struct {
	Decision models.ReviewDecision `json:"decision"`
	Feedback string                `json:"feedback"`
}

func (r ReviewTaskData) Validate() error {
	if !r.Decision.IsValid() {
		return errors.Errorf("unknown review decision: %v", r.Decision)
	}
	return nil
}

type TaskView struct {
	ID                      string          `json:"id"`
	RequestID               string          `json:"request_id"`
	AssignedToRole          models.UserRole `json:"assigned_to_role"`
	AssignedByUserID        string          `json:"assigned_by_user_id"`
	MasterNotes             string          `json:"master_notes,omitempty"`
	EmployeeSubmissionNotes string          `json:"employee_submission_notes,omitempty"`
	DeliverableLink         string          `json:"deliverable_link,omitempty"`
	MasterFeedback          string          `json:"master_feedback,omitempty"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

func TaskConvert(rec dbmodels.Task) TaskView {
	return TaskView{
		ID:                      rec.ID,
		RequestID:               rec.RequestID,
		AssignedToRole:          rec.AssignedToRole,
		AssignedByUserID:        rec.AssignedByUserID,
		MasterNotes:             rec.MasterNotes,
		EmployeeSubmissionNotes: rec.EmployeeSubmissionNotes,
		DeliverableLink:         rec.DeliverableLink,
		MasterFeedback:          rec.MasterFeedback,
		CreatedAt:               rec.CreatedAt,
		UpdatedAt:               rec.UpdatedAt,
	}
}
