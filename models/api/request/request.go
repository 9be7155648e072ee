package requestapimodels

import (
	"time"

	"github.com/pkg/errors"

	"office-workflow-backend/models"
	taskapimodels "office-workflow-backend/models/api/task"
	dbmodels "office-workflow-backend/models/db"
)

type RequestCreateData struct {
	TaskTitle      string               `json:"task_title"`
	RequesterName  string               `json:"requester_name"`
	RequesterEmail string               `json:"requester_email"`
	EmployeeID     string               `json:"employee_id"`
	OfficeName     string               `json:"office_name"`
	ExtensionNo    string               `json:"extension_no"`
	MobileNo       string               `json:"mobile_no"`
	RequestTypes   []models.RequestType `json:"request_types"`
	RequestDetails string               `json:"request_details"`
}

func (r RequestCreateData) Validate() error {
	if r.RequesterName == "" {
		return errors.New("requester name is not specified")
	}
	if len(r.RequestTypes) == 0 {
		return errors.Wrap(models.ErrValidation, "at least one request type must be selected")
	}
	for _, t := range r.RequestTypes {
		if !t.IsValid() {
			return errors.Wrapf(models.ErrValidation, "unknown request type: %v", t)
		}
	}
	return nil
}

type RejectRequestData struct {
	Reason string `json:"reason"`
}

type RequestFilter struct {
	Search string               `json:"search"` //substring over requester name, id, office
	Status models.RequestStatus `json:"status"` //empty = all statuses
}

func (r RequestFilter) Validate() error {
	if r.Status != "" && !r.Status.IsValid() {
		return errors.Errorf("unknown status: %v", r.Status)
	}
	return nil
}

type RequestView struct {
	ID             string                     `json:"id"`
	TaskTitle      string                     `json:"task_title"`
	RequesterName  string                     `json:"requester_name"`
	RequesterEmail string                     `json:"requester_email"`
	EmployeeID     string                     `json:"employee_id"`
	OfficeName     string                     `json:"office_name"`
	ExtensionNo    string                     `json:"extension_no"`
	MobileNo       string                     `json:"mobile_no"`
	RequestTypes   []models.RequestType       `json:"request_types"`
	RequestDetails string                     `json:"request_details"`
	Status         models.RequestStatus       `json:"status"`
	StatusName     string                     `json:"status_name"`
	SubmissionDate time.Time                  `json:"submission_date"`
	Tasks          []taskapimodels.TaskView   `json:"tasks"`
	History        []HistoryEntryView         `json:"history"`
}

type HistoryEntryView struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	ActorName string    `json:"actor_name"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func RequestConvert(rec dbmodels.Request) RequestView {
	view := RequestView{
		ID:             rec.ID,
		TaskTitle:      rec.TaskTitle,
		RequesterName:  rec.RequesterName,
		RequesterEmail: rec.RequesterEmail,
		EmployeeID:     rec.EmployeeID,
		OfficeName:     rec.OfficeName,
		ExtensionNo:    rec.ExtensionNo,
		MobileNo:       rec.MobileNo,
		RequestTypes:   rec.GetRequestTypes(),
		RequestDetails: rec.RequestDetails,
		Status:         rec.Status,
		StatusName:     rec.Status.ToHuman(),
		SubmissionDate: rec.SubmissionDate,
		Tasks:          make([]taskapimodels.TaskView, 0, len(rec.Tasks)),
		History:        make([]HistoryEntryView, 0, len(rec.History)),
	}
	for _, task := range rec.Tasks {
		view.Tasks = append(view.Tasks, taskapimodels.TaskConvert(task))
	}
	for _, entry := range rec.History {
		view.History = append(view.History, HistoryEntryConvert(entry))
	}
	return view
}

func HistoryEntryConvert(rec dbmodels.RequestHistory) HistoryEntryView {
	return HistoryEntryView{
		ID:        rec.ID,
		Action:    rec.Action,
		ActorName: rec.ActorName,
		Details:   rec.Details,
		Timestamp: rec.CreatedAt,
	}
}
