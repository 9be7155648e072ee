package dbmodels

import (
	"strings"
	"time"

	"office-workflow-backend/models"
)

type Request struct {
	BaseModel
	TaskTitle      string               `gorm:"type:varchar(255)" json:"task_title"`
	RequesterName  string               `gorm:"type:varchar(255)" json:"requester_name"`
	RequesterEmail string               `gorm:"type:varchar(255)" json:"requester_email"`
	EmployeeID     string               `gorm:"type:varchar(50);index" json:"employee_id"`
	OfficeName     string               `gorm:"type:varchar(255)" json:"office_name"`
	ExtensionNo    string               `gorm:"type:varchar(20)" json:"extension_no"`
	MobileNo       string               `gorm:"type:varchar(20)" json:"mobile_no"`
	RequestTypes   string               `gorm:"type:varchar(255)" json:"request_types"`
	RequestDetails string               `json:"request_details"`
	Status         models.RequestStatus `gorm:"type:varchar(50);index" json:"status"`
	SubmissionDate time.Time            `gorm:"index" json:"submission_date"`
	Tasks          []Task               `gorm:"foreignKey:RequestID" json:"tasks,omitempty"`
	History        []RequestHistory     `gorm:"foreignKey:RequestID" json:"history,omitempty"`
}

const requestTypeSeparator = ","

// Request types are stored as a comma-joined list; the values are a
// closed enum and never contain the separator.
func (r Request) GetRequestTypes() []models.RequestType {
	if r.RequestTypes == "" {
		return nil
	}
	parts := strings.Split(r.RequestTypes, requestTypeSeparator)
	result := make([]models.RequestType, 0, len(parts))
	for _, p := range parts {
		result = append(result, models.RequestType(p))
	}
	return result
}

func (r *Request) SetRequestTypes(types []models.RequestType) {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	r.RequestTypes = strings.Join(parts, requestTypeSeparator)
}
