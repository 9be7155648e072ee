package historystore

import (
	"gorm.io/gorm"

	"office-workflow-backend/models"
	dbmodels "office-workflow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RequestHistory) (id string, err error)
	ListByRequest(requestID string) (list []dbmodels.RequestHistory, err error)
	Feed(scope FeedScope) (list []dbmodels.RequestHistoryExt, err error)
}

// FeedScope mirrors the request visibility rules for the aggregated
// timeline; empty means every request (Master).
type FeedScope struct {
	TeamRole   models.UserRole
	EmployeeID string
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RequestHistory) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByRequest(requestID string) (list []dbmodels.RequestHistory, err error) {
	list = []dbmodels.RequestHistory{}
	err = i.db.
		Where("request_id = ?", requestID).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Feed(scope FeedScope) (list []dbmodels.RequestHistoryExt, err error) {
	list = []dbmodels.RequestHistoryExt{}
	tx := i.db.
		Model(&dbmodels.RequestHistory{}).
		Select("request_histories.*, requests.task_title AS task_title").
		Joins("JOIN requests ON requests.id = request_histories.request_id")
	if scope.TeamRole != "" {
		tx = tx.Where("requests.id IN (?)", i.db.
			Model(&dbmodels.Task{}).
			Select("request_id").
			Where("assigned_to_role = ?", scope.TeamRole))
	}
	if scope.EmployeeID != "" {
		tx = tx.Where("requests.employee_id = ?", scope.EmployeeID)
	}
	err = tx.
		Order("request_histories.created_at DESC").
		Scan(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
