package requeststore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"office-workflow-backend/models"
	requestapimodels "office-workflow-backend/models/api/request"
	dbmodels "office-workflow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Request) (id string, err error)
	GetByID(id string) (rec *dbmodels.Request, err error)
	Update(id string, updMap map[string]interface{}) error
	List(scope ViewScope, filter requestapimodels.RequestFilter) (list []dbmodels.Request, err error)
	Count() (int64, error)
}

// ViewScope restricts listing to what a viewer role may see. The empty
// scope means no restriction (Master).
type ViewScope struct {
	TeamRole   models.UserRole //requests with at least one task for this team
	EmployeeID string          //requests created by this requester identity
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Request) (string, error) {
	err := i.db.
		Omit("Tasks", "History").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Request, error) {
	rec := dbmodels.Request{}
	err := i.db.
		Where("id = ?", id).
		Preload("Tasks").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	err := i.db.
		Model(&dbmodels.Request{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}

func (i impl) List(scope ViewScope, filter requestapimodels.RequestFilter) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	tx := i.db.Model(&dbmodels.Request{})
	if scope.TeamRole != "" {
		tx = tx.Where("id IN (?)", i.db.
			Model(&dbmodels.Task{}).
			Select("request_id").
			Where("assigned_to_role = ?", scope.TeamRole))
	}
	if scope.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", scope.EmployeeID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		tx = tx.Where("LOWER(requester_name) LIKE ? OR LOWER(id) LIKE ? OR LOWER(office_name) LIKE ?", term, term, term)
	}
	err = tx.
		Order("submission_date DESC").
		Preload("Tasks").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Count() (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Request{}).
		Count(&count).
		Error
	return count, err
}
