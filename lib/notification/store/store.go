package notificationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"office-workflow-backend/models"
	dbmodels "office-workflow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Notification) (id string, err error)
	GetByID(id string) (rec *dbmodels.Notification, err error)
	ListByRole(role models.UserRole) (list []dbmodels.Notification, err error)
	MarkRead(id string) error
	UnreadCount(role models.UserRole) (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Notification) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Notification, error) {
	rec := dbmodels.Notification{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) ListByRole(role models.UserRole) (list []dbmodels.Notification, err error) {
	list = []dbmodels.Notification{}
	err = i.db.
		Where("recipient_role IN ?", []string{string(role), models.RecipientAll}).
		Order("created_at DESC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) MarkRead(id string) error {
	return i.db.
		Model(&dbmodels.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).
		Error
}

func (i impl) UnreadCount(role models.UserRole) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Notification{}).
		Where("recipient_role IN ?", []string{string(role), models.RecipientAll}).
		Where("is_read = ?", false).
		Count(&count).
		Error
	return count, err
}
