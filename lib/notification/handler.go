package notificationhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"office-workflow-backend/db"
	notificationstore "office-workflow-backend/lib/notification/store"
	settingsstore "office-workflow-backend/lib/settings/store"
	"office-workflow-backend/lib/smtp"
	"office-workflow-backend/models"
	notificationapimodels "office-workflow-backend/models/api/notification"
	dbmodels "office-workflow-backend/models/db"
)

type Provider interface {
	Notify(recipientRole string, message string, kind models.NotificationKind)
	EmailMaster(subject, body string)
	Email(to, subject, body string)
	List(role models.UserRole) ([]notificationapimodels.NotificationView, error)
	MarkRead(id string) error
	UnreadCount(role models.UserRole) (int64, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         notificationstore.NewInstance(db.DB),
		settingsStore: settingsstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store:         notificationstore.NewInstance(tx),
		settingsStore: settingsstore.NewInstance(tx),
	}
}

type impl struct {
	store         notificationstore.Provider
	settingsStore settingsstore.Provider
}

// Notify appends to the recipient role's inbox. Fan-out is advisory:
// a write failure is logged, it never fails the triggering operation.
func (i impl) Notify(recipientRole string, message string, kind models.NotificationKind) {
	rec := dbmodels.Notification{
		RecipientRole: recipientRole,
		Message:       message,
		Kind:          kind,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("recipient_role", recipientRole).
			WithError(err).
			Error("failed to store notification")
	}
}

// EmailMaster delivers to the address configured in settings, when set.
func (i impl) EmailMaster(subject, body string) {
	settings, err := i.settingsStore.Get()
	if err != nil {
		log.WithError(err).Error("failed to read settings for master email")
		return
	}
	if settings == nil || settings.MasterNotificationEmail == "" {
		return
	}
	i.Email(settings.MasterNotificationEmail, subject, body)
}

func (i impl) Email(to, subject, body string) {
	if smtp.Instance == nil || to == "" {
		return
	}
	err := smtp.Instance.SendEMail(to, subject, body)
	if err != nil {
		log.
			WithField("recipient", to).
			WithError(err).
			Error("failed to send workflow email")
	}
}

func (i impl) List(role models.UserRole) ([]notificationapimodels.NotificationView, error) {
	recList, err := i.store.ListByRole(role)
	if err != nil {
		return nil, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result, nil
}

func (i impl) MarkRead(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrapf(models.ErrNotFound, "notification %v", id)
	}
	return i.store.MarkRead(id)
}

func (i impl) UnreadCount(role models.UserRole) (int64, error) {
	return i.store.UnreadCount(role)
}
