package requesthandler

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"office-workflow-backend/db"
	pdfexport "office-workflow-backend/lib/export/pdf"
	xlsexport "office-workflow-backend/lib/export/xls"
	historyhandler "office-workflow-backend/lib/history"
	notificationhandler "office-workflow-backend/lib/notification"
	requeststore "office-workflow-backend/lib/request/store"
	"office-workflow-backend/models"
	requestapimodels "office-workflow-backend/models/api/request"
	dbmodels "office-workflow-backend/models/db"
)

type Provider interface {
	Create(data requestapimodels.RequestCreateData) (id string, err error)
	GetByID(viewer models.Viewer, id string) (item requestapimodels.RequestView, err error)
	List(viewer models.Viewer, filter requestapimodels.RequestFilter) (list []requestapimodels.RequestView, err error)
	Reject(id, actorName, reason string) error
	ExportXLS(filter requestapimodels.RequestFilter) (*bytes.Buffer, error)
	ExportPDF(viewer models.Viewer, id string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:    db.DB,
		store: requeststore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		db:    tx,
		store: requeststore.NewInstance(tx),
	}
}

type impl struct {
	db    *gorm.DB
	store requeststore.Provider
}

func (i impl) Create(data requestapimodels.RequestCreateData) (id string, err error) {
	logger := log.WithField("requester", data.RequesterName)
	if err = data.Validate(); err != nil {
		return "", err
	}
	rec := dbmodels.Request{
		TaskTitle:      data.TaskTitle,
		RequesterName:  data.RequesterName,
		RequesterEmail: data.RequesterEmail,
		EmployeeID:     data.EmployeeID,
		OfficeName:     data.OfficeName,
		ExtensionNo:    data.ExtensionNo,
		MobileNo:       data.MobileNo,
		RequestDetails: data.RequestDetails,
		Status:         models.RequestStatusPending,
		SubmissionDate: time.Now(),
	}
	rec.SetRequestTypes(data.RequestTypes)

	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := requeststore.NewInstance(tx)
		id, err = store.Create(rec)
		if err != nil {
			logger.
				WithField("request", fmt.Sprintf("%+v", data)).
				WithError(err).
				Error("failed to create request")
			return err
		}
		historyhandler.NewHandlerWithTx(tx).
			Audit(id, models.HistoryRequestCreated, data.RequesterName, "")
		notificationhandler.NewHandlerWithTx(tx).
			Notify(string(models.MasterRole),
				fmt.Sprintf("New request #%s from %s is pending review", id, data.RequesterName),
				models.NotificationInfo)
		return nil
	})
	if err != nil {
		return "", err
	}

	notifier := notificationhandler.NewHandlerWithTx(i.db)
	notifier.EmailMaster(
		fmt.Sprintf("New Request #%s", id),
		fmt.Sprintf("A new request from %s is pending review.", data.RequesterName))
	notifier.Email(data.RequesterEmail,
		fmt.Sprintf("Request #%s Received", id),
		fmt.Sprintf("We have received your request for: %s.", joinTypes(data.RequestTypes)))

	logger.
		WithField("rec_id", id).
		Info("request created")
	return id, nil
}

func (i impl) GetByID(viewer models.Viewer, id string) (requestapimodels.RequestView, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.RequestView{}, err
	}
	if !isVisible(viewer, *rec) {
		return requestapimodels.RequestView{}, errors.Wrapf(models.ErrNotFound, "request %v", id)
	}
	return requestapimodels.RequestConvert(*rec), nil
}

func (i impl) List(viewer models.Viewer, filter requestapimodels.RequestFilter) ([]requestapimodels.RequestView, error) {
	logger := log.WithField("viewer_role", viewer.Role)
	scope := requeststore.ViewScope{}
	switch {
	case viewer.Role.IsMaster():
	case viewer.Role.IsTeam():
		scope.TeamRole = viewer.Role
	default:
		// The empty scope is the Master's full view, never a fallback:
		// a requester without an employee id owns no requests.
		if viewer.EmployeeID == "" {
			return []requestapimodels.RequestView{}, nil
		}
		scope.EmployeeID = viewer.EmployeeID
	}
	recList, err := i.store.List(scope, filter)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to list requests")
		return nil, err
	}
	result := make([]requestapimodels.RequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, requestapimodels.RequestConvert(rec))
	}
	return result, nil
}

// Reject is the Master's intake rejection: the request leaves the queue
// without ever being fanned out.
func (i impl) Reject(id, actorName, reason string) error {
	logger := log.
		WithField("rec_id", id).
		WithField("actor", actorName)
	rec, err := i.getRec(id)
	if err != nil {
		return err
	}
	if !rec.Status.AllowReject() {
		return errors.Errorf("request in status %v cannot be rejected", rec.Status)
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := requeststore.NewInstance(tx)
		err := store.Update(id, map[string]interface{}{
			"status": models.RequestStatusRejected,
		})
		if err != nil {
			logger.WithError(err).Error("failed to reject request")
			return err
		}
		historyhandler.NewHandlerWithTx(tx).
			Audit(id, models.HistoryRequestRejected, actorName, reason)
		notificationhandler.NewHandlerWithTx(tx).
			Notify(models.RecipientAll,
				fmt.Sprintf("Request #%s has been rejected", id),
				models.NotificationAlert)
		return nil
	})
	if err != nil {
		return err
	}
	notificationhandler.NewHandlerWithTx(i.db).
		Email(rec.RequesterEmail,
			fmt.Sprintf("Request #%s Update", id),
			"Your request has been rejected by the coordinating office.")
	logger.Info("request rejected")
	return nil
}

// ExportXLS writes the full register, Master only, so no view scope.
func (i impl) ExportXLS(filter requestapimodels.RequestFilter) (*bytes.Buffer, error) {
	recList, err := i.store.List(requeststore.ViewScope{}, filter)
	if err != nil {
		log.WithError(err).Error("failed to list requests for export")
		return nil, err
	}
	return xlsexport.Instance.ExportRequestList(recList)
}

func (i impl) ExportPDF(viewer models.Viewer, id string) ([]byte, error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	if !isVisible(viewer, *rec) {
		return nil, errors.Wrapf(models.ErrNotFound, "request %v", id)
	}
	return pdfexport.GenerateRequestSummary(*rec)
}

func (i impl) getRec(id string) (*dbmodels.Request, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.
			WithField("rec_id", id).
			WithError(err).
			Error("failed to load request")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "request %v", id)
	}
	return rec, nil
}

func isVisible(viewer models.Viewer, rec dbmodels.Request) bool {
	switch {
	case viewer.Role.IsMaster():
		return true
	case viewer.Role.IsTeam():
		for _, task := range rec.Tasks {
			if task.AssignedToRole == viewer.Role {
				return true
			}
		}
		return false
	default:
		return viewer.EmployeeID != "" && rec.EmployeeID == viewer.EmployeeID
	}
}

func joinTypes(types []models.RequestType) string {
	parts := make([]string, 0, len(types))
	for _, t := range types {
		parts = append(parts, string(t))
	}
	return strings.Join(parts, ", ")
}
