package taskhandler

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"office-workflow-backend/db"
	historyhandler "office-workflow-backend/lib/history"
	notificationhandler "office-workflow-backend/lib/notification"
	requeststore "office-workflow-backend/lib/request/store"
	taskstore "office-workflow-backend/lib/task/store"
	"office-workflow-backend/models"
	taskapimodels "office-workflow-backend/models/api/task"
	dbmodels "office-workflow-backend/models/db"
)

type Provider interface {
	Assign(requestID, assignerUserID, assignerName string, data taskapimodels.AssignTaskData) (taskID string, err error)
	Submit(taskID string, data taskapimodels.SubmitTaskData) error
	Review(taskID, reviewerName string, data taskapimodels.ReviewTaskData) error
	DeleteSubmission(taskID, actorName string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		db:           db.DB,
		store:        taskstore.NewInstance(db.DB),
		requestStore: requeststore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		db:           tx,
		store:        taskstore.NewInstance(tx),
		requestStore: requeststore.NewInstance(tx),
	}
}

type impl struct {
	db           *gorm.DB
	store        taskstore.Provider
	requestStore requeststore.Provider
}

// Assign fans a request out to one team. Fanning out to several teams
// is one call per team; each call commits independently, so a failure
// mid-batch leaves the earlier assignments in place.
func (i impl) Assign(requestID, assignerUserID, assignerName string, data taskapimodels.AssignTaskData) (taskID string, err error) {
	logger := log.
		WithField("request_id", requestID).
		WithField("target_role", data.TargetRole)
	if err = data.Validate(); err != nil {
		return "", err
	}
	request, err := i.getRequest(requestID)
	if err != nil {
		return "", err
	}
	exists, err := i.store.ExistsForRole(requestID, data.TargetRole)
	if err != nil {
		return "", err
	}
	if exists {
		// Duplicates are allowed, teams resolve them between themselves.
		logger.Warn("role already has a task for this request, creating a duplicate")
	}

	rec := dbmodels.Task{
		RequestID:        requestID,
		AssignedToRole:   data.TargetRole,
		AssignedByUserID: assignerUserID,
		MasterNotes:      data.MasterNotes,
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := taskstore.NewInstance(tx)
		taskID, err = store.Create(rec)
		if err != nil {
			logger.WithError(err).Error("failed to create task")
			return err
		}
		if request.Status.AllowAssign() {
			err = requeststore.NewInstance(tx).Update(requestID, map[string]interface{}{
				"status": models.RequestStatusAssigned,
			})
			if err != nil {
				logger.WithError(err).Error("failed to update request status")
				return err
			}
		}
		historyhandler.NewHandlerWithTx(tx).
			Audit(requestID, models.HistoryTaskAssigned, assignerName,
				fmt.Sprintf("Assigned to %s", data.TargetRole))
		notificationhandler.NewHandlerWithTx(tx).
			Notify(string(data.TargetRole),
				fmt.Sprintf("Request #%s has been assigned to the %s team", requestID, data.TargetRole),
				models.NotificationInfo)
		return nil
	})
	if err != nil {
		return "", err
	}
	notificationhandler.NewHandlerWithTx(i.db).
		Email(request.RequesterEmail,
			fmt.Sprintf("Request #%s Update", requestID),
			fmt.Sprintf("Your request has been assigned to the %s team.", data.TargetRole))
	logger.
		WithField("task_id", taskID).
		Info("task assigned")
	return taskID, nil
}

func (i impl) Submit(taskID string, data taskapimodels.SubmitTaskData) error {
	logger := log.WithField("task_id", taskID)
	if err := data.Validate(); err != nil {
		return err
	}
	task, err := i.getTask(taskID)
	if err != nil {
		return err
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		store := taskstore.NewInstance(tx)
		err := store.Update(taskID, map[string]interface{}{
			"deliverable_link":          data.DeliverableLink,
			"employee_submission_notes": data.SubmissionNotes,
		})
		if err != nil {
			logger.WithError(err).Error("failed to store submission")
			return err
		}
		// Last writer wins: with several teams assigned the request
		// status reflects the most recent submission only.
		err = requeststore.NewInstance(tx).Update(task.RequestID, map[string]interface{}{
			"status": models.RequestStatusSubmitted,
		})
		if err != nil {
			logger.WithError(err).Error("failed to update request status")
			return err
		}
		historyhandler.NewHandlerWithTx(tx).
			Audit(task.RequestID, models.HistoryWorkSubmitted,
				fmt.Sprintf("%s Team", task.AssignedToRole), "Deliverables uploaded")
		notificationhandler.NewHandlerWithTx(tx).
			Notify(string(models.MasterRole),
				fmt.Sprintf("The %s team has submitted work for request #%s", task.AssignedToRole, task.RequestID),
				models.NotificationSuccess)
		return nil
	})
	if err != nil {
		return err
	}
	notificationhandler.NewHandlerWithTx(i.db).
		EmailMaster(
			fmt.Sprintf("Work Submitted for #%s", task.RequestID),
			fmt.Sprintf("The %s team has submitted work.", task.AssignedToRole))
	logger.Info("work submitted")
	return nil
}

func (i impl) Review(taskID, reviewerName string, data taskapimodels.ReviewTaskData) error {
	logger := log.
		WithField("task_id", taskID).
		WithField("decision", data.Decision)
	if err := data.Validate(); err != nil {
		return err
	}
	task, err := i.getTask(taskID)
	if err != nil {
		return err
	}
	if _, err = i.getRequest(task.RequestID); err != nil {
		return err
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		history := historyhandler.NewHandlerWithTx(tx)
		notifier := notificationhandler.NewHandlerWithTx(tx)
		requestStore := requeststore.NewInstance(tx)
		switch data.Decision {
		case models.ReviewApprove:
			err := requestStore.Update(task.RequestID, map[string]interface{}{
				"status": models.RequestStatusFinalized,
			})
			if err != nil {
				return err
			}
			history.Audit(task.RequestID, models.HistoryRequestFinalized, reviewerName, data.Feedback)
			notifier.Notify(string(task.AssignedToRole),
				fmt.Sprintf("Request #%s has been finalized", task.RequestID),
				models.NotificationSuccess)
		case models.ReviewReject:
			err := taskstore.NewInstance(tx).Update(taskID, map[string]interface{}{
				"master_feedback": data.Feedback,
			})
			if err != nil {
				return err
			}
			err = requestStore.Update(task.RequestID, map[string]interface{}{
				"status": models.RequestStatusChangesRequested,
			})
			if err != nil {
				return err
			}
			history.Audit(task.RequestID, models.HistoryChangesRequested, reviewerName, data.Feedback)
			notifier.Notify(string(task.AssignedToRole),
				fmt.Sprintf("Changes requested for request #%s", task.RequestID),
				models.NotificationAlert)
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("failed to review task")
		return err
	}
	logger.Info("task reviewed")
	return nil
}

// DeleteSubmission clears the deliverable from a task. The request
// status is left as is, even when no submitted deliverable remains.
func (i impl) DeleteSubmission(taskID, actorName string) error {
	logger := log.WithField("task_id", taskID)
	task, err := i.getTask(taskID)
	if err != nil {
		return err
	}
	err = i.db.Transaction(func(tx *gorm.DB) error {
		err := taskstore.NewInstance(tx).Update(taskID, map[string]interface{}{
			"deliverable_link":          "",
			"employee_submission_notes": "",
		})
		if err != nil {
			logger.WithError(err).Error("failed to clear submission")
			return err
		}
		historyhandler.NewHandlerWithTx(tx).
			Audit(task.RequestID, models.HistorySubmissionRemoved, actorName, "")
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("submission removed")
	return nil
}

func (i impl) getTask(id string) (*dbmodels.Task, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.
			WithField("task_id", id).
			WithError(err).
			Error("failed to load task")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "task %v", id)
	}
	return rec, nil
}

func (i impl) getRequest(id string) (*dbmodels.Request, error) {
	rec, err := i.requestStore.GetByID(id)
	if err != nil {
		log.
			WithField("request_id", id).
			WithError(err).
			Error("failed to load request")
		return nil, err
	}
	if rec == nil {
		return nil, errors.Wrapf(models.ErrNotFound, "request %v", id)
	}
	return rec, nil
}
