package taskhandler_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	historystore "office-workflow-backend/lib/history/store"
	notificationstore "office-workflow-backend/lib/notification/store"
	requesthandler "office-workflow-backend/lib/request"
	requeststore "office-workflow-backend/lib/request/store"
	taskhandler "office-workflow-backend/lib/task"
	taskstore "office-workflow-backend/lib/task/store"
	"office-workflow-backend/lib/testdb"
	"office-workflow-backend/models"
	requestapimodels "office-workflow-backend/models/api/request"
	taskapimodels "office-workflow-backend/models/api/task"
)

func newRequest(t *testing.T, conn *gorm.DB) string {
	t.Helper()
	id, err := requesthandler.NewHandlerWithTx(conn).Create(requestapimodels.RequestCreateData{
		TaskTitle:      "Convocation Coverage",
		RequesterName:  "John Carter",
		RequesterEmail: "john.carter@example.org",
		EmployeeID:     "EMP-100",
		OfficeName:     "Registrar Office",
		RequestTypes:   []models.RequestType{models.RequestTypeMedia},
		RequestDetails: "Photo and video coverage",
	})
	require.NoError(t, err)
	return id
}

func requestStatus(t *testing.T, conn *gorm.DB, id string) models.RequestStatus {
	t.Helper()
	rec, err := requeststore.NewInstance(conn).GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	return rec.Status
}

func TestAssignTask(t *testing.T) {
	conn := testdb.New(t)
	handler := taskhandler.NewHandlerWithTx(conn)
	requestID := newRequest(t, conn)

	taskID, err := handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole:  models.MediaLabRole,
		MasterNotes: "Full day coverage",
	})
	require.NoError(t, err)
	require.NotEmpty(t, taskID)

	task, err := taskstore.NewInstance(conn).GetByID(taskID)
	require.NoError(t, err)
	require.Equal(t, requestID, task.RequestID)
	require.Equal(t, models.MediaLabRole, task.AssignedToRole)
	require.Equal(t, "master-id", task.AssignedByUserID)
	require.Equal(t, "Full day coverage", task.MasterNotes)
	require.False(t, task.IsSubmitted())

	require.Equal(t, models.RequestStatusAssigned, requestStatus(t, conn, requestID))

	inbox, err := notificationstore.NewInstance(conn).ListByRole(models.MediaLabRole)
	require.NoError(t, err)
	require.Len(t, inbox, 1)

	history, err := historystore.NewInstance(conn).ListByRequest(requestID)
	require.NoError(t, err)
	require.Equal(t, models.HistoryTaskAssigned, history[0].Action)
}

func TestAssignToNonTeamRole(t *testing.T) {
	conn := testdb.New(t)
	handler := taskhandler.NewHandlerWithTx(conn)
	requestID := newRequest(t, conn)

	_, err := handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.MasterRole,
	})
	require.Error(t, err)

	_, err = handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.EmployeeRole,
	})
	require.Error(t, err)
}

func TestAssignUnknownRequest(t *testing.T) {
	conn := testdb.New(t)
	handler := taskhandler.NewHandlerWithTx(conn)

	_, err := handler.Assign("no-such-id", "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.DesignRole,
	})
	require.ErrorIs(t, err, models.ErrNotFound)

	count, err := taskstore.NewInstance(conn).Count()
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestAssignKeepsLaterStatus(t *testing.T) {
	conn := testdb.New(t)
	handler := taskhandler.NewHandlerWithTx(conn)
	requestID := newRequest(t, conn)

	taskID, err := handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.MediaLabRole,
	})
	require.NoError(t, err)
	require.NoError(t, handler.Submit(taskID, taskapimodels.SubmitTaskData{
		DeliverableLink: "https://drive.example.org/folder/1",
	}))
	require.Equal(t, models.RequestStatusSubmitted, requestStatus(t, conn, requestID))

	// assigning a second team must not move the request back to Assigned
	_, err = handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.DesignRole,
	})
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusSubmitted, requestStatus(t, conn, requestID))
}

func TestAssignAfterChangesRequested(t *testing.T) {
	conn := testdb.New(t)
	handler := taskhandler.NewHandlerWithTx(conn)
	requestID := newRequest(t, conn)

	taskID, err := handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.DesignRole,
	})
	require.NoError(t, err)
	require.NoError(t, handler.Submit(taskID, taskapimodels.SubmitTaskData{
		DeliverableLink: "https://drive.example.org/folder/6",
	}))
	require.NoError(t, handler.Review(taskID, "Master Admin", taskapimodels.ReviewTaskData{
		Decision: models.ReviewReject,
		Feedback: "redo",
	}))
	require.Equal(t, models.RequestStatusChangesRequested, requestStatus(t, conn, requestID))

	// assigning another team while changes are pending keeps the
	// ChangesRequested status, the rework signal must not be masked
	_, err = handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.PRRole,
	})
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusChangesRequested, requestStatus(t, conn, requestID))
}

func TestSubmitTask(t *testing.T) {
	conn := testdb.New(t)
	handler := taskhandler.NewHandlerWithTx(conn)
	requestID := newRequest(t, conn)

	taskID, err := handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.DesignRole,
	})
	require.NoError(t, err)

	err = handler.Submit(taskID, taskapimodels.SubmitTaskData{
		DeliverableLink: "https://drive.example.org/folder/2",
		SubmissionNotes: "Two poster variants",
	})
	require.NoError(t, err)

	task, err := taskstore.NewInstance(conn).GetByID(taskID)
	require.NoError(t, err)
	require.True(t, task.IsSubmitted())
	require.Equal(t, "Two poster variants", task.EmployeeSubmissionNotes)

	require.Equal(t, models.RequestStatusSubmitted, requestStatus(t, conn, requestID))

	inbox, err := notificationstore.NewInstance(conn).ListByRole(models.MasterRole)
	require.NoError(t, err)
	// request created + work submitted
	require.Len(t, inbox, 2)
}

func TestSubmitWithoutLink(t *testing.T) {
	conn := testdb.New(t)
	handler := taskhandler.NewHandlerWithTx(conn)
	requestID := newRequest(t, conn)

	taskID, err := handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.DesignRole,
	})
	require.NoError(t, err)

	err = handler.Submit(taskID, taskapimodels.SubmitTaskData{})
	require.ErrorIs(t, err, models.ErrValidation)
	require.Equal(t, models.RequestStatusAssigned, requestStatus(t, conn, requestID))
}

func TestReviewApprove(t *testing.T) {
	conn := testdb.New(t)
	handler := taskhandler.NewHandlerWithTx(conn)
	requestID := newRequest(t, conn)

	taskID, err := handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.DesignRole,
	})
	require.NoError(t, err)
	require.NoError(t, handler.Submit(taskID, taskapimodels.SubmitTaskData{
		DeliverableLink: "https://drive.example.org/folder/3",
	}))

	err = handler.Review(taskID, "Master Admin", taskapimodels.ReviewTaskData{
		Decision: models.ReviewApprove,
		Feedback: "well done",
	})
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusFinalized, requestStatus(t, conn, requestID))

	history, err := historystore.NewInstance(conn).ListByRequest(requestID)
	require.NoError(t, err)
	require.Equal(t, models.HistoryRequestFinalized, history[0].Action)
}

func TestReviewRequestChanges(t *testing.T) {
	conn := testdb.New(t)
	handler := taskhandler.NewHandlerWithTx(conn)
	requestID := newRequest(t, conn)

	taskID, err := handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.DesignRole,
	})
	require.NoError(t, err)
	require.NoError(t, handler.Submit(taskID, taskapimodels.SubmitTaskData{
		DeliverableLink: "https://drive.example.org/folder/4",
	}))

	err = handler.Review(taskID, "Master Admin", taskapimodels.ReviewTaskData{
		Decision: models.ReviewReject,
		Feedback: "wrong logo on the poster",
	})
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusChangesRequested, requestStatus(t, conn, requestID))

	task, err := taskstore.NewInstance(conn).GetByID(taskID)
	require.NoError(t, err)
	require.Equal(t, "wrong logo on the poster", task.MasterFeedback)

	inbox, err := notificationstore.NewInstance(conn).ListByRole(models.DesignRole)
	require.NoError(t, err)
	require.Equal(t, models.NotificationAlert, inbox[0].Kind)

	// the team resubmits after fixing
	require.NoError(t, handler.Submit(taskID, taskapimodels.SubmitTaskData{
		DeliverableLink: "https://drive.example.org/folder/4-fixed",
	}))
	require.Equal(t, models.RequestStatusSubmitted, requestStatus(t, conn, requestID))
}

func TestReviewUnknownDecision(t *testing.T) {
	conn := testdb.New(t)
	handler := taskhandler.NewHandlerWithTx(conn)
	requestID := newRequest(t, conn)

	taskID, err := handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.DesignRole,
	})
	require.NoError(t, err)

	err = handler.Review(taskID, "Master Admin", taskapimodels.ReviewTaskData{Decision: "MAYBE"})
	require.Error(t, err)
}

func TestDeleteSubmission(t *testing.T) {
	conn := testdb.New(t)
	handler := taskhandler.NewHandlerWithTx(conn)
	requestID := newRequest(t, conn)

	taskID, err := handler.Assign(requestID, "master-id", "Master Admin", taskapimodels.AssignTaskData{
		TargetRole: models.DesignRole,
	})
	require.NoError(t, err)
	require.NoError(t, handler.Submit(taskID, taskapimodels.SubmitTaskData{
		DeliverableLink: "https://drive.example.org/folder/5",
		SubmissionNotes: "draft",
	}))

	err = handler.DeleteSubmission(taskID, "Master Admin")
	require.NoError(t, err)

	task, err := taskstore.NewInstance(conn).GetByID(taskID)
	require.NoError(t, err)
	require.False(t, task.IsSubmitted())
	require.Empty(t, task.EmployeeSubmissionNotes)

	// removing a submission does not move the request back
	require.Equal(t, models.RequestStatusSubmitted, requestStatus(t, conn, requestID))

	history, err := historystore.NewInstance(conn).ListByRequest(requestID)
	require.NoError(t, err)
	require.Equal(t, models.HistorySubmissionRemoved, history[0].Action)
}

func TestDeleteSubmissionUnknownTask(t *testing.T) {
	conn := testdb.New(t)
	handler := taskhandler.NewHandlerWithTx(conn)

	err := handler.DeleteSubmission("no-such-id", "Master Admin")
	require.ErrorIs(t, err, models.ErrNotFound)
}
