package requesthandler_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	xlsexport "office-workflow-backend/lib/export/xls"
	historystore "office-workflow-backend/lib/history/store"
	notificationstore "office-workflow-backend/lib/notification/store"
	requesthandler "office-workflow-backend/lib/request"
	requeststore "office-workflow-backend/lib/request/store"
	taskstore "office-workflow-backend/lib/task/store"
	"office-workflow-backend/lib/testdb"
	"office-workflow-backend/models"
	requestapimodels "office-workflow-backend/models/api/request"
	dbmodels "office-workflow-backend/models/db"
)

func newRequestData() requestapimodels.RequestCreateData {
	return requestapimodels.RequestCreateData{
		TaskTitle:      "Annual Day Poster",
		RequesterName:  "John Carter",
		RequesterEmail: "john.carter@example.org",
		EmployeeID:     "EMP-100",
		OfficeName:     "Registrar Office",
		ExtensionNo:    "1234",
		MobileNo:       "0500000000",
		RequestTypes:   []models.RequestType{models.RequestTypeDesign, models.RequestTypePR},
		RequestDetails: "Poster and press release for the annual day",
	}
}

func TestCreateRequest(t *testing.T) {
	conn := testdb.New(t)
	handler := requesthandler.NewHandlerWithTx(conn)

	id, err := handler.Create(newRequestData())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec, err := requeststore.NewInstance(conn).GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, models.RequestStatusPending, rec.Status)
	require.Equal(t, []models.RequestType{models.RequestTypeDesign, models.RequestTypePR}, rec.GetRequestTypes())
	require.False(t, rec.SubmissionDate.IsZero())

	history, err := historystore.NewInstance(conn).ListByRequest(id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, models.HistoryRequestCreated, history[0].Action)
	require.Equal(t, "John Carter", history[0].ActorName)

	inbox, err := notificationstore.NewInstance(conn).ListByRole(models.MasterRole)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	require.False(t, inbox[0].IsRead)
}

func TestCreateRequestWithoutTypes(t *testing.T) {
	conn := testdb.New(t)
	handler := requesthandler.NewHandlerWithTx(conn)

	data := newRequestData()
	data.RequestTypes = nil
	_, err := handler.Create(data)
	require.ErrorIs(t, err, models.ErrValidation)

	count, err := requeststore.NewInstance(conn).Count()
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestCreateRequestUnknownType(t *testing.T) {
	conn := testdb.New(t)
	handler := requesthandler.NewHandlerWithTx(conn)

	data := newRequestData()
	data.RequestTypes = []models.RequestType{"Catering"}
	_, err := handler.Create(data)
	require.ErrorIs(t, err, models.ErrValidation)
}

func addTask(t *testing.T, conn *gorm.DB, requestID string, role models.UserRole) string {
	t.Helper()
	id, err := taskstore.NewInstance(conn).Create(dbmodels.Task{
		RequestID:      requestID,
		AssignedToRole: role,
	})
	require.NoError(t, err)
	return id
}

func TestListVisibility(t *testing.T) {
	conn := testdb.New(t)
	handler := requesthandler.NewHandlerWithTx(conn)

	firstID, err := handler.Create(newRequestData())
	require.NoError(t, err)

	other := newRequestData()
	other.RequesterName = "Mary Smith"
	other.EmployeeID = "EMP-200"
	secondID, err := handler.Create(other)
	require.NoError(t, err)

	addTask(t, conn, firstID, models.DesignRole)

	master := models.Viewer{Role: models.MasterRole, Name: "Master"}
	design := models.Viewer{Role: models.DesignRole, Name: "Design"}
	pr := models.Viewer{Role: models.PRRole, Name: "PR"}
	employee := models.Viewer{Role: models.EmployeeRole, EmployeeID: "EMP-200"}

	list, err := handler.List(master, requestapimodels.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, list, 2)

	list, err = handler.List(design, requestapimodels.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, firstID, list[0].ID)

	list, err = handler.List(pr, requestapimodels.RequestFilter{})
	require.NoError(t, err)
	require.Empty(t, list)

	list, err = handler.List(employee, requestapimodels.RequestFilter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, secondID, list[0].ID)

	// detail view follows the same rules
	_, err = handler.GetByID(design, firstID)
	require.NoError(t, err)
	_, err = handler.GetByID(pr, firstID)
	require.ErrorIs(t, err, models.ErrNotFound)
	_, err = handler.GetByID(employee, secondID)
	require.NoError(t, err)
}

func TestListRequesterWithoutEmployeeID(t *testing.T) {
	conn := testdb.New(t)
	handler := requesthandler.NewHandlerWithTx(conn)

	_, err := handler.Create(newRequestData())
	require.NoError(t, err)
	other := newRequestData()
	other.EmployeeID = "EMP-200"
	_, err = handler.Create(other)
	require.NoError(t, err)

	// an id-less requester must not fall through to the Master's view
	list, err := handler.List(models.Viewer{Role: models.EmployeeRole}, requestapimodels.RequestFilter{})
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestListFilters(t *testing.T) {
	conn := testdb.New(t)
	handler := requesthandler.NewHandlerWithTx(conn)

	firstID, err := handler.Create(newRequestData())
	require.NoError(t, err)

	other := newRequestData()
	other.RequesterName = "Mary Smith"
	other.OfficeName = "Dean Office"
	_, err = handler.Create(other)
	require.NoError(t, err)

	require.NoError(t, requeststore.NewInstance(conn).Update(firstID, map[string]interface{}{
		"status": models.RequestStatusAssigned,
	}))

	master := models.Viewer{Role: models.MasterRole}

	list, err := handler.List(master, requestapimodels.RequestFilter{Status: models.RequestStatusAssigned})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, firstID, list[0].ID)

	list, err = handler.List(master, requestapimodels.RequestFilter{Search: "mary"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Mary Smith", list[0].RequesterName)

	list, err = handler.List(master, requestapimodels.RequestFilter{Search: "dean"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = handler.List(master, requestapimodels.RequestFilter{Search: "no-such-requester"})
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestRejectRequest(t *testing.T) {
	conn := testdb.New(t)
	handler := requesthandler.NewHandlerWithTx(conn)

	id, err := handler.Create(newRequestData())
	require.NoError(t, err)

	err = handler.Reject(id, "Master Admin", "out of scope")
	require.NoError(t, err)

	rec, err := requeststore.NewInstance(conn).GetByID(id)
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusRejected, rec.Status)

	history, err := historystore.NewInstance(conn).ListByRequest(id)
	require.NoError(t, err)
	require.Equal(t, models.HistoryRequestRejected, history[0].Action)
	require.Equal(t, "out of scope", history[0].Details)

	// a rejected request cannot be rejected again
	err = handler.Reject(id, "Master Admin", "again")
	require.Error(t, err)
}

func TestRejectNonPending(t *testing.T) {
	conn := testdb.New(t)
	handler := requesthandler.NewHandlerWithTx(conn)

	id, err := handler.Create(newRequestData())
	require.NoError(t, err)
	require.NoError(t, requeststore.NewInstance(conn).Update(id, map[string]interface{}{
		"status": models.RequestStatusAssigned,
	}))

	err = handler.Reject(id, "Master Admin", "too late")
	require.Error(t, err)

	rec, err := requeststore.NewInstance(conn).GetByID(id)
	require.NoError(t, err)
	require.Equal(t, models.RequestStatusAssigned, rec.Status)
}

func TestExportXLS(t *testing.T) {
	conn := testdb.New(t)
	xlsexport.NewHandler()
	handler := requesthandler.NewHandlerWithTx(conn)

	_, err := handler.Create(newRequestData())
	require.NoError(t, err)

	buf, err := handler.ExportXLS(requestapimodels.RequestFilter{})
	require.NoError(t, err)
	require.NotZero(t, buf.Len())
}

func TestExportPDF(t *testing.T) {
	conn := testdb.New(t)
	handler := requesthandler.NewHandlerWithTx(conn)

	id, err := handler.Create(newRequestData())
	require.NoError(t, err)
	addTask(t, conn, id, models.DesignRole)

	body, err := handler.ExportPDF(models.Viewer{Role: models.MasterRole}, id)
	require.NoError(t, err)
	require.NotEmpty(t, body)

	_, err = handler.ExportPDF(models.Viewer{Role: models.PRRole}, id)
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestRejectUnknownRequest(t *testing.T) {
	conn := testdb.New(t)
	handler := requesthandler.NewHandlerWithTx(conn)

	err := handler.Reject("no-such-id", "Master Admin", "")
	require.ErrorIs(t, err, models.ErrNotFound)
}
