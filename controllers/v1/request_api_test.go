package apiv1_test

import (
	"bytes"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apiv1 "office-workflow-backend/controllers/v1"
	"office-workflow-backend/db"
	xlsexport "office-workflow-backend/lib/export/xls"
	requesthandler "office-workflow-backend/lib/request"
	requeststore "office-workflow-backend/lib/request/store"
	"office-workflow-backend/lib/testdb"
	authutils "office-workflow-backend/lib/utils/auth-utils"
	"office-workflow-backend/middleware"
	"office-workflow-backend/models"
	requestapimodels "office-workflow-backend/models/api/request"
)

func newExportApp(t *testing.T) *fiber.App {
	t.Helper()
	conn := testdb.New(t)
	db.DB = conn
	t.Cleanup(func() { db.DB = nil })
	requesthandler.NewHandler()
	xlsexport.NewHandler()

	firstID, err := requesthandler.Instance.Create(requestapimodels.RequestCreateData{
		TaskTitle:     "Annual Day Poster",
		RequesterName: "John Carter",
		EmployeeID:    "EMP-100",
		RequestTypes:  []models.RequestType{models.RequestTypeDesign},
	})
	require.NoError(t, err)
	_, err = requesthandler.Instance.Create(requestapimodels.RequestCreateData{
		TaskTitle:     "Press Release",
		RequesterName: "Mary Smith",
		EmployeeID:    "EMP-200",
		RequestTypes:  []models.RequestType{models.RequestTypePR},
	})
	require.NoError(t, err)
	require.NoError(t, requeststore.NewInstance(conn).Update(firstID, map[string]interface{}{
		"status": models.RequestStatusAssigned,
	}))

	app := fiber.New()
	app.Use(middleware.AuthorizationRequired())
	apiv1.InitRequestApiRouters(app)
	return app
}

func doExport(t *testing.T, app *fiber.App, role models.UserRole, query string) (status int, body []byte) {
	t.Helper()
	token, err := authutils.GetToken("user-id", "Master Admin", role, "")
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodGet, "/request/export/xls"+query, nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func exportRows(t *testing.T, body []byte) [][]string {
	t.Helper()
	book, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows("Requests")
	require.NoError(t, err)
	return rows
}

func TestExportXLSStatusFilter(t *testing.T) {
	app := newExportApp(t)

	status, body := doExport(t, app, models.MasterRole, "?status=Assigned")
	require.Equal(t, fiber.StatusOK, status)
	rows := exportRows(t, body)
	// header plus the one assigned request
	require.Len(t, rows, 2)
	require.Equal(t, "Annual Day Poster", rows[1][1])

	status, body = doExport(t, app, models.MasterRole, "")
	require.Equal(t, fiber.StatusOK, status)
	require.Len(t, exportRows(t, body), 3)
}

func TestExportXLSUnknownStatus(t *testing.T) {
	app := newExportApp(t)

	status, _ := doExport(t, app, models.MasterRole, "?status=Archived")
	require.Equal(t, fiber.StatusBadRequest, status)
}

func TestExportXLSMasterOnly(t *testing.T) {
	app := newExportApp(t)

	status, _ := doExport(t, app, models.DesignRole, "")
	require.Equal(t, fiber.StatusForbidden, status)
}
