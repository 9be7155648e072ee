package snapshothandler_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	requeststore "office-workflow-backend/lib/request/store"
	snapshothandler "office-workflow-backend/lib/snapshot"
	taskstore "office-workflow-backend/lib/task/store"
	"office-workflow-backend/lib/testdb"
	usersstore "office-workflow-backend/lib/users/store"
	"office-workflow-backend/models"
	dbmodels "office-workflow-backend/models/db"
)

func TestSnapshotRoundTrip(t *testing.T) {
	source := testdb.New(t)
	storage := snapshothandler.NewMemoryStorage()

	_, err := usersstore.NewInstance(source).Create(dbmodels.User{
		Username: "team_Design",
		Password: "x",
		Role:     models.DesignRole,
	})
	require.NoError(t, err)
	requestID, err := requeststore.NewInstance(source).Create(dbmodels.Request{
		TaskTitle:  "Open Day Video",
		EmployeeID: "EMP-100",
		Status:     models.RequestStatusAssigned,
	})
	require.NoError(t, err)
	_, err = taskstore.NewInstance(source).Create(dbmodels.Task{
		RequestID:      requestID,
		AssignedToRole: models.DesignRole,
	})
	require.NoError(t, err)

	require.NoError(t, snapshothandler.NewHandlerWithTx(source, storage).ExportToStorage())

	target := testdb.New(t)
	require.NoError(t, snapshothandler.NewHandlerWithTx(target, storage).ImportFromStorage())

	rec, err := requeststore.NewInstance(target).GetByID(requestID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, "Open Day Video", rec.TaskTitle)
	require.Equal(t, models.RequestStatusAssigned, rec.Status)
	require.Len(t, rec.Tasks, 1)

	user, err := usersstore.NewInstance(target).FindByUsername("team_Design")
	require.NoError(t, err)
	require.NotNil(t, user)
}

func TestSnapshotExportStable(t *testing.T) {
	conn := testdb.New(t)
	storage := snapshothandler.NewMemoryStorage()
	handler := snapshothandler.NewHandlerWithTx(conn, storage)

	_, err := requeststore.NewInstance(conn).Create(dbmodels.Request{
		TaskTitle: "Press Release",
		Status:    models.RequestStatusPending,
	})
	require.NoError(t, err)

	first, err := handler.Export()
	require.NoError(t, err)
	second, err := handler.Export()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSnapshotImportEmptyStorage(t *testing.T) {
	conn := testdb.New(t)
	handler := snapshothandler.NewHandlerWithTx(conn, snapshothandler.NewMemoryStorage())

	require.NoError(t, handler.ImportFromStorage())
}

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	storage := snapshothandler.NewFileStorage(path)

	loaded, err := storage.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)

	snapshot := snapshothandler.Snapshot{
		Settings: []dbmodels.Setting{{MasterNotificationEmail: "master@example.org"}},
	}
	require.NoError(t, storage.Save(snapshot))

	loaded, err = storage.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, "master@example.org", loaded.Settings[0].MasterNotificationEmail)
}
