package notificationhandler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	notificationhandler "office-workflow-backend/lib/notification"
	notificationstore "office-workflow-backend/lib/notification/store"
	"office-workflow-backend/lib/testdb"
	"office-workflow-backend/models"
)

func TestNotifyScoping(t *testing.T) {
	conn := testdb.New(t)
	handler := notificationhandler.NewHandlerWithTx(conn)

	handler.Notify(string(models.DesignRole), "new task for design", models.NotificationInfo)
	handler.Notify(string(models.MasterRole), "work submitted", models.NotificationSuccess)
	handler.Notify(models.RecipientAll, "request rejected", models.NotificationAlert)

	design, err := handler.List(models.DesignRole)
	require.NoError(t, err)
	require.Len(t, design, 2) // own + broadcast

	master, err := handler.List(models.MasterRole)
	require.NoError(t, err)
	require.Len(t, master, 2)

	pr, err := handler.List(models.PRRole)
	require.NoError(t, err)
	require.Len(t, pr, 1) // broadcast only
	require.Equal(t, models.NotificationAlert, pr[0].Kind)
}

func TestMarkRead(t *testing.T) {
	conn := testdb.New(t)
	handler := notificationhandler.NewHandlerWithTx(conn)

	handler.Notify(string(models.DesignRole), "first", models.NotificationInfo)
	handler.Notify(string(models.DesignRole), "second", models.NotificationInfo)

	count, err := handler.UnreadCount(models.DesignRole)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	list, err := handler.List(models.DesignRole)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, handler.MarkRead(list[0].ID))

	count, err = handler.UnreadCount(models.DesignRole)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	rec, err := notificationstore.NewInstance(conn).GetByID(list[0].ID)
	require.NoError(t, err)
	require.True(t, rec.IsRead)
}

func TestMarkReadUnknown(t *testing.T) {
	conn := testdb.New(t)
	handler := notificationhandler.NewHandlerWithTx(conn)

	err := handler.MarkRead("no-such-id")
	require.ErrorIs(t, err, models.ErrNotFound)
}
