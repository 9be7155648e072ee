package initializers

import (
	"context"

	"office-workflow-backend/config"
	"office-workflow-backend/fiberlog"
	authhandler "office-workflow-backend/lib/auth"
	xlsexport "office-workflow-backend/lib/export/xls"
	historyhandler "office-workflow-backend/lib/history"
	notificationhandler "office-workflow-backend/lib/notification"
	requesthandler "office-workflow-backend/lib/request"
	settingshandler "office-workflow-backend/lib/settings"
	snapshothandler "office-workflow-backend/lib/snapshot"
	taskhandler "office-workflow-backend/lib/task"
	usershandler "office-workflow-backend/lib/users"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	authhandler.NewHandler()
	usershandler.NewHandler()
	settingshandler.NewHandler()
	notificationhandler.NewHandler()
	historyhandler.NewHandler()
	requesthandler.NewHandler()
	taskhandler.NewHandler()
	xlsexport.NewHandler()
	snapshothandler.NewHandler(snapshothandler.NewFileStorage(config.Conf.Snapshot.FilePath))
}
