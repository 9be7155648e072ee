package testdb

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"office-workflow-backend/config"
	"office-workflow-backend/db"
)

// New opens a private in-memory database with the full schema applied.
// The database is named so every pooled connection sees the same one.
func New(t *testing.T) *gorm.DB {
	t.Helper()
	initTestConfig()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(conn))
	return conn
}

// initTestConfig fills the config without touching config.yml, so the
// suite runs from any directory.
func initTestConfig() {
	if config.Conf != nil {
		return
	}
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Master.Username = "master_admin"
	conf.Master.Password = "master"
	config.Conf = conf
}
