package testutils

import (
	"testing"

	"community-portal-backend/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestModelTablesCoverEveryModel(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	tables, err := modelTables(db)
	require.NoError(t, err)
	assert.Len(t, tables, len(database.Models()))
	assert.Contains(t, tables, "forum_reports")
	assert.Contains(t, tables, "organization_invitations")
	assert.Contains(t, tables, "newsletter_subscriptions")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetWithoutDatabase(t *testing.T) {
	var d *TestDB
	assert.NotPanics(t, d.Reset)
	assert.NotPanics(t, (&TestDB{}).Reset)
}
