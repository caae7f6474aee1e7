package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tradehub/internal/infrastructure/persistence/models"
)

// setupTestDB opens a private in-memory sqlite database. A single connection
// keeps every statement on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, conn.AutoMigrate(
		&models.ConversationModel{},
		&models.MessageModel{},
		&models.SupportTicketModel{},
		&models.SupportMessageModel{},
		&models.UserModel{},
		&models.CompanyModel{},
	))

	return conn
}
