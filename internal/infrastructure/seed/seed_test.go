package seed

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tradehub/internal/infrastructure/persistence/models"
)

const fixtures = `
users:
  - id: 7
    first_name: Ana
    last_name: Silva
    username: ana
companies:
  - id: 3
    first_name: Acme
    username: acme
    avatar: avatars/acme.png
`

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, conn.AutoMigrate(&models.UserModel{}, &models.CompanyModel{}))
	return conn
}

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(fixtures))
	require.NoError(t, err)
	require.Len(t, f.Users, 1)
	require.Len(t, f.Companies, 1)
	assert.Equal(t, "ana", f.Users[0].Username)
	require.NotNil(t, f.Companies[0].Avatar)
	assert.Equal(t, "avatars/acme.png", *f.Companies[0].Avatar)
}

func TestParse_Rejects(t *testing.T) {
	_, err := Parse(strings.NewReader("users:\n  - username: nobody\n"))
	assert.ErrorContains(t, err, "users[0]: id is required")

	_, err = Parse(strings.NewReader("admins: []\n"))
	assert.Error(t, err)
}

func TestApply_Upserts(t *testing.T) {
	db := setupDB(t)
	f, err := Parse(strings.NewReader(fixtures))
	require.NoError(t, err)

	require.NoError(t, Apply(context.Background(), db, f))

	f.Users[0].FirstName = "Ana Maria"
	require.NoError(t, Apply(context.Background(), db, f))

	var users []models.UserModel
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)
	assert.Equal(t, "Ana Maria", users[0].FirstName)

	var company models.CompanyModel
	require.NoError(t, db.First(&company, 3).Error)
	assert.Equal(t, "acme", company.Username)
}
