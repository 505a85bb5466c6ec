// Package testutil provides database fixtures shared by the integration tests.
package testutil

import (
	"path/filepath"
	"testing"

	"veraz/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a file-backed SQLite database with foreign keys enforced
// and the schema migrated from the GORM models. It is closed when the test ends.
func NewSQLiteDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "veraz.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// SQLite allows a single writer.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// SeedUser inserts an account directly and returns its id.
func SeedUser(t testing.TB, db *gorm.DB, email, name, role string, cuit *string) uint {
	t.Helper()

	user := &model.UserModel{
		Email:    email,
		Name:     name,
		Password: "unused",
		Role:     role,
		Cuit:     cuit,
	}
	require.NoError(t, db.Create(user).Error)

	return user.ID
}
