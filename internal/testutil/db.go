// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"fmt"
	"testing"

	"intia-api/internal/adapters/persistence/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated sqlite database private to t.
// The pool is capped at one connection so the shared-cache database lives as
// long as the test and transactions never contend with each other.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "open db")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.AutoMigrate(db), "migrate")
	return db
}

// SeedBranch inserts a branch and returns it
func SeedBranch(t *testing.T, db *gorm.DB, code, name string) *models.Branch {
	t.Helper()
	branch := &models.Branch{Code: code, Name: name}
	require.NoError(t, db.Create(branch).Error, "seed branch %s", code)
	return branch
}
