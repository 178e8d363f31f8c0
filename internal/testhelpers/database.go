// Package testhelpers provides shared test fixtures.
package testhelpers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pantrycook/pantrycook/backend/internal/database"
	"github.com/pantrycook/pantrycook/backend/internal/model"
)

// NewTestDB opens an isolated in-memory SQLite database, migrated and ready
// for seeding. The shared-cache DSN keeps the database alive across pooled
// connections.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(db, ""))
	return db
}

// SeedRecipes inserts the given recipes, preserving any preset IDs.
func SeedRecipes(t *testing.T, db *gorm.DB, recipes []model.Recipe) {
	t.Helper()
	for i := range recipes {
		require.NoError(t, db.Create(&recipes[i]).Error)
	}
}
