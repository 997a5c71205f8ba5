package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDDL holds hand-written sqlite schemas per model: the enum and
// ON UPDATE column tags in the models are MySQL specific, so
// AutoMigrate cannot build them against the test driver.
var testDDL = map[string]string{
	"rooms": `CREATE TABLE rooms (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_number TEXT NOT NULL UNIQUE,
		room_type TEXT DEFAULT 'General',
		bed_capacity INTEGER NOT NULL DEFAULT 1,
		occupied_beds INTEGER NOT NULL DEFAULT 0,
		is_available BOOLEAN DEFAULT true,
		created_at DATETIME, updated_at DATETIME)`,
	"medicines": `CREATE TABLE medicines (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT, generic_name TEXT, category TEXT, dosage_form TEXT,
		strength TEXT, price_per_unit DECIMAL(10,2),
		stock_quantity INTEGER, reorder_level INTEGER,
		manufacturer TEXT, description TEXT,
		requires_prescription BOOLEAN, is_active BOOLEAN,
		created_at DATETIME, updated_at DATETIME)`,
}

// newTestDB opens an in-memory sqlite database for exercising the guarded
// UPDATE paths. A single connection makes concurrent transactions queue on
// the pool instead of failing on sqlite's write lock.
func newTestDB(t *testing.T, tables ...interface{}) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	for _, table := range tables {
		name := table.(interface{ TableName() string }).TableName()
		ddl, ok := testDDL[name]
		require.True(t, ok, "no test DDL for table %q", name)
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}
