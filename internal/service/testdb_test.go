package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB opens an in-memory sqlite database on a single connection so
// concurrent transactions queue on the pool instead of failing on sqlite's
// write lock. The schema is created by hand: the enum column types in the
// model tags are MySQL specific.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	ddl := []string{
		`CREATE TABLE patients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT)`,
		`CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT)`,
		`CREATE TABLE doctors (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER)`,
		`CREATE TABLE nurses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER)`,
		`CREATE TABLE medicines (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT, generic_name TEXT, category TEXT, dosage_form TEXT,
			strength TEXT, price_per_unit DECIMAL(10,2),
			stock_quantity INTEGER, reorder_level INTEGER,
			manufacturer TEXT, description TEXT,
			requires_prescription BOOLEAN, is_active BOOLEAN,
			created_at DATETIME, updated_at DATETIME)`,
		`CREATE TABLE prescriptions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			patient_id INTEGER, doctor_id INTEGER, admission_id INTEGER,
			appointment_id INTEGER, status TEXT, prescribed_date DATETIME,
			dispensed_by_id INTEGER, dispensed_date DATETIME, notes TEXT,
			is_paid BOOLEAN, created_at DATETIME, updated_at DATETIME)`,
		`CREATE TABLE prescription_items (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			prescription_id INTEGER, medicine_id INTEGER, quantity INTEGER,
			dosage_instructions TEXT, duration_days INTEGER, status TEXT,
			dispensed_date DATETIME, notes TEXT)`,
		`CREATE TABLE admissions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			patient_id INTEGER, doctor_id INTEGER, nurse_id INTEGER,
			room_id INTEGER, admission_date DATETIME, discharge_date DATETIME,
			status TEXT, requires_inpatient BOOLEAN, doctor_notes TEXT)`,
		`CREATE TABLE procedures (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT, description TEXT, cost DECIMAL(10,2),
			procedure_type TEXT)`,
		`CREATE TABLE admission_procedures (
			admission_id INTEGER, procedure_id INTEGER,
			PRIMARY KEY (admission_id, procedure_id))`,
		`CREATE TABLE audit_logs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER, action TEXT, details TEXT, created_at DATETIME)`,
	}
	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}
