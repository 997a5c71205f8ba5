package service

import (
	"testing"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProceduresRecordsAudit(t *testing.T) {
	db := openTestDB(t)
	svc := NewAdmissionService(
		repository.NewAdmissionRepo(db),
		repository.NewRoomRepo(db),
		repository.NewPatientRepo(db),
		repository.NewStaffRepo(db),
		repository.NewProcedureRepo(db),
		repository.NewAuditRepo(db),
	)

	require.NoError(t, db.Exec(`INSERT INTO patients (id, name) VALUES (1, 'Ayesha Khan')`).Error)
	admission := models.Admission{
		PatientID:     1,
		AdmissionDate: time.Now(),
		Status:        models.AdmissionAdmitted,
	}
	require.NoError(t, db.Create(&admission).Error)

	procedure := models.Procedure{
		Name:          "Appendectomy",
		Cost:          decimal.RequireFromString("250.00"),
		ProcedureType: models.ProcedureSurgical,
	}
	require.NoError(t, db.Create(&procedure).Error)

	updated, err := svc.AddProcedures(admission.ID, []uint{procedure.ID}, 7)
	require.NoError(t, err)
	require.Len(t, updated.Procedures, 1)
	assert.Equal(t, procedure.ID, updated.Procedures[0].ID)

	var logs []models.AuditLog
	require.NoError(t, db.Where("action = ?", models.AuditProcedureAdd).Find(&logs).Error)
	require.Len(t, logs, 1)
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, uint(7), *logs[0].UserID)
	assert.Contains(t, logs[0].Details, "1 procedure(s) added")
}
