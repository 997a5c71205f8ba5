package repository

import (
	"errors"
	"fmt"

	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type AdmissionRepository struct {
	db *gorm.DB
}

func NewAdmissionRepo(db *gorm.DB) *AdmissionRepository {
	return &AdmissionRepository{db: db}
}

// GetAdmissions retrieves all admissions with their references loaded
func (r *AdmissionRepository) GetAdmissions() ([]models.Admission, error) {
	var admissions []models.Admission
	err := r.db.Preload("Patient").
		Preload("Doctor.User").
		Preload("Nurse.User").
		Preload("Room").
		Preload("Procedures").
		Order("admission_date DESC").
		Find(&admissions).Error
	return admissions, err
}

// GetAdmissionByID retrieves an admission with its references loaded
func (r *AdmissionRepository) GetAdmissionByID(id uint) (*models.Admission, error) {
	var admission models.Admission
	err := r.db.Preload("Patient").
		Preload("Doctor.User").
		Preload("Nurse.User").
		Preload("Room").
		Preload("Procedures").
		First(&admission, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admission %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &admission, nil
}

// GetAdmissionByIDTx retrieves an admission inside an open transaction
// without preloads, for use by lifecycle mutations
func (r *AdmissionRepository) GetAdmissionByIDTx(tx *gorm.DB, id uint) (*models.Admission, error) {
	var admission models.Admission
	err := tx.First(&admission, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admission %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &admission, nil
}

// CreateAdmission inserts an admission inside an open transaction
func (r *AdmissionRepository) CreateAdmission(tx *gorm.DB, admission *models.Admission) error {
	return tx.Create(admission).Error
}

// SaveAdmission persists admission field changes inside an open transaction
func (r *AdmissionRepository) SaveAdmission(tx *gorm.DB, admission *models.Admission) error {
	return tx.Model(admission).
		Select("doctor_id", "nurse_id", "room_id", "status", "discharge_date",
			"requires_inpatient", "doctor_notes").
		Updates(map[string]interface{}{
			"doctor_id":          admission.DoctorID,
			"nurse_id":           admission.NurseID,
			"room_id":            admission.RoomID,
			"status":             admission.Status,
			"discharge_date":     admission.DischargeDate,
			"requires_inpatient": admission.RequiresInpatient,
			"doctor_notes":       admission.DoctorNotes,
		}).Error
}

// AddProcedures appends procedures to an admission. The set only grows;
// there is no removal operation.
func (r *AdmissionRepository) AddProcedures(admission *models.Admission, procedures []models.Procedure) error {
	return r.db.Model(admission).Association("Procedures").Append(procedures)
}

// HasOpenAdmission reports whether the patient has an admission in
// pending or admitted status
func (r *AdmissionRepository) HasOpenAdmission(patientID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Admission{}).
		Where("patient_id = ? AND status IN ?", patientID,
			[]string{models.AdmissionPending, models.AdmissionAdmitted}).
		Count(&count).Error
	return count > 0, err
}

// HasOpenAdmissionForRoom reports whether any non-discharged admission
// still references the room
func (r *AdmissionRepository) HasOpenAdmissionForRoom(roomID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Admission{}).
		Where("room_id = ? AND status <> ?", roomID, models.AdmissionDischarged).
		Count(&count).Error
	return count > 0, err
}

// CountByStatus counts admissions in the given status
func (r *AdmissionRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Admission{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// Transaction runs fn inside one database transaction; lifecycle mutations
// and their bed-occupancy updates commit or roll back together
func (r *AdmissionRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}
