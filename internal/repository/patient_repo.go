package repository

import (
	"errors"
	"fmt"

	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// GetPatients retrieves patients filtered by archive status
func (r *PatientRepository) GetPatients(archived bool) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Where("is_archived = ?", archived).
		Order("name ASC").
		Find(&patients).Error
	return patients, err
}

// GetPatientByID retrieves a patient by ID
func (r *PatientRepository) GetPatientByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("patient %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &patient, nil
}

// CreatePatient creates a new patient record
func (r *PatientRepository) CreatePatient(patient *models.Patient) error {
	return r.db.Create(patient).Error
}

// UpdatePatient saves patient record changes
func (r *PatientRepository) UpdatePatient(patient *models.Patient) error {
	return r.db.Save(patient).Error
}

// SetArchived flips the soft-delete flag
func (r *PatientRepository) SetArchived(id uint, archived bool) error {
	return r.db.Model(&models.Patient{}).
		Where("id = ?", id).
		Update("is_archived", archived).Error
}

// GetAdmittablePatients retrieves non-archived patients with no open
// admission (pending or admitted)
func (r *PatientRepository) GetAdmittablePatients() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Where("is_archived = ?", false).
		Where("id NOT IN (?)",
			r.db.Model(&models.Admission{}).
				Select("patient_id").
				Where("status IN ?", []string{models.AdmissionPending, models.AdmissionAdmitted}),
		).
		Order("name ASC").
		Find(&patients).Error
	return patients, err
}

// CountActive counts non-archived patients
func (r *PatientRepository) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).
		Where("is_archived = ?", false).
		Count(&count).Error
	return count, err
}
