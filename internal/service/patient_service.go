package service

import (
	"errors"
	"fmt"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
)

type PatientService struct {
	patientRepo   *repository.PatientRepository
	admissionRepo *repository.AdmissionRepository
}

func NewPatientService(patientRepo *repository.PatientRepository, admissionRepo *repository.AdmissionRepository) *PatientService {
	return &PatientService{
		patientRepo:   patientRepo,
		admissionRepo: admissionRepo,
	}
}

// GetPatients lists patients; archived selects the soft-deleted set
func (s *PatientService) GetPatients(archived bool) ([]models.Patient, error) {
	return s.patientRepo.GetPatients(archived)
}

// GetAdmittablePatients lists patients eligible for a new admission
func (s *PatientService) GetAdmittablePatients() ([]models.Patient, error) {
	return s.patientRepo.GetAdmittablePatients()
}

// GetPatientByID retrieves one patient record
func (s *PatientService) GetPatientByID(id uint) (*models.Patient, error) {
	return s.patientRepo.GetPatientByID(id)
}

// CreatePatient registers a new patient
func (s *PatientService) CreatePatient(patient *models.Patient) error {
	if patient.Name == "" {
		return errors.New("patient name is required")
	}
	if err := s.patientRepo.CreatePatient(patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

// UpdatePatient saves patient record changes
func (s *PatientService) UpdatePatient(patient *models.Patient) error {
	if _, err := s.patientRepo.GetPatientByID(patient.ID); err != nil {
		return err
	}
	return s.patientRepo.UpdatePatient(patient)
}

// ArchivePatient soft-deletes a patient. The record and its history stay
// queryable; a patient with an open admission cannot be archived.
func (s *PatientService) ArchivePatient(id uint) error {
	if _, err := s.patientRepo.GetPatientByID(id); err != nil {
		return err
	}
	open, err := s.admissionRepo.HasOpenAdmission(id)
	if err != nil {
		return err
	}
	if open {
		return errors.New("cannot archive a patient with an open admission")
	}
	return s.patientRepo.SetArchived(id, true)
}

// RestorePatient reverses a soft delete
func (s *PatientService) RestorePatient(id uint) error {
	if _, err := s.patientRepo.GetPatientByID(id); err != nil {
		return err
	}
	return s.patientRepo.SetArchived(id, false)
}
