package repository

import (
	"errors"
	"fmt"

	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepo(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// GetDoctors retrieves doctors filtered by archive status
func (r *StaffRepository) GetDoctors(archived bool) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Preload("User").
		Where("is_archived = ?", archived).
		Find(&doctors).Error
	return doctors, err
}

// GetDoctorByID retrieves a doctor by ID
func (r *StaffRepository) GetDoctorByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.Preload("User").First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("doctor %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &doctor, nil
}

// CreateDoctor creates a doctor profile
func (r *StaffRepository) CreateDoctor(doctor *models.Doctor) error {
	return r.db.Create(doctor).Error
}

// SetDoctorArchived flips the doctor soft-delete flag
func (r *StaffRepository) SetDoctorArchived(id uint, archived bool) error {
	return r.db.Model(&models.Doctor{}).
		Where("id = ?", id).
		Update("is_archived", archived).Error
}

// GetNurses retrieves nurses filtered by archive status
func (r *StaffRepository) GetNurses(archived bool) ([]models.Nurse, error) {
	var nurses []models.Nurse
	err := r.db.Preload("User").
		Where("is_archived = ?", archived).
		Find(&nurses).Error
	return nurses, err
}

// GetNurseByID retrieves a nurse by ID
func (r *StaffRepository) GetNurseByID(id uint) (*models.Nurse, error) {
	var nurse models.Nurse
	err := r.db.Preload("User").First(&nurse, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("nurse %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &nurse, nil
}

// CreateNurse creates a nurse profile
func (r *StaffRepository) CreateNurse(nurse *models.Nurse) error {
	return r.db.Create(nurse).Error
}

// SetNurseArchived flips the nurse soft-delete flag
func (r *StaffRepository) SetNurseArchived(id uint, archived bool) error {
	return r.db.Model(&models.Nurse{}).
		Where("id = ?", id).
		Update("is_archived", archived).Error
}

// GetPharmacyStaffByID retrieves a pharmacy staff member by ID
func (r *StaffRepository) GetPharmacyStaffByID(id uint) (*models.PharmacyStaff, error) {
	var staff models.PharmacyStaff
	err := r.db.Preload("User").First(&staff, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("pharmacy staff %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &staff, nil
}

// CreatePharmacyStaff creates a pharmacy staff profile
func (r *StaffRepository) CreatePharmacyStaff(staff *models.PharmacyStaff) error {
	return r.db.Create(staff).Error
}
