package repository

import (
	"errors"
	"fmt"
	"time"

	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type PrescriptionRepository struct {
	db *gorm.DB
}

func NewPrescriptionRepo(db *gorm.DB) *PrescriptionRepository {
	return &PrescriptionRepository{db: db}
}

// CreatePrescription inserts a prescription with its items
func (r *PrescriptionRepository) CreatePrescription(prescription *models.Prescription) error {
	return r.db.Create(prescription).Error
}

// GetPrescriptionByID retrieves a prescription with items and medicines
func (r *PrescriptionRepository) GetPrescriptionByID(id uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := r.db.Preload("Items.Medicine").
		Preload("Patient").
		Preload("Doctor.User").
		First(&prescription, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("prescription %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &prescription, nil
}

// GetItemByIDTx retrieves a prescription item with its medicine inside an
// open transaction
func (r *PrescriptionRepository) GetItemByIDTx(tx *gorm.DB, id uint) (*models.PrescriptionItem, error) {
	var item models.PrescriptionItem
	err := tx.Preload("Medicine").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("prescription item %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &item, nil
}

// DispenseItem flips a pending item to dispensed with a single guarded
// UPDATE so the pending check and the flip are one atomic statement.
// Returns ErrItemNotPending when the item was no longer pending, which is
// how the loser of two concurrent dispenses fails.
func (r *PrescriptionRepository) DispenseItem(tx *gorm.DB, itemID uint, dispensedAt time.Time) error {
	res := tx.Model(&models.PrescriptionItem{}).
		Where("id = ? AND status = ?", itemID, models.ItemPending).
		Updates(map[string]interface{}{
			"status":         models.ItemDispensed,
			"dispensed_date": dispensedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("prescription item %d: %w", itemID, models.ErrItemNotPending)
	}
	return nil
}

// GetPrescriptionByIDTx retrieves a prescription with items inside an open
// transaction, for status recomputation after a dispense
func (r *PrescriptionRepository) GetPrescriptionByIDTx(tx *gorm.DB, id uint) (*models.Prescription, error) {
	var prescription models.Prescription
	err := tx.Preload("Items").First(&prescription, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("prescription %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &prescription, nil
}

// SavePrescriptionStatus persists the derived status and dispensing stamps
// inside an open transaction
func (r *PrescriptionRepository) SavePrescriptionStatus(tx *gorm.DB, prescription *models.Prescription) error {
	return tx.Model(prescription).
		Select("status", "dispensed_by_id", "dispensed_date").
		Updates(map[string]interface{}{
			"status":          prescription.Status,
			"dispensed_by_id": prescription.DispensedByID,
			"dispensed_date":  prescription.DispensedDate,
		}).Error
}

// GetPendingPrescriptions retrieves prescriptions awaiting dispensing
// (pending or partially dispensed)
func (r *PrescriptionRepository) GetPendingPrescriptions() ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.Preload("Items.Medicine").
		Preload("Patient").
		Preload("Doctor.User").
		Where("status IN ?", []string{models.PrescriptionPending, models.PrescriptionPartiallyDispensed}).
		Order("prescribed_date DESC").
		Find(&prescriptions).Error
	return prescriptions, err
}

// GetPrescriptionsByPatient retrieves a patient's prescription history
func (r *PrescriptionRepository) GetPrescriptionsByPatient(patientID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.Preload("Items.Medicine").
		Preload("Doctor.User").
		Where("patient_id = ?", patientID).
		Order("prescribed_date DESC").
		Find(&prescriptions).Error
	return prescriptions, err
}

// GetDispensedByAdmission retrieves fully dispensed prescriptions of an
// admission, for inpatient billing
func (r *PrescriptionRepository) GetDispensedByAdmission(admissionID uint) ([]models.Prescription, error) {
	var prescriptions []models.Prescription
	err := r.db.Preload("Items.Medicine").
		Where("admission_id = ? AND status = ?", admissionID, models.PrescriptionDispensed).
		Find(&prescriptions).Error
	return prescriptions, err
}

// GetDispensedByAppointments retrieves fully dispensed prescriptions of a
// set of appointments, for outpatient billing
func (r *PrescriptionRepository) GetDispensedByAppointments(appointmentIDs []uint) ([]models.Prescription, error) {
	if len(appointmentIDs) == 0 {
		return nil, nil
	}
	var prescriptions []models.Prescription
	err := r.db.Preload("Items.Medicine").
		Where("appointment_id IN ? AND status = ?", appointmentIDs, models.PrescriptionDispensed).
		Find(&prescriptions).Error
	return prescriptions, err
}

// CancelPrescription marks a prescription cancelled. Cancellation is a
// manual state, not derived from items.
func (r *PrescriptionRepository) CancelPrescription(id uint) error {
	return r.db.Model(&models.Prescription{}).
		Where("id = ?", id).
		Update("status", models.PrescriptionCancelled).Error
}

// CountPending counts prescriptions awaiting dispensing
func (r *PrescriptionRepository) CountPending() (int64, error) {
	var count int64
	err := r.db.Model(&models.Prescription{}).
		Where("status IN ?", []string{models.PrescriptionPending, models.PrescriptionPartiallyDispensed}).
		Count(&count).Error
	return count, err
}

// Transaction runs fn inside one database transaction; dispensing mutations
// commit or roll back together
func (r *PrescriptionRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}
