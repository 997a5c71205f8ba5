package repository

import (
	"errors"
	"fmt"

	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type MedicineRepository struct {
	db *gorm.DB
}

func NewMedicineRepo(db *gorm.DB) *MedicineRepository {
	return &MedicineRepository{db: db}
}

// GetMedicines retrieves active medicines, optionally filtered by category
func (r *MedicineRepository) GetMedicines(category string) ([]models.Medicine, error) {
	var medicines []models.Medicine
	query := r.db.Where("is_active = ?", true).Order("name ASC")
	if category != "" {
		query = query.Where("category = ?", category)
	}
	err := query.Find(&medicines).Error
	return medicines, err
}

// GetLowStockMedicines retrieves active medicines at or below their
// reorder level
func (r *MedicineRepository) GetLowStockMedicines() ([]models.Medicine, error) {
	var medicines []models.Medicine
	err := r.db.Where("is_active = ? AND stock_quantity <= reorder_level", true).
		Order("name ASC").
		Find(&medicines).Error
	return medicines, err
}

// GetMedicineByID retrieves a medicine by ID
func (r *MedicineRepository) GetMedicineByID(id uint) (*models.Medicine, error) {
	var medicine models.Medicine
	err := r.db.First(&medicine, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("medicine %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &medicine, nil
}

// GetMedicineByIDTx retrieves a medicine inside an open transaction
func (r *MedicineRepository) GetMedicineByIDTx(tx *gorm.DB, id uint) (*models.Medicine, error) {
	var medicine models.Medicine
	err := tx.First(&medicine, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("medicine %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &medicine, nil
}

// CreateMedicine adds a medicine to the formulary
func (r *MedicineRepository) CreateMedicine(medicine *models.Medicine) error {
	return r.db.Create(medicine).Error
}

// UpdateMedicine saves formulary changes. Stock is never written through
// this path; DeductStock is the only stock mutation.
func (r *MedicineRepository) UpdateMedicine(medicine *models.Medicine) error {
	return r.db.Model(medicine).
		Select("name", "generic_name", "category", "dosage_form", "strength",
			"price_per_unit", "reorder_level", "manufacturer", "description",
			"requires_prescription", "is_active").
		Updates(medicine).Error
}

// DeductStock lowers stock by quantity with a single guarded UPDATE so the
// availability check and the decrement are one atomic statement. Returns
// ErrInsufficientStock when the remaining stock cannot cover the quantity.
func (r *MedicineRepository) DeductStock(tx *gorm.DB, medicineID uint, quantity uint) error {
	res := tx.Exec(
		`UPDATE medicines
		 SET stock_quantity = stock_quantity - ?
		 WHERE id = ? AND stock_quantity >= ?`,
		quantity, medicineID, quantity,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("medicine %d: %w", medicineID, models.ErrInsufficientStock)
	}
	return nil
}
