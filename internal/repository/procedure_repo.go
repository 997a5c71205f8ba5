package repository

import (
	"errors"
	"fmt"

	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type ProcedureRepository struct {
	db *gorm.DB
}

func NewProcedureRepo(db *gorm.DB) *ProcedureRepository {
	return &ProcedureRepository{db: db}
}

// GetProcedures retrieves the full procedure catalog
func (r *ProcedureRepository) GetProcedures() ([]models.Procedure, error) {
	var procedures []models.Procedure
	err := r.db.Order("name ASC").Find(&procedures).Error
	return procedures, err
}

// GetProcedureByID retrieves a procedure by ID
func (r *ProcedureRepository) GetProcedureByID(id uint) (*models.Procedure, error) {
	var procedure models.Procedure
	err := r.db.First(&procedure, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("procedure %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &procedure, nil
}

// GetProceduresByIDs retrieves procedures for an explicit selection.
// Every requested ID must exist.
func (r *ProcedureRepository) GetProceduresByIDs(ids []uint) ([]models.Procedure, error) {
	var procedures []models.Procedure
	err := r.db.Where("id IN ?", ids).Find(&procedures).Error
	if err != nil {
		return nil, err
	}
	if len(procedures) != len(ids) {
		return nil, fmt.Errorf("one or more procedures: %w", models.ErrNotFound)
	}
	return procedures, nil
}

// CreateProcedure adds a procedure to the catalog
func (r *ProcedureRepository) CreateProcedure(procedure *models.Procedure) error {
	return r.db.Create(procedure).Error
}

// UpdateProcedure saves catalog changes
func (r *ProcedureRepository) UpdateProcedure(procedure *models.Procedure) error {
	return r.db.Save(procedure).Error
}
