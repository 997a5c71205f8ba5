package service

import (
	"fmt"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
)

type ProcedureService struct {
	procedureRepo *repository.ProcedureRepository
}

func NewProcedureService(procedureRepo *repository.ProcedureRepository) *ProcedureService {
	return &ProcedureService{procedureRepo: procedureRepo}
}

// GetProcedures lists the procedure catalog
func (s *ProcedureService) GetProcedures() ([]models.Procedure, error) {
	return s.procedureRepo.GetProcedures()
}

// GetProcedureByID retrieves one catalog entry
func (s *ProcedureService) GetProcedureByID(id uint) (*models.Procedure, error) {
	return s.procedureRepo.GetProcedureByID(id)
}

// CreateProcedure adds a procedure to the catalog
func (s *ProcedureService) CreateProcedure(procedure *models.Procedure) error {
	switch procedure.ProcedureType {
	case models.ProcedureSurgical, models.ProcedureNonSurgical:
	default:
		return fmt.Errorf("unknown procedure type %q", procedure.ProcedureType)
	}
	if procedure.Cost.IsNegative() {
		return fmt.Errorf("procedure cost cannot be negative")
	}
	return s.procedureRepo.CreateProcedure(procedure)
}

// UpdateProcedure saves catalog changes. Existing payments are unaffected;
// they snapshot costs at calculation time.
func (s *ProcedureService) UpdateProcedure(procedure *models.Procedure) error {
	if _, err := s.procedureRepo.GetProcedureByID(procedure.ID); err != nil {
		return err
	}
	if procedure.Cost.IsNegative() {
		return fmt.Errorf("procedure cost cannot be negative")
	}
	return s.procedureRepo.UpdateProcedure(procedure)
}
