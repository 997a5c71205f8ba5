package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"

	"gorm.io/gorm"
)

type PharmacyService struct {
	medicineRepo     *repository.MedicineRepository
	prescriptionRepo *repository.PrescriptionRepository
	patientRepo      *repository.PatientRepository
	staffRepo        *repository.StaffRepository
	admissionRepo    *repository.AdmissionRepository
	appointmentRepo  *repository.AppointmentRepository
	auditRepo        *repository.AuditRepository
}

func NewPharmacyService(
	medicineRepo *repository.MedicineRepository,
	prescriptionRepo *repository.PrescriptionRepository,
	patientRepo *repository.PatientRepository,
	staffRepo *repository.StaffRepository,
	admissionRepo *repository.AdmissionRepository,
	appointmentRepo *repository.AppointmentRepository,
	auditRepo *repository.AuditRepository,
) *PharmacyService {
	return &PharmacyService{
		medicineRepo:     medicineRepo,
		prescriptionRepo: prescriptionRepo,
		patientRepo:      patientRepo,
		staffRepo:        staffRepo,
		admissionRepo:    admissionRepo,
		appointmentRepo:  appointmentRepo,
		auditRepo:        auditRepo,
	}
}

// GetMedicines lists active formulary entries, optionally by category
func (s *PharmacyService) GetMedicines(category string) ([]models.Medicine, error) {
	return s.medicineRepo.GetMedicines(category)
}

// GetLowStockMedicines lists medicines at or below their reorder level
func (s *PharmacyService) GetLowStockMedicines() ([]models.Medicine, error) {
	return s.medicineRepo.GetLowStockMedicines()
}

// GetMedicineByID retrieves one formulary entry
func (s *PharmacyService) GetMedicineByID(id uint) (*models.Medicine, error) {
	return s.medicineRepo.GetMedicineByID(id)
}

// CreateMedicine adds a medicine to the formulary
func (s *PharmacyService) CreateMedicine(medicine *models.Medicine) error {
	return s.medicineRepo.CreateMedicine(medicine)
}

// UpdateMedicine saves formulary changes (never stock)
func (s *PharmacyService) UpdateMedicine(medicine *models.Medicine) error {
	if _, err := s.medicineRepo.GetMedicineByID(medicine.ID); err != nil {
		return err
	}
	return s.medicineRepo.UpdateMedicine(medicine)
}

// PrescriptionItemInput is one medicine line of a new prescription
type PrescriptionItemInput struct {
	MedicineID         uint
	Quantity           uint
	DosageInstructions string
	DurationDays       uint
	Notes              string
}

// CreatePrescriptionInput carries a new prescription with its items
type CreatePrescriptionInput struct {
	PatientID     uint
	DoctorID      *uint
	AdmissionID   *uint
	AppointmentID *uint
	Notes         string
	Items         []PrescriptionItemInput
}

// CreatePrescription records a doctor's medicine order. Stock is not
// touched here; it moves only when items are dispensed.
func (s *PharmacyService) CreatePrescription(input CreatePrescriptionInput) (*models.Prescription, error) {
	if len(input.Items) == 0 {
		return nil, errors.New("prescription requires at least one item")
	}
	if _, err := s.patientRepo.GetPatientByID(input.PatientID); err != nil {
		return nil, err
	}
	if input.DoctorID != nil {
		if _, err := s.staffRepo.GetDoctorByID(*input.DoctorID); err != nil {
			return nil, err
		}
	}
	if input.AdmissionID != nil {
		if _, err := s.admissionRepo.GetAdmissionByID(*input.AdmissionID); err != nil {
			return nil, err
		}
	}
	if input.AppointmentID != nil {
		if _, err := s.appointmentRepo.GetAppointmentByID(*input.AppointmentID); err != nil {
			return nil, err
		}
	}

	prescription := &models.Prescription{
		PatientID:      input.PatientID,
		DoctorID:       input.DoctorID,
		AdmissionID:    input.AdmissionID,
		AppointmentID:  input.AppointmentID,
		Status:         models.PrescriptionPending,
		PrescribedDate: time.Now(),
		Notes:          input.Notes,
	}
	for _, item := range input.Items {
		if _, err := s.medicineRepo.GetMedicineByID(item.MedicineID); err != nil {
			return nil, err
		}
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		prescription.Items = append(prescription.Items, models.PrescriptionItem{
			MedicineID:         item.MedicineID,
			Quantity:           quantity,
			DosageInstructions: item.DosageInstructions,
			DurationDays:       item.DurationDays,
			Status:             models.ItemPending,
			Notes:              item.Notes,
		})
	}

	if err := s.prescriptionRepo.CreatePrescription(prescription); err != nil {
		return nil, fmt.Errorf("failed to create prescription: %w", err)
	}
	return s.prescriptionRepo.GetPrescriptionByID(prescription.ID)
}

// GetPrescriptionByID retrieves one prescription with its items
func (s *PharmacyService) GetPrescriptionByID(id uint) (*models.Prescription, error) {
	return s.prescriptionRepo.GetPrescriptionByID(id)
}

// GetPendingPrescriptions lists the dispensing queue
func (s *PharmacyService) GetPendingPrescriptions() ([]models.Prescription, error) {
	return s.prescriptionRepo.GetPendingPrescriptions()
}

// GetPrescriptionsByPatient lists a patient's prescription history
func (s *PharmacyService) GetPrescriptionsByPatient(patientID uint) ([]models.Prescription, error) {
	if _, err := s.patientRepo.GetPatientByID(patientID); err != nil {
		return nil, err
	}
	return s.prescriptionRepo.GetPrescriptionsByPatient(patientID)
}

// DispenseItem hands out one prescription line. The item flip, the stock
// deduction and the derived prescription status are committed as one
// transaction, so insufficient stock leaves everything untouched. The flip
// itself is a guarded UPDATE on the pending status, so of two concurrent
// dispenses of the same item exactly one commits; the other rolls back with
// ErrItemNotPending. When the last pending item is dispensed the
// prescription is stamped with the dispensing staff member and time.
func (s *PharmacyService) DispenseItem(itemID uint, pharmacyStaffID *uint, userID uint) (*models.Prescription, error) {
	if pharmacyStaffID != nil {
		if _, err := s.staffRepo.GetPharmacyStaffByID(*pharmacyStaffID); err != nil {
			return nil, err
		}
	}

	var prescriptionID uint
	err := s.prescriptionRepo.Transaction(func(tx *gorm.DB) error {
		item, err := s.prescriptionRepo.GetItemByIDTx(tx, itemID)
		if err != nil {
			return err
		}
		if item.Status != models.ItemPending {
			return fmt.Errorf("prescription item %d is %s: %w", item.ID, item.Status, models.ErrItemNotPending)
		}
		prescriptionID = item.PrescriptionID

		prescription, err := s.prescriptionRepo.GetPrescriptionByIDTx(tx, item.PrescriptionID)
		if err != nil {
			return err
		}
		if prescription.Status == models.PrescriptionCancelled {
			return fmt.Errorf("prescription %d is cancelled", prescription.ID)
		}

		now := time.Now()
		if err := s.prescriptionRepo.DispenseItem(tx, item.ID, now); err != nil {
			return err
		}

		if err := s.medicineRepo.DeductStock(tx, item.MedicineID, item.Quantity); err != nil {
			if errors.Is(err, models.ErrInsufficientStock) {
				medicine, medErr := s.medicineRepo.GetMedicineByIDTx(tx, item.MedicineID)
				if medErr == nil {
					return fmt.Errorf("%w: %s has %d in stock, %d required",
						models.ErrInsufficientStock, medicine.Name, medicine.StockQuantity, item.Quantity)
				}
			}
			return err
		}

		for i := range prescription.Items {
			if prescription.Items[i].ID == item.ID {
				prescription.Items[i].Status = models.ItemDispensed
			}
		}
		prescription.Status = prescription.DeriveStatus()
		if prescription.Status == models.PrescriptionDispensed {
			prescription.DispensedByID = pharmacyStaffID
			prescription.DispensedDate = &now
		}
		return s.prescriptionRepo.SavePrescriptionStatus(tx, prescription)
	})
	if err != nil {
		return nil, err
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, models.AuditItemDispense,
		fmt.Sprintf("Prescription item %d dispensed (prescription %d)", itemID, prescriptionID))

	return s.prescriptionRepo.GetPrescriptionByID(prescriptionID)
}

// CancelPrescription marks a prescription cancelled. Already dispensed
// items are not restocked.
func (s *PharmacyService) CancelPrescription(id uint) (*models.Prescription, error) {
	prescription, err := s.prescriptionRepo.GetPrescriptionByID(id)
	if err != nil {
		return nil, err
	}
	if prescription.Status == models.PrescriptionDispensed {
		return nil, errors.New("cannot cancel a fully dispensed prescription")
	}
	if err := s.prescriptionRepo.CancelPrescription(id); err != nil {
		return nil, fmt.Errorf("failed to cancel prescription: %w", err)
	}
	return s.prescriptionRepo.GetPrescriptionByID(id)
}
