package service

import (
	"fmt"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"

	"gorm.io/gorm"
)

type AdmissionService struct {
	admissionRepo *repository.AdmissionRepository
	roomRepo      *repository.RoomRepository
	patientRepo   *repository.PatientRepository
	staffRepo     *repository.StaffRepository
	procedureRepo *repository.ProcedureRepository
	auditRepo     *repository.AuditRepository
}

func NewAdmissionService(
	admissionRepo *repository.AdmissionRepository,
	roomRepo *repository.RoomRepository,
	patientRepo *repository.PatientRepository,
	staffRepo *repository.StaffRepository,
	procedureRepo *repository.ProcedureRepository,
	auditRepo *repository.AuditRepository,
) *AdmissionService {
	return &AdmissionService{
		admissionRepo: admissionRepo,
		roomRepo:      roomRepo,
		patientRepo:   patientRepo,
		staffRepo:     staffRepo,
		procedureRepo: procedureRepo,
		auditRepo:     auditRepo,
	}
}

// CreateAdmissionInput carries the fields for opening a hospital stay
type CreateAdmissionInput struct {
	PatientID         uint
	DoctorID          *uint
	NurseID           *uint
	RoomID            *uint
	Status            string
	RequiresInpatient bool
	DoctorNotes       string
}

// UpdateAdmissionInput carries the mutable admission fields. Nil pointers
// leave the current value unchanged; ClearRoom detaches the room.
type UpdateAdmissionInput struct {
	DoctorID          *uint
	NurseID           *uint
	RoomID            *uint
	ClearRoom         bool
	Status            *string
	RequiresInpatient *bool
	DoctorNotes       *string
}

// GetAdmissions lists all admissions
func (s *AdmissionService) GetAdmissions() ([]models.Admission, error) {
	return s.admissionRepo.GetAdmissions()
}

// GetAdmissionByID retrieves one admission
func (s *AdmissionService) GetAdmissionByID(id uint) (*models.Admission, error) {
	return s.admissionRepo.GetAdmissionByID(id)
}

// CreateAdmission opens a stay. When the admission starts in admitted
// status with a room attached, the bed is claimed inside the same
// transaction; a full room rejects the whole creation.
func (s *AdmissionService) CreateAdmission(input CreateAdmissionInput, userID uint) (*models.Admission, error) {
	if _, err := s.patientRepo.GetPatientByID(input.PatientID); err != nil {
		return nil, err
	}
	if input.DoctorID != nil {
		if _, err := s.staffRepo.GetDoctorByID(*input.DoctorID); err != nil {
			return nil, err
		}
	}
	if input.NurseID != nil {
		if _, err := s.staffRepo.GetNurseByID(*input.NurseID); err != nil {
			return nil, err
		}
	}

	status := input.Status
	if status == "" {
		status = models.AdmissionPending
	}
	if !models.ValidAdmissionStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", models.ErrInvalidTransition, status)
	}

	admission := &models.Admission{
		PatientID:         input.PatientID,
		DoctorID:          input.DoctorID,
		NurseID:           input.NurseID,
		RoomID:            input.RoomID,
		AdmissionDate:     time.Now(),
		Status:            status,
		RequiresInpatient: input.RequiresInpatient,
		DoctorNotes:       input.DoctorNotes,
	}

	err := s.admissionRepo.Transaction(func(tx *gorm.DB) error {
		if input.RoomID != nil {
			if _, err := s.roomRepo.GetRoomByIDTx(tx, *input.RoomID); err != nil {
				return err
			}
			if status == models.AdmissionAdmitted {
				if err := s.roomRepo.OccupyBed(tx, *input.RoomID); err != nil {
					return err
				}
			}
		}
		return s.admissionRepo.CreateAdmission(tx, admission)
	})
	if err != nil {
		return nil, err
	}

	s.audit(userID, models.AuditAdmissionCreate,
		fmt.Sprintf("Admission %d created for patient %d (status: %s)", admission.ID, admission.PatientID, admission.Status))

	return s.admissionRepo.GetAdmissionByID(admission.ID)
}

// UpdateAdmission applies status and room changes through the transition
// table. Bed occupancy moves with the status: entering admitted claims a
// bed exactly once, leaving it releases the bed exactly once, and changing
// rooms while admitted moves the bed. All of it commits or rolls back as
// one transaction, so a capacity rejection leaves nothing half-applied.
func (s *AdmissionService) UpdateAdmission(id uint, input UpdateAdmissionInput, userID uint) (*models.Admission, error) {
	var oldStatus, newStatus string

	err := s.admissionRepo.Transaction(func(tx *gorm.DB) error {
		admission, err := s.admissionRepo.GetAdmissionByIDTx(tx, id)
		if err != nil {
			return err
		}

		oldStatus = admission.Status
		oldRoomID := admission.RoomID

		newStatus = oldStatus
		if input.Status != nil {
			newStatus = *input.Status
		}
		newRoomID := oldRoomID
		if input.ClearRoom {
			newRoomID = nil
		} else if input.RoomID != nil {
			newRoomID = input.RoomID
		}

		if !models.ValidAdmissionStatus(newStatus) {
			return fmt.Errorf("%w: unknown status %q", models.ErrInvalidTransition, newStatus)
		}
		if !models.CanTransition(oldStatus, newStatus) {
			return fmt.Errorf("%w: %s -> %s", models.ErrInvalidTransition, oldStatus, newStatus)
		}

		if newRoomID != nil {
			if _, err := s.roomRepo.GetRoomByIDTx(tx, *newRoomID); err != nil {
				return err
			}
		}

		roomChanged := !sameRoom(oldRoomID, newRoomID)
		wasOccupying := oldStatus == models.AdmissionAdmitted && oldRoomID != nil
		willOccupy := newStatus == models.AdmissionAdmitted && newRoomID != nil

		switch {
		case roomChanged:
			if wasOccupying {
				if err := s.roomRepo.ReleaseBed(tx, *oldRoomID); err != nil {
					return err
				}
			}
			if willOccupy {
				if err := s.roomRepo.OccupyBed(tx, *newRoomID); err != nil {
					return err
				}
			}
		case willOccupy && !wasOccupying:
			if err := s.roomRepo.OccupyBed(tx, *newRoomID); err != nil {
				return err
			}
		case wasOccupying && !willOccupy:
			if err := s.roomRepo.ReleaseBed(tx, *oldRoomID); err != nil {
				return err
			}
		}

		admission.Status = newStatus
		admission.RoomID = newRoomID
		if input.DoctorID != nil {
			admission.DoctorID = input.DoctorID
		}
		if input.NurseID != nil {
			admission.NurseID = input.NurseID
		}
		if input.RequiresInpatient != nil {
			admission.RequiresInpatient = *input.RequiresInpatient
		}
		if input.DoctorNotes != nil {
			admission.DoctorNotes = *input.DoctorNotes
		}
		if newStatus == models.AdmissionDischarged && admission.DischargeDate == nil {
			now := time.Now()
			admission.DischargeDate = &now
		}

		return s.admissionRepo.SaveAdmission(tx, admission)
	})
	if err != nil {
		return nil, err
	}

	if oldStatus != newStatus {
		s.audit(userID, models.AuditAdmissionStatus,
			fmt.Sprintf("Admission %d: %s -> %s", id, oldStatus, newStatus))
	}

	return s.admissionRepo.GetAdmissionByID(id)
}

// AssignRoom moves an admission to a room. While the patient is admitted
// the old bed is released and the new one claimed in the same transaction;
// a full target room rejects the change and keeps the old bed.
func (s *AdmissionService) AssignRoom(admissionID, roomID uint, userID uint) (*models.Admission, error) {
	err := s.admissionRepo.Transaction(func(tx *gorm.DB) error {
		admission, err := s.admissionRepo.GetAdmissionByIDTx(tx, admissionID)
		if err != nil {
			return err
		}
		room, err := s.roomRepo.GetRoomByIDTx(tx, roomID)
		if err != nil {
			return err
		}

		if admission.RoomID != nil && *admission.RoomID == room.ID {
			return nil
		}

		if admission.Status == models.AdmissionAdmitted {
			if admission.RoomID != nil {
				if err := s.roomRepo.ReleaseBed(tx, *admission.RoomID); err != nil {
					return err
				}
			}
			if err := s.roomRepo.OccupyBed(tx, room.ID); err != nil {
				return err
			}
		}

		admission.RoomID = &room.ID
		return s.admissionRepo.SaveAdmission(tx, admission)
	})
	if err != nil {
		return nil, err
	}

	s.audit(userID, models.AuditRoomAssign,
		fmt.Sprintf("Admission %d assigned to room %d", admissionID, roomID))

	return s.admissionRepo.GetAdmissionByID(admissionID)
}

// AddProcedures appends performed procedures to the stay
func (s *AdmissionService) AddProcedures(admissionID uint, procedureIDs []uint, userID uint) (*models.Admission, error) {
	admission, err := s.admissionRepo.GetAdmissionByID(admissionID)
	if err != nil {
		return nil, err
	}
	procedures, err := s.procedureRepo.GetProceduresByIDs(procedureIDs)
	if err != nil {
		return nil, err
	}
	if err := s.admissionRepo.AddProcedures(admission, procedures); err != nil {
		return nil, fmt.Errorf("failed to add procedures: %w", err)
	}

	s.audit(userID, models.AuditProcedureAdd,
		fmt.Sprintf("Admission %d: %d procedure(s) added", admissionID, len(procedures)))

	return s.admissionRepo.GetAdmissionByID(admissionID)
}

func (s *AdmissionService) audit(userID uint, action, details string) {
	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, action, details)
}

func sameRoom(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
