package service

import (
	"fmt"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
)

type AppointmentService struct {
	appointmentRepo *repository.AppointmentRepository
	patientRepo     *repository.PatientRepository
	staffRepo       *repository.StaffRepository
	procedureRepo   *repository.ProcedureRepository
}

func NewAppointmentService(
	appointmentRepo *repository.AppointmentRepository,
	patientRepo *repository.PatientRepository,
	staffRepo *repository.StaffRepository,
	procedureRepo *repository.ProcedureRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		staffRepo:       staffRepo,
		procedureRepo:   procedureRepo,
	}
}

// CreateAppointmentInput carries a new outpatient visit booking
type CreateAppointmentInput struct {
	PatientID       uint
	DoctorID        *uint
	AppointmentDate time.Time
	Reason          string
	Notes           string
}

// GetAppointments lists all appointments
func (s *AppointmentService) GetAppointments() ([]models.Appointment, error) {
	return s.appointmentRepo.GetAppointments()
}

// GetActiveAppointments lists appointments still in progress
func (s *AppointmentService) GetActiveAppointments() ([]models.Appointment, error) {
	return s.appointmentRepo.GetActiveAppointments()
}

// GetCompletedAppointments lists the appointment archive
func (s *AppointmentService) GetCompletedAppointments() ([]models.Appointment, error) {
	return s.appointmentRepo.GetCompletedAppointments()
}

// GetAppointmentByID retrieves one appointment
func (s *AppointmentService) GetAppointmentByID(id uint) (*models.Appointment, error) {
	return s.appointmentRepo.GetAppointmentByID(id)
}

// CreateAppointment books an outpatient visit
func (s *AppointmentService) CreateAppointment(input CreateAppointmentInput) (*models.Appointment, error) {
	if _, err := s.patientRepo.GetPatientByID(input.PatientID); err != nil {
		return nil, err
	}
	if input.DoctorID != nil {
		if _, err := s.staffRepo.GetDoctorByID(*input.DoctorID); err != nil {
			return nil, err
		}
	}

	appointment := &models.Appointment{
		PatientID:       input.PatientID,
		DoctorID:        input.DoctorID,
		AppointmentDate: input.AppointmentDate,
		Reason:          input.Reason,
		Status:          models.AppointmentScheduled,
		Notes:           input.Notes,
	}
	if err := s.appointmentRepo.CreateAppointment(appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return s.appointmentRepo.GetAppointmentByID(appointment.ID)
}

// UpdateStatus moves an appointment through its visit flow, stamping the
// completion time when it finishes
func (s *AppointmentService) UpdateStatus(id uint, status string) (*models.Appointment, error) {
	switch status {
	case models.AppointmentScheduled, models.AppointmentCheckedIn, models.AppointmentInProgress,
		models.AppointmentCompleted, models.AppointmentCancelled, models.AppointmentNoShow:
	default:
		return nil, fmt.Errorf("unknown appointment status %q", status)
	}

	appointment, err := s.appointmentRepo.GetAppointmentByID(id)
	if err != nil {
		return nil, err
	}
	if !appointment.IsOpen() && status != appointment.Status {
		return nil, fmt.Errorf("appointment %d is already %s", id, appointment.Status)
	}

	var completedAt *time.Time
	if status == models.AppointmentCompleted {
		now := time.Now()
		completedAt = &now
	}
	if err := s.appointmentRepo.SetStatus(id, status, completedAt); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	return s.appointmentRepo.GetAppointmentByID(id)
}

// AddProcedures records procedures performed during the visit
func (s *AppointmentService) AddProcedures(id uint, procedureIDs []uint) (*models.Appointment, error) {
	appointment, err := s.appointmentRepo.GetAppointmentByID(id)
	if err != nil {
		return nil, err
	}
	procedures, err := s.procedureRepo.GetProceduresByIDs(procedureIDs)
	if err != nil {
		return nil, err
	}
	if err := s.appointmentRepo.AddProcedures(appointment, procedures); err != nil {
		return nil, fmt.Errorf("failed to add procedures: %w", err)
	}
	return s.appointmentRepo.GetAppointmentByID(id)
}
