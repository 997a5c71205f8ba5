package repository

import (
	"errors"
	"fmt"
	"time"

	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// GetAppointments retrieves all appointments, newest first
func (r *AppointmentRepository) GetAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Patient").
		Preload("Doctor.User").
		Preload("Procedures").
		Order("appointment_date DESC").
		Find(&appointments).Error
	return appointments, err
}

// GetActiveAppointments retrieves appointments that are not completed,
// cancelled or no-show
func (r *AppointmentRepository) GetActiveAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Patient").
		Preload("Doctor.User").
		Preload("Procedures").
		Where("status NOT IN ?", []string{
			models.AppointmentCompleted, models.AppointmentCancelled, models.AppointmentNoShow,
		}).
		Order("appointment_date DESC").
		Find(&appointments).Error
	return appointments, err
}

// GetCompletedAppointments retrieves the appointment archive
// (completed and no-show)
func (r *AppointmentRepository) GetCompletedAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Patient").
		Preload("Doctor.User").
		Preload("Procedures").
		Where("status IN ?", []string{models.AppointmentCompleted, models.AppointmentNoShow}).
		Order("appointment_date DESC").
		Find(&appointments).Error
	return appointments, err
}

// GetAppointmentByID retrieves an appointment with references loaded
func (r *AppointmentRepository) GetAppointmentByID(id uint) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.db.Preload("Patient").
		Preload("Doctor.User").
		Preload("Procedures").
		First(&appointment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("appointment %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &appointment, nil
}

// GetAppointmentsByIDs retrieves appointments with procedures loaded for
// outpatient billing. Every requested ID must exist.
func (r *AppointmentRepository) GetAppointmentsByIDs(ids []uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Preload("Procedures").Where("id IN ?", ids).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	if len(appointments) != len(ids) {
		return nil, fmt.Errorf("one or more appointments: %w", models.ErrNotFound)
	}
	return appointments, nil
}

// CreateAppointment creates a new appointment
func (r *AppointmentRepository) CreateAppointment(appointment *models.Appointment) error {
	return r.db.Create(appointment).Error
}

// UpdateAppointment saves appointment changes
func (r *AppointmentRepository) UpdateAppointment(appointment *models.Appointment) error {
	return r.db.Save(appointment).Error
}

// SetStatus updates the appointment status, stamping completed_at when it
// moves to completed
func (r *AppointmentRepository) SetStatus(id uint, status string, completedAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if completedAt != nil {
		updates["completed_at"] = completedAt
	}
	return r.db.Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// AddProcedures appends procedures performed during an appointment
func (r *AppointmentRepository) AddProcedures(appointment *models.Appointment, procedures []models.Procedure) error {
	return r.db.Model(appointment).Association("Procedures").Append(procedures)
}
