package models

import "time"

// Appointment status values
const (
	AppointmentScheduled  = "scheduled"
	AppointmentCheckedIn  = "checked_in"
	AppointmentInProgress = "in_progress"
	AppointmentCompleted  = "completed"
	AppointmentCancelled  = "cancelled"
	AppointmentNoShow     = "no_show"
)

// Appointment represents an outpatient visit
type Appointment struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	PatientID       uint       `gorm:"not null;index" json:"patient_id"`
	DoctorID        *uint      `gorm:"index" json:"doctor_id"`
	AppointmentDate time.Time  `gorm:"not null;index" json:"appointment_date"`
	Reason          string     `gorm:"type:text" json:"reason"`
	Status          string     `gorm:"type:enum('scheduled','checked_in','in_progress','completed','cancelled','no_show');default:'scheduled'" json:"status"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedAt       time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	Procedures []Procedure `gorm:"many2many:appointment_procedures" json:"procedures,omitempty"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

// IsOpen reports whether the appointment still counts as active
func (a *Appointment) IsOpen() bool {
	switch a.Status {
	case AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return false
	}
	return true
}
