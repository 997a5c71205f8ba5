package models

import "time"

// Shift values for staff schedules
const (
	ShiftMorning   = "morning"
	ShiftAfternoon = "afternoon"
	ShiftNight     = "night"
)

// Review status values for swap and unavailability requests
const (
	RequestPending   = "pending"
	RequestApproved  = "approved"
	RequestRejected  = "rejected"
	RequestCancelled = "cancelled"
)

// Schedule represents one shift assignment for a doctor or nurse
type Schedule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index:idx_schedule_user_date_shift,unique" json:"user_id"`
	Date        time.Time `gorm:"type:date;not null;index:idx_schedule_user_date_shift,unique" json:"date"`
	Shift       string    `gorm:"type:enum('morning','afternoon','night');not null;index:idx_schedule_user_date_shift,unique" json:"shift"`
	StartTime   string    `gorm:"size:8;not null" json:"start_time"` // HH:MM:SS
	EndTime     string    `gorm:"size:8;not null" json:"end_time"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	IsLocked    bool      `gorm:"default:false" json:"is_locked"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Schedule model
func (Schedule) TableName() string {
	return "schedules"
}

// IsPast reports whether the schedule date is before today
func (s *Schedule) IsPast(now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return s.Date.Before(today)
}

// ShiftSwapRequest represents a request to swap shifts between two staff
// members, reviewed by an admin
type ShiftSwapRequest struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	RequesterID      uint       `gorm:"not null;index" json:"requester_id"`
	RequesterShiftID uint       `gorm:"not null" json:"requester_shift_id"`
	RecipientID      *uint      `gorm:"index" json:"recipient_id"`
	RecipientShiftID *uint      `json:"recipient_shift_id"`
	Reason           string     `gorm:"type:text" json:"reason"`
	Status           string     `gorm:"type:enum('pending','approved','rejected','cancelled');default:'pending'" json:"status"`
	AdminNotes       string     `gorm:"type:text" json:"admin_notes,omitempty"`
	ReviewedByID     *uint      `gorm:"column:reviewed_by_id" json:"reviewed_by_id"`
	ReviewedAt       *time.Time `json:"reviewed_at"`
	CreatedAt        time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	Requester      User      `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	RequesterShift Schedule  `gorm:"foreignKey:RequesterShiftID" json:"requester_shift,omitempty"`
	Recipient      *User     `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`
	RecipientShift *Schedule `gorm:"foreignKey:RecipientShiftID" json:"recipient_shift,omitempty"`
	ReviewedBy     *User     `gorm:"foreignKey:ReviewedByID" json:"reviewed_by,omitempty"`
}

// TableName specifies the table name for ShiftSwapRequest model
func (ShiftSwapRequest) TableName() string {
	return "shift_swap_requests"
}

// UnavailabilityRequest represents a leave request over a date range
type UnavailabilityRequest struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	StartDate    time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate      time.Time  `gorm:"type:date;not null" json:"end_date"`
	Reason       string     `gorm:"type:text" json:"reason"`
	Status       string     `gorm:"type:enum('pending','approved','rejected','cancelled');default:'pending'" json:"status"`
	AdminNotes   string     `gorm:"type:text" json:"admin_notes,omitempty"`
	ReviewedByID *uint      `gorm:"column:reviewed_by_id" json:"reviewed_by_id"`
	ReviewedAt   *time.Time `json:"reviewed_at"`
	CreatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	User       User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ReviewedBy *User `gorm:"foreignKey:ReviewedByID" json:"reviewed_by,omitempty"`
}

// TableName specifies the table name for UnavailabilityRequest model
func (UnavailabilityRequest) TableName() string {
	return "unavailability_requests"
}
