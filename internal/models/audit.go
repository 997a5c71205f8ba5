package models

import "time"

// Audit action names recorded by the services
const (
	AuditUserLogin        = "user_login"
	AuditUserRegister     = "user_registration"
	AuditAdmissionCreate  = "admission_create"
	AuditAdmissionStatus  = "admission_status_change"
	AuditRoomAssign       = "admission_room_assign"
	AuditProcedureAdd     = "admission_procedure_add"
	AuditItemDispense     = "prescription_item_dispense"
	AuditPaymentCreate    = "payment_create"
	AuditPredictionRun    = "prediction_run"
	AuditScheduleReview   = "schedule_request_review"
	AuditMedicineLowStock = "medicine_low_stock"
)

// AuditLog represents the audit_logs table
// Used for security tracking and recording state-changing actions
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	Action    string    `gorm:"size:100;not null" json:"action"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
