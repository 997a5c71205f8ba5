package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment type values
const (
	PaymentInpatient  = "inpatient"
	PaymentOutpatient = "outpatient"
)

// Payment is an immutable snapshot of a billing calculation. Rows are
// inserted once and never updated.
type Payment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Reference   string `gorm:"size:36;uniqueIndex;not null" json:"reference"`
	PatientID   uint   `gorm:"not null;index" json:"patient_id"`
	PaymentType string `gorm:"type:enum('inpatient','outpatient');default:'inpatient'" json:"payment_type"`

	// Inpatient payments cover one admission
	AdmissionID *uint `gorm:"index" json:"admission_id"`

	// Outpatient payments cover a set of appointments
	Appointments []Appointment `gorm:"many2many:payment_appointments" json:"appointments,omitempty"`

	Procedures []Procedure `gorm:"many2many:payment_procedures" json:"procedures,omitempty"`

	// Cost breakdown, kept in full for audit
	ProcedureCost       decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"procedure_cost"`
	DailyCareCost       decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"daily_care_cost"`
	MedicineCost        decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"medicine_cost"`
	TotalBeforeDiscount decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total_before_discount"`
	DiscountPercent     decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	FinalAmount         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"final_amount"`

	Method      string    `gorm:"size:50" json:"method"` // Cash, Card, Insurance
	PaymentDate time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"payment_date"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`

	Patient   Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Admission *Admission `gorm:"foreignKey:AdmissionID" json:"admission,omitempty"`
}

// TableName specifies the table name for Payment model
func (Payment) TableName() string {
	return "payments"
}
