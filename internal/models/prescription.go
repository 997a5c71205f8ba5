package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prescription status values. The status is derived from item states,
// except cancelled which is set manually.
const (
	PrescriptionPending            = "pending"
	PrescriptionPartiallyDispensed = "partially_dispensed"
	PrescriptionDispensed          = "dispensed"
	PrescriptionCancelled          = "cancelled"
)

// Prescription item status values
const (
	ItemPending   = "pending"
	ItemDispensed = "dispensed"
	ItemCancelled = "cancelled"
)

// Prescription represents a doctor's medicine order for a patient,
// optionally tied to an admission or an appointment
type Prescription struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	PatientID      uint       `gorm:"not null;index" json:"patient_id"`
	DoctorID       *uint      `gorm:"index" json:"doctor_id"`
	AdmissionID    *uint      `gorm:"index" json:"admission_id"`
	AppointmentID  *uint      `gorm:"index" json:"appointment_id"`
	Status         string     `gorm:"type:enum('pending','partially_dispensed','dispensed','cancelled');default:'pending'" json:"status"`
	PrescribedDate time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"prescribed_date"`
	DispensedByID  *uint      `gorm:"column:dispensed_by_id;index" json:"dispensed_by_id"`
	DispensedDate  *time.Time `json:"dispensed_date"`
	Notes          string     `gorm:"type:text" json:"notes,omitempty"`
	IsPaid         bool       `gorm:"default:false" json:"is_paid"`
	CreatedAt      time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`

	Items []PrescriptionItem `gorm:"foreignKey:PrescriptionID" json:"items,omitempty"`

	Patient     Patient        `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor      *Doctor        `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	DispensedBy *PharmacyStaff `gorm:"foreignKey:DispensedByID" json:"dispensed_by,omitempty"`
}

// TableName specifies the table name for Prescription model
func (Prescription) TableName() string {
	return "prescriptions"
}

// DeriveStatus recomputes the prescription status from its item states:
// dispensed when every item is dispensed, partially_dispensed when at least
// one is, pending otherwise. Cancelled prescriptions are left alone.
// Recomputing without new dispensing events is a no-op.
func (p *Prescription) DeriveStatus() string {
	if p.Status == PrescriptionCancelled {
		return PrescriptionCancelled
	}
	if len(p.Items) == 0 {
		return PrescriptionPending
	}
	dispensed := 0
	for _, item := range p.Items {
		if item.Status == ItemDispensed {
			dispensed++
		}
	}
	switch {
	case dispensed == len(p.Items):
		return PrescriptionDispensed
	case dispensed > 0:
		return PrescriptionPartiallyDispensed
	default:
		return PrescriptionPending
	}
}

// TotalCost sums price-per-unit times quantity over all items.
// Medicine must be preloaded on the items.
func (p *Prescription) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// PrescriptionItem is one medicine line within a prescription
type PrescriptionItem struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	PrescriptionID     uint       `gorm:"not null;index" json:"prescription_id"`
	MedicineID         uint       `gorm:"not null;index" json:"medicine_id"`
	Quantity           uint       `gorm:"not null;default:1" json:"quantity"`
	DosageInstructions string     `gorm:"type:text" json:"dosage_instructions"`
	DurationDays       uint       `gorm:"not null;default:7" json:"duration_days"`
	Status             string     `gorm:"type:enum('pending','dispensed','cancelled');default:'pending'" json:"status"`
	DispensedDate      *time.Time `json:"dispensed_date"`
	Notes              string     `gorm:"type:text" json:"notes,omitempty"`

	Medicine Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

// TableName specifies the table name for PrescriptionItem model
func (PrescriptionItem) TableName() string {
	return "prescription_items"
}

// TotalPrice is unit price times quantity for this line
func (i *PrescriptionItem) TotalPrice() decimal.Decimal {
	return i.Medicine.PricePerUnit.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
