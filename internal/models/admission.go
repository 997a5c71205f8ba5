package models

import "time"

// Admission status values
const (
	AdmissionPending          = "pending"           // waiting for doctor
	AdmissionAdmitted         = "admitted"          // inpatient, bed occupied
	AdmissionPendingDischarge = "pending_discharge" // waiting for payment
	AdmissionDischarged       = "discharged"        // terminal
)

// admissionTransitions is the set of legal status transitions.
// pending_discharge -> admitted stays legal so a discharge started in
// error can be reverted before payment.
var admissionTransitions = map[string][]string{
	AdmissionPending:          {AdmissionAdmitted, AdmissionPendingDischarge, AdmissionDischarged},
	AdmissionAdmitted:         {AdmissionPendingDischarge, AdmissionDischarged},
	AdmissionPendingDischarge: {AdmissionAdmitted, AdmissionDischarged},
	AdmissionDischarged:       {},
}

// ValidAdmissionStatus reports whether s is a known admission status
func ValidAdmissionStatus(s string) bool {
	_, ok := admissionTransitions[s]
	return ok
}

// CanTransition reports whether an admission may move from one status to
// another. Staying in the same status is always allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return ValidAdmissionStatus(from)
	}
	for _, next := range admissionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Admission represents a hospital stay
type Admission struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	PatientID     uint       `gorm:"not null;index" json:"patient_id"`
	DoctorID      *uint      `gorm:"index" json:"doctor_id"`
	NurseID       *uint      `gorm:"index" json:"nurse_id"`
	RoomID        *uint      `gorm:"index" json:"room_id"`
	AdmissionDate time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"admission_date"`
	DischargeDate *time.Time `json:"discharge_date"`
	Status        string     `gorm:"type:enum('pending','admitted','pending_discharge','discharged');default:'pending'" json:"status"`

	RequiresInpatient bool   `gorm:"default:false" json:"requires_inpatient"`
	DoctorNotes       string `gorm:"type:text" json:"doctor_notes,omitempty"`

	// Procedures performed over the stay; the set only grows
	Procedures []Procedure `gorm:"many2many:admission_procedures" json:"procedures,omitempty"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Nurse   *Nurse  `gorm:"foreignKey:NurseID" json:"nurse,omitempty"`
	Room    *Room   `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// TableName specifies the table name for Admission model
func (Admission) TableName() string {
	return "admissions"
}

// LengthOfStay returns the stay duration in whole days, floored at 1 so
// billing never charges zero days for a same-day stay. For open admissions
// the duration runs up to now.
func (a *Admission) LengthOfStay(now time.Time) int {
	end := now
	if a.DischargeDate != nil {
		end = *a.DischargeDate
	}
	days := int(end.Sub(a.AdmissionDate).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}
