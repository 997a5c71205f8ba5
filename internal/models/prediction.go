package models

import "time"

// Risk levels returned by the readmission model service
const (
	RiskLow  = 0
	RiskHigh = 1
)

// PredictionRecord is the audit trail of readmission risk predictions.
// Billing and admission logic never read these rows.
type PredictionRecord struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PatientID      uint      `gorm:"not null;index" json:"patient_id"`
	PredictedByID  *uint     `gorm:"column:predicted_by_id;index" json:"predicted_by_id"`
	RiskLevel      int       `gorm:"not null" json:"risk_level"` // 0 = low, 1 = high
	PredictionDate time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"prediction_date"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`

	Patient     Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	PredictedBy *User   `gorm:"foreignKey:PredictedByID" json:"predicted_by,omitempty"`
}

// TableName specifies the table name for PredictionRecord model
func (PredictionRecord) TableName() string {
	return "prediction_records"
}
