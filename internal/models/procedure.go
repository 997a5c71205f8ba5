package models

import "github.com/shopspring/decimal"

// Procedure type values
const (
	ProcedureSurgical    = "surgical"
	ProcedureNonSurgical = "non_surgical"
)

// Procedure is catalog reference data for surgeries and treatments
type Procedure struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"size:200;not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description,omitempty"`
	Cost          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
	ProcedureType string          `gorm:"type:enum('surgical','non_surgical')" json:"procedure_type"`
}

// TableName specifies the table name for Procedure model
func (Procedure) TableName() string {
	return "procedures"
}
