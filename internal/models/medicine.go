package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Medicine represents the pharmacy stock for one drug
type Medicine struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	Name                 string          `gorm:"size:200;uniqueIndex;not null" json:"name"`
	GenericName          string          `gorm:"size:200" json:"generic_name,omitempty"`
	Category             string          `gorm:"size:50" json:"category"` // antibiotic, painkiller, cardiovascular, ...
	DosageForm           string          `gorm:"size:50" json:"dosage_form"`
	Strength             string          `gorm:"size:50" json:"strength"`
	PricePerUnit         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_unit"`
	StockQuantity        uint            `gorm:"not null;default:0" json:"stock_quantity"`
	ReorderLevel         uint            `gorm:"not null;default:10" json:"reorder_level"`
	Manufacturer         string          `gorm:"size:200" json:"manufacturer,omitempty"`
	Description          string          `gorm:"type:text" json:"description,omitempty"`
	RequiresPrescription bool            `gorm:"default:true" json:"requires_prescription"`
	IsActive             bool            `gorm:"default:true" json:"is_active"`
	CreatedAt            time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Medicine model
func (Medicine) TableName() string {
	return "medicines"
}

// IsLowStock reports whether stock has reached the reorder threshold
func (m *Medicine) IsLowStock() bool {
	return m.StockQuantity <= m.ReorderLevel
}

// DeductStock lowers the stock by quantity, flooring at zero. Stock is
// mutated only through dispensing; direct field writes are not a sanctioned
// mutation path.
func (m *Medicine) DeductStock(quantity uint) {
	if quantity >= m.StockQuantity {
		m.StockQuantity = 0
		return
	}
	m.StockQuantity -= quantity
}
