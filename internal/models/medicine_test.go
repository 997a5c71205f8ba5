package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedicineIsLowStock(t *testing.T) {
	m := Medicine{StockQuantity: 15, ReorderLevel: 10}
	assert.False(t, m.IsLowStock())

	m.StockQuantity = 10
	assert.True(t, m.IsLowStock())

	m.StockQuantity = 0
	assert.True(t, m.IsLowStock())
}

func TestMedicineDeductStock(t *testing.T) {
	m := Medicine{StockQuantity: 10}

	m.DeductStock(4)
	assert.Equal(t, uint(6), m.StockQuantity)

	// deducting beyond the remainder floors at zero
	m.DeductStock(100)
	assert.Equal(t, uint(0), m.StockQuantity)

	m.DeductStock(1)
	assert.Equal(t, uint(0), m.StockQuantity)
}
