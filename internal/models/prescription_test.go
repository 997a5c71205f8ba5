package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	item := func(status string) PrescriptionItem {
		return PrescriptionItem{Status: status}
	}

	t.Run("no items stays pending", func(t *testing.T) {
		p := Prescription{Status: PrescriptionPending}
		assert.Equal(t, PrescriptionPending, p.DeriveStatus())
	})

	t.Run("none dispensed stays pending", func(t *testing.T) {
		p := Prescription{Items: []PrescriptionItem{item(ItemPending), item(ItemPending), item(ItemPending)}}
		assert.Equal(t, PrescriptionPending, p.DeriveStatus())
	})

	t.Run("some dispensed is partial", func(t *testing.T) {
		p := Prescription{Items: []PrescriptionItem{item(ItemDispensed), item(ItemDispensed), item(ItemPending)}}
		assert.Equal(t, PrescriptionPartiallyDispensed, p.DeriveStatus())
	})

	t.Run("all dispensed is dispensed", func(t *testing.T) {
		p := Prescription{Items: []PrescriptionItem{item(ItemDispensed), item(ItemDispensed), item(ItemDispensed)}}
		assert.Equal(t, PrescriptionDispensed, p.DeriveStatus())
	})

	t.Run("cancelled is sticky", func(t *testing.T) {
		p := Prescription{
			Status: PrescriptionCancelled,
			Items:  []PrescriptionItem{item(ItemDispensed)},
		}
		assert.Equal(t, PrescriptionCancelled, p.DeriveStatus())
	})

	t.Run("recompute without new events is a no-op", func(t *testing.T) {
		p := Prescription{Items: []PrescriptionItem{item(ItemDispensed), item(ItemPending)}}
		first := p.DeriveStatus()
		p.Status = first
		assert.Equal(t, first, p.DeriveStatus())
	})
}

func TestPrescriptionTotalCost(t *testing.T) {
	p := Prescription{
		Items: []PrescriptionItem{
			{Quantity: 3, Medicine: Medicine{PricePerUnit: decimal.RequireFromString("2.50")}},
			{Quantity: 2, Medicine: Medicine{PricePerUnit: decimal.RequireFromString("10.00")}},
		},
	}
	assert.True(t, p.TotalCost().Equal(decimal.RequireFromString("27.50")), "total = %s", p.TotalCost())
}

func TestPrescriptionItemTotalPrice(t *testing.T) {
	item := PrescriptionItem{
		Quantity: 4,
		Medicine: Medicine{PricePerUnit: decimal.RequireFromString("1.25")},
	}
	assert.True(t, item.TotalPrice().Equal(decimal.RequireFromString("5.00")))
}
