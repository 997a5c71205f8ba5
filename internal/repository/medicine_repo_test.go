package repository

import (
	"errors"
	"sync"
	"testing"

	"hospital-management-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDeductStockConcurrentPastAvailable(t *testing.T) {
	db := newTestDB(t, &models.Medicine{})
	repo := NewMedicineRepo(db)

	medicine := models.Medicine{
		Name:          "Amoxicillin 500mg",
		Category:      "antibiotic",
		PricePerUnit:  decimal.RequireFromString("2.50"),
		StockQuantity: 5,
		ReorderLevel:  2,
		IsActive:      true,
	}
	require.NoError(t, repo.CreateMedicine(&medicine))

	// four deductions of 2 against 5 in stock: exactly two can succeed
	const attempts = 4
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- db.Transaction(func(tx *gorm.DB) error {
				return repo.DeductStock(tx, medicine.ID, 2)
			})
		}()
	}
	wg.Wait()
	close(results)

	deducted, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			deducted++
		case errors.Is(err, models.ErrInsufficientStock):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 2, deducted)
	assert.Equal(t, 2, rejected)

	got, err := repo.GetMedicineByID(medicine.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.StockQuantity)
}

func TestDeductStockGuardLeavesStockUntouched(t *testing.T) {
	db := newTestDB(t, &models.Medicine{})
	repo := NewMedicineRepo(db)

	medicine := models.Medicine{
		Name:          "Metformin 850mg",
		Category:      "antidiabetic",
		PricePerUnit:  decimal.RequireFromString("1.10"),
		StockQuantity: 3,
		ReorderLevel:  1,
		IsActive:      true,
	}
	require.NoError(t, repo.CreateMedicine(&medicine))

	deduct := func(quantity uint) error {
		return db.Transaction(func(tx *gorm.DB) error {
			return repo.DeductStock(tx, medicine.ID, quantity)
		})
	}

	assert.ErrorIs(t, deduct(5), models.ErrInsufficientStock)
	got, err := repo.GetMedicineByID(medicine.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(3), got.StockQuantity)

	require.NoError(t, deduct(3))
	got, err = repo.GetMedicineByID(medicine.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(0), got.StockQuantity)

	assert.ErrorIs(t, deduct(1), models.ErrInsufficientStock)
}
