package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPharmacyFixture(t *testing.T) (*PharmacyService, *repository.MedicineRepository, *repository.PrescriptionRepository, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	medicineRepo := repository.NewMedicineRepo(db)
	prescriptionRepo := repository.NewPrescriptionRepo(db)
	svc := NewPharmacyService(
		medicineRepo,
		prescriptionRepo,
		repository.NewPatientRepo(db),
		repository.NewStaffRepo(db),
		repository.NewAdmissionRepo(db),
		repository.NewAppointmentRepo(db),
		repository.NewAuditRepo(db),
	)
	return svc, medicineRepo, prescriptionRepo, db
}

func seedPrescription(t *testing.T, medicineRepo *repository.MedicineRepository, prescriptionRepo *repository.PrescriptionRepository, db *gorm.DB, stock uint, quantity uint) (uint, uint, uint) {
	t.Helper()

	medicine := models.Medicine{
		Name:          "Amoxicillin 500mg",
		Category:      "antibiotic",
		PricePerUnit:  decimal.RequireFromString("2.50"),
		StockQuantity: stock,
		ReorderLevel:  1,
		IsActive:      true,
	}
	require.NoError(t, medicineRepo.CreateMedicine(&medicine))
	require.NoError(t, db.Exec(`INSERT INTO patients (id, name) VALUES (1, 'John Carter')`).Error)

	prescription := models.Prescription{
		PatientID:      1,
		Status:         models.PrescriptionPending,
		PrescribedDate: time.Now(),
		Items: []models.PrescriptionItem{{
			MedicineID: medicine.ID,
			Quantity:   quantity,
			Status:     models.ItemPending,
		}},
	}
	require.NoError(t, prescriptionRepo.CreatePrescription(&prescription))
	return prescription.ID, prescription.Items[0].ID, medicine.ID
}

func TestDispenseItemConcurrentDispensesOnce(t *testing.T) {
	svc, medicineRepo, prescriptionRepo, db := newPharmacyFixture(t)
	prescriptionID, itemID, medicineID := seedPrescription(t, medicineRepo, prescriptionRepo, db, 5, 3)

	const attempts = 2
	results := make(chan error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.DispenseItem(itemID, nil, 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	dispensed, rejected := 0, 0
	for err := range results {
		switch {
		case err == nil:
			dispensed++
		case errors.Is(err, models.ErrItemNotPending):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, dispensed)
	assert.Equal(t, attempts-1, rejected)

	// stock moved exactly once
	medicine, err := medicineRepo.GetMedicineByID(medicineID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), medicine.StockQuantity)

	prescription, err := prescriptionRepo.GetPrescriptionByID(prescriptionID)
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionDispensed, prescription.Status)
	require.Len(t, prescription.Items, 1)
	assert.Equal(t, models.ItemDispensed, prescription.Items[0].Status)
	assert.NotNil(t, prescription.Items[0].DispensedDate)
}

func TestDispenseItemRejectsAlreadyDispensed(t *testing.T) {
	svc, medicineRepo, prescriptionRepo, db := newPharmacyFixture(t)
	_, itemID, medicineID := seedPrescription(t, medicineRepo, prescriptionRepo, db, 5, 2)

	_, err := svc.DispenseItem(itemID, nil, 1)
	require.NoError(t, err)

	_, err = svc.DispenseItem(itemID, nil, 1)
	assert.ErrorIs(t, err, models.ErrItemNotPending)

	medicine, err := medicineRepo.GetMedicineByID(medicineID)
	require.NoError(t, err)
	assert.Equal(t, uint(3), medicine.StockQuantity)
}

func TestDispenseItemInsufficientStockLeavesItemPending(t *testing.T) {
	svc, medicineRepo, prescriptionRepo, db := newPharmacyFixture(t)
	prescriptionID, itemID, medicineID := seedPrescription(t, medicineRepo, prescriptionRepo, db, 1, 3)

	_, err := svc.DispenseItem(itemID, nil, 1)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)

	// the whole transaction rolled back, including the item flip
	medicine, err := medicineRepo.GetMedicineByID(medicineID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), medicine.StockQuantity)

	prescription, err := prescriptionRepo.GetPrescriptionByID(prescriptionID)
	require.NoError(t, err)
	assert.Equal(t, models.PrescriptionPending, prescription.Status)
	require.Len(t, prescription.Items, 1)
	assert.Equal(t, models.ItemPending, prescription.Items[0].Status)
}
