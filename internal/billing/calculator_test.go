package billing

import (
	"testing"
	"time"

	"hospital-management-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func procedure(id uint, cost string) models.Procedure {
	return models.Procedure{ID: id, Name: "proc", Cost: money(cost)}
}

func dispensedPrescription(unitPrice string, quantity uint) models.Prescription {
	return models.Prescription{
		Status: models.PrescriptionDispensed,
		Items: []models.PrescriptionItem{
			{
				Quantity: quantity,
				Status:   models.ItemDispensed,
				Medicine: models.Medicine{PricePerUnit: money(unitPrice)},
			},
		},
	}
}

func TestCalculateDiscountTiers(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name            string
		patient         models.Patient
		procedureCost   string
		wantPercent     string
		wantFinalAmount string
	}{
		{
			name:            "handicapped below threshold pays nothing",
			patient:         models.Patient{Handicapped: true},
			procedureCost:   "2000.00",
			wantPercent:     "100",
			wantFinalAmount: "0.00",
		},
		{
			name:            "handicapped at threshold pays ten percent",
			patient:         models.Patient{Handicapped: true},
			procedureCost:   "3000.00",
			wantPercent:     "90",
			wantFinalAmount: "300.00",
		},
		{
			name:            "handicapped above threshold pays ten percent",
			patient:         models.Patient{Handicapped: true},
			procedureCost:   "5000.00",
			wantPercent:     "90",
			wantFinalAmount: "500.00",
		},
		{
			name:            "insured pays twenty percent",
			patient:         models.Patient{InsuranceStatus: true},
			procedureCost:   "1000.00",
			wantPercent:     "80",
			wantFinalAmount: "200.00",
		},
		{
			name:            "handicapped takes precedence over insured",
			patient:         models.Patient{Handicapped: true, InsuranceStatus: true},
			procedureCost:   "1000.00",
			wantPercent:     "100",
			wantFinalAmount: "0.00",
		},
		{
			name:            "uninsured pays seventy percent",
			patient:         models.Patient{},
			procedureCost:   "1000.00",
			wantPercent:     "30",
			wantFinalAmount: "700.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := Calculate(Input{
				Patient:            &tt.patient,
				PaymentType:        models.PaymentOutpatient,
				SelectedProcedures: []models.Procedure{procedure(1, tt.procedureCost)},
				Now:                now,
			})

			assert.True(t, breakdown.DiscountPercent.Equal(money(tt.wantPercent)),
				"discount percent = %s, want %s", breakdown.DiscountPercent, tt.wantPercent)
			assert.True(t, breakdown.FinalAmount.Equal(money(tt.wantFinalAmount)),
				"final amount = %s, want %s", breakdown.FinalAmount, tt.wantFinalAmount)
		})
	}
}

func TestCalculateInpatientComposition(t *testing.T) {
	now := time.Now()
	admitted := now.Add(-5 * 24 * time.Hour)

	admission := &models.Admission{
		AdmissionDate: admitted,
		Status:        models.AdmissionAdmitted,
		Procedures:    []models.Procedure{procedure(1, "200.00")},
	}

	breakdown := Calculate(Input{
		Patient:              &models.Patient{},
		PaymentType:          models.PaymentInpatient,
		Admission:            admission,
		Prescriptions:        []models.Prescription{dispensedPrescription("10.00", 5)},
		IncludePrescriptions: true,
		Now:                  now,
	})

	require.Equal(t, 5, breakdown.LengthOfStay)
	assert.True(t, breakdown.ProcedureCost.Equal(money("200.00")), "procedure cost = %s", breakdown.ProcedureCost)
	assert.True(t, breakdown.DailyCareCost.Equal(money("150.00")), "daily care cost = %s", breakdown.DailyCareCost)
	assert.True(t, breakdown.MedicineCost.Equal(money("50.00")), "medicine cost = %s", breakdown.MedicineCost)
	assert.True(t, breakdown.TotalBeforeDiscount.Equal(money("400.00")), "total = %s", breakdown.TotalBeforeDiscount)
	// uninsured: 30% off
	assert.True(t, breakdown.DiscountAmount.Equal(money("120.00")), "discount = %s", breakdown.DiscountAmount)
	assert.True(t, breakdown.FinalAmount.Equal(money("280.00")), "final = %s", breakdown.FinalAmount)
}

func TestCalculateSameDayStayChargesOneDay(t *testing.T) {
	now := time.Now()
	admission := &models.Admission{AdmissionDate: now, Status: models.AdmissionAdmitted}

	breakdown := Calculate(Input{
		Patient:     &models.Patient{},
		PaymentType: models.PaymentInpatient,
		Admission:   admission,
		Now:         now,
	})

	assert.Equal(t, 1, breakdown.LengthOfStay)
	assert.True(t, breakdown.DailyCareCost.Equal(money("30.00")), "daily care cost = %s", breakdown.DailyCareCost)
}

func TestCalculateOutpatientSkipsDailyCare(t *testing.T) {
	breakdown := Calculate(Input{
		Patient:            &models.Patient{},
		PaymentType:        models.PaymentOutpatient,
		SelectedProcedures: []models.Procedure{procedure(1, "100.00")},
		Now:                time.Now(),
	})

	assert.Equal(t, 0, breakdown.LengthOfStay)
	assert.True(t, breakdown.DailyCareCost.IsZero())
}

func TestCalculateDerivesAppointmentProceduresWithoutDuplicates(t *testing.T) {
	shared := procedure(1, "100.00")
	appointments := []models.Appointment{
		{ID: 10, Procedures: []models.Procedure{shared, procedure(2, "50.00")}},
		{ID: 11, Procedures: []models.Procedure{shared}},
	}

	breakdown := Calculate(Input{
		Patient:      &models.Patient{},
		PaymentType:  models.PaymentOutpatient,
		Appointments: appointments,
		Now:          time.Now(),
	})

	assert.True(t, breakdown.ProcedureCost.Equal(money("150.00")),
		"procedure cost = %s, shared procedure must be billed once", breakdown.ProcedureCost)
}

func TestCalculateExplicitSelectionOverridesEpisode(t *testing.T) {
	admission := &models.Admission{
		AdmissionDate: time.Now(),
		Procedures:    []models.Procedure{procedure(1, "999.00")},
	}

	breakdown := Calculate(Input{
		Patient:            &models.Patient{},
		PaymentType:        models.PaymentInpatient,
		Admission:          admission,
		SelectedProcedures: []models.Procedure{procedure(2, "100.00")},
		Now:                time.Now(),
	})

	assert.True(t, breakdown.ProcedureCost.Equal(money("100.00")), "procedure cost = %s", breakdown.ProcedureCost)
}

func TestCalculateIgnoresUndispensedPrescriptions(t *testing.T) {
	pending := dispensedPrescription("10.00", 5)
	pending.Status = models.PrescriptionPartiallyDispensed

	breakdown := Calculate(Input{
		Patient:              &models.Patient{},
		PaymentType:          models.PaymentOutpatient,
		Prescriptions:        []models.Prescription{pending},
		IncludePrescriptions: true,
		Now:                  time.Now(),
	})

	assert.True(t, breakdown.MedicineCost.IsZero(), "medicine cost = %s", breakdown.MedicineCost)
}

func TestCalculateExcludesPrescriptionsWhenDisabled(t *testing.T) {
	breakdown := Calculate(Input{
		Patient:              &models.Patient{},
		PaymentType:          models.PaymentOutpatient,
		Prescriptions:        []models.Prescription{dispensedPrescription("10.00", 5)},
		IncludePrescriptions: false,
		Now:                  time.Now(),
	})

	assert.True(t, breakdown.MedicineCost.IsZero(), "medicine cost = %s", breakdown.MedicineCost)
}
