// Package billing computes payment breakdowns for inpatient and outpatient
// episodes. All arithmetic is exact decimal; persistence of the resulting
// Payment record is the caller's responsibility.
package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"hospital-management-backend/internal/models"
)

// DailyInpatientFee is the fixed daily care rate charged per admitted day
var DailyInpatientFee = decimal.RequireFromString("30.00")

// handicappedFreeThreshold: handicapped patients below this total pay nothing
var handicappedFreeThreshold = decimal.NewFromInt(3000)

// Discount percentages by tier
var (
	discountHandicappedFull = decimal.NewFromInt(100)
	discountHandicapped     = decimal.NewFromInt(90)
	discountInsured         = decimal.NewFromInt(80)
	discountUninsured       = decimal.NewFromInt(30)
)

// Input carries everything the calculation reads. The episode is either an
// admission (inpatient) or a set of appointments (outpatient). Prescriptions
// are those belonging to the episode, with items and medicines loaded.
type Input struct {
	Patient              *models.Patient
	PaymentType          string // models.PaymentInpatient or models.PaymentOutpatient
	Admission            *models.Admission
	Appointments         []models.Appointment
	SelectedProcedures   []models.Procedure
	Prescriptions        []models.Prescription
	IncludePrescriptions bool
	Now                  time.Time
}

// Breakdown is the full calculation result; every intermediate value is
// kept so the persisted Payment can be audited.
type Breakdown struct {
	ProcedureCost       decimal.Decimal `json:"procedure_cost"`
	DailyCareCost       decimal.Decimal `json:"daily_care_cost"`
	MedicineCost        decimal.Decimal `json:"medicine_cost"`
	LengthOfStay        int             `json:"length_of_stay"`
	TotalBeforeDiscount decimal.Decimal `json:"total_before_discount"`
	DiscountPercent     decimal.Decimal `json:"discount_percent"`
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	FinalAmount         decimal.Decimal `json:"final_amount"`
}

// Calculate produces the cost breakdown for an episode. It is a pure
// computation with no side effects, safe to run concurrently.
func Calculate(in Input) Breakdown {
	procedures := in.SelectedProcedures
	if len(procedures) == 0 {
		procedures = episodeProcedures(in)
	}

	procedureCost := decimal.Zero
	for _, proc := range procedures {
		procedureCost = procedureCost.Add(proc.Cost)
	}

	dailyCareCost := decimal.Zero
	lengthOfStay := 0
	if in.PaymentType == models.PaymentInpatient && in.Admission != nil {
		lengthOfStay = in.Admission.LengthOfStay(in.Now)
		dailyCareCost = decimal.NewFromInt(int64(lengthOfStay)).Mul(DailyInpatientFee)
	}

	medicineCost := decimal.Zero
	if in.IncludePrescriptions {
		for _, prescription := range in.Prescriptions {
			if prescription.Status != models.PrescriptionDispensed {
				continue
			}
			medicineCost = medicineCost.Add(prescription.TotalCost())
		}
	}

	total := procedureCost.Add(dailyCareCost).Add(medicineCost)

	// Discount tiers, first match wins: handicapped, then insured, then the
	// uninsured default.
	var discountPercent decimal.Decimal
	switch {
	case in.Patient.Handicapped:
		if total.LessThan(handicappedFreeThreshold) {
			discountPercent = discountHandicappedFull
		} else {
			discountPercent = discountHandicapped
		}
	case in.Patient.InsuranceStatus:
		discountPercent = discountInsured
	default:
		discountPercent = discountUninsured
	}

	discountAmount := total.Mul(discountPercent).Div(decimal.NewFromInt(100))
	finalAmount := total.Sub(discountAmount)

	return Breakdown{
		ProcedureCost:       procedureCost,
		DailyCareCost:       dailyCareCost,
		MedicineCost:        medicineCost,
		LengthOfStay:        lengthOfStay,
		TotalBeforeDiscount: total,
		DiscountPercent:     discountPercent,
		DiscountAmount:      discountAmount,
		FinalAmount:         finalAmount,
	}
}

// episodeProcedures derives the billed procedures from the episode when no
// explicit selection was given: the admission's accumulated procedures, or
// the union of procedures across the given appointments.
func episodeProcedures(in Input) []models.Procedure {
	if in.PaymentType == models.PaymentInpatient {
		if in.Admission == nil {
			return nil
		}
		return in.Admission.Procedures
	}

	seen := make(map[uint]bool)
	var procedures []models.Procedure
	for _, appointment := range in.Appointments {
		for _, proc := range appointment.Procedures {
			if seen[proc.ID] {
				continue
			}
			seen[proc.ID] = true
			procedures = append(procedures, proc)
		}
	}
	return procedures
}
