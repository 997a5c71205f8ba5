package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-management-backend/internal/billing"
	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"

	"github.com/google/uuid"
)

type BillingService struct {
	paymentRepo      *repository.PaymentRepository
	patientRepo      *repository.PatientRepository
	admissionRepo    *repository.AdmissionRepository
	appointmentRepo  *repository.AppointmentRepository
	procedureRepo    *repository.ProcedureRepository
	prescriptionRepo *repository.PrescriptionRepository
	auditRepo        *repository.AuditRepository
}

func NewBillingService(
	paymentRepo *repository.PaymentRepository,
	patientRepo *repository.PatientRepository,
	admissionRepo *repository.AdmissionRepository,
	appointmentRepo *repository.AppointmentRepository,
	procedureRepo *repository.ProcedureRepository,
	prescriptionRepo *repository.PrescriptionRepository,
	auditRepo *repository.AuditRepository,
) *BillingService {
	return &BillingService{
		paymentRepo:      paymentRepo,
		patientRepo:      patientRepo,
		admissionRepo:    admissionRepo,
		appointmentRepo:  appointmentRepo,
		procedureRepo:    procedureRepo,
		prescriptionRepo: prescriptionRepo,
		auditRepo:        auditRepo,
	}
}

// CreatePaymentInput selects the episode to bill. An inpatient payment
// references one admission; an outpatient payment references one or more
// appointments. ProcedureIDs overrides the episode's own procedure set.
type CreatePaymentInput struct {
	PatientID            uint
	PaymentType          string
	AdmissionID          *uint
	AppointmentIDs       []uint
	ProcedureIDs         []uint
	IncludePrescriptions bool
	Method               string
	Notes                string
}

// PaymentResult pairs the stored payment with the full calculation
type PaymentResult struct {
	Payment   *models.Payment   `json:"payment"`
	Breakdown billing.Breakdown `json:"breakdown"`
}

// PreviewPayment runs the billing calculation without persisting anything,
// so the charge can be shown before committing
func (s *BillingService) PreviewPayment(input CreatePaymentInput) (*billing.Breakdown, error) {
	in, _, _, err := s.gatherEpisode(input)
	if err != nil {
		return nil, err
	}
	breakdown := billing.Calculate(*in)
	return &breakdown, nil
}

// CreatePayment calculates the charge for an episode and stores it as an
// immutable payment record with a unique reference
func (s *BillingService) CreatePayment(input CreatePaymentInput, userID uint) (*PaymentResult, error) {
	in, appointments, procedures, err := s.gatherEpisode(input)
	if err != nil {
		return nil, err
	}

	breakdown := billing.Calculate(*in)

	payment := &models.Payment{
		Reference:           uuid.New().String(),
		PatientID:           input.PatientID,
		PaymentType:         input.PaymentType,
		AdmissionID:         input.AdmissionID,
		Appointments:        appointments,
		Procedures:          procedures,
		ProcedureCost:       breakdown.ProcedureCost,
		DailyCareCost:       breakdown.DailyCareCost,
		MedicineCost:        breakdown.MedicineCost,
		TotalBeforeDiscount: breakdown.TotalBeforeDiscount,
		DiscountPercent:     breakdown.DiscountPercent,
		FinalAmount:         breakdown.FinalAmount,
		Method:              input.Method,
		PaymentDate:         time.Now(),
		Notes:               input.Notes,
	}

	if err := s.paymentRepo.CreatePayment(payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	userIDPtr := &userID
	_ = s.auditRepo.CreateAuditLog(userIDPtr, models.AuditPaymentCreate,
		fmt.Sprintf("Payment %s created for patient %d: %s", payment.Reference, payment.PatientID, breakdown.FinalAmount.StringFixed(2)))

	stored, err := s.paymentRepo.GetPaymentByID(payment.ID)
	if err != nil {
		return nil, err
	}
	return &PaymentResult{Payment: stored, Breakdown: breakdown}, nil
}

// GetPayments lists payment records, newest first
func (s *BillingService) GetPayments() ([]models.Payment, error) {
	return s.paymentRepo.GetPayments()
}

// GetPaymentByID retrieves one payment record
func (s *BillingService) GetPaymentByID(id uint) (*models.Payment, error) {
	return s.paymentRepo.GetPaymentByID(id)
}

// gatherEpisode loads everything the calculation reads: the patient, the
// admission or appointments, any explicit procedure selection, and the
// episode's dispensed prescriptions.
func (s *BillingService) gatherEpisode(input CreatePaymentInput) (*billing.Input, []models.Appointment, []models.Procedure, error) {
	patient, err := s.patientRepo.GetPatientByID(input.PatientID)
	if err != nil {
		return nil, nil, nil, err
	}

	in := &billing.Input{
		Patient:              patient,
		PaymentType:          input.PaymentType,
		IncludePrescriptions: input.IncludePrescriptions,
		Now:                  time.Now(),
	}

	var appointments []models.Appointment
	switch input.PaymentType {
	case models.PaymentInpatient:
		if input.AdmissionID == nil {
			return nil, nil, nil, errors.New("inpatient payment requires an admission")
		}
		admission, err := s.admissionRepo.GetAdmissionByID(*input.AdmissionID)
		if err != nil {
			return nil, nil, nil, err
		}
		if admission.PatientID != input.PatientID {
			return nil, nil, nil, fmt.Errorf("admission %d does not belong to patient %d", admission.ID, input.PatientID)
		}
		in.Admission = admission
		if input.IncludePrescriptions {
			prescriptions, err := s.prescriptionRepo.GetDispensedByAdmission(admission.ID)
			if err != nil {
				return nil, nil, nil, err
			}
			in.Prescriptions = prescriptions
		}
	case models.PaymentOutpatient:
		if len(input.AppointmentIDs) == 0 {
			return nil, nil, nil, errors.New("outpatient payment requires at least one appointment")
		}
		appointments, err = s.appointmentRepo.GetAppointmentsByIDs(input.AppointmentIDs)
		if err != nil {
			return nil, nil, nil, err
		}
		for _, appointment := range appointments {
			if appointment.PatientID != input.PatientID {
				return nil, nil, nil, fmt.Errorf("appointment %d does not belong to patient %d", appointment.ID, input.PatientID)
			}
		}
		in.Appointments = appointments
		if input.IncludePrescriptions {
			prescriptions, err := s.prescriptionRepo.GetDispensedByAppointments(input.AppointmentIDs)
			if err != nil {
				return nil, nil, nil, err
			}
			in.Prescriptions = prescriptions
		}
	default:
		return nil, nil, nil, fmt.Errorf("unknown payment type %q", input.PaymentType)
	}

	var procedures []models.Procedure
	if len(input.ProcedureIDs) > 0 {
		procedures, err = s.procedureRepo.GetProceduresByIDs(input.ProcedureIDs)
		if err != nil {
			return nil, nil, nil, err
		}
		in.SelectedProcedures = procedures
	}

	return in, appointments, procedures, nil
}
