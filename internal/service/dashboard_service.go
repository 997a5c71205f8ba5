package service

import (
	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
)

type DashboardService struct {
	patientRepo      *repository.PatientRepository
	admissionRepo    *repository.AdmissionRepository
	roomRepo         *repository.RoomRepository
	prescriptionRepo *repository.PrescriptionRepository
	paymentRepo      *repository.PaymentRepository
	medicineRepo     *repository.MedicineRepository
	auditRepo        *repository.AuditRepository
}

func NewDashboardService(
	patientRepo *repository.PatientRepository,
	admissionRepo *repository.AdmissionRepository,
	roomRepo *repository.RoomRepository,
	prescriptionRepo *repository.PrescriptionRepository,
	paymentRepo *repository.PaymentRepository,
	medicineRepo *repository.MedicineRepository,
	auditRepo *repository.AuditRepository,
) *DashboardService {
	return &DashboardService{
		patientRepo:      patientRepo,
		admissionRepo:    admissionRepo,
		roomRepo:         roomRepo,
		prescriptionRepo: prescriptionRepo,
		paymentRepo:      paymentRepo,
		medicineRepo:     medicineRepo,
		auditRepo:        auditRepo,
	}
}

// Stats is the ward overview shown on the dashboard
type Stats struct {
	ActivePatients       int64 `json:"active_patients"`
	PendingAdmissions    int64 `json:"pending_admissions"`
	CurrentAdmissions    int64 `json:"current_admissions"`
	PendingDischarges    int64 `json:"pending_discharges"`
	OccupiedBeds         int64 `json:"occupied_beds"`
	TotalBeds            int64 `json:"total_beds"`
	PendingPrescriptions int64 `json:"pending_prescriptions"`
	LowStockMedicines    int   `json:"low_stock_medicines"`
	TotalPayments        int64 `json:"total_payments"`
}

// GetStats assembles the ward overview counters
func (s *DashboardService) GetStats() (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.ActivePatients, err = s.patientRepo.CountActive(); err != nil {
		return nil, err
	}
	if stats.PendingAdmissions, err = s.admissionRepo.CountByStatus(models.AdmissionPending); err != nil {
		return nil, err
	}
	if stats.CurrentAdmissions, err = s.admissionRepo.CountByStatus(models.AdmissionAdmitted); err != nil {
		return nil, err
	}
	if stats.PendingDischarges, err = s.admissionRepo.CountByStatus(models.AdmissionPendingDischarge); err != nil {
		return nil, err
	}
	if stats.OccupiedBeds, stats.TotalBeds, err = s.roomRepo.CountOccupancy(); err != nil {
		return nil, err
	}
	if stats.PendingPrescriptions, err = s.prescriptionRepo.CountPending(); err != nil {
		return nil, err
	}
	lowStock, err := s.medicineRepo.GetLowStockMedicines()
	if err != nil {
		return nil, err
	}
	stats.LowStockMedicines = len(lowStock)
	if stats.TotalPayments, err = s.paymentRepo.CountPayments(); err != nil {
		return nil, err
	}

	return stats, nil
}

// GetRecentActivity lists the latest audit entries
func (s *DashboardService) GetRecentActivity(limit int) ([]models.AuditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.auditRepo.GetRecentAuditLogs(limit)
}
