package handler

import (
	"net/http"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PharmacyHandler struct {
	pharmacyService *service.PharmacyService
}

func NewPharmacyHandler(pharmacyService *service.PharmacyService) *PharmacyHandler {
	return &PharmacyHandler{
		pharmacyService: pharmacyService,
	}
}

type PrescriptionItemRequest struct {
	MedicineID         uint   `json:"medicine_id" binding:"required"`
	Quantity           uint   `json:"quantity" binding:"required,min=1"`
	DosageInstructions string `json:"dosage_instructions"`
	DurationDays       uint   `json:"duration_days"`
	Notes              string `json:"notes"`
}

type CreatePrescriptionRequest struct {
	PatientID     uint                      `json:"patient_id" binding:"required"`
	DoctorID      *uint                     `json:"doctor_id"`
	AdmissionID   *uint                     `json:"admission_id"`
	AppointmentID *uint                     `json:"appointment_id"`
	Notes         string                    `json:"notes"`
	Items         []PrescriptionItemRequest `json:"items" binding:"required,min=1,dive"`
}

type DispenseItemRequest struct {
	PharmacyStaffID *uint `json:"pharmacy_staff_id"`
}

// GetMedicines returns the formulary; ?category= narrows it
func (h *PharmacyHandler) GetMedicines(c *gin.Context) {
	medicines, err := h.pharmacyService.GetMedicines(c.Query("category"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch medicines")
		return
	}
	utils.SuccessResponse(c, medicines)
}

// GetLowStockMedicines returns medicines at or below their reorder level
func (h *PharmacyHandler) GetLowStockMedicines(c *gin.Context) {
	medicines, err := h.pharmacyService.GetLowStockMedicines()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch medicines")
		return
	}
	utils.SuccessResponse(c, medicines)
}

// GetMedicine returns one formulary entry
func (h *PharmacyHandler) GetMedicine(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid medicine ID")
		return
	}
	medicine, err := h.pharmacyService.GetMedicineByID(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, medicine)
}

// CreateMedicine adds a medicine to the formulary
func (h *PharmacyHandler) CreateMedicine(c *gin.Context) {
	var medicine models.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	medicine.ID = 0

	if err := h.pharmacyService.CreateMedicine(&medicine); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, medicine)
}

// UpdateMedicine saves formulary changes
func (h *PharmacyHandler) UpdateMedicine(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid medicine ID")
		return
	}

	var medicine models.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	medicine.ID = id

	if err := h.pharmacyService.UpdateMedicine(&medicine); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, medicine)
}

// CreatePrescription records a doctor's medicine order
func (h *PharmacyHandler) CreatePrescription(c *gin.Context) {
	var req CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.CreatePrescriptionInput{
		PatientID:     req.PatientID,
		DoctorID:      req.DoctorID,
		AdmissionID:   req.AdmissionID,
		AppointmentID: req.AppointmentID,
		Notes:         req.Notes,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, service.PrescriptionItemInput{
			MedicineID:         item.MedicineID,
			Quantity:           item.Quantity,
			DosageInstructions: item.DosageInstructions,
			DurationDays:       item.DurationDays,
			Notes:              item.Notes,
		})
	}

	prescription, err := h.pharmacyService.CreatePrescription(input)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, prescription)
}

// GetPrescription returns one prescription with its items
func (h *PharmacyHandler) GetPrescription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid prescription ID")
		return
	}
	prescription, err := h.pharmacyService.GetPrescriptionByID(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, prescription)
}

// GetPendingPrescriptions returns the dispensing queue
func (h *PharmacyHandler) GetPendingPrescriptions(c *gin.Context) {
	prescriptions, err := h.pharmacyService.GetPendingPrescriptions()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch prescriptions")
		return
	}
	utils.SuccessResponse(c, prescriptions)
}

// GetPatientPrescriptions returns a patient's prescription history
func (h *PharmacyHandler) GetPatientPrescriptions(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}
	prescriptions, err := h.pharmacyService.GetPrescriptionsByPatient(patientID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, prescriptions)
}

// DispenseItem hands out one prescription line
func (h *PharmacyHandler) DispenseItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "itemId")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid item ID")
		return
	}

	var req DispenseItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	prescription, err := h.pharmacyService.DispenseItem(itemID, req.PharmacyStaffID, currentUserID(c))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, prescription)
}

// CancelPrescription marks a prescription cancelled
func (h *PharmacyHandler) CancelPrescription(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid prescription ID")
		return
	}
	prescription, err := h.pharmacyService.CancelPrescription(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, prescription)
}
