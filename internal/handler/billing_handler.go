package handler

import (
	"net/http"

	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	billingService *service.BillingService
}

func NewBillingHandler(billingService *service.BillingService) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
	}
}

type PaymentRequest struct {
	PatientID            uint   `json:"patient_id" binding:"required"`
	PaymentType          string `json:"payment_type" binding:"required,oneof=inpatient outpatient"`
	AdmissionID          *uint  `json:"admission_id"`
	AppointmentIDs       []uint `json:"appointment_ids"`
	ProcedureIDs         []uint `json:"procedure_ids"`
	IncludePrescriptions *bool  `json:"include_prescriptions"`
	Method               string `json:"method"`
	Notes                string `json:"notes"`
}

func (r *PaymentRequest) toInput() service.CreatePaymentInput {
	// Prescriptions are billed unless explicitly excluded
	includePrescriptions := true
	if r.IncludePrescriptions != nil {
		includePrescriptions = *r.IncludePrescriptions
	}
	return service.CreatePaymentInput{
		PatientID:            r.PatientID,
		PaymentType:          r.PaymentType,
		AdmissionID:          r.AdmissionID,
		AppointmentIDs:       r.AppointmentIDs,
		ProcedureIDs:         r.ProcedureIDs,
		IncludePrescriptions: includePrescriptions,
		Method:               r.Method,
		Notes:                r.Notes,
	}
}

// PreviewPayment returns the cost breakdown without storing anything
func (h *BillingHandler) PreviewPayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	breakdown, err := h.billingService.PreviewPayment(req.toInput())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, breakdown)
}

// CreatePayment calculates and stores a payment record
func (h *BillingHandler) CreatePayment(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.billingService.CreatePayment(req.toInput(), currentUserID(c))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, result)
}

// GetPayments returns payment records, newest first
func (h *BillingHandler) GetPayments(c *gin.Context) {
	payments, err := h.billingService.GetPayments()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch payments")
		return
	}
	utils.SuccessResponse(c, payments)
}

// GetPayment returns one payment record
func (h *BillingHandler) GetPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid payment ID")
		return
	}
	payment, err := h.billingService.GetPaymentByID(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, payment)
}
