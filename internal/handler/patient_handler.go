package handler

import (
	"net/http"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	patientService *service.PatientService
}

func NewPatientHandler(patientService *service.PatientService) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
	}
}

// GetPatients returns patients; ?archived=true selects the archive
func (h *PatientHandler) GetPatients(c *gin.Context) {
	archived := c.Query("archived") == "true"
	patients, err := h.patientService.GetPatients(archived)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}
	utils.SuccessResponse(c, patients)
}

// GetAdmittablePatients returns patients eligible for a new admission
func (h *PatientHandler) GetAdmittablePatients(c *gin.Context) {
	patients, err := h.patientService.GetAdmittablePatients()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}
	utils.SuccessResponse(c, patients)
}

// GetPatient returns one patient record
func (h *PatientHandler) GetPatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}
	patient, err := h.patientService.GetPatientByID(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, patient)
}

// CreatePatient registers a new patient
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	patient.ID = 0
	patient.IsArchived = false

	if err := h.patientService.CreatePatient(&patient); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, patient)
}

// UpdatePatient saves patient record changes
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	patient.ID = id

	if err := h.patientService.UpdatePatient(&patient); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, patient)
}

// ArchivePatient soft-deletes a patient
func (h *PatientHandler) ArchivePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}
	if err := h.patientService.ArchivePatient(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Patient archived")
}

// RestorePatient reverses a soft delete
func (h *PatientHandler) RestorePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}
	if err := h.patientService.RestorePatient(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Patient restored")
}
