package handler

import (
	"net/http"

	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AdmissionHandler struct {
	admissionService *service.AdmissionService
}

func NewAdmissionHandler(admissionService *service.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{
		admissionService: admissionService,
	}
}

type CreateAdmissionRequest struct {
	PatientID         uint   `json:"patient_id" binding:"required"`
	DoctorID          *uint  `json:"doctor_id"`
	NurseID           *uint  `json:"nurse_id"`
	RoomID            *uint  `json:"room_id"`
	Status            string `json:"status" binding:"omitempty,oneof=pending admitted pending_discharge discharged"`
	RequiresInpatient bool   `json:"requires_inpatient"`
	DoctorNotes       string `json:"doctor_notes"`
}

type UpdateAdmissionRequest struct {
	DoctorID          *uint   `json:"doctor_id"`
	NurseID           *uint   `json:"nurse_id"`
	RoomID            *uint   `json:"room_id"`
	ClearRoom         bool    `json:"clear_room"`
	Status            *string `json:"status" binding:"omitempty,oneof=pending admitted pending_discharge discharged"`
	RequiresInpatient *bool   `json:"requires_inpatient"`
	DoctorNotes       *string `json:"doctor_notes"`
}

type AssignRoomRequest struct {
	RoomID uint `json:"room_id" binding:"required"`
}

type ProcedureSelectionRequest struct {
	ProcedureIDs []uint `json:"procedure_ids" binding:"required,min=1"`
}

// GetAdmissions returns all admissions
func (h *AdmissionHandler) GetAdmissions(c *gin.Context) {
	admissions, err := h.admissionService.GetAdmissions()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch admissions")
		return
	}
	utils.SuccessResponse(c, admissions)
}

// GetAdmission returns one admission
func (h *AdmissionHandler) GetAdmission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid admission ID")
		return
	}
	admission, err := h.admissionService.GetAdmissionByID(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, admission)
}

// CreateAdmission opens a hospital stay
func (h *AdmissionHandler) CreateAdmission(c *gin.Context) {
	var req CreateAdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	admission, err := h.admissionService.CreateAdmission(service.CreateAdmissionInput{
		PatientID:         req.PatientID,
		DoctorID:          req.DoctorID,
		NurseID:           req.NurseID,
		RoomID:            req.RoomID,
		Status:            req.Status,
		RequiresInpatient: req.RequiresInpatient,
		DoctorNotes:       req.DoctorNotes,
	}, currentUserID(c))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, admission)
}

// UpdateAdmission applies status and room changes
func (h *AdmissionHandler) UpdateAdmission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid admission ID")
		return
	}

	var req UpdateAdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	admission, err := h.admissionService.UpdateAdmission(id, service.UpdateAdmissionInput{
		DoctorID:          req.DoctorID,
		NurseID:           req.NurseID,
		RoomID:            req.RoomID,
		ClearRoom:         req.ClearRoom,
		Status:            req.Status,
		RequiresInpatient: req.RequiresInpatient,
		DoctorNotes:       req.DoctorNotes,
	}, currentUserID(c))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, admission)
}

// AssignRoom moves an admission to a room
func (h *AdmissionHandler) AssignRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid admission ID")
		return
	}

	var req AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	admission, err := h.admissionService.AssignRoom(id, req.RoomID, currentUserID(c))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, admission)
}

// AddProcedures records procedures performed during the stay
func (h *AdmissionHandler) AddProcedures(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid admission ID")
		return
	}

	var req ProcedureSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	admission, err := h.admissionService.AddProcedures(id, req.ProcedureIDs, currentUserID(c))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, admission)
}
