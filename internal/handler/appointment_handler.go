package handler

import (
	"net/http"
	"time"

	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentService *service.AppointmentService
}

func NewAppointmentHandler(appointmentService *service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
	}
}

type CreateAppointmentRequest struct {
	PatientID       uint      `json:"patient_id" binding:"required"`
	DoctorID        *uint     `json:"doctor_id"`
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	Reason          string    `json:"reason"`
	Notes           string    `json:"notes"`
}

type AppointmentStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled checked_in in_progress completed cancelled no_show"`
}

// GetAppointments returns appointments; ?view=active or ?view=completed
// narrows the listing
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	var (
		appointments interface{}
		err          error
	)
	switch c.Query("view") {
	case "active":
		appointments, err = h.appointmentService.GetActiveAppointments()
	case "completed":
		appointments, err = h.appointmentService.GetCompletedAppointments()
	default:
		appointments, err = h.appointmentService.GetAppointments()
	}
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch appointments")
		return
	}
	utils.SuccessResponse(c, appointments)
}

// GetAppointment returns one appointment
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}
	appointment, err := h.appointmentService.GetAppointmentByID(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, appointment)
}

// CreateAppointment books an outpatient visit
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.CreateAppointment(service.CreateAppointmentInput{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		Reason:          req.Reason,
		Notes:           req.Notes,
	})
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, appointment)
}

// UpdateStatus moves an appointment through its visit flow
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var req AppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.UpdateStatus(id, req.Status)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, appointment)
}

// AddProcedures records procedures performed during the visit
func (h *AppointmentHandler) AddProcedures(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid appointment ID")
		return
	}

	var req ProcedureSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	appointment, err := h.appointmentService.AddProcedures(id, req.ProcedureIDs)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, appointment)
}
