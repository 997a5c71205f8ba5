package handler

import (
	"net/http"

	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	staffService *service.StaffService
}

func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
	}
}

type CreateStaffRequest struct {
	Username      string  `json:"username" binding:"required,min=3,max=50"`
	Password      string  `json:"password" binding:"required,min=6"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	Email         string  `json:"email" binding:"omitempty,email"`
	Specialty     string  `json:"specialty"`
	Department    string  `json:"department"`
	LicenseNumber *string `json:"license_number"`
	Shift         string  `json:"shift" binding:"omitempty,oneof=morning afternoon night"`
}

func (r *CreateStaffRequest) toInput() service.CreateStaffInput {
	return service.CreateStaffInput{
		Username:      r.Username,
		Password:      r.Password,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Specialty:     r.Specialty,
		Department:    r.Department,
		LicenseNumber: r.LicenseNumber,
		Shift:         r.Shift,
	}
}

// GetDoctors returns doctors; ?archived=true selects the archive
func (h *StaffHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.staffService.GetDoctors(c.Query("archived") == "true")
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}
	utils.SuccessResponse(c, doctors)
}

// CreateDoctor creates a doctor profile with its user account
func (h *StaffHandler) CreateDoctor(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	doctor, err := h.staffService.CreateDoctor(req.toInput())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, doctor)
}

// ArchiveDoctor soft-deletes a doctor
func (h *StaffHandler) ArchiveDoctor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}
	if err := h.staffService.ArchiveDoctor(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Doctor archived")
}

// RestoreDoctor reverses a doctor soft delete
func (h *StaffHandler) RestoreDoctor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid doctor ID")
		return
	}
	if err := h.staffService.RestoreDoctor(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Doctor restored")
}

// GetNurses returns nurses; ?archived=true selects the archive
func (h *StaffHandler) GetNurses(c *gin.Context) {
	nurses, err := h.staffService.GetNurses(c.Query("archived") == "true")
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch nurses")
		return
	}
	utils.SuccessResponse(c, nurses)
}

// CreateNurse creates a nurse profile with its user account
func (h *StaffHandler) CreateNurse(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	nurse, err := h.staffService.CreateNurse(req.toInput())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, nurse)
}

// ArchiveNurse soft-deletes a nurse
func (h *StaffHandler) ArchiveNurse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid nurse ID")
		return
	}
	if err := h.staffService.ArchiveNurse(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Nurse archived")
}

// RestoreNurse reverses a nurse soft delete
func (h *StaffHandler) RestoreNurse(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid nurse ID")
		return
	}
	if err := h.staffService.RestoreNurse(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Nurse restored")
}

// CreatePharmacyStaff creates a pharmacy staff profile with its account
func (h *StaffHandler) CreatePharmacyStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	staff, err := h.staffService.CreatePharmacyStaff(req.toInput())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, staff)
}
