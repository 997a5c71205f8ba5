package handler

import (
	"net/http"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ProcedureHandler struct {
	procedureService *service.ProcedureService
}

func NewProcedureHandler(procedureService *service.ProcedureService) *ProcedureHandler {
	return &ProcedureHandler{
		procedureService: procedureService,
	}
}

type ProcedureRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Cost          decimal.Decimal `json:"cost" binding:"required"`
	ProcedureType string          `json:"procedure_type" binding:"required,oneof=surgical non_surgical"`
}

// GetProcedures returns the procedure catalog
func (h *ProcedureHandler) GetProcedures(c *gin.Context) {
	procedures, err := h.procedureService.GetProcedures()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch procedures")
		return
	}
	utils.SuccessResponse(c, procedures)
}

// GetProcedure returns one catalog entry
func (h *ProcedureHandler) GetProcedure(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid procedure ID")
		return
	}
	procedure, err := h.procedureService.GetProcedureByID(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, procedure)
}

// CreateProcedure adds a procedure to the catalog
func (h *ProcedureHandler) CreateProcedure(c *gin.Context) {
	var req ProcedureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	procedure := models.Procedure{
		Name:          req.Name,
		Description:   req.Description,
		Cost:          req.Cost,
		ProcedureType: req.ProcedureType,
	}
	if err := h.procedureService.CreateProcedure(&procedure); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, procedure)
}

// UpdateProcedure saves catalog changes
func (h *ProcedureHandler) UpdateProcedure(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid procedure ID")
		return
	}

	var req ProcedureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	procedure := models.Procedure{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		Cost:          req.Cost,
		ProcedureType: req.ProcedureType,
	}
	if err := h.procedureService.UpdateProcedure(&procedure); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, procedure)
}
