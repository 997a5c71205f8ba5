package handler

import (
	"net/http"

	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type PredictionHandler struct {
	predictionService *service.PredictionService
}

func NewPredictionHandler(predictionService *service.PredictionService) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
	}
}

// Predict scores a patient against the readmission model
func (h *PredictionHandler) Predict(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	record, err := h.predictionService.PredictReadmission(c.Request.Context(), patientID, currentUserID(c))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, record)
}

// GetHistory returns a patient's prediction history
func (h *PredictionHandler) GetHistory(c *gin.Context) {
	patientID, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid patient ID")
		return
	}

	records, err := h.predictionService.GetPredictionsByPatient(patientID)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, records)
}
