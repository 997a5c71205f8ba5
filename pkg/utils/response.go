package utils

import (
	"errors"
	"net/http"

	"hospital-management-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// SuccessResponse sends a standard success JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// CreatedResponse sends a success response for a newly created resource
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

// DomainErrorResponse maps service errors onto HTTP statuses: missing
// records to 404, capacity, stock and dispense-race rejections to 409,
// invalid lifecycle transitions to 422, anything else to 400.
func DomainErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrCapacityExceeded),
		errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, models.ErrItemNotPending):
		ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrInvalidTransition):
		ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	default:
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	}
}
