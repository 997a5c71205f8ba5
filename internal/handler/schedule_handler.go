package handler

import (
	"net/http"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleService *service.ScheduleService
}

func NewScheduleHandler(scheduleService *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

type ScheduleRequest struct {
	UserID    uint   `json:"user_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Shift     string `json:"shift" binding:"required,oneof=morning afternoon night"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Notes     string `json:"notes"`
	IsLocked  bool   `json:"is_locked"`
}

type SwapRequestBody struct {
	RequesterID      uint   `json:"requester_id" binding:"required"`
	RequesterShiftID uint   `json:"requester_shift_id" binding:"required"`
	RecipientID      *uint  `json:"recipient_id"`
	RecipientShiftID *uint  `json:"recipient_shift_id"`
	Reason           string `json:"reason"`
}

type UnavailabilityRequestBody struct {
	UserID    uint   `json:"user_id" binding:"required"`
	StartDate string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

type ReviewRequest struct {
	Approve    bool   `json:"approve"`
	AdminNotes string `json:"admin_notes"`
}

// GetSchedules returns shift assignments; query params narrow the listing
func (h *ScheduleHandler) GetSchedules(c *gin.Context) {
	filter := repository.ScheduleFilter{}
	if userID, ok := parseQueryID(c, "user_id"); ok {
		filter.UserID = &userID
	}
	if date, ok := parseQueryDate(c, "date"); ok {
		filter.Date = &date
	}
	if start, ok := parseQueryDate(c, "start_date"); ok {
		filter.StartDate = &start
	}
	if end, ok := parseQueryDate(c, "end_date"); ok {
		filter.EndDate = &end
	}

	schedules, err := h.scheduleService.GetSchedules(filter)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch schedules")
		return
	}
	utils.SuccessResponse(c, schedules)
}

// CreateSchedule assigns a shift
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	schedule := models.Schedule{
		UserID:      req.UserID,
		Date:        date,
		Shift:       req.Shift,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: true,
		Notes:       req.Notes,
		IsLocked:    req.IsLocked,
	}
	if err := h.scheduleService.CreateSchedule(&schedule); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, schedule)
}

// UpdateSchedule saves shift changes
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid schedule ID")
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	schedule := models.Schedule{
		ID:          id,
		UserID:      req.UserID,
		Date:        date,
		Shift:       req.Shift,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: true,
		Notes:       req.Notes,
		IsLocked:    req.IsLocked,
	}
	if err := h.scheduleService.UpdateSchedule(&schedule); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, schedule)
}

// DeleteSchedule removes a shift assignment
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid schedule ID")
		return
	}
	if err := h.scheduleService.DeleteSchedule(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Schedule deleted")
}

// CreateSwapRequest files a shift swap for review
func (h *ScheduleHandler) CreateSwapRequest(c *gin.Context) {
	var req SwapRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request := models.ShiftSwapRequest{
		RequesterID:      req.RequesterID,
		RequesterShiftID: req.RequesterShiftID,
		RecipientID:      req.RecipientID,
		RecipientShiftID: req.RecipientShiftID,
		Reason:           req.Reason,
	}
	if err := h.scheduleService.CreateSwapRequest(&request); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, request)
}

// GetSwapRequests returns swap requests, newest first
func (h *ScheduleHandler) GetSwapRequests(c *gin.Context) {
	requests, err := h.scheduleService.GetSwapRequests()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch swap requests")
		return
	}
	utils.SuccessResponse(c, requests)
}

// ReviewSwapRequest approves or rejects a pending swap
func (h *ScheduleHandler) ReviewSwapRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.scheduleService.ReviewSwapRequest(id, req.Approve, req.AdminNotes, currentUserID(c))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, request)
}

// CreateUnavailabilityRequest files a leave request
func (h *ScheduleHandler) CreateUnavailabilityRequest(c *gin.Context) {
	var req UnavailabilityRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD")
		return
	}

	request := models.UnavailabilityRequest{
		UserID:    req.UserID,
		StartDate: start,
		EndDate:   end,
		Reason:    req.Reason,
	}
	if err := h.scheduleService.CreateUnavailabilityRequest(&request); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, request)
}

// GetUnavailabilityRequests returns leave requests, newest first
func (h *ScheduleHandler) GetUnavailabilityRequests(c *gin.Context) {
	requests, err := h.scheduleService.GetUnavailabilityRequests()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch unavailability requests")
		return
	}
	utils.SuccessResponse(c, requests)
}

// ReviewUnavailabilityRequest approves or rejects a pending leave request
func (h *ScheduleHandler) ReviewUnavailabilityRequest(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	request, err := h.scheduleService.ReviewUnavailabilityRequest(id, req.Approve, req.AdminNotes, currentUserID(c))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, request)
}
