package handler

import (
	"net/http"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/service"
	"hospital-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomService *service.RoomService
}

func NewRoomHandler(roomService *service.RoomService) *RoomHandler {
	return &RoomHandler{
		roomService: roomService,
	}
}

type RoomRequest struct {
	RoomNumber  string `json:"room_number" binding:"required"`
	RoomType    string `json:"room_type" binding:"required"`
	BedCapacity uint   `json:"bed_capacity" binding:"required,min=1"`
}

// GetRooms returns rooms; ?available=true selects rooms with a free bed
func (h *RoomHandler) GetRooms(c *gin.Context) {
	availableOnly := c.Query("available") == "true"
	rooms, err := h.roomService.GetRooms(availableOnly)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch rooms")
		return
	}
	utils.SuccessResponse(c, rooms)
}

// GetRoom returns one room
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}
	room, err := h.roomService.GetRoomByID(id)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, room)
}

// CreateRoom adds a room to the ward
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	room := models.Room{
		RoomNumber:  req.RoomNumber,
		RoomType:    req.RoomType,
		BedCapacity: req.BedCapacity,
	}
	if err := h.roomService.CreateRoom(&room); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, room)
}

// UpdateRoom saves room reference data
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	room := models.Room{
		ID:          id,
		RoomNumber:  req.RoomNumber,
		RoomType:    req.RoomType,
		BedCapacity: req.BedCapacity,
	}
	if err := h.roomService.UpdateRoom(&room); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, room)
}

// DeleteRoom removes an unused room
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid room ID")
		return
	}
	if err := h.roomService.DeleteRoom(id); err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}
	utils.MessageResponse(c, "Room deleted")
}
