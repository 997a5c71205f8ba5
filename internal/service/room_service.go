package service

import (
	"errors"
	"fmt"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
)

type RoomService struct {
	roomRepo      *repository.RoomRepository
	admissionRepo *repository.AdmissionRepository
}

func NewRoomService(roomRepo *repository.RoomRepository, admissionRepo *repository.AdmissionRepository) *RoomService {
	return &RoomService{
		roomRepo:      roomRepo,
		admissionRepo: admissionRepo,
	}
}

// GetRooms lists rooms, optionally only those with a free bed
func (s *RoomService) GetRooms(availableOnly bool) ([]models.Room, error) {
	return s.roomRepo.GetAllRooms(availableOnly)
}

// GetRoomByID retrieves one room
func (s *RoomService) GetRoomByID(id uint) (*models.Room, error) {
	return s.roomRepo.GetRoomByID(id)
}

// CreateRoom adds a room to the ward. New rooms start empty.
func (s *RoomService) CreateRoom(room *models.Room) error {
	if room.BedCapacity == 0 {
		return errors.New("bed capacity must be at least 1")
	}
	room.OccupiedBeds = 0
	room.IsAvailable = true
	if err := s.roomRepo.CreateRoom(room); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}
	return nil
}

// UpdateRoom saves room reference data. Capacity cannot drop below the
// current occupancy.
func (s *RoomService) UpdateRoom(room *models.Room) error {
	current, err := s.roomRepo.GetRoomByID(room.ID)
	if err != nil {
		return err
	}
	if room.BedCapacity < current.OccupiedBeds {
		return fmt.Errorf("capacity %d is below current occupancy %d", room.BedCapacity, current.OccupiedBeds)
	}
	return s.roomRepo.UpdateRoom(room)
}

// DeleteRoom removes a room that no open admission references
func (s *RoomService) DeleteRoom(id uint) error {
	if _, err := s.roomRepo.GetRoomByID(id); err != nil {
		return err
	}
	inUse, err := s.admissionRepo.HasOpenAdmissionForRoom(id)
	if err != nil {
		return err
	}
	if inUse {
		return errors.New("cannot delete a room referenced by an open admission")
	}
	return s.roomRepo.DeleteRoom(id)
}
