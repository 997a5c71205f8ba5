package repository

import (
	"errors"
	"fmt"

	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepo(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

// GetAllRooms retrieves all rooms, optionally only those with a free bed
func (r *RoomRepository) GetAllRooms(availableOnly bool) ([]models.Room, error) {
	var rooms []models.Room
	query := r.db.Order("room_number ASC")
	if availableOnly {
		query = query.Where("occupied_beds < bed_capacity")
	}
	err := query.Find(&rooms).Error
	return rooms, err
}

// GetRoomByID retrieves a room by ID
func (r *RoomRepository) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	err := r.db.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &room, nil
}

// GetRoomByIDTx retrieves a room inside an open transaction
func (r *RoomRepository) GetRoomByIDTx(tx *gorm.DB, id uint) (*models.Room, error) {
	var room models.Room
	err := tx.First(&room, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("room %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &room, nil
}

// CreateRoom creates a new room
func (r *RoomRepository) CreateRoom(room *models.Room) error {
	return r.db.Create(room).Error
}

// UpdateRoom updates room reference data. Occupancy is never written
// through this path; OccupyBed/ReleaseBed are the only occupancy mutations.
func (r *RoomRepository) UpdateRoom(room *models.Room) error {
	return r.db.Model(room).
		Select("room_number", "room_type", "bed_capacity").
		Updates(room).Error
}

// DeleteRoom removes a room. Callers must ensure no open admission
// references it.
func (r *RoomRepository) DeleteRoom(id uint) error {
	return r.db.Delete(&models.Room{}, id).Error
}

// OccupyBed claims one bed with a single guarded UPDATE so the capacity
// check and the increment are one atomic statement. is_available is
// assigned before the increment: its expression then reads the pre-update
// count under both MySQL's left-to-right SET evaluation and the standard
// pre-update semantics. Returns ErrCapacityExceeded when no free bed was
// left.
func (r *RoomRepository) OccupyBed(tx *gorm.DB, roomID uint) error {
	res := tx.Exec(
		`UPDATE rooms
		 SET is_available = occupied_beds + 1 < bed_capacity,
		     occupied_beds = occupied_beds + 1
		 WHERE id = ? AND occupied_beds < bed_capacity`,
		roomID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("room %d: %w", roomID, models.ErrCapacityExceeded)
	}
	return nil
}

// ReleaseBed frees one bed. Releasing always marks the room available
// again. A release on an already-empty room is a no-op.
func (r *RoomRepository) ReleaseBed(tx *gorm.DB, roomID uint) error {
	return tx.Exec(
		`UPDATE rooms
		 SET occupied_beds = occupied_beds - 1,
		     is_available = TRUE
		 WHERE id = ? AND occupied_beds > 0`,
		roomID,
	).Error
}

// CountOccupancy sums occupied beds and capacity across all rooms
func (r *RoomRepository) CountOccupancy() (occupied int64, capacity int64, err error) {
	row := r.db.Model(&models.Room{}).
		Select("COALESCE(SUM(occupied_beds),0), COALESCE(SUM(bed_capacity),0)").
		Row()
	err = row.Scan(&occupied, &capacity)
	return occupied, capacity, err
}
