package models

import "time"

// Room represents a ward room with a fixed number of beds
type Room struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RoomNumber   string    `gorm:"size:10;uniqueIndex;not null" json:"room_number"`
	RoomType     string    `gorm:"size:50;default:'General'" json:"room_type"` // General, ICU, Private, etc.
	BedCapacity  uint      `gorm:"not null;default:1" json:"bed_capacity"`
	OccupiedBeds uint      `gorm:"not null;default:0" json:"occupied_beds"`
	IsAvailable  bool      `gorm:"default:true" json:"is_available"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

// HasSpace reports whether the room still has a free bed
func (r *Room) HasSpace() bool {
	return r.OccupiedBeds < r.BedCapacity
}

// OccupyBed claims one bed. Returns false without mutating when the room
// is already full; callers wanting a user-facing error check HasSpace first.
func (r *Room) OccupyBed() bool {
	if !r.HasSpace() {
		return false
	}
	r.OccupiedBeds++
	if r.OccupiedBeds >= r.BedCapacity {
		r.IsAvailable = false
	}
	return true
}

// ReleaseBed frees one bed if any is occupied. Releasing always marks the
// room available again; this mirrors the admissions desk convention that a
// room with a bed just freed is open for assignment.
func (r *Room) ReleaseBed() {
	if r.OccupiedBeds > 0 {
		r.OccupiedBeds--
		r.IsAvailable = true
	}
}
