package repository

import (
	"errors"
	"fmt"
	"time"

	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// ScheduleFilter narrows schedule listings
type ScheduleFilter struct {
	UserID      *uint
	Date        *time.Time
	StartDate   *time.Time
	EndDate     *time.Time
	IsAvailable *bool
}

// GetSchedules retrieves schedules matching the filter
func (r *ScheduleRepository) GetSchedules(filter ScheduleFilter) ([]models.Schedule, error) {
	query := r.db.Preload("User").Order("date ASC, start_time ASC")

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Date != nil {
		query = query.Where("date = ?", filter.Date.Format("2006-01-02"))
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate.Format("2006-01-02"))
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate.Format("2006-01-02"))
	}
	if filter.IsAvailable != nil {
		query = query.Where("is_available = ?", *filter.IsAvailable)
	}

	var schedules []models.Schedule
	err := query.Find(&schedules).Error
	return schedules, err
}

// GetScheduleByID retrieves a schedule by ID
func (r *ScheduleRepository) GetScheduleByID(id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.Preload("User").First(&schedule, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("schedule %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &schedule, nil
}

// CreateSchedule creates a shift assignment
func (r *ScheduleRepository) CreateSchedule(schedule *models.Schedule) error {
	return r.db.Create(schedule).Error
}

// UpdateSchedule saves shift assignment changes
func (r *ScheduleRepository) UpdateSchedule(schedule *models.Schedule) error {
	return r.db.Save(schedule).Error
}

// DeleteSchedule removes a shift assignment
func (r *ScheduleRepository) DeleteSchedule(id uint) error {
	return r.db.Delete(&models.Schedule{}, id).Error
}

// SetAvailabilityInRange marks a user's schedules unavailable across a date
// range, used when an unavailability request is approved
func (r *ScheduleRepository) SetAvailabilityInRange(userID uint, start, end time.Time, available bool) error {
	return r.db.Model(&models.Schedule{}).
		Where("user_id = ? AND date >= ? AND date <= ?",
			userID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Update("is_available", available).Error
}

// CreateSwapRequest files a shift swap request
func (r *ScheduleRepository) CreateSwapRequest(request *models.ShiftSwapRequest) error {
	return r.db.Create(request).Error
}

// GetSwapRequestByID retrieves a swap request with its shifts
func (r *ScheduleRepository) GetSwapRequestByID(id uint) (*models.ShiftSwapRequest, error) {
	var request models.ShiftSwapRequest
	err := r.db.Preload("Requester").
		Preload("RequesterShift").
		Preload("Recipient").
		Preload("RecipientShift").
		First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("swap request %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &request, nil
}

// GetSwapRequests retrieves swap requests, newest first
func (r *ScheduleRepository) GetSwapRequests() ([]models.ShiftSwapRequest, error) {
	var requests []models.ShiftSwapRequest
	err := r.db.Preload("Requester").
		Preload("RequesterShift").
		Preload("Recipient").
		Preload("RecipientShift").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// UpdateSwapRequest saves swap request changes
func (r *ScheduleRepository) UpdateSwapRequest(request *models.ShiftSwapRequest) error {
	return r.db.Save(request).Error
}

// SwapShiftOwners exchanges the user assignments of two schedules inside
// one transaction, used when a swap request is approved
func (r *ScheduleRepository) SwapShiftOwners(shiftA, shiftB *models.Schedule) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		userA, userB := shiftA.UserID, shiftB.UserID
		if err := tx.Model(&models.Schedule{}).
			Where("id = ?", shiftA.ID).
			Update("user_id", userB).Error; err != nil {
			return err
		}
		return tx.Model(&models.Schedule{}).
			Where("id = ?", shiftB.ID).
			Update("user_id", userA).Error
	})
}

// CreateUnavailabilityRequest files a leave request
func (r *ScheduleRepository) CreateUnavailabilityRequest(request *models.UnavailabilityRequest) error {
	return r.db.Create(request).Error
}

// GetUnavailabilityRequestByID retrieves a leave request
func (r *ScheduleRepository) GetUnavailabilityRequestByID(id uint) (*models.UnavailabilityRequest, error) {
	var request models.UnavailabilityRequest
	err := r.db.Preload("User").First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("unavailability request %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &request, nil
}

// GetUnavailabilityRequests retrieves leave requests, newest first
func (r *ScheduleRepository) GetUnavailabilityRequests() ([]models.UnavailabilityRequest, error) {
	var requests []models.UnavailabilityRequest
	err := r.db.Preload("User").
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

// UpdateUnavailabilityRequest saves leave request changes
func (r *ScheduleRepository) UpdateUnavailabilityRequest(request *models.UnavailabilityRequest) error {
	return r.db.Save(request).Error
}
