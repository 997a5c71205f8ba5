package service

import (
	"errors"
	"fmt"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
)

type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
	userRepo     *repository.UserRepository
	auditRepo    *repository.AuditRepository
}

func NewScheduleService(
	scheduleRepo *repository.ScheduleRepository,
	userRepo *repository.UserRepository,
	auditRepo *repository.AuditRepository,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		auditRepo:    auditRepo,
	}
}

// GetSchedules lists shift assignments matching the filter
func (s *ScheduleService) GetSchedules(filter repository.ScheduleFilter) ([]models.Schedule, error) {
	return s.scheduleRepo.GetSchedules(filter)
}

// GetScheduleByID retrieves one shift assignment
func (s *ScheduleService) GetScheduleByID(id uint) (*models.Schedule, error) {
	return s.scheduleRepo.GetScheduleByID(id)
}

// CreateSchedule assigns a shift. The unique index on user, date and shift
// rejects duplicate assignments.
func (s *ScheduleService) CreateSchedule(schedule *models.Schedule) error {
	switch schedule.Shift {
	case models.ShiftMorning, models.ShiftAfternoon, models.ShiftNight:
	default:
		return fmt.Errorf("unknown shift %q", schedule.Shift)
	}
	if _, err := s.userRepo.FindUserByID(schedule.UserID); err != nil {
		return err
	}
	if err := s.scheduleRepo.CreateSchedule(schedule); err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

// UpdateSchedule saves shift changes. Locked schedules cannot be edited.
func (s *ScheduleService) UpdateSchedule(schedule *models.Schedule) error {
	current, err := s.scheduleRepo.GetScheduleByID(schedule.ID)
	if err != nil {
		return err
	}
	if current.IsLocked {
		return errors.New("schedule is locked")
	}
	return s.scheduleRepo.UpdateSchedule(schedule)
}

// DeleteSchedule removes a shift assignment
func (s *ScheduleService) DeleteSchedule(id uint) error {
	schedule, err := s.scheduleRepo.GetScheduleByID(id)
	if err != nil {
		return err
	}
	if schedule.IsLocked {
		return errors.New("schedule is locked")
	}
	return s.scheduleRepo.DeleteSchedule(id)
}

// CreateSwapRequest files a shift swap for admin review. Only the owner of
// the shift can request a swap, and past shifts cannot be swapped.
func (s *ScheduleService) CreateSwapRequest(request *models.ShiftSwapRequest) error {
	shift, err := s.scheduleRepo.GetScheduleByID(request.RequesterShiftID)
	if err != nil {
		return err
	}
	if shift.UserID != request.RequesterID {
		return errors.New("requester does not own this shift")
	}
	if shift.IsPast(time.Now()) {
		return errors.New("cannot swap a past shift")
	}
	if request.RecipientShiftID != nil {
		recipientShift, err := s.scheduleRepo.GetScheduleByID(*request.RecipientShiftID)
		if err != nil {
			return err
		}
		if request.RecipientID != nil && recipientShift.UserID != *request.RecipientID {
			return errors.New("recipient does not own the target shift")
		}
		if recipientShift.IsPast(time.Now()) {
			return errors.New("cannot swap into a past shift")
		}
	}
	request.Status = models.RequestPending
	return s.scheduleRepo.CreateSwapRequest(request)
}

// GetSwapRequests lists swap requests, newest first
func (s *ScheduleService) GetSwapRequests() ([]models.ShiftSwapRequest, error) {
	return s.scheduleRepo.GetSwapRequests()
}

// ReviewSwapRequest approves or rejects a pending swap. Approval exchanges
// the two shift owners.
func (s *ScheduleService) ReviewSwapRequest(id uint, approve bool, adminNotes string, reviewerID uint) (*models.ShiftSwapRequest, error) {
	request, err := s.scheduleRepo.GetSwapRequestByID(id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestPending {
		return nil, fmt.Errorf("swap request %d is already %s", id, request.Status)
	}

	if approve {
		if request.RecipientShiftID == nil {
			return nil, errors.New("swap request has no target shift")
		}
		recipientShift, err := s.scheduleRepo.GetScheduleByID(*request.RecipientShiftID)
		if err != nil {
			return nil, err
		}
		if err := s.scheduleRepo.SwapShiftOwners(&request.RequesterShift, recipientShift); err != nil {
			return nil, fmt.Errorf("failed to swap shifts: %w", err)
		}
		request.Status = models.RequestApproved
	} else {
		request.Status = models.RequestRejected
	}

	now := time.Now()
	request.AdminNotes = adminNotes
	request.ReviewedByID = &reviewerID
	request.ReviewedAt = &now
	if err := s.scheduleRepo.UpdateSwapRequest(request); err != nil {
		return nil, err
	}

	reviewerIDPtr := &reviewerID
	_ = s.auditRepo.CreateAuditLog(reviewerIDPtr, models.AuditScheduleReview,
		fmt.Sprintf("Swap request %d %s", id, request.Status))

	return s.scheduleRepo.GetSwapRequestByID(id)
}

// CreateUnavailabilityRequest files a leave request for admin review
func (s *ScheduleService) CreateUnavailabilityRequest(request *models.UnavailabilityRequest) error {
	if request.EndDate.Before(request.StartDate) {
		return errors.New("end date is before start date")
	}
	if _, err := s.userRepo.FindUserByID(request.UserID); err != nil {
		return err
	}
	request.Status = models.RequestPending
	return s.scheduleRepo.CreateUnavailabilityRequest(request)
}

// GetUnavailabilityRequests lists leave requests, newest first
func (s *ScheduleService) GetUnavailabilityRequests() ([]models.UnavailabilityRequest, error) {
	return s.scheduleRepo.GetUnavailabilityRequests()
}

// ReviewUnavailabilityRequest approves or rejects a pending leave request.
// Approval marks the user's shifts in the range unavailable.
func (s *ScheduleService) ReviewUnavailabilityRequest(id uint, approve bool, adminNotes string, reviewerID uint) (*models.UnavailabilityRequest, error) {
	request, err := s.scheduleRepo.GetUnavailabilityRequestByID(id)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestPending {
		return nil, fmt.Errorf("unavailability request %d is already %s", id, request.Status)
	}

	if approve {
		if err := s.scheduleRepo.SetAvailabilityInRange(request.UserID, request.StartDate, request.EndDate, false); err != nil {
			return nil, fmt.Errorf("failed to mark shifts unavailable: %w", err)
		}
		request.Status = models.RequestApproved
	} else {
		request.Status = models.RequestRejected
	}

	now := time.Now()
	request.AdminNotes = adminNotes
	request.ReviewedByID = &reviewerID
	request.ReviewedAt = &now
	if err := s.scheduleRepo.UpdateUnavailabilityRequest(request); err != nil {
		return nil, err
	}

	reviewerIDPtr := &reviewerID
	_ = s.auditRepo.CreateAuditLog(reviewerIDPtr, models.AuditScheduleReview,
		fmt.Sprintf("Unavailability request %d %s", id, request.Status))

	return s.scheduleRepo.GetUnavailabilityRequestByID(id)
}
