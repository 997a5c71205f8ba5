package service

import (
	"fmt"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"
	"hospital-management-backend/pkg/utils"
)

type StaffService struct {
	staffRepo *repository.StaffRepository
	userRepo  *repository.UserRepository
}

func NewStaffService(staffRepo *repository.StaffRepository, userRepo *repository.UserRepository) *StaffService {
	return &StaffService{
		staffRepo: staffRepo,
		userRepo:  userRepo,
	}
}

// CreateStaffInput carries a new staff profile with its login account.
// Specialty applies to doctors, Department to nurses, LicenseNumber and
// Shift to pharmacy staff.
type CreateStaffInput struct {
	Username      string
	Password      string
	FirstName     string
	LastName      string
	Email         string
	Specialty     string
	Department    string
	LicenseNumber *string
	Shift         string
}

// GetDoctors lists doctors; archived selects the soft-deleted set
func (s *StaffService) GetDoctors(archived bool) ([]models.Doctor, error) {
	return s.staffRepo.GetDoctors(archived)
}

// GetDoctorByID retrieves one doctor profile
func (s *StaffService) GetDoctorByID(id uint) (*models.Doctor, error) {
	return s.staffRepo.GetDoctorByID(id)
}

// CreateDoctor creates a doctor profile together with its user account
func (s *StaffService) CreateDoctor(input CreateStaffInput) (*models.Doctor, error) {
	user, err := s.createUser(input, models.RoleDoctor)
	if err != nil {
		return nil, err
	}
	doctor := &models.Doctor{
		UserID:    user.ID,
		Specialty: input.Specialty,
	}
	if err := s.staffRepo.CreateDoctor(doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return s.staffRepo.GetDoctorByID(doctor.ID)
}

// ArchiveDoctor soft-deletes a doctor profile
func (s *StaffService) ArchiveDoctor(id uint) error {
	if _, err := s.staffRepo.GetDoctorByID(id); err != nil {
		return err
	}
	return s.staffRepo.SetDoctorArchived(id, true)
}

// RestoreDoctor reverses a doctor soft delete
func (s *StaffService) RestoreDoctor(id uint) error {
	if _, err := s.staffRepo.GetDoctorByID(id); err != nil {
		return err
	}
	return s.staffRepo.SetDoctorArchived(id, false)
}

// GetNurses lists nurses; archived selects the soft-deleted set
func (s *StaffService) GetNurses(archived bool) ([]models.Nurse, error) {
	return s.staffRepo.GetNurses(archived)
}

// GetNurseByID retrieves one nurse profile
func (s *StaffService) GetNurseByID(id uint) (*models.Nurse, error) {
	return s.staffRepo.GetNurseByID(id)
}

// CreateNurse creates a nurse profile together with its user account
func (s *StaffService) CreateNurse(input CreateStaffInput) (*models.Nurse, error) {
	user, err := s.createUser(input, models.RoleNurse)
	if err != nil {
		return nil, err
	}
	nurse := &models.Nurse{
		UserID:     user.ID,
		Department: input.Department,
	}
	if err := s.staffRepo.CreateNurse(nurse); err != nil {
		return nil, fmt.Errorf("failed to create nurse: %w", err)
	}
	return s.staffRepo.GetNurseByID(nurse.ID)
}

// ArchiveNurse soft-deletes a nurse profile
func (s *StaffService) ArchiveNurse(id uint) error {
	if _, err := s.staffRepo.GetNurseByID(id); err != nil {
		return err
	}
	return s.staffRepo.SetNurseArchived(id, true)
}

// RestoreNurse reverses a nurse soft delete
func (s *StaffService) RestoreNurse(id uint) error {
	if _, err := s.staffRepo.GetNurseByID(id); err != nil {
		return err
	}
	return s.staffRepo.SetNurseArchived(id, false)
}

// CreatePharmacyStaff creates a pharmacy staff profile with its user account
func (s *StaffService) CreatePharmacyStaff(input CreateStaffInput) (*models.PharmacyStaff, error) {
	user, err := s.createUser(input, models.RolePharmacyStaff)
	if err != nil {
		return nil, err
	}
	staff := &models.PharmacyStaff{
		UserID:        user.ID,
		LicenseNumber: input.LicenseNumber,
	}
	if input.Shift != "" {
		staff.Shift = input.Shift
	}
	if err := s.staffRepo.CreatePharmacyStaff(staff); err != nil {
		return nil, fmt.Errorf("failed to create pharmacy staff: %w", err)
	}
	return s.staffRepo.GetPharmacyStaffByID(staff.ID)
}

func (s *StaffService) createUser(input CreateStaffInput, role string) (*models.User, error) {
	existing, err := s.userRepo.FindUserByUsername(input.Username)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("username %q already exists", input.Username)
	}
	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{
		Username:     input.Username,
		PasswordHash: passwordHash,
		Role:         role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}
