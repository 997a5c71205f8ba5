package repository

import (
	"errors"
	"fmt"

	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreatePayment inserts a payment snapshot with its procedure and
// appointment associations. Payments are immutable once created; there is
// no update path.
func (r *PaymentRepository) CreatePayment(payment *models.Payment) error {
	return r.db.Create(payment).Error
}

// GetPayments retrieves all payments, newest first
func (r *PaymentRepository) GetPayments() ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.Preload("Patient").
		Preload("Procedures").
		Order("payment_date DESC").
		Find(&payments).Error
	return payments, err
}

// GetPaymentByID retrieves a payment with its associations
func (r *PaymentRepository) GetPaymentByID(id uint) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.Preload("Patient").
		Preload("Procedures").
		Preload("Appointments").
		First(&payment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment %d: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return &payment, nil
}

// CountPayments counts all recorded payments
func (r *PaymentRepository) CountPayments() (int64, error) {
	var count int64
	err := r.db.Model(&models.Payment{}).Count(&count).Error
	return count, err
}
