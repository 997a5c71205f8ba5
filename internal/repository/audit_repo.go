package repository

import (
	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog records a state-changing action
func (r *AuditRepository) CreateAuditLog(userID *uint, action, details string) error {
	entry := &models.AuditLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	}
	return r.db.Create(entry).Error
}

// GetRecentAuditLogs retrieves the latest audit entries
func (r *AuditRepository) GetRecentAuditLogs(limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := r.db.Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
