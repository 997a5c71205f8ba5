package repository

import (
	"hospital-management-backend/internal/models"

	"gorm.io/gorm"
)

type PredictionRepository struct {
	db *gorm.DB
}

func NewPredictionRepo(db *gorm.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// CreatePredictionRecord stores a prediction result for audit
func (r *PredictionRepository) CreatePredictionRecord(record *models.PredictionRecord) error {
	return r.db.Create(record).Error
}

// GetPredictionsByPatient retrieves a patient's prediction history,
// most recent first
func (r *PredictionRepository) GetPredictionsByPatient(patientID uint) ([]models.PredictionRecord, error) {
	var records []models.PredictionRecord
	err := r.db.Preload("PredictedBy").
		Where("patient_id = ?", patientID).
		Order("prediction_date DESC").
		Find(&records).Error
	return records, err
}

// GetRecentPredictions retrieves the latest prediction records
func (r *PredictionRepository) GetRecentPredictions(limit int) ([]models.PredictionRecord, error) {
	var records []models.PredictionRecord
	err := r.db.Preload("Patient").
		Preload("PredictedBy").
		Order("prediction_date DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
