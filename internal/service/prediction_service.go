package service

import (
	"context"
	"fmt"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"

	"github.com/go-resty/resty/v2"
)

// RiskPredictor scores a patient feature vector. The model itself runs in a
// separate service; this side only builds the vector and records the result.
type RiskPredictor interface {
	Predict(ctx context.Context, features []float64) (int, error)
}

// RiskModelClient calls the external readmission model over HTTP
type RiskModelClient struct {
	client *resty.Client
}

type predictRequest struct {
	Features []float64 `json:"features"`
}

type predictResponse struct {
	Risk int `json:"risk"`
}

func NewRiskModelClient(baseURL string, timeout time.Duration) *RiskModelClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return &RiskModelClient{client: client}
}

// Predict posts the feature vector to the model service and returns its
// 0/1 risk decision
func (c *RiskModelClient) Predict(ctx context.Context, features []float64) (int, error) {
	var result predictResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(predictRequest{Features: features}).
		SetResult(&result).
		Post("/predict")
	if err != nil {
		return 0, fmt.Errorf("risk model request failed: %w", err)
	}
	if resp.IsError() {
		return 0, fmt.Errorf("risk model returned %s", resp.Status())
	}
	if result.Risk != models.RiskLow && result.Risk != models.RiskHigh {
		return 0, fmt.Errorf("risk model returned unexpected value %d", result.Risk)
	}
	return result.Risk, nil
}

type PredictionService struct {
	predictor      RiskPredictor
	patientRepo    *repository.PatientRepository
	predictionRepo *repository.PredictionRepository
	auditRepo      *repository.AuditRepository
}

func NewPredictionService(
	predictor RiskPredictor,
	patientRepo *repository.PatientRepository,
	predictionRepo *repository.PredictionRepository,
	auditRepo *repository.AuditRepository,
) *PredictionService {
	return &PredictionService{
		predictor:      predictor,
		patientRepo:    patientRepo,
		predictionRepo: predictionRepo,
		auditRepo:      auditRepo,
	}
}

// PredictReadmission builds the patient's feature vector, scores it against
// the external model and records the result
func (s *PredictionService) PredictReadmission(ctx context.Context, patientID uint, userID uint) (*models.PredictionRecord, error) {
	patient, err := s.patientRepo.GetPatientByID(patientID)
	if err != nil {
		return nil, err
	}

	features := patient.FeatureVector()
	risk, err := s.predictor.Predict(ctx, features)
	if err != nil {
		return nil, err
	}

	userIDPtr := &userID
	record := &models.PredictionRecord{
		PatientID:      patientID,
		PredictedByID:  userIDPtr,
		RiskLevel:      risk,
		PredictionDate: time.Now(),
	}
	if err := s.predictionRepo.CreatePredictionRecord(record); err != nil {
		return nil, fmt.Errorf("failed to store prediction: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(userIDPtr, models.AuditPredictionRun,
		fmt.Sprintf("Readmission prediction for patient %d: risk %d", patientID, risk))

	return record, nil
}

// GetPredictionsByPatient lists a patient's prediction history
func (s *PredictionService) GetPredictionsByPatient(patientID uint) ([]models.PredictionRecord, error) {
	if _, err := s.patientRepo.GetPatientByID(patientID); err != nil {
		return nil, err
	}
	return s.predictionRepo.GetPredictionsByPatient(patientID)
}
