package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-management-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRiskModelClientPredict(t *testing.T) {
	var received predictRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(predictResponse{Risk: models.RiskHigh})
	}))
	defer server.Close()

	client := NewRiskModelClient(server.URL, 5*time.Second)
	features := make([]float64, models.FeatureCount)
	features[0] = 41

	risk, err := client.Predict(context.Background(), features)
	require.NoError(t, err)
	assert.Equal(t, models.RiskHigh, risk)
	assert.Len(t, received.Features, models.FeatureCount)
	assert.Equal(t, 41.0, received.Features[0])
}

func TestRiskModelClientRejectsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewRiskModelClient(server.URL, 5*time.Second)
	_, err := client.Predict(context.Background(), make([]float64, models.FeatureCount))
	assert.Error(t, err)
}

func TestRiskModelClientRejectsUnknownRisk(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(predictResponse{Risk: 5})
	}))
	defer server.Close()

	client := NewRiskModelClient(server.URL, 5*time.Second)
	_, err := client.Predict(context.Background(), make([]float64, models.FeatureCount))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected value")
}
