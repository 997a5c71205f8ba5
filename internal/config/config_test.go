package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "hospital_management", cfg.Database.Database)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTokenExpiry)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:8000", cfg.RiskModel.URL)
	assert.Equal(t, 10*time.Second, cfg.RiskModel.Timeout)
	assert.Equal(t, time.Hour, cfg.Worker.SweepInterval)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_NAME", "hospital_test")
	t.Setenv("RISK_MODEL_URL", "http://model:9000")
	t.Setenv("STOCK_SWEEP_INTERVAL", "30m")

	cfg := LoadConfig()

	assert.Equal(t, "hospital_test", cfg.Database.Database)
	assert.Equal(t, "http://model:9000", cfg.RiskModel.URL)
	assert.Equal(t, 30*time.Minute, cfg.Worker.SweepInterval)
}

func TestParseDurationFallsBack(t *testing.T) {
	assert.Equal(t, 15*time.Minute, parseDuration("nonsense"))
	assert.Equal(t, 2*time.Hour, parseDuration("2h"))
}

func TestParseOrigins(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, parseOrigins("http://a,http://b"))
	assert.Equal(t, []string{"http://a"}, parseOrigins("http://a,"))
	assert.Empty(t, parseOrigins(""))
}
