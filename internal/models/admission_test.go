package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{AdmissionPending, AdmissionAdmitted, true},
		{AdmissionPending, AdmissionPendingDischarge, true},
		{AdmissionPending, AdmissionDischarged, true},
		{AdmissionAdmitted, AdmissionPendingDischarge, true},
		{AdmissionAdmitted, AdmissionDischarged, true},
		{AdmissionAdmitted, AdmissionPending, false},
		{AdmissionPendingDischarge, AdmissionAdmitted, true},
		{AdmissionPendingDischarge, AdmissionDischarged, true},
		{AdmissionPendingDischarge, AdmissionPending, false},
		{AdmissionDischarged, AdmissionAdmitted, false},
		{AdmissionDischarged, AdmissionPending, false},
		{AdmissionDischarged, AdmissionPendingDischarge, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCanTransitionSameStatus(t *testing.T) {
	for _, status := range []string{AdmissionPending, AdmissionAdmitted, AdmissionPendingDischarge, AdmissionDischarged} {
		assert.True(t, CanTransition(status, status), "%s -> %s", status, status)
	}
	assert.False(t, CanTransition("bogus", "bogus"))
}

func TestValidAdmissionStatus(t *testing.T) {
	assert.True(t, ValidAdmissionStatus(AdmissionPending))
	assert.True(t, ValidAdmissionStatus(AdmissionDischarged))
	assert.False(t, ValidAdmissionStatus("released"))
	assert.False(t, ValidAdmissionStatus(""))
}

func TestLengthOfStay(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("same instant floors to one day", func(t *testing.T) {
		a := Admission{AdmissionDate: now}
		assert.Equal(t, 1, a.LengthOfStay(now))
	})

	t.Run("under a day floors to one day", func(t *testing.T) {
		a := Admission{AdmissionDate: now.Add(-6 * time.Hour)}
		assert.Equal(t, 1, a.LengthOfStay(now))
	})

	t.Run("whole days truncate", func(t *testing.T) {
		a := Admission{AdmissionDate: now.Add(-(3*24 + 7) * time.Hour)}
		assert.Equal(t, 3, a.LengthOfStay(now))
	})

	t.Run("discharge date wins over now", func(t *testing.T) {
		discharge := now.Add(-2 * 24 * time.Hour)
		a := Admission{
			AdmissionDate: now.Add(-7 * 24 * time.Hour),
			DischargeDate: &discharge,
		}
		assert.Equal(t, 5, a.LengthOfStay(now))
	})
}
