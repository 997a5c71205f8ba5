package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureVectorWidth(t *testing.T) {
	p := Patient{}
	assert.Len(t, p.FeatureVector(), FeatureCount)
}

func TestFeatureVectorOrder(t *testing.T) {
	p := Patient{
		NumLabProcedures:  41,
		NumMedications:    15,
		TimeInHospital:    7,
		NumberInpatient:   2,
		GenderMale:        true,
		RaceCaucasian:     true,
		Age7080:           true,
		InsulinSteady:     true,
		MaxGluSerumNorm:   true,
		Diag2425:          true,
		AdmissionTypeID:   3,
		AdmissionSourceID: 1,
	}

	v := p.FeatureVector()
	require.Len(t, v, FeatureCount)

	// counts lead the vector
	assert.Equal(t, 41.0, v[0])
	assert.Equal(t, 15.0, v[1])
	assert.Equal(t, 7.0, v[2])
	assert.Equal(t, 2.0, v[3])
	assert.Equal(t, 3.0, v[7])
	assert.Equal(t, 1.0, v[8])

	// one-hot fields at their trained positions
	assert.Equal(t, 1.0, v[9], "gender_Male")
	assert.Equal(t, 1.0, v[12], "race_Caucasian")
	assert.Equal(t, 1.0, v[13], "age_70_80")
	assert.Equal(t, 1.0, v[15], "insulin_Steady")

	// the final pair closes the vector
	assert.Equal(t, 1.0, v[68], "max_glu_serum_Norm")
	assert.Equal(t, 1.0, v[69], "diag_2_425")
}

func TestFeatureVectorZeroPatient(t *testing.T) {
	v := (&Patient{}).FeatureVector()
	for i, f := range v {
		assert.Zero(t, f, "feature %d", i)
	}
}
