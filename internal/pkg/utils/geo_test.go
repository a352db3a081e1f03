package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance_SamePoint(t *testing.T) {
	assert.Equal(t, 0.0, HaversineDistance(19.0760, 72.8777, 19.0760, 72.8777))
	assert.Equal(t, 0.0, HaversineDistance(0, 0, 0, 0))
}

func TestHaversineDistance_Symmetric(t *testing.T) {
	d1 := HaversineDistance(19.0760, 72.8777, 28.7041, 77.1025)
	d2 := HaversineDistance(28.7041, 77.1025, 19.0760, 72.8777)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestHaversineDistance_MumbaiDelhi(t *testing.T) {
	// Mumbai to Delhi is roughly 1150-1165 km great-circle
	d := HaversineDistance(19.0760, 72.8777, 28.7041, 77.1025)
	assert.Greater(t, d, 1150.0)
	assert.Less(t, d, 1165.0)
}

func TestDistanceKm_Rounded(t *testing.T) {
	d := DistanceKm(19.0760, 72.8777, 28.7041, 77.1025)
	assert.GreaterOrEqual(t, d, 1150)
	assert.LessOrEqual(t, d, 1165)

	assert.Equal(t, 0, DistanceKm(41.3851, 2.1734, 41.3851, 2.1734))
}

func TestHaversineDistance_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(HaversineDistance(math.NaN(), 0, 0, 0)))
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(19.0760, 72.8777))
	assert.True(t, ValidateCoordinates(-90, -180))
	assert.True(t, ValidateCoordinates(90, 180))

	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, 180.5))
	assert.False(t, ValidateCoordinates(math.NaN(), 0))
	assert.False(t, ValidateCoordinates(0, math.Inf(1)))
}
