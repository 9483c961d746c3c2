package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP(t *testing.T) {
	otp := GenerateOTP()
	assert.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9')
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "ci*****@example.com", MaskEmail("citizen@example.com"))
	assert.Equal(t, "a@example.com", MaskEmail("a@example.com"))
	assert.Equal(t, "not-an-email", MaskEmail("not-an-email"))
}

func TestDistanceKm(t *testing.T) {
	// Same point
	assert.Equal(t, 0.0, DistanceKm(18.52, 73.85, 18.52, 73.85))

	// Pune to Mumbai is roughly 120 km as the crow flies
	d := DistanceKm(18.5204, 73.8567, 19.0760, 72.8777)
	assert.InDelta(t, 120, d, 5)

	// Symmetric
	assert.Equal(t, d, DistanceKm(19.0760, 72.8777, 18.5204, 73.8567))
}
