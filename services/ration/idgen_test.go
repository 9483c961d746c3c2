package ration

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateApplicationID(t *testing.T) {
	year := time.Now().Year()

	id := GenerateApplicationID("27", "12", 1)
	assert.Equal(t, fmt.Sprintf("%d27120001", year), id)
	assert.Len(t, id, 12)

	// Sequence is the only varying part for a fixed location.
	assert.NotEqual(t, id, GenerateApplicationID("27", "12", 2))
	assert.Equal(t, id, GenerateApplicationID("27", "12", 1))
}

func TestGenerateRCNo(t *testing.T) {
	year := time.Now().Year()

	rcNo := GenerateRCNo("27", "12", 42)
	assert.Equal(t, fmt.Sprintf("%d271200000042", year), rcNo)
	assert.Len(t, rcNo, 16)
}

func TestGenerateMemberID(t *testing.T) {
	rcNo := GenerateRCNo("27", "12", 1)

	first := GenerateMemberID(rcNo, 0)
	assert.Equal(t, rcNo+"01", first)
	assert.Len(t, first, 18)

	assert.Equal(t, rcNo+"10", GenerateMemberID(rcNo, 9))
}
