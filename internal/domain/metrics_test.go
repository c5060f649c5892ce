package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestClipDifficulty_KneeIsFixedPoint(t *testing.T) {
	assert.Equal(t, 400.0, ClipDifficulty(400.0))
}

func TestClipDifficulty_AboveKneeRoundsOnly(t *testing.T) {
	assert.Equal(t, 1200.0, ClipDifficulty(1200.4))
	assert.Equal(t, 2800.0, ClipDifficulty(2799.5))
}

func TestClipDifficulty_BelowKneeIsCompressed(t *testing.T) {
	assert.Less(t, ClipDifficulty(399.0), 400.0)
	assert.Less(t, ClipDifficulty(0.0), ClipDifficulty(399.0))
	// Deeply negative estimates stay positive, just tiny.
	assert.Greater(t, ClipDifficulty(-1000.0), 0.0)
}

func TestClipDifficulty_MonotonicallyNonDecreasing(t *testing.T) {
	prev := ClipDifficulty(-2000.0)
	for d := -2000.0; d <= 4000.0; d += 25.0 {
		cur := ClipDifficulty(d)
		require.GreaterOrEqual(t, cur, prev, "clip must not decrease at d=%f", d)
		prev = cur
	}
}

func TestSuccessRate_AbsentOperands(t *testing.T) {
	assert.Nil(t, SuccessRate(nil, nil))
	assert.Nil(t, SuccessRate(int64Ptr(10), nil))
	assert.Nil(t, SuccessRate(nil, int64Ptr(10)))
}

func TestSuccessRate_ZeroSubmissions(t *testing.T) {
	assert.Nil(t, SuccessRate(int64Ptr(0), int64Ptr(0)))
}

func TestSuccessRate_InRange(t *testing.T) {
	rate := SuccessRate(int64Ptr(50), int64Ptr(200))
	require.NotNil(t, rate)
	assert.Equal(t, 25.0, *rate)

	full := SuccessRate(int64Ptr(7), int64Ptr(7))
	require.NotNil(t, full)
	assert.Equal(t, 100.0, *full)

	none := SuccessRate(int64Ptr(0), int64Ptr(9))
	require.NotNil(t, none)
	assert.Equal(t, 0.0, *none)
}
