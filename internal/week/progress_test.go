package week_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tolgay/weekhours/internal/week"
)

func TestCalculateBelowTarget(t *testing.T) {
	p := week.Calculate(1350, 2700)

	require.Equal(t, 1350, p.RemainingMinutes)
	require.Zero(t, p.OverageMinutes)
	require.False(t, p.Complete)
	require.InDelta(t, 50.0, p.Percent, 0.001)
}

func TestCalculateExactTarget(t *testing.T) {
	p := week.Calculate(2700, 2700)

	require.True(t, p.Complete)
	require.Zero(t, p.RemainingMinutes)
	require.Zero(t, p.OverageMinutes)
	require.InDelta(t, 100.0, p.Percent, 0.001)
}

func TestCalculateOverTarget(t *testing.T) {
	p := week.Calculate(3000, 2700)

	require.True(t, p.Complete)
	require.Zero(t, p.RemainingMinutes)
	require.Equal(t, 300, p.OverageMinutes)
	require.InDelta(t, 100.0, p.Percent, 0.001, "percent is capped at 100")
}

func TestCalculateZeroTotal(t *testing.T) {
	p := week.Calculate(0, 2700)

	require.Equal(t, 2700, p.RemainingMinutes)
	require.False(t, p.Complete)
	require.Zero(t, p.Percent)
}

func TestCalculateNonPositiveTarget(t *testing.T) {
	p := week.Calculate(100, 0)

	require.Zero(t, p.Percent)
	require.False(t, p.Complete)
	require.Zero(t, p.RemainingMinutes)
}
