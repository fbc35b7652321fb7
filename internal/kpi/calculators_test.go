package kpi_test

import (
	"testing"

	"github.com/calzatec/calzatec-backend/internal/kpi"
	"github.com/stretchr/testify/assert"
)

func TestCoverageDays(t *testing.T) {
	t.Run("Zero Daily Sales", func(t *testing.T) {
		assert.Equal(t, 0.0, kpi.CoverageDays(0, 10))
		assert.Equal(t, 0.0, kpi.CoverageDays(500, 0))
	})

	t.Run("Exact Division", func(t *testing.T) {
		assert.Equal(t, 28.0, kpi.CoverageDays(280, 10))
	})

	t.Run("Rounds Half Away From Zero", func(t *testing.T) {
		// 1.25 * 10 = 12.5 -> 13 -> 1.3
		assert.Equal(t, 1.3, kpi.CoverageDays(125, 100))
		assert.Equal(t, 33.3, kpi.CoverageDays(100, 3))
	})
}

func TestCoverageStatus(t *testing.T) {
	assert.Equal(t, kpi.CoverageLow, kpi.CoverageStatus(27.9))
	assert.Equal(t, kpi.CoverageOptimal, kpi.CoverageStatus(28))
	assert.Equal(t, kpi.CoverageOptimal, kpi.CoverageStatus(60))
	assert.Equal(t, kpi.CoverageOptimal, kpi.CoverageStatus(90))
	assert.Equal(t, kpi.CoverageHigh, kpi.CoverageStatus(90.1))
	assert.Equal(t, kpi.CoverageLow, kpi.CoverageStatus(0))
}

func TestRotation(t *testing.T) {
	assert.Equal(t, 0.0, kpi.Rotation(1000, 0))
	assert.Equal(t, 8.0, kpi.Rotation(800, 100))
	assert.Equal(t, 2.7, kpi.Rotation(800, 300))
}

func TestPaybackYears(t *testing.T) {
	assert.Equal(t, 0.0, kpi.PaybackYears(10000, 0))
	assert.Equal(t, 2.5, kpi.PaybackYears(10000, 4000))
	assert.Equal(t, 3.3, kpi.PaybackYears(10000, 3000))
}

func TestNetPresentValue5yr(t *testing.T) {
	t.Run("Reference Figures", func(t *testing.T) {
		// -10000 + sum of 4000/(1.10)^t over t=1..5
		assert.Equal(t, 5163, kpi.NetPresentValue5yr(10000, 5000, 1000))
	})

	t.Run("Negative NPV", func(t *testing.T) {
		got := kpi.NetPresentValue5yr(50000, 5000, 1000)
		assert.Less(t, got, 0)
	})

	t.Run("No Net Flow", func(t *testing.T) {
		assert.Equal(t, -10000, kpi.NetPresentValue5yr(10000, 2000, 2000))
	})
}

func TestAttainmentBand(t *testing.T) {
	assert.Equal(t, kpi.BandSuccess, kpi.AttainmentBand(100, 100))
	assert.Equal(t, kpi.BandSuccess, kpi.AttainmentBand(150, 100))
	assert.Equal(t, kpi.BandWarning, kpi.AttainmentBand(80, 100))
	assert.Equal(t, kpi.BandWarning, kpi.AttainmentBand(99.9, 100))
	assert.Equal(t, kpi.BandCritical, kpi.AttainmentBand(79.9, 100))
	assert.Equal(t, kpi.BandCritical, kpi.AttainmentBand(10, 0))
}

func TestDeviationBand(t *testing.T) {
	assert.Equal(t, kpi.BandOK, kpi.DeviationBand(100, 100))
	assert.Equal(t, kpi.BandOK, kpi.DeviationBand(110, 100))
	assert.Equal(t, kpi.BandOK, kpi.DeviationBand(90, 100))
	assert.Equal(t, kpi.BandWarning, kpi.DeviationBand(115, 100))
	assert.Equal(t, kpi.BandWarning, kpi.DeviationBand(80, 100))
	assert.Equal(t, kpi.BandCritical, kpi.DeviationBand(121, 100))
	assert.Equal(t, kpi.BandCritical, kpi.DeviationBand(0, 100))
	assert.Equal(t, kpi.BandOK, kpi.DeviationBand(0, 0))
	assert.Equal(t, kpi.BandCritical, kpi.DeviationBand(5, 0))
}

func TestDeviationPct(t *testing.T) {
	assert.Equal(t, 0.0, kpi.DeviationPct(5, 0))
	assert.Equal(t, 15.0, kpi.DeviationPct(115, 100))
	assert.Equal(t, 15.0, kpi.DeviationPct(85, 100))
}
