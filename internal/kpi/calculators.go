// Package kpi holds the derived-metric calculators used by the dashboard
// sheets. Every function is pure and total: the only hazard, division by
// zero, yields a zero or neutral result instead of an error.
package kpi

import "math"

const (
	discountRate = 0.10
	horizonYears = 5
)

// Coverage thresholds in days. The boundaries themselves are Optimal.
const (
	coverageLowDays  = 28
	coverageHighDays = 90
)

// Deviation-band thresholds, percent of target.
const (
	deviationWarningPct  = 10
	deviationCriticalPct = 20
)

type CoverageBand string

const (
	CoverageLow     CoverageBand = "baja"
	CoverageOptimal CoverageBand = "optima"
	CoverageHigh    CoverageBand = "alta"
)

type Band string

const (
	BandSuccess  Band = "success"
	BandWarning  Band = "warning"
	BandCritical Band = "critical"
	BandOK       Band = "ok"
)

// round1 rounds to one decimal, half away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// CoverageDays returns inventory units divided by average daily sales,
// rounded to one decimal. Zero daily sales yields 0.
func CoverageDays(inventoryUnits, dailySalesAvg float64) float64 {
	if dailySalesAvg == 0 {
		return 0
	}

	return round1(inventoryUnits / dailySalesAvg)
}

// CoverageStatus bands coverage days: Low below 28, High above 90,
// Optimal in between, boundaries included.
func CoverageStatus(days float64) CoverageBand {
	switch {
	case days < coverageLowDays:
		return CoverageLow
	case days > coverageHighDays:
		return CoverageHigh
	default:
		return CoverageOptimal
	}
}

// Rotation is the inventory turnover ratio: annual sales over average
// inventory, rounded to one decimal. Zero inventory yields 0.
func Rotation(salesAnnual, avgInventory float64) float64 {
	if avgInventory == 0 {
		return 0
	}

	return round1(salesAnnual / avgInventory)
}

// PaybackYears returns the simple payback period, rounded to one decimal.
// Zero savings yields 0.
func PaybackYears(initialInvestment, annualSavings float64) float64 {
	if annualSavings == 0 {
		return 0
	}

	return round1(initialInvestment / annualSavings)
}

// NetPresentValue5yr discounts five equal annual net flows
// (savings minus operating cost) at a fixed 10% rate against the initial
// investment, and rounds the result to the nearest integer.
func NetPresentValue5yr(initialInvestment, annualSavings, annualOperatingCost float64) int {
	npv := -initialInvestment
	netFlow := annualSavings - annualOperatingCost

	for t := 1; t <= horizonYears; t++ {
		npv += netFlow / math.Pow(1+discountRate, float64(t))
	}

	return int(math.Round(npv))
}

// AttainmentBand bands actual vs. target as a percent of target:
// success at 100% or above, warning from 80% up to 100%, critical below.
// A zero target cannot be attained and bands critical.
func AttainmentBand(actual, target float64) Band {
	if target == 0 {
		return BandCritical
	}

	percent := actual / target * 100

	switch {
	case percent >= 100:
		return BandSuccess
	case percent >= 80:
		return BandWarning
	default:
		return BandCritical
	}
}

// DeviationBand bands the absolute deviation from target as a percent of
// target: within 10% is BandOK (callers suppress it from output entirely),
// within 20% warning, beyond that critical. A zero target with a nonzero
// actual is an unbounded deviation and bands critical.
func DeviationBand(actual, target float64) Band {
	if target == 0 {
		if actual == 0 {
			return BandOK
		}

		return BandCritical
	}

	deviation := math.Abs(actual-target) / target * 100

	switch {
	case deviation <= deviationWarningPct:
		return BandOK
	case deviation <= deviationCriticalPct:
		return BandWarning
	default:
		return BandCritical
	}
}

// DeviationPct exposes the raw deviation percentage used by DeviationBand,
// rounded to one decimal for display.
func DeviationPct(actual, target float64) float64 {
	if target == 0 {
		return 0
	}

	return round1(math.Abs(actual-target) / target * 100)
}
