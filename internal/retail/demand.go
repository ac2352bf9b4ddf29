//-------------------------------------------------------------------------
//
// retailgen - synthetic retail dataset generator
//
// Copyright (c) 2025 - 2026
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package retail

import (
	"math"
	"time"
)

// DiurnalMultiplier returns a demand multiplier in roughly [0.6, 1.4]
// for the time of day, with smooth peaks around 12:00 and 18:00. The two
// sinusoids are weighted 60/40 toward the midday peak.
func DiurnalMultiplier(ts time.Time) float64 {
	hour := float64(ts.Hour()) + float64(ts.Minute())/60.0
	peak1 := 0.5 * (1 + math.Sin((hour-12)/24*2*math.Pi))
	peak2 := 0.5 * (1 + math.Sin((hour-18)/24*2*math.Pi))
	return 0.6 + 0.8*(0.6*peak1+0.4*peak2)
}

// WeekendMultiplier returns 1.15 on Saturday and Sunday, 1.0 otherwise.
func WeekendMultiplier(ts time.Time) float64 {
	switch ts.Weekday() {
	case time.Saturday, time.Sunday:
		return 1.15
	default:
		return 1.0
	}
}

// PriceRound rounds a price to 2 decimals with a floor of 0.01.
func PriceRound(p float64) float64 {
	if p < 0.01 {
		p = 0.01
	}
	return math.Round(p*100) / 100
}

// round2 rounds a ratio (e.g. a discount fraction) to 2 decimals.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
