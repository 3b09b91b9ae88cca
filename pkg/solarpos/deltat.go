package solarpos

import "time"

// deltaT estimates TT-UTC in seconds for the given instant, using the
// Espenak/Meeus polynomial fits. The piecewise ranges cover the years this
// program is asked about in practice; outside them the long-term parabola
// applies, which is plenty for seeding and for the fallback model's stated
// accuracy.
func deltaT(t time.Time) float64 {
	// Decimal year, month resolution is sufficient here.
	y := float64(t.Year()) + (float64(t.Month())-0.5)/12

	switch {
	case y >= 2005 && y < 2050:
		u := y - 2000
		return 62.92 + u*(0.32217+u*0.005589)
	case y >= 1986 && y < 2005:
		u := y - 2000
		return 63.86 + u*(0.3345+u*(-0.060374+u*(0.0017275+u*(0.000651814+u*0.00002373599))))
	case y >= 2050 && y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}

// jdeFromTime converts a UTC instant to a Julian Ephemeris Day (TT scale).
func jdeFromTime(t time.Time) float64 {
	const secPerDay = 86400.0
	jdUTC := 2440587.5 + (float64(t.Unix())+float64(t.Nanosecond())/1e9)/secPerDay
	return jdUTC + deltaT(t)/secPerDay
}
