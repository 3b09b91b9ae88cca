package solarpos

import (
	"math"
	"time"

	"github.com/soniakeys/unit"
)

// Aberration and nutation-in-longitude corrections applied to the true
// longitude (Meeus ch. 25). The aberration term is the fixed mean value;
// it is not recomputed from the Sun-Earth distance.
const (
	aberrationDeg   = -0.00569
	nutationAmplDeg = -0.00478
)

// Series is the self-contained solar-longitude model. It needs no external
// data and is always available. Accuracy is about 0.01° in longitude,
// which translates to a few minutes of time at an equinox crossing.
type Series struct{}

// NewSeries returns the series-approximation model.
func NewSeries() *Series { return &Series{} }

func (s *Series) Name() string { return NameSeries }

// Uncertainty is the time-domain error class of the series model at an
// equinox crossing: 0.01° of longitude at ~0.9856°/day.
func (s *Series) Uncertainty() float64 { return 300 }

// Longitude computes the Sun's apparent geocentric ecliptic longitude.
func (s *Series) Longitude(t time.Time) unit.Angle {
	jde := jdeFromTime(t)
	return unit.AngleFromDeg(apparentLongitudeDeg(jde))
}

// apparentLongitudeDeg evaluates the Meeus low-order solar theory at a
// Julian Ephemeris Day and returns degrees in [0, 360).
func apparentLongitudeDeg(jde float64) float64 {
	// Julian millennia and centuries since J2000.0
	tau := (jde - 2451545.0) / 365250.0
	T := tau * 10

	// Mean longitude (Meeus 28.2, polynomial in millennia)
	L0 := 280.4664567 +
		360007.6982779*tau +
		0.03032028*tau*tau +
		tau*tau*tau/49931 -
		tau*tau*tau*tau/15300 -
		tau*tau*tau*tau*tau/2000000

	// Mean anomaly
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T
	Mrad := degToRad(normalizeDeg(M))

	// Equation of center
	C := (1.914602-0.004817*T-0.000014*T*T)*math.Sin(Mrad) +
		(0.019993-0.000101*T)*math.Sin(2*Mrad) +
		0.000289*math.Sin(3*Mrad)

	// True longitude, then aberration and the dominant nutation term
	sunLong := L0 + C
	omega := 125.04 - 1934.136*T
	lambda := sunLong + aberrationDeg + nutationAmplDeg*math.Sin(degToRad(omega))

	return normalizeDeg(lambda)
}

// normalizeDeg wraps an angle to the range [0, 360)
func normalizeDeg(angle float64) float64 {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	return angle
}

// degToRad converts degrees to radians
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
