// Package solarpos computes the Sun's apparent geocentric ecliptic
// longitude. Two interchangeable models are provided: Ephemeris, backed by
// a VSOP87 planetary-theory data file, accurate to about one arc-second,
// and Series, a self-contained low-order series good to roughly 0.01°
// (a few minutes of time at the equinoxes). Both accept UTC instants and
// handle the TT-UTC offset internally.
package solarpos

import (
	"errors"
	"time"

	"github.com/soniakeys/unit"
)

// Model tags recorded in calculation results.
const (
	NameEphemeris = "ephemeris"
	NameSeries    = "series-fallback"
)

// ErrEphemerisUnavailable indicates the VSOP87 data file could not be
// loaded. Callers fall back to the Series model for the process lifetime.
var ErrEphemerisUnavailable = errors.New("solarpos: ephemeris data unavailable")

// Model yields the Sun's apparent geocentric ecliptic longitude at an
// instant. Implementations are pure functions of time.
type Model interface {
	// Longitude returns the apparent ecliptic longitude, normalized
	// to [0°, 360°).
	Longitude(t time.Time) unit.Angle

	// Name returns the model tag, one of NameEphemeris or NameSeries.
	Name() string

	// Uncertainty returns the model's time-domain error class in
	// seconds, as it applies to locating a longitude crossing.
	Uncertainty() float64
}
