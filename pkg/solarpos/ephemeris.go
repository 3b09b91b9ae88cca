package solarpos

import (
	"fmt"
	"time"

	pp "github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// Ephemeris is the high-precision solar-longitude model, backed by the
// VSOP87 planetary theory for Earth. The apparent longitude includes
// aberration and nutation as supplied by the theory evaluation.
type Ephemeris struct {
	earth *pp.V87Planet
}

// LoadEphemeris loads the VSOP87 Earth data file from path. An empty path
// consults the VSOP87 environment variable, matching the data layout the
// soniakeys distribution ships. A load failure wraps
// ErrEphemerisUnavailable.
func LoadEphemeris(path string) (*Ephemeris, error) {
	var earth *pp.V87Planet
	var err error
	if path == "" {
		earth, err = pp.LoadPlanet(pp.Earth)
	} else {
		earth, err = pp.LoadPlanetPath(pp.Earth, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEphemerisUnavailable, err)
	}
	return &Ephemeris{earth: earth}, nil
}

func (e *Ephemeris) Name() string { return NameEphemeris }

// Uncertainty reflects VSOP87's arc-second-class longitude accuracy plus
// the ΔT estimate, which dominates: a few seconds of time.
func (e *Ephemeris) Uncertainty() float64 { return 5 }

// Longitude computes the Sun's apparent geocentric ecliptic longitude.
func (e *Ephemeris) Longitude(t time.Time) unit.Angle {
	lambda, _, _ := solar.ApparentVSOP87(e.earth, jdeFromTime(t))
	return lambda.Mod1()
}
