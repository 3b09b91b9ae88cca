// Package equinox locates the instant of the March (vernal) equinox: the
// moment the Sun's apparent ecliptic longitude crosses 0°. A coarse seed
// from the Meeus ch. 27 mean-equinox expression is refined against a
// pluggable solar-longitude model until the residual is under a
// sub-arc-second tolerance.
package equinox

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solstice"

	"github.com/tahvil/nowruz/pkg/solarpos"
)

// Supported Gregorian years: the range the mean-equinox seed expression
// is stated for (Meeus ch. 27, years 1000-3000 AD).
const (
	MinYear = 1000
	MaxYear = 3000
)

// Convergence tolerance on the longitude residual: 1e-5° is 0.036″, under
// one second of time at the Sun's ~0.9856°/day motion.
const toleranceDeg = 1e-5

// maxIterations caps the refinement loop. The search typically converges
// in 3-4 iterations; hitting the cap produces a best-effort result with
// Converged=false rather than an error.
const maxIterations = 50

// ErrYearOutOfRange indicates a requested year outside [MinYear, MaxYear].
var ErrYearOutOfRange = errors.New("equinox: year outside supported range")

// Result is the outcome of an equinox search.
type Result struct {
	Time        time.Time // equinox instant, UTC
	Iterations  int
	ResidualDeg float64 // signed longitude residual at Time
	Converged   bool
}

// Finder locates March equinoxes using an injected solar-longitude model.
type Finder struct {
	model solarpos.Model
}

// NewFinder returns a Finder backed by the given model.
func NewFinder(model solarpos.Model) *Finder {
	return &Finder{model: model}
}

// Model returns the solar-longitude model in use.
func (f *Finder) Model() solarpos.Model { return f.model }

// March finds the vernal equinox instant for a Gregorian year.
func (f *Finder) March(year int) (Result, error) {
	if year < MinYear || year > MaxYear {
		return Result{}, fmt.Errorf("%w: %d not in [%d, %d]",
			ErrYearOutOfRange, year, MinYear, MaxYear)
	}

	// Seed near March 20 from the mean-equinox expression. solstice.March
	// returns a JDE (TT scale); the offset to UTC is within a couple of
	// minutes, well inside the refinement's basin of attraction.
	t := julian.JDToTime(solstice.March(year)).UTC()

	// Refine: the Sun moves ~0.9856°/day, so a signed longitude residual
	// of λ degrees maps to a correction of about 58·sin(-λ) days (the
	// same step Meeus uses for the high-accuracy method). Signed angular
	// distance keeps the step well-behaved across the 0°/360° wrap.
	var res Result
	for i := 1; i <= maxIterations; i++ {
		residual := signedDistanceDeg(f.model.Longitude(t).Deg())
		res = Result{Time: t, Iterations: i, ResidualDeg: residual}

		if math.Abs(residual) <= toleranceDeg {
			res.Converged = true
			return res, nil
		}

		days := 58 * math.Sin(-residual*math.Pi/180)
		t = t.Add(time.Duration(days * 24 * float64(time.Hour))).UTC()
	}

	// Cap exhausted: hand back the best estimate, flagged.
	return res, nil
}

// signedDistanceDeg maps a longitude in [0, 360) to its signed angular
// distance from 0° in (-180, 180]. Values just under 360° come out as
// small negatives, so the residual never flips sign spuriously near the
// crossing.
func signedDistanceDeg(longitudeDeg float64) float64 {
	d := math.Mod(longitudeDeg, 360)
	if d < 0 {
		d += 360
	}
	if d > 180 {
		d -= 360
	}
	return d
}
