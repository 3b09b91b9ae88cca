// Package nowruz predicts the instant the Persian year turns (تحویل سال):
// the vernal equinox for a requested Shamsi year, mapped to Tehran local
// time and to the Persian calendar. The solar model is chosen once at
// construction — the VSOP87 ephemeris when its data file loads, otherwise
// the built-in series approximation — and recorded in every result.
package nowruz

import (
	"fmt"
	"time"

	"github.com/tahvil/nowruz/internal/log"
	"github.com/tahvil/nowruz/pkg/equinox"
	"github.com/tahvil/nowruz/pkg/persiancal"
	"github.com/tahvil/nowruz/pkg/solarpos"
	"github.com/tahvil/nowruz/pkg/zones"
)

// nonConvergenceFactor widens the uncertainty bound when the equinox
// search hits its iteration cap. Degraded output is still returned: an
// approximate instant remains useful to the caller.
const nonConvergenceFactor = 10

// Options configures a Predictor.
type Options struct {
	// EphemerisPath locates the VSOP87 Earth data file. Empty consults
	// the VSOP87 environment variable.
	EphemerisPath string

	// DisableEphemeris skips loading the data file and forces the
	// series model. Used by tests and by callers that want predictable
	// startup with no file access.
	DisableEphemeris bool
}

// Result is the immutable outcome of one prediction. It is constructed
// once per query and never mutated.
type Result struct {
	PersianYear   int
	GregorianYear int

	EquinoxUTC    time.Time // instant of the equinox, UTC
	EquinoxTehran time.Time // same instant, Tehran (+3:30, no DST)

	Nowruz          persiancal.Date // 1 Farvardin of PersianYear
	NowruzGregorian time.Time       // same day, midnight Tehran

	// BeforeNoon reports the noon rule's branch: true when the equinox
	// fell strictly before 12:00 Tehran time, so the equinox day itself
	// is New Year's Day.
	BeforeNoon bool

	Model              string  // solarpos.NameEphemeris or NameSeries
	UncertaintySeconds float64 // estimated error bound on the instant
	Converged          bool
}

// Predictor computes Nowruz predictions. It is stateless across queries;
// the only held resource is the solar model chosen at construction.
type Predictor struct {
	finder    *equinox.Finder
	converter *persiancal.Converter
}

// New builds a Predictor, selecting the solar model once. An unavailable
// ephemeris is not an error: the series model serves for the rest of the
// process lifetime.
func New(opts Options) *Predictor {
	var model solarpos.Model
	if opts.DisableEphemeris {
		model = solarpos.NewSeries()
	} else {
		eph, err := solarpos.LoadEphemeris(opts.EphemerisPath)
		if err != nil {
			log.Infow("ephemeris unavailable, using series approximation",
				"error", err)
			model = solarpos.NewSeries()
		} else {
			model = eph
		}
	}

	finder := equinox.NewFinder(model)
	converter := persiancal.NewConverter(func(gregorianYear int) (time.Time, error) {
		res, err := finder.March(gregorianYear)
		if err != nil {
			return time.Time{}, err
		}
		return res.Time, nil
	})

	return &Predictor{finder: finder, converter: converter}
}

// Model returns the tag of the solar model in use.
func (p *Predictor) Model() string { return p.finder.Model().Name() }

// Converter exposes the calendar converter sharing this predictor's
// equinox source, so calendar lookups agree with predictions.
func (p *Predictor) Converter() *persiancal.Converter { return p.converter }

// Predict computes the year-transition instant and Nowruz day for a
// Persian year.
func (p *Predictor) Predict(persianYear int) (*Result, error) {
	if persianYear < persiancal.MinYear || persianYear > persiancal.MaxYear {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]",
			persiancal.ErrYearOutOfRange, persianYear,
			persiancal.MinYear, persiancal.MaxYear)
	}

	gregorianYear := persianYear + 621
	eq, err := p.finder.March(gregorianYear)
	if err != nil {
		return nil, err
	}
	if !eq.Converged {
		log.Warnf("equinox search for %d stopped at iteration cap (residual %.6f°)",
			gregorianYear, eq.ResidualDeg)
	}

	tehran := zones.ToTehran(eq.Time)
	nowruzDay, err := p.converter.Nowruz(persianYear)
	if err != nil {
		return nil, err
	}
	nowruzDate, err := p.converter.ToPersian(nowruzDay)
	if err != nil {
		return nil, err
	}

	model := p.finder.Model()
	uncertainty := model.Uncertainty()
	if !eq.Converged {
		uncertainty *= nonConvergenceFactor
	}

	return &Result{
		PersianYear:        persianYear,
		GregorianYear:      gregorianYear,
		EquinoxUTC:         eq.Time,
		EquinoxTehran:      tehran,
		Nowruz:             nowruzDate,
		NowruzGregorian:    nowruzDay,
		BeforeNoon:         tehran.Hour() < 12,
		Model:              model.Name(),
		UncertaintySeconds: uncertainty,
		Converged:          eq.Converged,
	}, nil
}
