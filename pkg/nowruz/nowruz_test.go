package nowruz

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/tahvil/nowruz/pkg/persiancal"
	"github.com/tahvil/nowruz/pkg/solarpos"
	"github.com/tahvil/nowruz/pkg/zones"
)

func newTestPredictor() *Predictor {
	return New(Options{DisableEphemeris: true})
}

func TestPredict1403(t *testing.T) {
	p := newTestPredictor()
	res, err := p.Predict(1403)
	if err != nil {
		t.Fatalf("Predict(1403): %v", err)
	}

	if res.PersianYear != 1403 || res.GregorianYear != 2024 {
		t.Errorf("years = %d/%d, expected 1403/2024", res.PersianYear, res.GregorianYear)
	}

	// Equinox was Mar 20, 03:06 UTC; series accuracy is a few minutes
	lo := time.Date(2024, 3, 20, 2, 45, 0, 0, time.UTC)
	hi := time.Date(2024, 3, 20, 3, 30, 0, 0, time.UTC)
	if res.EquinoxUTC.Before(lo) || res.EquinoxUTC.After(hi) {
		t.Errorf("EquinoxUTC = %v, expected within [%v, %v]", res.EquinoxUTC, lo, hi)
	}

	// Tehran view: same instant, +3:30, no DST
	if !res.EquinoxTehran.Equal(res.EquinoxUTC) {
		t.Error("EquinoxTehran is a different instant than EquinoxUTC")
	}
	if _, offset := res.EquinoxTehran.Zone(); offset != zones.TehranOffsetSeconds {
		t.Errorf("Tehran offset = %d, expected %d", offset, zones.TehranOffsetSeconds)
	}

	// ~06:36 Tehran is before noon, so the equinox day is New Year's Day
	if !res.BeforeNoon {
		t.Error("BeforeNoon = false, expected true")
	}
	if got := res.NowruzGregorian.Format("2006-01-02"); got != "2024-03-20" {
		t.Errorf("NowruzGregorian = %s, expected 2024-03-20", got)
	}
	if want := (persiancal.Date{Year: 1403, Month: 1, Day: 1}); res.Nowruz != want {
		t.Errorf("Nowruz = %v, expected %v", res.Nowruz, want)
	}

	if res.Model != solarpos.NameSeries {
		t.Errorf("Model = %q, expected %q", res.Model, solarpos.NameSeries)
	}
	if !res.Converged {
		t.Error("Converged = false")
	}
	if res.UncertaintySeconds != solarpos.NewSeries().Uncertainty() {
		t.Errorf("UncertaintySeconds = %v", res.UncertaintySeconds)
	}
}

func TestPredict1404AfterNoon(t *testing.T) {
	// 2025 equinox: 09:01 UTC → 12:31 Tehran, after noon → Nowruz Mar 21
	p := newTestPredictor()
	res, err := p.Predict(1404)
	if err != nil {
		t.Fatalf("Predict(1404): %v", err)
	}
	if res.BeforeNoon {
		t.Error("BeforeNoon = true, expected false")
	}
	if got := res.NowruzGregorian.Format("2006-01-02"); got != "2025-03-21" {
		t.Errorf("NowruzGregorian = %s, expected 2025-03-21", got)
	}
}

func TestPredictDeterministic(t *testing.T) {
	p := newTestPredictor()
	a, err := p.Predict(1412)
	if err != nil {
		t.Fatalf("Predict(1412): %v", err)
	}
	b, err := p.Predict(1412)
	if err != nil {
		t.Fatalf("Predict(1412): %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated predictions disagree:\n%+v\n%+v", a, b)
	}
}

func TestPredictYearOutOfRange(t *testing.T) {
	p := newTestPredictor()
	for _, year := range []int{0, 399, 2301, -1403} {
		if _, err := p.Predict(year); !errors.Is(err, persiancal.ErrYearOutOfRange) {
			t.Errorf("Predict(%d): expected ErrYearOutOfRange, got %v", year, err)
		}
	}
}

func TestPredictorModelSelection(t *testing.T) {
	// Forced series
	if got := newTestPredictor().Model(); got != solarpos.NameSeries {
		t.Errorf("Model = %q, expected %q", got, solarpos.NameSeries)
	}

	// A bad ephemeris path falls back rather than failing
	p := New(Options{EphemerisPath: "/nonexistent/vsop87"})
	if got := p.Model(); got != solarpos.NameSeries {
		t.Errorf("Model = %q, expected fallback to %q", got, solarpos.NameSeries)
	}
}

func TestConverterAgreesWithPrediction(t *testing.T) {
	// The exposed converter shares the predictor's equinox source, so
	// ToGregorian(1 Farvardin) must land on the predicted Nowruz day.
	p := newTestPredictor()
	res, err := p.Predict(1403)
	if err != nil {
		t.Fatalf("Predict(1403): %v", err)
	}
	viaConverter, err := p.Converter().ToGregorian(persiancal.Date{Year: 1403, Month: 1, Day: 1})
	if err != nil {
		t.Fatalf("ToGregorian: %v", err)
	}
	if !viaConverter.Equal(res.NowruzGregorian) {
		t.Errorf("converter gives %v, prediction gives %v", viaConverter, res.NowruzGregorian)
	}
}
