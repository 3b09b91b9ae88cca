package equinox

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/tahvil/nowruz/pkg/solarpos"
)

func TestSignedDistanceDeg(t *testing.T) {
	tests := []struct {
		longitude float64
		expected  float64
	}{
		{0, 0},
		{0.5, 0.5},
		{359.5, -0.5},
		{359.99999, -0.00001},
		{90, 90},
		{180, 180},
		{180.5, -179.5},
		{270, -90},
		{720.25, 0.25},
	}
	for _, tt := range tests {
		got := signedDistanceDeg(tt.longitude)
		if math.Abs(got-tt.expected) > 1e-9 {
			t.Errorf("signedDistanceDeg(%v) = %v, expected %v", tt.longitude, got, tt.expected)
		}
	}
}

func TestMarch2024Series(t *testing.T) {
	finder := NewFinder(solarpos.NewSeries())
	res, err := finder.March(2024)
	if err != nil {
		t.Fatalf("March(2024): %v", err)
	}

	// The 2024 vernal equinox was Mar 20, 03:06 UTC; the series model is
	// good to a few minutes of time.
	if !res.Converged {
		t.Errorf("search did not converge (%d iterations, residual %.6f°)",
			res.Iterations, res.ResidualDeg)
	}
	lo := time.Date(2024, 3, 20, 2, 45, 0, 0, time.UTC)
	hi := time.Date(2024, 3, 20, 3, 30, 0, 0, time.UTC)
	if res.Time.Before(lo) || res.Time.After(hi) {
		t.Errorf("equinox = %v, expected within [%v, %v]", res.Time, lo, hi)
	}
	if math.Abs(res.ResidualDeg) > toleranceDeg {
		t.Errorf("residual %.7f° above tolerance %.7f°", res.ResidualDeg, toleranceDeg)
	}
}

func TestMarch2024Ephemeris(t *testing.T) {
	eph, err := solarpos.LoadEphemeris("")
	if err != nil {
		t.Skipf("VSOP87 data not available: %v", err)
	}
	finder := NewFinder(eph)
	res, err := finder.March(2024)
	if err != nil {
		t.Fatalf("March(2024): %v", err)
	}

	expected := time.Date(2024, 3, 20, 3, 6, 21, 0, time.UTC)
	if diff := res.Time.Sub(expected); diff < -time.Minute || diff > time.Minute {
		t.Errorf("equinox = %v, expected within a minute of %v", res.Time, expected)
	}
}

func TestMarchManyYears(t *testing.T) {
	finder := NewFinder(solarpos.NewSeries())

	var prev time.Time
	for year := 2000; year <= 2040; year++ {
		res, err := finder.March(year)
		if err != nil {
			t.Fatalf("March(%d): %v", year, err)
		}
		if !res.Converged {
			t.Errorf("%d: did not converge (residual %.6f°)", year, res.ResidualDeg)
		}
		if res.Time.Year() != year || res.Time.Month() != time.March {
			t.Errorf("%d: equinox %v not in March of that year", year, res.Time)
		}
		if d := res.Time.Day(); d < 19 || d > 21 {
			t.Errorf("%d: equinox day %d, expected 19-21", year, d)
		}
		// The model's longitude at the returned instant is the residual
		if got := signedDistanceDeg(finder.Model().Longitude(res.Time).Deg()); math.Abs(got) > toleranceDeg {
			t.Errorf("%d: longitude at result = %.7f°, above tolerance", year, got)
		}

		// Tropical-year spacing between consecutive equinoxes
		if !prev.IsZero() {
			days := res.Time.Sub(prev).Hours() / 24
			if days < 365.2 || days > 365.3 {
				t.Errorf("%d: %.4f days since previous equinox, expected ~365.24", year, days)
			}
		}
		prev = res.Time
	}
}

func TestMarchDeterministic(t *testing.T) {
	finder := NewFinder(solarpos.NewSeries())
	a, err := finder.March(2031)
	if err != nil {
		t.Fatalf("March(2031): %v", err)
	}
	b, err := finder.March(2031)
	if err != nil {
		t.Fatalf("March(2031): %v", err)
	}
	if !a.Time.Equal(b.Time) || a.Iterations != b.Iterations {
		t.Errorf("repeated searches disagree: %+v vs %+v", a, b)
	}
}

func TestMarchYearOutOfRange(t *testing.T) {
	finder := NewFinder(solarpos.NewSeries())
	for _, year := range []int{999, 3001, -44} {
		if _, err := finder.March(year); !errors.Is(err, ErrYearOutOfRange) {
			t.Errorf("March(%d): expected ErrYearOutOfRange, got %v", year, err)
		}
	}
}
