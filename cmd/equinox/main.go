package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tahvil/nowruz/pkg/nowruz"
	"github.com/tahvil/nowruz/pkg/persiancal"
)

func main() {
	var year int
	var ephemerisPath string
	var noEphemeris bool
	flag.IntVar(&year, "year", 0, "Persian (Shamsi) year to compute, e.g. 1403 (default: current cycle)")
	flag.StringVar(&ephemerisPath, "ephemeris", "", "path to the VSOP87 Earth data file (default: VSOP87 env var)")
	flag.BoolVar(&noEphemeris, "no-ephemeris", false, "force the series-approximation model")
	flag.Parse()

	predictor := nowruz.New(nowruz.Options{
		EphemerisPath:    ephemerisPath,
		DisableEphemeris: noEphemeris,
	})

	if year == 0 {
		d, err := predictor.Converter().ToPersian(time.Now().UTC())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving current Persian year: %v\n", err)
			os.Exit(1)
		}
		year = d.Year
	}

	result, err := predictor.Predict(year)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Vernal equinox for Persian year %d (Gregorian %d)\n",
		result.PersianYear, result.GregorianYear)
	fmt.Printf("  UTC:         %s\n", result.EquinoxUTC.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Tehran:      %s (UTC+3:30)\n", result.EquinoxTehran.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Nowruz:      %s (1 %s %d)\n",
		result.NowruzGregorian.Format("2006-01-02"),
		persiancal.MonthName(1), result.PersianYear)
	fmt.Printf("  Model:       %s (±%.0f s)\n", result.Model, result.UncertaintySeconds)
	if !result.Converged {
		fmt.Printf("  Warning:     search did not fully converge\n")
	}
}
