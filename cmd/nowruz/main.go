// Command nowruz is the interactive year-transition (تحویل سال) predictor:
// it asks for a Persian year, computes the vernal equinox instant, and
// reports it in UTC, Tehran, Persian calendar form, and a configurable set
// of international zones.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tahvil/nowruz/internal/constants"
	"github.com/tahvil/nowruz/internal/log"
	"github.com/tahvil/nowruz/pkg/config"
	"github.com/tahvil/nowruz/pkg/nowruz"
	"github.com/tahvil/nowruz/pkg/persiancal"
	"github.com/tahvil/nowruz/pkg/solarpos"
	"github.com/tahvil/nowruz/pkg/zones"
)

const divider = "======================================================================"

func main() {
	var configFile string
	var ephemerisPath string
	var yearFlag int
	var debug bool
	flag.StringVar(&configFile, "config", "", "path to YAML config file")
	flag.StringVar(&ephemerisPath, "ephemeris", "", "path to the VSOP87 Earth data file (overrides config)")
	flag.IntVar(&yearFlag, "year", 0, "compute a single Persian year and exit")
	flag.BoolVar(&debug, "debug", false, "enable debug logging")
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if ephemerisPath != "" {
		cfg.EphemerisPath = ephemerisPath
	}

	if err := log.Init(debug || cfg.Debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	predictor := nowruz.New(nowruz.Options{EphemerisPath: cfg.EphemerisPath})

	if yearFlag != 0 {
		if err := runOnce(predictor, cfg.Zones, yearFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	displayHeader(predictor.Model())
	scanner := bufio.NewScanner(os.Stdin)
	for {
		year, ok := promptYear(scanner)
		if !ok {
			break
		}
		if err := runOnce(predictor, cfg.Zones, year); err != nil {
			fmt.Printf("   ❌ %v\n", err)
			continue
		}
		fmt.Println("\n" + divider)
		fmt.Print("\n🔍 Predict another year? (y/n): ")
		if !scanner.Scan() {
			break
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if answer != "y" && answer != "yes" && answer != "بله" {
			break
		}
	}

	fmt.Println("\n" + divider)
	fmt.Println("🎊 نوروزتان پیروز! - Happy Nowruz!")
	fmt.Println(divider)
}

func displayHeader(model string) {
	fmt.Println(divider)
	fmt.Println("🎊 NOWRUZ PREDICTION TOOL - محاسبه لحظه تحویل سال")
	fmt.Println("📅 Persian Calendar Astronomical Calculator", constants.Version)
	fmt.Println(divider)
	if model == solarpos.NameEphemeris {
		fmt.Println("✅ VSOP87 ephemeris loaded - using high accuracy calculations")
	} else {
		fmt.Println("⚠️  No VSOP87 data file found - using astronomical series")
		fmt.Println("    (set the VSOP87 environment variable for better accuracy)")
	}
	fmt.Println()
}

func promptYear(scanner *bufio.Scanner) (int, bool) {
	for {
		fmt.Println("🔢 Enter the Persian (Shamsi) year you want to predict:")
		fmt.Println("   Example: 1403, 1404, 1405, etc.")
		fmt.Print("   📅 Year: ")
		if !scanner.Scan() {
			return 0, false
		}
		year, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Println("   ❌ Please enter a valid number")
			continue
		}
		if year < persiancal.MinYear || year > persiancal.MaxYear {
			fmt.Printf("   ❌ Please enter a year between %d and %d\n",
				persiancal.MinYear, persiancal.MaxYear)
			continue
		}
		return year, true
	}
}

func runOnce(predictor *nowruz.Predictor, zoneIDs []string, year int) error {
	fmt.Printf("\n⏳ Calculating لحظه تحویل سال for %d...\n", year)

	bar := newProgressBar(4, "🌞 Calculating solar position")
	bar.step("Finding equinox...")
	result, err := predictor.Predict(year)
	if err != nil {
		bar.abort()
		return err
	}
	bar.step("Precise timing...")
	bar.step("Converting...")
	bar.step("Complete!")

	displayResults(predictor, result, zoneIDs)
	return nil
}

func displayResults(predictor *nowruz.Predictor, result *nowruz.Result, zoneIDs []string) {
	fmt.Println("\n" + divider)
	fmt.Println("🎉 NOWRUZ PREDICTION RESULTS - نتایج محاسبه")
	fmt.Println(divider)

	decision := "بعد از ظهر - فردا نوروز"
	if result.BeforeNoon {
		decision = "قبل از ظهر - امروز نوروز"
	}

	fmt.Println("\n🌞 لحظه تحویل سال (Exact Vernal Equinox):")
	fmt.Printf("   🕐 UTC Time:    %s\n", result.EquinoxUTC.Format("2006-01-02 15:04:05"))
	fmt.Printf("   🕐 Tehran Time: %s (UTC+3:30)\n", result.EquinoxTehran.Format("2006-01-02 15:04:05"))
	fmt.Printf("   📅 Persian:     %s\n", formatPersian(predictor, result.EquinoxTehran))
	fmt.Printf("   📝 Decision:    %s\n", decision)

	fmt.Println("\n🎊 نوروز (Nowruz) - 1st Farvardin:")
	fmt.Printf("   📅 Gregorian: %s\n", result.NowruzGregorian.Format("2006-01-02"))
	fmt.Printf("   📅 Persian:   %d %s %d\n",
		result.Nowruz.Day, persiancal.MonthName(result.Nowruz.Month), result.Nowruz.Year)
	fmt.Printf("   🌍 For all of Iran (سراسر ایران) — observer %.4f°N %.4f°E\n",
		zones.TehranCoordinates.Latitude, zones.TehranCoordinates.Longitude)

	fmt.Println("\n📊 TECHNICAL DETAILS:")
	fmt.Printf("   🔢 Persian Year:   %d\n", result.PersianYear)
	fmt.Printf("   🔢 Gregorian Year: %d\n", result.GregorianYear)
	fmt.Printf("   🎯 Calculation:    %s (±%.0f s)\n", result.Model, result.UncertaintySeconds)
	if !result.Converged {
		fmt.Println("   ⚠️  Search stopped at iteration cap; uncertainty widened")
	}

	fmt.Println("\n🌐 INTERNATIONAL TIMES:")
	for _, zoneID := range zoneIDs {
		local, err := zones.ToZone(result.EquinoxUTC, zoneID)
		if err != nil {
			fmt.Printf("   %-20s (unknown zone)\n", zoneID+":")
			continue
		}
		fmt.Printf("   %-20s %s (%s)\n", zoneID+":",
			local.Format("2006-01-02 15:04:05"), local.Format("MST"))
	}
	fmt.Printf("   %-20s %s (IRST)\n", "Asia/Tehran:",
		result.EquinoxTehran.Format("2006-01-02 15:04:05"))
}

// formatPersian renders an instant in Persian calendar style, e.g.
// "1 فروردین 1403 - 06:36:26".
func formatPersian(predictor *nowruz.Predictor, t time.Time) string {
	d, err := predictor.Converter().ToPersian(t)
	if err != nil {
		return t.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprintf("%d %s %d - %s",
		d.Day, persiancal.MonthName(d.Month), d.Year, t.Format("15:04:05"))
}
