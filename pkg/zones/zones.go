// Package zones converts UTC instants to Tehran local time and to
// arbitrary IANA time zones. Tehran is a fixed UTC+3:30: Iran abolished
// daylight-saving time in 2022, so no seasonal shift is ever applied.
package zones

import (
	"errors"
	"fmt"
	"time"
)

// TehranOffsetSeconds is Tehran's fixed offset from UTC: +3:30.
const TehranOffsetSeconds = 3*3600 + 30*60

// Tehran is the fixed IRST location. Deliberately not loaded from the
// IANA database: historical tzdata entries for Asia/Tehran carry DST
// transitions that no longer apply.
var Tehran = time.FixedZone("IRST", TehranOffsetSeconds)

// ErrUnknownZone indicates a zone ID absent from the system database.
var ErrUnknownZone = errors.New("zones: unknown time zone")

// Coordinates is a geographic observation point.
type Coordinates struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
}

// TehranCoordinates is the fixed observer position used for astronomical
// calculations referenced to Tehran.
var TehranCoordinates = Coordinates{Latitude: 35.6892, Longitude: 51.3890}

// ToTehran converts a UTC instant to Tehran local time.
func ToTehran(utc time.Time) time.Time {
	return utc.In(Tehran)
}

// ToZone converts a UTC instant to the named IANA zone. An unknown zone
// ID returns a wrapped ErrUnknownZone rather than defaulting.
func ToZone(utc time.Time, zoneID string) (time.Time, error) {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrUnknownZone, zoneID, err)
	}
	return utc.In(loc), nil
}
