// Package field coerces raw spreadsheet cells into typed values.
package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// DecimalToTime converts a fractional-day value to "HH:MM".
func DecimalToTime(decimal float64) string {
	hours := int(decimal * 24)
	minutes := int(math.Round((decimal*24 - float64(hours)) * 60))
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// SerialToDate converts a spreadsheet date serial to an ISO date. The
// serial is offset by two days from the 1900-01-01 epoch, reproducing the
// historical correction for the 1900 leap-year bug in serial dates.
func SerialToDate(serial float64) string {
	epoch := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	return epoch.AddDate(0, 0, int(serial)-2).Format("2006-01-02")
}

// TimeToMinutes converts "HH:MM" to minutes since midnight.
func TimeToMinutes(value string) (int, bool) {
	hh, mm, ok := strings.Cut(value, ":")
	if !ok {
		return 0, false
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	return hours*60 + minutes, true
}

// MinutesToTime formats minutes since midnight as "HH:MM".
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Deviation reports how many minutes past the target the actual time is,
// always in [0, 1439]: an actual earlier than the target is treated as
// having happened past midnight and wraps forward a day.
func Deviation(actual, target string) (int, bool) {
	actualMin, ok := TimeToMinutes(actual)
	if !ok {
		return 0, false
	}
	targetMin, ok := TimeToMinutes(target)
	if !ok {
		return 0, false
	}
	deviation := actualMin - targetMin
	if deviation < 0 {
		deviation += minutesPerDay
	}
	return deviation, true
}
