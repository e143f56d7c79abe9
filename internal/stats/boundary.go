package stats

import (
	"github.com/dgerard42/diarium/internal/field"
	"github.com/dgerard42/diarium/internal/model"
)

const (
	zeroTime = "00:00"
	zeroDate = "00-00-0000"
	noDate   = "unknown"
)

// timingBoundary computes the average, latest and earliest time of day
// for a field. Records without the field contribute 0 minutes to the
// average and the minimum, skewing both toward midnight.
func timingBoundary(records []model.Record, fieldName string) TimeBoundary {
	if len(records) == 0 {
		return TimeBoundary{
			Average: zeroTime,
			Max:     TimePoint{Date: noDate, Time: zeroTime},
			Min:     TimePoint{Date: noDate, Time: zeroTime},
		}
	}

	minutes := make([]int, len(records))
	for i, record := range records {
		value, ok := record.String(fieldName)
		if !ok {
			continue
		}
		if m, ok := field.TimeToMinutes(value); ok {
			minutes[i] = m
		}
	}

	sum := 0
	maxMin := minutes[0]
	minMin := minutes[0]
	for _, m := range minutes {
		sum += m
		if m > maxMin {
			maxMin = m
		}
		if m < minMin {
			minMin = m
		}
	}

	maxTime := field.MinutesToTime(maxMin)
	minTime := field.MinutesToTime(minMin)
	return TimeBoundary{
		Average: field.MinutesToTime(roundDiv(sum, len(minutes))),
		Max:     TimePoint{Date: dateOfTime(records, fieldName, maxTime), Time: maxTime},
		Min:     TimePoint{Date: dateOfTime(records, fieldName, minTime), Time: minTime},
	}
}

// dateOfTime finds the date of the first record whose field holds the
// formatted time, mirroring how the boundaries are attributed.
func dateOfTime(records []model.Record, fieldName, want string) string {
	for _, record := range records {
		if value, ok := record.String(fieldName); ok && value == want {
			return record.Date()
		}
	}
	return noDate
}

func roundDiv(sum, count int) int {
	if count == 0 {
		return 0
	}
	half := count / 2
	return (sum + half) / count
}
