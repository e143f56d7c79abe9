package stats

import (
	"time"

	"github.com/dgerard42/diarium/internal/model"
)

func secure1Stats(records []model.Record) Secure1Stats {
	stats := Secure1Stats{TopPlaces: NewFreqTable()}

	var monthCounts [12]int
	for _, record := range records {
		place, ok := record.String(model.FieldSecure1)
		if !ok || place == "" {
			continue
		}
		stats.Amount++
		stats.TopPlaces.Add(place)
		if date, err := time.Parse(isoDate, record.Date()); err == nil {
			monthCounts[int(date.Month())-1]++
		}
	}

	stats.Ratio = ratio(stats.Amount, len(records))
	// Monthly ratios divide by the flag's own total, not the day
	// count: each month's share of the year's occurrences.
	month := func(i int) BasicStat {
		return BasicStat{Amount: monthCounts[i], Ratio: ratio(monthCounts[i], stats.Amount)}
	}
	stats.Months = MonthBreakdown{
		January:   month(0),
		February:  month(1),
		March:     month(2),
		April:     month(3),
		May:       month(4),
		June:      month(5),
		July:      month(6),
		August:    month(7),
		September: month(8),
		October:   month(9),
		November:  month(10),
		December:  month(11),
	}
	return stats
}
