package stats

import (
	"sort"

	"github.com/dgerard42/diarium/internal/model"
)

func sleepStats(records []model.Record) SleepStats {
	places := []PlaceStat{}
	index := map[string]int{}
	for _, record := range records {
		place, ok := record.String(model.FieldSleepPlace)
		if !ok || place == "" {
			continue
		}
		i, seen := index[place]
		if !seen {
			index[place] = len(places)
			places = append(places, PlaceStat{Name: place})
			i = index[place]
		}
		places[i].Amount++
	}
	for i := range places {
		places[i].Ratio = ratio(places[i].Amount, len(records))
	}
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Amount > places[j].Amount
	})

	return SleepStats{
		Places:          places,
		WakingUpTimings: timingBoundary(records, model.FieldWakeupTime),
		SleepingTimings: timingBoundary(records, model.FieldSleepTime),
	}
}
