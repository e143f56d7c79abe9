package stats

import (
	"github.com/dgerard42/diarium/internal/model"
)

func showerStats(records []model.Record) ShowerStats {
	stats := ShowerStats{TopPlaces: NewFreqTable()}

	for _, record := range records {
		place, ok := record.String(model.FieldShower)
		if !ok || place == "" {
			continue
		}
		stats.Amount++
		stats.TopPlaces.Add(place)
	}

	// One forward scan with two counters, each reset when the state
	// flips.
	currentShower := 0
	currentDry := 0
	for _, record := range records {
		if record.Truthy(model.FieldShower) {
			currentShower++
			currentDry = 0
		} else {
			currentDry++
			currentShower = 0
		}
		if currentShower > stats.LongerStreak {
			stats.LongerStreak = currentShower
		}
		if currentDry > stats.LongerNoShowerStreak {
			stats.LongerNoShowerStreak = currentDry
		}
	}

	stats.Ratio = ratio(stats.Amount, len(records))
	return stats
}
