package stats

import (
	"math"

	"github.com/dgerard42/diarium/internal/model"
)

const streakLimit = 5

func peopleStats(records []model.Record) PeopleStats {
	stats := PeopleStats{
		TopPeople:            NewFreqTable(),
		LongestMeetingStreak: personStreaks(records, streakLimit),
	}
	if len(records) == 0 {
		stats.LongestMeetingStreak = []Streak{}
		return stats
	}

	total := 0
	maxMet := 0
	minMet := 0
	for i, record := range records {
		met := 0
		if list, ok := record.List(model.FieldWhoIMet); ok {
			met = len(list)
		}
		total += met
		if i == 0 || met > maxMet {
			maxMet = met
		}
		if i == 0 || met < minMet {
			minMet = met
		}
	}
	stats.AverageDailyMet = int(math.Round(float64(total) / float64(len(records))))
	stats.MaxDailyMet = maxMet
	stats.MinDailyMet = minMet

	for _, record := range records {
		list, ok := record.List(model.FieldWhoIMet)
		if !ok {
			continue
		}
		for _, person := range list {
			stats.TopPeople.Add(normalizeName(person))
		}
	}
	return stats
}
