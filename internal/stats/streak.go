package stats

import (
	"sort"
	"time"

	"github.com/dgerard42/diarium/internal/model"
)

const isoDate = "2006-01-02"

// personStreaks scans the records in date-ascending order and tracks one
// running streak per person met: an entry exactly one day after the
// previous one extends the streak, a duplicate date leaves it unchanged,
// and anything else restarts it. Only each person's final run survives;
// earlier runs before a gap are discarded. Returns the top limit streaks
// by length.
func personStreaks(records []model.Record, limit int) []Streak {
	ordered := make([]model.Record, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date() < ordered[j].Date()
	})

	type running struct {
		start  string
		end    string
		last   string
		amount int
	}
	byPerson := map[string]*running{}
	firstSeen := []string{}

	for _, record := range ordered {
		people, ok := record.List(model.FieldWhoIMet)
		if !ok {
			continue
		}
		date := record.Date()
		seenToday := map[string]struct{}{}
		for _, person := range people {
			if _, dup := seenToday[person]; dup {
				continue
			}
			seenToday[person] = struct{}{}

			current, exists := byPerson[person]
			if !exists {
				byPerson[person] = &running{start: date, end: date, last: date, amount: 1}
				firstSeen = append(firstSeen, person)
				continue
			}
			switch {
			case nextDay(current.last) == date:
				current.amount++
				current.end = date
				current.last = date
			case current.last == date:
				// Duplicate date for this person; streak unchanged.
			default:
				*current = running{start: date, end: date, last: date, amount: 1}
			}
		}
	}

	streaks := make([]Streak, 0, len(firstSeen))
	for _, person := range firstSeen {
		current := byPerson[person]
		streaks = append(streaks, Streak{
			Amount: current.amount,
			Start:  current.start,
			End:    current.end,
			Who:    person,
		})
	}
	sort.SliceStable(streaks, func(i, j int) bool {
		return streaks[i].Amount > streaks[j].Amount
	})
	if limit > 0 && len(streaks) > limit {
		streaks = streaks[:limit]
	}
	return streaks
}

func nextDay(date string) string {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(isoDate)
}
