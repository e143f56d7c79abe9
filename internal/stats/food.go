package stats

import (
	"github.com/dgerard42/diarium/internal/model"
)

func foodStats(records []model.Record) FoodStats {
	return FoodStats{
		Lunch: mealStats(records, mealFields{
			food:  model.FieldLunch,
			time:  model.FieldLunchTime,
			place: model.FieldLunchPlace,
			with:  model.FieldLunchWith,
		}),
		Dinner: mealStats(records, mealFields{
			food:  model.FieldDinnerFood,
			time:  model.FieldDinnerTime,
			place: model.FieldDinnerPlace,
			with:  model.FieldDinnerWith,
		}),
	}
}

type mealFields struct {
	food  string
	time  string
	place string
	with  string
}

func mealStats(records []model.Record, fields mealFields) MealStats {
	boundary := timingBoundary(records, fields.time)
	stats := MealStats{
		Timing: MealTiming{
			Average: boundary.Average,
			Max:     boundary.Max.Time,
			Min:     boundary.Min.Time,
		},
		TopPlaces: NewFreqTable(),
		TopPeople: NewFreqTable(),
		TopFood:   NewFreqTable(),
	}

	for _, record := range records {
		if record.Truthy(fields.food) {
			stats.Amount++
		}
		if place, ok := record.String(fields.place); ok && place != "" {
			stats.TopPlaces.Add(place)
		}
		if meal, ok := record.String(fields.food); ok && meal != "" {
			stats.TopFood.Add(meal)
		}
		if companions, ok := record.List(fields.with); ok {
			for _, person := range companions {
				stats.TopPeople.Add(normalizeName(person))
			}
		}
	}
	stats.Ratio = ratio(stats.Amount, len(records))
	return stats
}
