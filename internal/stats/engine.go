// Package stats derives the statistics report from normalized records.
package stats

import (
	"math"
	"strings"

	"github.com/dgerard42/diarium/internal/model"
)

// BasicStat counts truthy entries and their share of all days.
type BasicStat struct {
	Amount int `json:"amount"`
	Ratio  int `json:"ratio"`
}

// TimePoint ties a boundary time to the date it occurred on.
type TimePoint struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// TimeBoundary holds average, latest and earliest times for a field.
type TimeBoundary struct {
	Average string    `json:"average"`
	Max     TimePoint `json:"max"`
	Min     TimePoint `json:"min"`
}

// Streak is a run of consecutive days a person was met.
type Streak struct {
	Amount int    `json:"amount"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Who    string `json:"who"`
}

// PlaceStat ranks one place with its share of all days.
type PlaceStat struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
	Ratio  int    `json:"ratio"`
}

// PeopleStats summarizes daily contacts.
type PeopleStats struct {
	AverageDailyMet      int        `json:"averageDailyMet"`
	MaxDailyMet          int        `json:"maxDailyMet"`
	MinDailyMet          int        `json:"minDailyMet"`
	TopPeople            *FreqTable `json:"topPeople"`
	LongestMeetingStreak []Streak   `json:"longestMeetingStreak"`
}

// SleepStats summarizes sleep places and timings.
type SleepStats struct {
	Places          []PlaceStat  `json:"places"`
	WakingUpTimings TimeBoundary `json:"wakingUpTimings"`
	SleepingTimings TimeBoundary `json:"sleepingTimings"`
}

// MealTiming holds average, latest and earliest meal times.
type MealTiming struct {
	Average string `json:"average"`
	Max     string `json:"max"`
	Min     string `json:"min"`
}

// MealStats summarizes one meal of the day.
type MealStats struct {
	Timing    MealTiming `json:"timing"`
	Amount    int        `json:"amount"`
	Ratio     int        `json:"ratio"`
	TopPlaces *FreqTable `json:"topPlaces"`
	TopPeople *FreqTable `json:"topPeople"`
	TopFood   *FreqTable `json:"topFood"`
}

// FoodStats groups the lunch and dinner summaries.
type FoodStats struct {
	Lunch  MealStats `json:"lunch"`
	Dinner MealStats `json:"dinner"`
}

// ShowerStats summarizes shower days, places and streaks.
type ShowerStats struct {
	Amount               int        `json:"amount"`
	Ratio                int        `json:"ratio"`
	TopPlaces            *FreqTable `json:"topPlaces"`
	LongerStreak         int        `json:"longerStreak"`
	LongerNoShowerStreak int        `json:"longerNoShowerStreak"`
}

// AlcoholStats summarizes drinking days and drinks.
type AlcoholStats struct {
	Ratio        int        `json:"ratio"`
	AmountDays   int        `json:"amountDays"`
	AmountDrinks int        `json:"amountDrinks"`
	TopDrinks    *FreqTable `json:"topDrinks"`
}

// WeightPoint is one weight measurement.
type WeightPoint struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}

// WeightStats summarizes the weight series.
type WeightStats struct {
	Average int           `json:"average"`
	Max     WeightPoint   `json:"max"`
	Min     WeightPoint   `json:"min"`
	Points  []WeightPoint `json:"points"`
}

// MonthBreakdown distributes a flag's occurrences over calendar months.
type MonthBreakdown struct {
	January   BasicStat `json:"January"`
	February  BasicStat `json:"February"`
	March     BasicStat `json:"March"`
	April     BasicStat `json:"April"`
	May       BasicStat `json:"May"`
	June      BasicStat `json:"June"`
	July      BasicStat `json:"July"`
	August    BasicStat `json:"August"`
	September BasicStat `json:"September"`
	October   BasicStat `json:"October"`
	November  BasicStat `json:"November"`
	December  BasicStat `json:"December"`
}

// Secure1Stats summarizes the tracked security flag, including its
// monthly distribution.
type Secure1Stats struct {
	Amount    int            `json:"amount"`
	Ratio     int            `json:"ratio"`
	TopPlaces *FreqTable     `json:"topPlaces"`
	Months    MonthBreakdown `json:"months"`
}

// Report is the full statistics document, one block per topic.
type Report struct {
	People      PeopleStats  `json:"people"`
	Sleep       SleepStats   `json:"sleep"`
	Food        FoodStats    `json:"food"`
	Shower      ShowerStats  `json:"shower"`
	Gym         BasicStat    `json:"gym"`
	Alcohol     AlcoholStats `json:"alcohol"`
	Doctor      BasicStat    `json:"doctor"`
	Weight      WeightStats  `json:"weight"`
	CarUsage    BasicStat    `json:"carUsage"`
	WentOutside BasicStat    `json:"wentOutside"`
	Secure1     Secure1Stats `json:"secure1"`
	Secure2     BasicStat    `json:"secure2"`
}

// Build assembles the report from the ordered record collection. Every
// topic is an independent pure function over the same slice.
func Build(records []model.Record) Report {
	return Report{
		People:      peopleStats(records),
		Sleep:       sleepStats(records),
		Food:        foodStats(records),
		Shower:      showerStats(records),
		Gym:         basicStat(records, model.FieldGym),
		Alcohol:     alcoholStats(records),
		Doctor:      basicStat(records, model.FieldDoctor),
		Weight:      weightStats(records),
		CarUsage:    basicStat(records, model.FieldCarUsed),
		WentOutside: basicStat(records, model.FieldWentOutside),
		Secure1:     secure1Stats(records),
		Secure2:     basicStat(records, model.FieldSecure2),
	}
}

// ratio is the shared percentage policy: round half away from zero, and
// an empty denominator yields 0 rather than failing.
func ratio(amount, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(amount) / float64(total) * 100))
}

// normalizeName canonicalizes a name for frequency counting: trimmed,
// lowercased, inner whitespace collapsed.
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
