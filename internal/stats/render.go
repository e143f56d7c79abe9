package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	sparkChars    = " .:-=+*#%@"
	fallbackWidth = 80
	topRows       = 10
)

// DetectWidth returns the terminal width of stdout, falling back to 80
// when stdout is not a terminal.
func DetectWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

// Section is one report topic rendered to plain text.
type Section struct {
	Title string
	Body  string
}

// Sections renders every topic of the report for the given display
// width.
func Sections(report Report, width int) []Section {
	if width <= 0 {
		width = fallbackWidth
	}
	return []Section{
		{Title: "Overview", Body: renderOverview(report)},
		{Title: "People", Body: renderPeople(report.People)},
		{Title: "Sleep", Body: renderSleep(report.Sleep)},
		{Title: "Food", Body: renderFood(report.Food)},
		{Title: "Alcohol", Body: renderAlcohol(report.Alcohol)},
		{Title: "Weight", Body: renderWeight(report.Weight, width)},
		{Title: "Security", Body: renderSecure(report.Secure1)},
	}
}

// Render writes the whole report to w.
func Render(w io.Writer, report Report, width int) error {
	for _, section := range Sections(report, width) {
		underline := strings.Repeat("-", len(section.Title))
		if _, err := fmt.Fprintf(w, "%s\n%s\n%s\n\n", section.Title, underline, section.Body); err != nil {
			return err
		}
	}
	return nil
}

func renderOverview(report Report) string {
	rows := [][]string{
		{"Shower", strconv.Itoa(report.Shower.Amount), percent(report.Shower.Ratio)},
		{"Gym", strconv.Itoa(report.Gym.Amount), percent(report.Gym.Ratio)},
		{"Doctor", strconv.Itoa(report.Doctor.Amount), percent(report.Doctor.Ratio)},
		{"Car used", strconv.Itoa(report.CarUsage.Amount), percent(report.CarUsage.Ratio)},
		{"Went outside", strconv.Itoa(report.WentOutside.Amount), percent(report.WentOutside.Ratio)},
		{"Alcohol days", strconv.Itoa(report.Alcohol.AmountDays), percent(report.Alcohol.Ratio)},
		{"Secure 1", strconv.Itoa(report.Secure1.Amount), percent(report.Secure1.Ratio)},
		{"Secure 2", strconv.Itoa(report.Secure2.Amount), percent(report.Secure2.Ratio)},
	}
	lines := formatTable([]string{"Habit", "Days", "Ratio"}, rows, 1, 2)
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("Shower streak: %d on / %d off",
		report.Shower.LongerStreak, report.Shower.LongerNoShowerStreak))
	return strings.Join(lines, "\n")
}

func renderPeople(people PeopleStats) string {
	lines := []string{
		fmt.Sprintf("Met daily avg/max/min: %d / %d / %d",
			people.AverageDailyMet, people.MaxDailyMet, people.MinDailyMet),
		"",
	}
	lines = append(lines, freqLines("Top people", people.TopPeople)...)
	if len(people.LongestMeetingStreak) > 0 {
		rows := make([][]string, 0, len(people.LongestMeetingStreak))
		for _, streak := range people.LongestMeetingStreak {
			rows = append(rows, []string{
				streak.Who,
				strconv.Itoa(streak.Amount),
				streak.Start,
				streak.End,
			})
		}
		lines = append(lines, "")
		lines = append(lines, formatTable([]string{"Streak", "Days", "From", "To"}, rows, 1)...)
	}
	return strings.Join(lines, "\n")
}

func renderSleep(sleep SleepStats) string {
	lines := []string{
		boundaryLine("Sleeping", sleep.SleepingTimings),
		boundaryLine("Waking up", sleep.WakingUpTimings),
	}
	if len(sleep.Places) > 0 {
		rows := make([][]string, 0, len(sleep.Places))
		for _, place := range sleep.Places {
			rows = append(rows, []string{place.Name, strconv.Itoa(place.Amount), percent(place.Ratio)})
		}
		lines = append(lines, "")
		lines = append(lines, formatTable([]string{"Place", "Nights", "Ratio"}, rows, 1, 2)...)
	}
	return strings.Join(lines, "\n")
}

func renderFood(food FoodStats) string {
	lines := renderMeal("Lunch", food.Lunch)
	lines = append(lines, "")
	lines = append(lines, renderMeal("Dinner", food.Dinner)...)
	return strings.Join(lines, "\n")
}

func renderMeal(label string, meal MealStats) []string {
	lines := []string{
		fmt.Sprintf("%s: %d days (%s), avg %s (min %s, max %s)",
			label, meal.Amount, percent(meal.Ratio),
			meal.Timing.Average, meal.Timing.Min, meal.Timing.Max),
	}
	lines = append(lines, freqLines("Top "+strings.ToLower(label)+" food", meal.TopFood)...)
	lines = append(lines, freqLines("Top "+strings.ToLower(label)+" places", meal.TopPlaces)...)
	lines = append(lines, freqLines("Top "+strings.ToLower(label)+" company", meal.TopPeople)...)
	return lines
}

func renderAlcohol(alcohol AlcoholStats) string {
	lines := []string{
		fmt.Sprintf("Drinks: %d over %d days (%s of all days)",
			alcohol.AmountDrinks, alcohol.AmountDays, percent(alcohol.Ratio)),
	}
	lines = append(lines, freqLines("Top drinks", alcohol.TopDrinks)...)
	return strings.Join(lines, "\n")
}

func renderWeight(weight WeightStats, width int) string {
	if len(weight.Points) == 0 {
		return "No weight entries."
	}
	lines := []string{
		fmt.Sprintf("Average %d, min %.1f (%s), max %.1f (%s)",
			weight.Average, weight.Min.Weight, weight.Min.Date,
			weight.Max.Weight, weight.Max.Date),
	}
	values := make([]float64, len(weight.Points))
	for i, point := range weight.Points {
		values[i] = point.Weight
	}
	if spark := Sparkline(values, width-2); spark != "" {
		lines = append(lines, "Trend: "+spark)
	}
	return strings.Join(lines, "\n")
}

func renderSecure(secure Secure1Stats) string {
	lines := []string{
		fmt.Sprintf("Secure 1: %d days (%s)", secure.Amount, percent(secure.Ratio)),
	}
	lines = append(lines, freqLines("Top places", secure.TopPlaces)...)

	months := []struct {
		name string
		stat BasicStat
	}{
		{"January", secure.Months.January}, {"February", secure.Months.February},
		{"March", secure.Months.March}, {"April", secure.Months.April},
		{"May", secure.Months.May}, {"June", secure.Months.June},
		{"July", secure.Months.July}, {"August", secure.Months.August},
		{"September", secure.Months.September}, {"October", secure.Months.October},
		{"November", secure.Months.November}, {"December", secure.Months.December},
	}
	rows := make([][]string, 0, len(months))
	for _, month := range months {
		if month.stat.Amount == 0 {
			continue
		}
		rows = append(rows, []string{month.name, strconv.Itoa(month.stat.Amount), percent(month.stat.Ratio)})
	}
	if len(rows) > 0 {
		lines = append(lines, "")
		lines = append(lines, formatTable([]string{"Month", "Days", "Share"}, rows, 1, 2)...)
	}
	return strings.Join(lines, "\n")
}

func boundaryLine(label string, boundary TimeBoundary) string {
	return fmt.Sprintf("%s: avg %s, earliest %s (%s), latest %s (%s)",
		label, boundary.Average,
		boundary.Min.Time, boundary.Min.Date,
		boundary.Max.Time, boundary.Max.Date)
}

func freqLines(title string, table *FreqTable) []string {
	if table == nil || table.Len() == 0 {
		return nil
	}
	entries := table.Entries()
	if len(entries) > topRows {
		entries = entries[:topRows]
	}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Name, strconv.Itoa(entry.Count)})
	}
	lines := []string{"", title + ":"}
	lines = append(lines, formatTable(nil, rows, 1)...)
	return lines
}

func percent(ratio int) string {
	return strconv.Itoa(ratio) + "%"
}

// Sparkline renders values as a single-line chart, resampled to at most
// width characters.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	if width > 1 && len(values) > width {
		values = resample(values, width)
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

func resample(values []float64, width int) []float64 {
	out := make([]float64, width)
	for i := range out {
		src := i * (len(values) - 1) / (width - 1)
		out[i] = values[src]
	}
	return out
}
