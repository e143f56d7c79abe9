// Package field coerces raw spreadsheet cells into typed values.
package field

import (
	"strconv"
	"strings"

	"github.com/dgerard42/diarium/internal/model"
)

// Category determines how a raw cell is coerced.
type Category int

const (
	// PlainText passes the cell through as trimmed free text.
	PlainText Category = iota
	// Arrayed splits whitespace-delimited free text into tokens.
	Arrayed
	// PersonList is an arrayed field whose tokens name people.
	PersonList
	// TimeOfDay interprets the cell as a fractional day.
	TimeOfDay
	// Boolean matches the literal spreadsheet boolean strings.
	Boolean
	// Numeral parses the cell as a number.
	Numeral
	// DateField interprets the cell as a date serial.
	DateField
)

// nullLiteral marks a cell as explicitly empty, distinct from absent.
const nullLiteral = "null"

var categories = map[string]Category{
	model.FieldDate:        DateField,
	model.FieldSleepTime:   TimeOfDay,
	model.FieldWakeupTime:  TimeOfDay,
	model.FieldLunchTime:   TimeOfDay,
	model.FieldDinnerTime:  TimeOfDay,
	model.FieldWhoIMet:     PersonList,
	model.FieldLunchWith:   PersonList,
	model.FieldDinnerWith:  PersonList,
	model.FieldAlcohol:     Arrayed,
	model.FieldCoffee:      Numeral,
	model.FieldRate:        Numeral,
	model.FieldWeight:      Numeral,
	model.FieldSecure2:     Boolean,
	model.FieldCarUsed:     Boolean,
	model.FieldWentOutside: Boolean,
	model.FieldDoctor:      Boolean,
	model.FieldGym:         Boolean,
	"bus":                  Boolean,
}

// numeralRanges constrains numeric fields to a valid interval; values
// outside it coerce to null. The journal rates days on a 0..5 scale.
var numeralRanges = map[string][2]float64{
	model.FieldRate: {0, 5},
}

// CategoryOf returns the category for a field name. Unmapped fields are
// plain text.
func CategoryOf(field string) Category {
	if c, ok := categories[field]; ok {
		return c
	}
	return PlainText
}

// Coerce converts one raw cell into its typed value for the field. A nil
// result is the explicit null; invalid input never produces an error,
// only null or an empty list. Arrayed categories return token lists
// ready for name reconciliation.
func Coerce(fieldName, raw string) any {
	if raw == nullLiteral {
		return nil
	}
	switch CategoryOf(fieldName) {
	case Numeral:
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil
		}
		if bounds, ok := numeralRanges[fieldName]; ok {
			if value < bounds[0] || value > bounds[1] {
				return nil
			}
		}
		return value
	case Boolean:
		switch raw {
		case "1", "TRUE", "true":
			return true
		case "0", "FALSE", "false":
			return false
		}
		return nil
	case DateField:
		serial, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil
		}
		return SerialToDate(serial)
	case TimeOfDay:
		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || value < 0 || value >= 1 {
			return nil
		}
		return DecimalToTime(value)
	case Arrayed, PersonList:
		return Tokens(raw)
	default:
		return trimText(raw)
	}
}

// Tokens splits arrayed free text on whitespace, strips stray leading and
// trailing punctuation from each token and drops empty ones.
func Tokens(raw string) []string {
	fields := strings.Fields(raw)
	tokens := make([]string, 0, len(fields))
	for _, token := range fields {
		token = strings.Trim(token, ".,")
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

func trimText(raw string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), ".,"))
}
