// Package model defines shared data structures.
package model

// Field names as they appear in the source spreadsheet schema.
const (
	FieldDate        = "date"
	FieldShower      = "ducha"
	FieldSleepTime   = "sleep-time"
	FieldWakeupTime  = "wakeup-time"
	FieldSleepPlace  = "sleep-place"
	FieldLunch       = "lunch"
	FieldLunchTime   = "lunch-time"
	FieldLunchPlace  = "lunch-place"
	FieldLunchWith   = "lunch-with"
	FieldDinnerFood  = "dinner-food"
	FieldDinnerTime  = "dinner-time"
	FieldDinnerPlace = "dinner-place"
	FieldDinnerWith  = "dinner-with"
	FieldWhoIMet     = "who-i-met"
	FieldSecure1     = "secure-1"
	FieldSecure2     = "secure-2"
	FieldCarUsed     = "car-used"
	FieldCoffee      = "coffee"
	FieldWentOutside = "went_outside"
	FieldDoctor      = "doctor"
	FieldGym         = "gym"
	FieldAlcohol     = "alcohol"
	FieldRate        = "rate"
	FieldWeight      = "weight"
)

// Derived field names added by the normalizer.
const (
	FieldCountDailyMeet  = "countDailyMeet"
	FieldSleepDeviation  = "sleepDeviation"
	FieldLunchDeviation  = "lunchDeviation"
	FieldDinnerDeviation = "dinnerDeviation"
	FieldWakeupDeviation = "wakeupDeviation"
)

// RawRow maps a field name to the raw cell text of one spreadsheet row.
// A missing key means the cell was absent.
type RawRow map[string]string

// Record is one normalized journal day. A missing key means the field was
// absent in the source; a nil value means an explicit null. Present values
// are bool, float64, string or []string.
type Record map[string]any

// String returns the field as a string if present and non-nil.
func (r Record) String(field string) (string, bool) {
	v, ok := r[field].(string)
	return v, ok
}

// List returns the field as a string list if present and non-nil.
func (r Record) List(field string) ([]string, bool) {
	v, ok := r[field].([]string)
	return v, ok
}

// Number returns the field as a number if present and non-nil.
func (r Record) Number(field string) (float64, bool) {
	v, ok := r[field].(float64)
	return v, ok
}

// Truthy reports whether the field holds a value an aggregate counts:
// true booleans, non-zero numbers, non-empty strings and lists.
func (r Record) Truthy(field string) bool {
	switch v := r[field].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	default:
		return false
	}
}

// Date returns the record's ISO date, or "" if missing.
func (r Record) Date() string {
	d, _ := r.String(FieldDate)
	return d
}
