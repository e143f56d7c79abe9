package config

import (
	"github.com/dgerard42/diarium/internal/model"
	"github.com/dgerard42/diarium/internal/names"
)

// DefaultSheet is the workbook page the journal lives on.
const DefaultSheet = 2

// DefaultTargets returns the target times deviations are measured
// against.
func DefaultTargets() map[string]string {
	return map[string]string{
		model.FieldSleepTime:  "23:30",
		model.FieldWakeupTime: "08:30",
		model.FieldLunchTime:  "14:00",
		model.FieldDinnerTime: "21:30",
	}
}

// DefaultFamily returns the household roster the family keyword expands
// to.
func DefaultFamily() []string {
	return []string{"Victor", "Sara", "Lídia", "Joan"}
}

// DefaultPeople returns the name dictionary in priority order.
func DefaultPeople() []names.Entry {
	return []names.Entry{
		{Name: "Gerard Martínez", Tokens: []string{"Gerard", "Martínez"}},
		{Name: "Lidia Amores", Tokens: []string{"Lídia", "Amores"}},
		{Name: "Joan Gubau", Tokens: []string{"Joan", "Gubau"}},
		{Name: "Victor Gubau", Tokens: []string{"Victor", "Gubau"}},
		{Name: "Victor Ciezar", Tokens: []string{"Victor", "Ciezar"}},
	}
}

// DefaultAliases returns manual corrections applied to tokens the
// dictionary pass left behind.
func DefaultAliases() map[string]string {
	return map[string]string{
		"gerard": "Gerard Martínez",
		"ciezar": "Victor Ciezar",
	}
}

// DefaultResidual returns stray surname fragments to drop after
// reconciliation.
func DefaultResidual() []string {
	return []string{"Gubau", "Amores", "Martínez"}
}
