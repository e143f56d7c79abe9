// Package journal normalizes raw spreadsheet rows into typed records.
package journal

import (
	"github.com/dgerard42/diarium/internal/field"
	"github.com/dgerard42/diarium/internal/model"
	"github.com/dgerard42/diarium/internal/names"
)

// Targets maps a time-of-day field to the target "HH:MM" its deviation
// is measured against.
type Targets map[string]string

var deviationFields = []struct {
	source  string
	derived string
}{
	{model.FieldSleepTime, model.FieldSleepDeviation},
	{model.FieldLunchTime, model.FieldLunchDeviation},
	{model.FieldDinnerTime, model.FieldDinnerDeviation},
	{model.FieldWakeupTime, model.FieldWakeupDeviation},
}

// Normalizer converts raw rows into normalized records.
type Normalizer struct {
	reconciler *names.Reconciler
	targets    Targets
}

// New builds a Normalizer around a name reconciler and target times.
func New(reconciler *names.Reconciler, targets Targets) *Normalizer {
	return &Normalizer{reconciler: reconciler, targets: targets}
}

// Normalize converts rows into records, preserving row order. Every
// invalid cell resolves to null inside the coercer, so one bad cell
// never aborts the batch.
func (n *Normalizer) Normalize(rows []model.RawRow) []model.Record {
	records := make([]model.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, n.normalizeRow(row))
	}
	return records
}

func (n *Normalizer) normalizeRow(row model.RawRow) model.Record {
	record := make(model.Record, len(row)+5)
	for name, raw := range row {
		value := field.Coerce(name, raw)
		if tokens, ok := value.([]string); ok {
			value = n.reconciler.Reconcile(tokens)
		}
		record[name] = value
	}
	n.addDerived(record)
	return record
}

// addDerived computes the daily-contact count and the schedule
// deviations, each only when its inputs are present.
func (n *Normalizer) addDerived(record model.Record) {
	met, metOK := record.List(model.FieldWhoIMet)
	lunch, lunchOK := record.List(model.FieldLunchWith)
	dinner, dinnerOK := record.List(model.FieldDinnerWith)
	if metOK && lunchOK && dinnerOK {
		distinct := map[string]struct{}{}
		for _, list := range [][]string{lunch, dinner, met} {
			for _, person := range list {
				distinct[person] = struct{}{}
			}
		}
		record[model.FieldCountDailyMeet] = len(distinct)
	}

	for _, dev := range deviationFields {
		actual, ok := record.String(dev.source)
		if !ok {
			continue
		}
		target, ok := n.targets[dev.source]
		if !ok {
			continue
		}
		if minutes, ok := field.Deviation(actual, target); ok {
			record[dev.derived] = minutes
		}
	}
}
