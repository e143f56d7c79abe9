package stats

import (
	"testing"

	"github.com/dgerard42/diarium/internal/model"
)

func TestTimingBoundary(t *testing.T) {
	records := []model.Record{
		{model.FieldDate: "2024-01-01", model.FieldWakeupTime: "08:00"},
		{model.FieldDate: "2024-01-02", model.FieldWakeupTime: "09:00"},
		{model.FieldDate: "2024-01-03", model.FieldWakeupTime: "07:00"},
	}
	got := timingBoundary(records, model.FieldWakeupTime)
	if got.Average != "08:00" {
		t.Fatalf("average = %q, expected 08:00", got.Average)
	}
	if got.Max.Time != "09:00" || got.Max.Date != "2024-01-02" {
		t.Fatalf("max = %+v", got.Max)
	}
	if got.Min.Time != "07:00" || got.Min.Date != "2024-01-03" {
		t.Fatalf("min = %+v", got.Min)
	}
}

func TestTimingBoundaryMissingEntriesCountAsMidnight(t *testing.T) {
	records := []model.Record{
		{model.FieldDate: "2024-01-01", model.FieldWakeupTime: "08:00"},
		{model.FieldDate: "2024-01-02"},
	}
	got := timingBoundary(records, model.FieldWakeupTime)
	// The absent entry contributes 0 minutes, pulling the average and
	// the minimum toward midnight.
	if got.Average != "04:00" {
		t.Fatalf("average = %q, expected 04:00", got.Average)
	}
	if got.Min.Time != "00:00" {
		t.Fatalf("min = %+v, expected 00:00", got.Min)
	}
	// No record actually holds 00:00, so the date is unattributable.
	if got.Min.Date != "unknown" {
		t.Fatalf("min date = %q, expected unknown", got.Min.Date)
	}
}

func TestTimingBoundaryEmpty(t *testing.T) {
	got := timingBoundary(nil, model.FieldWakeupTime)
	if got.Average != "00:00" {
		t.Fatalf("average = %q", got.Average)
	}
	if got.Max.Date != "unknown" || got.Min.Date != "unknown" {
		t.Fatalf("expected unknown dates, got %+v", got)
	}
	if got.Max.Time != "00:00" || got.Min.Time != "00:00" {
		t.Fatalf("expected zero times, got %+v", got)
	}
}

func TestTimingBoundaryAttributesFirstMatch(t *testing.T) {
	records := []model.Record{
		{model.FieldDate: "2024-01-01", model.FieldWakeupTime: "09:00"},
		{model.FieldDate: "2024-01-02", model.FieldWakeupTime: "09:00"},
	}
	got := timingBoundary(records, model.FieldWakeupTime)
	if got.Max.Date != "2024-01-01" {
		t.Fatalf("max date = %q, expected first occurrence", got.Max.Date)
	}
}

func TestRoundDiv(t *testing.T) {
	if got := roundDiv(5, 2); got != 3 {
		t.Fatalf("roundDiv(5, 2) = %d, expected 3", got)
	}
	if got := roundDiv(4, 2); got != 2 {
		t.Fatalf("roundDiv(4, 2) = %d, expected 2", got)
	}
	if got := roundDiv(7, 0); got != 0 {
		t.Fatalf("roundDiv(7, 0) = %d, expected 0", got)
	}
}
