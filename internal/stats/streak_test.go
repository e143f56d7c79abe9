package stats

import (
	"testing"

	"github.com/dgerard42/diarium/internal/model"
)

func meetDay(date string, people ...string) model.Record {
	return model.Record{
		model.FieldDate:    date,
		model.FieldWhoIMet: people,
	}
}

func TestPersonStreaksConsecutiveDays(t *testing.T) {
	records := []model.Record{
		meetDay("2024-01-01", "Maria"),
		meetDay("2024-01-02", "Maria"),
		meetDay("2024-01-03", "Maria"),
	}
	streaks := personStreaks(records, 5)
	if len(streaks) != 1 {
		t.Fatalf("expected 1 streak, got %d", len(streaks))
	}
	got := streaks[0]
	if got.Who != "Maria" || got.Amount != 3 || got.Start != "2024-01-01" || got.End != "2024-01-03" {
		t.Fatalf("unexpected streak: %+v", got)
	}
}

func TestPersonStreaksGapKeepsFinalRun(t *testing.T) {
	records := []model.Record{
		meetDay("2024-01-01", "Maria"),
		meetDay("2024-01-02", "Maria"),
		meetDay("2024-01-03", "Maria"),
		meetDay("2024-01-10", "Maria"),
	}
	streaks := personStreaks(records, 5)
	if len(streaks) != 1 {
		t.Fatalf("expected 1 streak, got %d", len(streaks))
	}
	got := streaks[0]
	if got.Amount != 1 || got.Start != "2024-01-10" || got.End != "2024-01-10" {
		t.Fatalf("expected final run only, got %+v", got)
	}
}

func TestPersonStreaksDuplicateDate(t *testing.T) {
	records := []model.Record{
		meetDay("2024-01-01", "Maria"),
		meetDay("2024-01-02", "Maria"),
		meetDay("2024-01-02", "Maria"),
	}
	streaks := personStreaks(records, 5)
	if streaks[0].Amount != 2 {
		t.Fatalf("duplicate date changed streak: %+v", streaks[0])
	}
}

func TestPersonStreaksDedupesWithinDay(t *testing.T) {
	records := []model.Record{
		meetDay("2024-01-01", "Maria", "Maria"),
		meetDay("2024-01-02", "Maria"),
	}
	streaks := personStreaks(records, 5)
	if streaks[0].Amount != 2 {
		t.Fatalf("within-day duplicate changed streak: %+v", streaks[0])
	}
}

func TestPersonStreaksUnorderedInput(t *testing.T) {
	records := []model.Record{
		meetDay("2024-01-02", "Maria"),
		meetDay("2024-01-01", "Maria"),
	}
	streaks := personStreaks(records, 5)
	if streaks[0].Amount != 2 {
		t.Fatalf("expected date-sorted scan, got %+v", streaks[0])
	}
}

func TestPersonStreaksLimit(t *testing.T) {
	records := []model.Record{
		meetDay("2024-01-01", "a", "b", "c", "d", "e", "f", "g"),
	}
	streaks := personStreaks(records, 5)
	if len(streaks) != 5 {
		t.Fatalf("expected 5 streaks, got %d", len(streaks))
	}
}

func TestPersonStreaksRankedByLength(t *testing.T) {
	records := []model.Record{
		meetDay("2024-01-01", "short", "long"),
		meetDay("2024-01-02", "long"),
	}
	streaks := personStreaks(records, 5)
	if streaks[0].Who != "long" || streaks[0].Amount != 2 {
		t.Fatalf("expected longest streak first, got %+v", streaks)
	}
	if streaks[1].Who != "short" || streaks[1].Amount != 1 {
		t.Fatalf("unexpected second streak: %+v", streaks)
	}
}
