package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	st, err := Open(filepath.Join(dir, "diarium.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestInsertAndGetRun(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	run := Run{
		CreatedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Source:     "journal.xlsx",
		Records:    365,
		FirstDate:  "2024-01-01",
		LastDate:   "2024-12-31",
		ReportJSON: `{"gym":{"amount":0,"ratio":0}}`,
	}
	id, err := st.InsertRun(ctx, run)
	if err != nil {
		t.Fatalf("insert run: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected non-zero id")
	}

	got, err := st.GetRun(ctx, id)
	if err != nil {
		t.Fatalf("get run: %v", err)
	}
	if got.Source != run.Source || got.Records != run.Records {
		t.Fatalf("unexpected run: %+v", got)
	}
	if got.FirstDate != run.FirstDate || got.LastDate != run.LastDate {
		t.Fatalf("unexpected date range: %+v", got)
	}
	if got.ReportJSON != run.ReportJSON {
		t.Fatalf("unexpected report body: %q", got.ReportJSON)
	}
	if !got.CreatedAt.Equal(run.CreatedAt) {
		t.Fatalf("created at = %v, expected %v", got.CreatedAt, run.CreatedAt)
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	var ids []int64
	for i := 0; i < 3; i++ {
		id, err := st.InsertRun(ctx, Run{
			CreatedAt: time.Unix(int64(i), 0),
			Source:    "journal.xlsx",
			Records:   i,
		})
		if err != nil {
			t.Fatalf("insert run: %v", err)
		}
		ids = append(ids, id)
	}

	runs, err := st.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].ID != ids[2] || runs[2].ID != ids[0] {
		t.Fatalf("unexpected order: %+v", runs)
	}
	if runs[0].ReportJSON != "" {
		t.Fatalf("listing should not carry report bodies")
	}
}

func TestListRunsLimit(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := st.InsertRun(ctx, Run{CreatedAt: time.Now(), Source: "journal.xlsx"}); err != nil {
			t.Fatalf("insert run: %v", err)
		}
	}
	runs, err := st.ListRuns(ctx, 2)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
}

func TestGetRunMissing(t *testing.T) {
	st := openTestStore(t)
	if _, err := st.GetRun(context.Background(), 42); err == nil {
		t.Fatalf("expected error for missing run")
	}
}
