package sheet

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	book := excelize.NewFile()
	defer func() {
		_ = book.Close()
	}()

	if _, err := book.NewSheet("Journal"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	cells := map[string]any{
		"A1": "date", "B1": "gym", "C1": "lunch",
		"A2": 45292, "B2": "1", "C2": "pasta",
		"A3": 45293, "C3": "rice",
	}
	for axis, value := range cells {
		if err := book.SetCellValue("Journal", axis, value); err != nil {
			t.Fatalf("set cell %s: %v", axis, err)
		}
	}

	path := filepath.Join(t.TempDir(), "journal.xlsx")
	if err := book.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadRows(t *testing.T) {
	path := writeTestWorkbook(t)

	rows, err := ReadRows(path, 2)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["date"] != "45292" || rows[0]["gym"] != "1" || rows[0]["lunch"] != "pasta" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if _, present := rows[1]["gym"]; present {
		t.Fatalf("empty cell should be absent, got %v", rows[1])
	}
	if rows[1]["lunch"] != "rice" {
		t.Fatalf("unexpected second row: %v", rows[1])
	}
}

func TestReadRowsEmptySheet(t *testing.T) {
	path := writeTestWorkbook(t)

	rows, err := ReadRows(path, 1)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("expected no rows on the empty sheet, got %d", len(rows))
	}
}

func TestReadRowsBadSheetIndex(t *testing.T) {
	path := writeTestWorkbook(t)

	if _, err := ReadRows(path, 3); err == nil {
		t.Fatalf("expected error for missing sheet")
	}
	if _, err := ReadRows(path, 0); err == nil {
		t.Fatalf("expected error for sheet 0")
	}
}

func TestReadRowsMissingFile(t *testing.T) {
	if _, err := ReadRows(filepath.Join(t.TempDir(), "nope.xlsx"), 1); err == nil {
		t.Fatalf("expected error for missing workbook")
	}
}
