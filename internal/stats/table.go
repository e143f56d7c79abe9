package stats

import (
	"strings"
	"unicode/utf8"
)

// formatTable lays out rows as space-separated columns sized to the
// widest cell. Columns listed in rightAlign are right-aligned.
func formatTable(headers []string, rows [][]string, rightAlign ...int) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	alignRight := make(map[int]bool, len(rightAlign))
	for _, col := range rightAlign {
		alignRight[col] = true
	}

	widths := make([]int, colCount)
	measure := func(row []string) {
		for i := 0; i < colCount && i < len(row); i++ {
			if w := utf8.RuneCountInString(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, row := range rows {
		measure(row)
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, alignRight))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, alignRight))
	}
	return lines
}

func formatRow(row []string, widths []int, alignRight map[int]bool) string {
	var b strings.Builder
	for i, width := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, width, alignRight[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	padding := width - utf8.RuneCountInString(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
