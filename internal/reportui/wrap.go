// Package reportui provides the Bubble Tea report browser.
package reportui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText soft-wraps text to the given display width, preferring to
// break on spaces.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, wrapLine(line, width)...)
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}
	var wrapped []string
	runes := []rune(line)
	for len(runes) > 0 {
		lineWidth := 0
		cut := len(runes)
		lastSpace := -1
		for i, r := range runes {
			lineWidth += runewidth.RuneWidth(r)
			if lineWidth > width {
				cut = i
				break
			}
			if r == ' ' {
				lastSpace = i
			}
		}
		if cut == len(runes) {
			wrapped = append(wrapped, string(runes))
			break
		}
		if lastSpace > 0 && lastSpace < cut {
			wrapped = append(wrapped, string(runes[:lastSpace]))
			runes = runes[lastSpace+1:]
			continue
		}
		if cut == 0 {
			cut = 1
		}
		wrapped = append(wrapped, string(runes[:cut]))
		runes = runes[cut:]
	}
	if len(wrapped) == 0 {
		return []string{""}
	}
	return wrapped
}
