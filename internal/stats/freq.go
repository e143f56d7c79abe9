package stats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// FreqEntry is one ranked row of a frequency table.
type FreqEntry struct {
	Name  string
	Count int
}

// FreqTable counts occurrences and remembers first-seen order, which
// breaks ties when ranking. It serializes as a JSON object whose keys
// are ordered by descending count.
type FreqTable struct {
	keys   []string
	counts map[string]int
}

// NewFreqTable returns an empty table.
func NewFreqTable() *FreqTable {
	return &FreqTable{counts: map[string]int{}}
}

// Add counts one occurrence of key.
func (t *FreqTable) Add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

// Len returns the number of distinct keys.
func (t *FreqTable) Len() int {
	return len(t.keys)
}

// Count returns the count for key.
func (t *FreqTable) Count(key string) int {
	return t.counts[key]
}

// Entries returns the table ranked by descending count, ties in
// first-seen order.
func (t *FreqTable) Entries() []FreqEntry {
	entries := make([]FreqEntry, 0, len(t.keys))
	for _, key := range t.keys {
		entries = append(entries, FreqEntry{Name: key, Count: t.counts[key]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// MarshalJSON writes the table as an object in ranked key order.
func (t *FreqTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range t.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", entry.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object back preserving its document key order
// as the first-seen order.
func (t *FreqTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("frequency table must be a JSON object")
	}
	t.keys = nil
	t.counts = map[string]int{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("frequency table key must be a string")
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return err
		}
		t.keys = append(t.keys, key)
		t.counts[key] = count
	}
	_, err = dec.Token()
	return err
}
