package stats

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestFreqTableRanking(t *testing.T) {
	table := NewFreqTable()
	for _, key := range []string{"wine", "beer", "beer", "cider", "wine", "beer"} {
		table.Add(key)
	}
	got := table.Entries()
	want := []FreqEntry{
		{Name: "beer", Count: 3},
		{Name: "wine", Count: 2},
		{Name: "cider", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Entries = %v, expected %v", got, want)
	}
}

func TestFreqTableTiesKeepFirstSeenOrder(t *testing.T) {
	table := NewFreqTable()
	for _, key := range []string{"b", "a", "c"} {
		table.Add(key)
	}
	got := table.Entries()
	want := []FreqEntry{
		{Name: "b", Count: 1},
		{Name: "a", Count: 1},
		{Name: "c", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Entries = %v, expected %v", got, want)
	}
}

func TestFreqTableMarshalOrder(t *testing.T) {
	table := NewFreqTable()
	for _, key := range []string{"wine", "beer", "beer"} {
		table.Add(key)
	}
	data, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"beer":2,"wine":1}` {
		t.Fatalf("marshal = %s", data)
	}
}

func TestFreqTableRoundTrip(t *testing.T) {
	table := NewFreqTable()
	for _, key := range []string{"home", "gym", "home", "office"} {
		table.Add(key)
	}
	data, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded := NewFreqTable()
	if err := json.Unmarshal(data, decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(decoded.Entries(), table.Entries()) {
		t.Fatalf("round trip mismatch: %v vs %v", decoded.Entries(), table.Entries())
	}
}

func TestFreqTableUnmarshalRejectsNonObject(t *testing.T) {
	decoded := NewFreqTable()
	if err := json.Unmarshal([]byte(`[1,2]`), decoded); err == nil {
		t.Fatalf("expected error for non-object input")
	}
}
