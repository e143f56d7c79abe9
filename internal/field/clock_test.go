package field

import "testing"

func TestDecimalToTime(t *testing.T) {
	cases := []struct {
		decimal float64
		want    string
	}{
		{0, "00:00"},
		{0.5, "12:00"},
		{0.25, "06:00"},
		{0.979166666666667, "23:30"},
		{0.354166666666667, "08:30"},
	}
	for _, tc := range cases {
		if got := DecimalToTime(tc.decimal); got != tc.want {
			t.Fatalf("DecimalToTime(%v) = %q, expected %q", tc.decimal, got, tc.want)
		}
	}
}

func TestSerialToDate(t *testing.T) {
	cases := []struct {
		serial float64
		want   string
	}{
		{45292, "2024-01-01"},
		{45293, "2024-01-02"},
		{44927, "2023-01-01"},
	}
	for _, tc := range cases {
		if got := SerialToDate(tc.serial); got != tc.want {
			t.Fatalf("SerialToDate(%v) = %q, expected %q", tc.serial, got, tc.want)
		}
	}
}

func TestTimeMinutesRoundTrip(t *testing.T) {
	for _, value := range []string{"00:00", "08:30", "12:00", "23:59"} {
		minutes, ok := TimeToMinutes(value)
		if !ok {
			t.Fatalf("TimeToMinutes(%q) failed", value)
		}
		if got := MinutesToTime(minutes); got != value {
			t.Fatalf("round trip of %q = %q", value, got)
		}
	}
	if _, ok := TimeToMinutes("noon"); ok {
		t.Fatalf("TimeToMinutes accepted invalid input")
	}
}

func TestDeviation(t *testing.T) {
	cases := []struct {
		actual string
		target string
		want   int
	}{
		{"23:45", "23:30", 15},
		{"23:30", "23:30", 0},
		{"00:30", "23:30", 60},
		{"08:00", "08:30", 1410},
	}
	for _, tc := range cases {
		got, ok := Deviation(tc.actual, tc.target)
		if !ok {
			t.Fatalf("Deviation(%q, %q) failed", tc.actual, tc.target)
		}
		if got != tc.want {
			t.Fatalf("Deviation(%q, %q) = %d, expected %d", tc.actual, tc.target, got, tc.want)
		}
	}
	if _, ok := Deviation("late", "23:30"); ok {
		t.Fatalf("Deviation accepted invalid input")
	}
}
