package finbook

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
		{"2025-13-01", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_JSON(t *testing.T) {
	tests := []struct {
		name string
		date Date
		json string
	}{
		{"Zero Date", Date{}, `""`},
		{"Non-Zero Date", NewDate(2024, 5, 21), `"2024-05-21"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.date)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			if string(got) != tt.json {
				t.Errorf("json.Marshal() = %s, want %s", got, tt.json)
			}

			var back Date
			if err := json.Unmarshal(got, &back); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}
			if back != tt.date {
				t.Errorf("json.Unmarshal() got = %v, want %v", back, tt.date)
			}
		})
	}
}

func TestDate_Ordering(t *testing.T) {
	before := day("2025-01-31")
	after := day("2025-02-01")

	if !before.Before(after) {
		t.Errorf("%v should be before %v", before, after)
	}
	if !after.After(before) {
		t.Errorf("%v should be after %v", after, before)
	}
	if before.Before(before) || before.After(before) {
		t.Error("a date should neither be before nor after itself")
	}
}

func TestDate_Add(t *testing.T) {
	// Adding days rolls over month and year boundaries.
	if got := day("2025-12-31").Add(1); got != day("2026-01-01") {
		t.Errorf("Add(1) = %v, want 2026-01-01", got)
	}
	if got := day("2025-03-01").Add(-1); got != day("2025-02-28") {
		t.Errorf("Add(-1) = %v, want 2025-02-28", got)
	}
}
