package civildate

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	d, err := Parse("1995-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.String() != "1995-03-15" {
		t.Errorf("expected 1995-03-15, got %s", d)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"15-03-1995", "1995/03/15", "not-a-date", ""} {
		if _, err := Parse(s); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.August, 31)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != `"2025-08-31"` {
		t.Errorf("expected \"2025-08-31\", got %s", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("expected %s, got %s", d, back)
	}
}

func TestUnmarshalJSON_RejectsNonString(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`20250831`), &d); err == nil {
		t.Error("expected error for non-string date")
	}
}

func TestFromTime_DropsTimeOfDay(t *testing.T) {
	d := FromTime(time.Date(2025, time.August, 31, 23, 59, 58, 0, time.UTC))
	if d.String() != "2025-08-31" {
		t.Errorf("expected 2025-08-31, got %s", d)
	}
	if !d.Time().Equal(time.Date(2025, time.August, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected midnight UTC, got %v", d.Time())
	}
}

func TestIsZero(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Error("expected zero value to report IsZero")
	}
	if New(2025, time.January, 1).IsZero() {
		t.Error("expected set date to not report IsZero")
	}
}
