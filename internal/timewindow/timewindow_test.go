package timewindow

import (
	"errors"
	"testing"
)

func TestParseAcceptsTwelveHourVariants(t *testing.T) {
	inputs := []string{"7 PM", "7:00 PM", "7PM", "7:00PM", "7 pm"}
	for _, in := range inputs {
		parsed, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", in, err)
		}
		if parsed.Hour() != 19 || parsed.Minute() != 0 {
			t.Errorf("Parse(%q) = %02d:%02d, want 19:00", in, parsed.Hour(), parsed.Minute())
		}
	}
}

func TestParseBareHour(t *testing.T) {
	parsed, err := Parse("7")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if parsed.Hour() != 7 {
		t.Errorf("expected bare hour to parse as 7 AM, got %d", parsed.Hour())
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"banana", "", "25 PM"} {
		if _, err := Parse(in); !errors.Is(err, ErrUnparseableTime) {
			t.Errorf("Parse(%q) error = %v, want ErrUnparseableTime", in, err)
		}
	}
}

func TestWithinWindow(t *testing.T) {
	v, err := New("America/Chicago")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	cases := []struct {
		in   string
		want bool
	}{
		{"10:00 AM", true},
		{"12 PM", true},
		{"6:30 PM", true},
		{"7:30 PM", true},
		{"7:31 PM", false},
		{"8 PM", false},
		{"9:59 AM", false},
		{"9 AM", false},
	}
	for _, tc := range cases {
		got, err := v.WithinWindow(tc.in)
		if err != nil {
			t.Fatalf("WithinWindow(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("WithinWindow(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestWithinWindowPropagatesParseError(t *testing.T) {
	v, err := New("America/Chicago")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := v.WithinWindow("soon"); !errors.Is(err, ErrUnparseableTime) {
		t.Fatalf("expected ErrUnparseableTime, got %v", err)
	}
}

func TestNewRejectsUnknownTimezone(t *testing.T) {
	if _, err := New("Mars/Olympus_Mons"); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}
