package timeutil

import (
	"errors"
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	t.Parallel()

	input := time.Date(0, 1, 1, 13, 25, 7, 0, time.UTC)
	if got := FormatClock(input); got != "13:25:07" {
		t.Fatalf("expected 13:25:07, got %q", got)
	}

	withMicros := time.Date(0, 1, 1, 9, 0, 1, 500_000_000, time.UTC)
	if got := FormatClock(withMicros); got != "09:00:01.500000" {
		t.Fatalf("expected 09:00:01.500000, got %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{name: "zero", input: 0, want: "0:00:00"},
		{name: "minutes", input: 11 * time.Minute, want: "0:11:00"},
		{name: "hours", input: 2*time.Hour + 3*time.Minute + 4*time.Second, want: "2:03:04"},
		{name: "negative", input: -3 * time.Minute, want: "-0:03:00"},
		{name: "micros", input: time.Second + 250*time.Millisecond, want: "0:00:01.250000"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatDuration(tc.input); got != tc.want {
				t.Fatalf("unexpected duration text for %v: want %q, got %q", tc.input, tc.want, got)
			}
		})
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "clock", input: "0:11:00", want: 11 * time.Minute},
		{name: "clock padded", input: " 1:02:03 ", want: time.Hour + 2*time.Minute + 3*time.Second},
		{name: "negative clock", input: "-0:03:00", want: -3 * time.Minute},
		{name: "fractional seconds", input: "0:00:01.250000", want: 1250 * time.Millisecond},
		{name: "go duration", input: "11m0s", want: 11 * time.Minute},
		{name: "empty", input: "", wantErr: true},
		{name: "text", input: "not_a_timedelta", wantErr: true},
		{name: "minutes overflow", input: "0:61:00", wantErr: true},
		{name: "two parts", input: "10:00", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseDuration(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDuration) {
					t.Fatalf("expected ErrInvalidDuration for %q, got %v", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("unexpected duration for %q: want %v, got %v", tc.input, tc.want, got)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	t.Parallel()

	input := 3*time.Hour + 7*time.Minute + 9*time.Second
	got, err := ParseDuration(FormatDuration(input))
	if err != nil {
		t.Fatalf("parse formatted duration: %v", err)
	}
	if got != input {
		t.Fatalf("expected %v, got %v", input, got)
	}
}

func TestMinutes(t *testing.T) {
	t.Parallel()

	if got := Minutes(5); got != 5*time.Minute {
		t.Fatalf("expected 5m, got %v", got)
	}
}
