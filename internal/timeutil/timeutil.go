package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDuration is returned by ParseDuration for text that is not a
// clock-style or Go-style duration.
var ErrInvalidDuration = errors.New("invalid duration")

// FormatClock renders the time-of-day portion of value. Microseconds are
// only appended when present.
func FormatClock(value time.Time) string {
	if value.Nanosecond()/1000 == 0 {
		return value.Format("15:04:05")
	}
	return value.Format("15:04:05.000000")
}

// FormatDuration renders d as H:MM:SS with an optional microsecond part.
// Negative durations get a leading minus sign.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	d = d.Truncate(time.Microsecond)
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	micros := (d - seconds*time.Second) / time.Microsecond

	out := fmt.Sprintf("%s%d:%02d:%02d", sign, hours, minutes, seconds)
	if micros > 0 {
		out += fmt.Sprintf(".%06d", micros)
	}
	return out
}

// ParseDuration accepts the H:MM:SS form produced by FormatDuration as well
// as Go duration strings such as "11m0s".
func ParseDuration(raw string) (time.Duration, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidDuration)
	}

	if !strings.Contains(cleaned, ":") {
		d, err := time.ParseDuration(cleaned)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
		}
		return d, nil
	}

	negative := strings.HasPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "-")

	parts := strings.Split(cleaned, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil || seconds < 0 || seconds >= 60 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, raw)
	}

	d := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds*float64(time.Second)).Round(time.Microsecond)
	if negative {
		d = -d
	}
	return d, nil
}

// Minutes converts a whole number of minutes into a duration.
func Minutes(value int) time.Duration {
	return time.Duration(value) * time.Minute
}
