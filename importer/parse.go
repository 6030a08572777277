package importer

import (
	"fmt"
	"jobaudit/joblog"
	"time"

	"github.com/ncruces/go-strftime"
)

func parseTimestamp(value, format string) (time.Time, error) {
	if format == "" {
		format = joblog.DefaultTimeFormat
	}
	parsed, err := strftime.Parse(format, value)
	if err != nil {
		return time.Time{}, err
	}
	return parsed, nil
}

// ValidateTimeFormat reports whether format can be used to parse timestamps.
func ValidateTimeFormat(format string) error {
	if _, err := strftime.Layout(format); err != nil {
		return fmt.Errorf("unsupported time format %q: %w", format, err)
	}
	return nil
}
