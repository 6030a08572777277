package classify

import "time"

// Tier is the severity a job duration falls into.
type Tier int

const (
	TierNone Tier = iota
	TierWarning
	TierError
)

func (t Tier) String() string {
	switch t {
	case TierWarning:
		return "WARNING"
	case TierError:
		return "ERROR"
	default:
		return "NONE"
	}
}

// Duration places d into a tier. Both comparisons are strict and the error
// threshold is checked first, so a duration equal to errorThreshold is a
// warning (when it exceeds warningThreshold) and never an error.
func Duration(d, warningThreshold, errorThreshold time.Duration) Tier {
	if d > errorThreshold {
		return TierError
	}
	if d > warningThreshold {
		return TierWarning
	}
	return TierNone
}
