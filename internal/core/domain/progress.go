package domain

import "strings"

// ProgressMode selects how the build percentage is computed.
type ProgressMode string

const (
	// ProgressRatio rounds built/total to the nearest percent.
	ProgressRatio ProgressMode = "ratio"
	// ProgressTruncate reproduces the integer formula (100/total)*built.
	ProgressTruncate ProgressMode = "truncate"
)

// ParseProgressMode converts a string to a ProgressMode.
// An empty string yields ProgressRatio.
func ParseProgressMode(s string) (ProgressMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ProgressRatio):
		return ProgressRatio, nil
	case string(ProgressTruncate):
		return ProgressTruncate, nil
	default:
		return "", ErrInvalidProgressMode
	}
}

// Percentage computes the progress percentage for built out of total targets.
// A zero total reports 100. The result never exceeds 100.
func (m ProgressMode) Percentage(built, total int) int {
	if total <= 0 {
		return 100
	}
	var percent int
	if m == ProgressTruncate {
		percent = (100 / total) * built
	} else {
		percent = (200*built + total) / (2 * total)
	}
	return min(percent, 100)
}
