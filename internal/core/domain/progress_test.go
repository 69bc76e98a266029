package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rebuild/internal/core/domain"
)

func stampAt(ms int64) domain.Stamp {
	return domain.Stamp{State: domain.StampPresent, ModTime: time.UnixMilli(ms)}
}

func TestParseProgressMode(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.ProgressMode
	}{
		{"", domain.ProgressRatio},
		{"ratio", domain.ProgressRatio},
		{"RATIO", domain.ProgressRatio},
		{"truncate", domain.ProgressTruncate},
		{" Truncate ", domain.ProgressTruncate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := domain.ParseProgressMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}

	_, err := domain.ParseProgressMode("fancy")
	assert.ErrorIs(t, err, domain.ErrInvalidProgressMode)
}

func TestProgressMode_Percentage(t *testing.T) {
	tests := []struct {
		name     string
		mode     domain.ProgressMode
		built    int
		total    int
		expected int
	}{
		{"truncate exact", domain.ProgressTruncate, 1, 4, 25},
		{"truncate uneven", domain.ProgressTruncate, 2, 3, 66},
		{"truncate uneven complete", domain.ProgressTruncate, 3, 3, 99},
		{"truncate over hundred targets", domain.ProgressTruncate, 50, 101, 0},
		{"truncate clamps", domain.ProgressTruncate, 5, 4, 100},
		{"ratio rounds up", domain.ProgressRatio, 2, 3, 67},
		{"ratio rounds down", domain.ProgressRatio, 1, 3, 33},
		{"ratio complete", domain.ProgressRatio, 3, 3, 100},
		{"ratio clamps", domain.ProgressRatio, 4, 3, 100},
		{"zero total", domain.ProgressRatio, 1, 0, 100},
		{"zero total truncate", domain.ProgressTruncate, 0, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.mode.Percentage(tt.built, tt.total))
		})
	}
}
