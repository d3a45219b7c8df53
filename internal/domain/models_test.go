package domain

import (
	"testing"

	"kingdom-tracker/internal/stats"

	"github.com/stretchr/testify/assert"
)

func TestParsePhase(t *testing.T) {
	tests := []struct {
		in   string
		want stats.PhaseResult
	}{
		{"win", stats.ResultWin},
		{"loss", stats.ResultLoss},
		{"bye", stats.ResultBye},
		{"", stats.ResultUnset},
		{"WIN", stats.ResultUnset}, // garbage degrades, never crashes
		{"victory", stats.ResultUnset},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePhase(tt.in), "input %q", tt.in)
	}
}

func TestToRecords_PreservesSubmissionOrder(t *testing.T) {
	results := []SeasonResult{
		{SeasonNumber: 7, PhaseOne: "win", PhaseTwo: "win"},
		{SeasonNumber: 7, PhaseOne: "loss", PhaseTwo: "loss"},
	}

	records := ToRecords(results)
	normalized := stats.Normalize(records)

	// The later submission is the correction and must win.
	assert.Len(t, normalized, 1)
	assert.Equal(t, stats.ResultLoss, normalized[0].PhaseOne)
}
