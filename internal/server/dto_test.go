package server

import (
	"encoding/json"
	"testing"

	"kingdom-tracker/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An empty alliance must serialize to a fully shaped zero response so
// the UI can render a "no members" state without null checks.
func TestToRollupResponse_Empty(t *testing.T) {
	rollup := stats.BuildRollup(nil, 5)
	resp := toRollupResponse(&rollup)

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, float64(0), decoded["member_count"])
	assert.Equal(t, float64(0), decoded["avg_score"])

	dist, ok := decoded["tier_distribution"].(map[string]any)
	require.True(t, ok)
	for _, tier := range []string{"S", "A", "B", "C", "D"} {
		assert.Contains(t, dist, tier)
		assert.Equal(t, float64(0), dist[tier])
	}

	top, ok := decoded["top_performers"].([]any)
	require.True(t, ok, "top_performers must be an array, not null")
	assert.Empty(t, top)
}

func TestToProjectionResponse_TopTier(t *testing.T) {
	cfg := stats.DefaultScoringConfig()

	var records []stats.SeasonRecord
	for i := 1; i <= 15; i++ {
		records = append(records, stats.SeasonRecord{SeasonNumber: i, PhaseOne: stats.ResultWin, PhaseTwo: stats.ResultWin})
	}
	projection := cfg.Project(stats.BuildSnapshot(records))
	resp := toProjectionResponse(&projection)

	body, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	next, ok := decoded["next_tier"].([]any)
	require.True(t, ok, "next_tier must be an array, not null")
	assert.Empty(t, next)
}
