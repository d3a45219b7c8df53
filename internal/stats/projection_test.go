package stats

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findOutcome(t *testing.T, p Projection, o Outcome) OutcomeProjection {
	t.Helper()
	for _, op := range p.Outcomes {
		if op.Outcome == o {
			return op
		}
	}
	t.Fatalf("projection missing outcome %v", o)
	return OutcomeProjection{}
}

func TestProject_DeltaSigns(t *testing.T) {
	cfg := DefaultScoringConfig()
	p := cfg.Project(baseSnapshot())

	require.Len(t, p.Outcomes, 4)
	assert.GreaterOrEqual(t, findOutcome(t, p, OutcomeDomination).Delta, 0.0)
	assert.LessOrEqual(t, findOutcome(t, p, OutcomeInvasion).Delta, 0.0)
}

func TestProject_DoesNotMutateSnapshot(t *testing.T) {
	cfg := DefaultScoringConfig()
	s := baseSnapshot()
	original := s.clone()

	cfg.Project(s)

	assert.Empty(t, cmp.Diff(original, s))
}

func TestProject_SimulationMatchesRealAppend(t *testing.T) {
	cfg := DefaultScoringConfig()
	records := []SeasonRecord{
		{SeasonNumber: 1, PhaseOne: ResultWin, PhaseTwo: ResultWin},
		{SeasonNumber: 2, PhaseOne: ResultLoss, PhaseTwo: ResultLoss},
		{SeasonNumber: 3, PhaseOne: ResultWin, PhaseTwo: ResultLoss},
	}

	p := cfg.Project(BuildSnapshot(records))
	simulated := findOutcome(t, p, OutcomeDomination).Snapshot

	appended := BuildSnapshot(append(records,
		SeasonRecord{SeasonNumber: 4, PhaseOne: ResultWin, PhaseTwo: ResultWin}))

	assert.Empty(t, cmp.Diff(appended, simulated))
}

func TestProject_NextTierGap(t *testing.T) {
	cfg := DefaultScoringConfig()
	p := cfg.Project(BuildSnapshot(nil))

	require.Equal(t, TierD, p.Current.Tier)
	require.Len(t, p.NextTier, 1)

	req := p.NextTier[0]
	assert.Equal(t, TierC, req.Tier)
	assert.Equal(t, cfg.Thresholds.C, req.PointsNeeded)
	assert.Equal(t, int(math.Ceil(cfg.Thresholds.C/cfg.AssumedDominationGain)), req.EstimatedSeasons)
}

func TestProject_TopTierHasNoRequirements(t *testing.T) {
	cfg := DefaultScoringConfig()

	var records []SeasonRecord
	for i := 1; i <= 15; i++ {
		records = append(records, SeasonRecord{SeasonNumber: i, PhaseOne: ResultWin, PhaseTwo: ResultWin})
	}
	snapshot := BuildSnapshot(records)
	require.Equal(t, TierS, cfg.Score(snapshot).Tier)

	p := cfg.Project(snapshot)
	assert.Empty(t, p.NextTier)
}
