package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseSnapshot() Snapshot {
	return BuildSnapshot([]SeasonRecord{
		{SeasonNumber: 1, PhaseOne: ResultWin, PhaseTwo: ResultWin},
		{SeasonNumber: 2, PhaseOne: ResultWin, PhaseTwo: ResultWin},
		{SeasonNumber: 3, PhaseOne: ResultLoss, PhaseTwo: ResultWin},
		{SeasonNumber: 4, PhaseOne: ResultWin, PhaseTwo: ResultLoss},
	})
}

func TestScore_MoreDominationsScoreHigher(t *testing.T) {
	cfg := DefaultScoringConfig()
	s := baseSnapshot()
	before := cfg.Score(s).FinalScore

	s.Dominations++
	after := cfg.Score(s).FinalScore

	assert.Greater(t, after, before)
}

func TestScore_MoreInvasionsScoreLower(t *testing.T) {
	cfg := DefaultScoringConfig()
	s := baseSnapshot()
	before := cfg.Score(s).FinalScore
	require.Positive(t, before)

	s.Invasions++
	after := cfg.Score(s).FinalScore

	assert.Less(t, after, before)
}

func TestScore_NeverNegative(t *testing.T) {
	cfg := DefaultScoringConfig()

	var records []SeasonRecord
	for i := 1; i <= 12; i++ {
		records = append(records, SeasonRecord{SeasonNumber: i, PhaseOne: ResultLoss, PhaseTwo: ResultLoss})
	}
	breakdown := cfg.Score(BuildSnapshot(records))

	assert.Equal(t, 0.0, breakdown.FinalScore)
	assert.Equal(t, TierD, breakdown.Tier)
	assert.Negative(t, breakdown.OutcomeComponent)
}

func TestScore_Deterministic(t *testing.T) {
	cfg := DefaultScoringConfig()
	s := baseSnapshot()

	first := cfg.Score(s)
	second := cfg.Score(s)

	assert.Equal(t, first, second)
}

func TestScore_ExperienceBonusSaturates(t *testing.T) {
	cfg := DefaultScoringConfig()

	atCap := baseSnapshot()
	atCap.SeasonsPlayed = cfg.Weights.ExperienceCapSeason
	beyondCap := baseSnapshot()
	beyondCap.SeasonsPlayed = cfg.Weights.ExperienceCapSeason * 3

	assert.Equal(t,
		cfg.Score(atCap).ExperienceComponent,
		cfg.Score(beyondCap).ExperienceComponent,
	)
}

func TestScore_ComponentsSumToFinal(t *testing.T) {
	cfg := DefaultScoringConfig()
	b := cfg.Score(baseSnapshot())

	assert.InDelta(t, b.FinalScore, b.RateComponent+b.OutcomeComponent+b.ExperienceComponent, 1e-9)
}
