package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSnapshot_EmptyHistory(t *testing.T) {
	s := BuildSnapshot(nil)

	assert.Equal(t, 0, s.SeasonsPlayed)
	assert.Equal(t, 0.0, s.PhaseOneWinRate)
	assert.Equal(t, 0.0, s.PhaseTwoWinRate)
	assert.Equal(t, Streak{ResultUnset, 0}, s.PhaseOne.Current)
	assert.Equal(t, Streak{ResultUnset, 0}, s.PhaseTwo.Current)
	assert.Empty(t, s.RecentOutcomes)

	cfg := DefaultScoringConfig()
	breakdown := cfg.Score(s)
	assert.Equal(t, 0.0, breakdown.FinalScore)
	assert.Equal(t, TierD, breakdown.Tier)
}

func TestBuildSnapshot_TwoDominationsOneInvasion(t *testing.T) {
	records := []SeasonRecord{
		{SeasonNumber: 1, PhaseOne: ResultWin, PhaseTwo: ResultWin},
		{SeasonNumber: 2, PhaseOne: ResultWin, PhaseTwo: ResultWin},
		{SeasonNumber: 3, PhaseOne: ResultLoss, PhaseTwo: ResultLoss},
	}

	s := BuildSnapshot(records)

	assert.Equal(t, 3, s.SeasonsPlayed)
	assert.Equal(t, 2, s.Dominations)
	assert.Equal(t, 1, s.Invasions)
	assert.Equal(t, 0, s.Reversals)
	assert.Equal(t, 0, s.Comebacks)
	assert.Equal(t, 2, s.PhaseOneWins)
	assert.Equal(t, 1, s.PhaseOneLosses)
	assert.InDelta(t, 2.0/3.0, s.PhaseOneWinRate, 1e-9)

	assert.Equal(t, Streak{ResultLoss, 1}, s.PhaseOne.Current)
	assert.Equal(t, 2, s.PhaseOne.BestWin)

	assert.Equal(t, []Outcome{OutcomeInvasion, OutcomeDomination, OutcomeDomination}, s.RecentOutcomes)
}

func TestBuildSnapshot_ByesCountAsPlayed(t *testing.T) {
	records := []SeasonRecord{
		{SeasonNumber: 1, PhaseOne: ResultWin, PhaseTwo: ResultWin},
		{SeasonNumber: 2, PhaseOne: ResultBye, PhaseTwo: ResultBye},
	}

	s := BuildSnapshot(records)

	assert.Equal(t, 2, s.SeasonsPlayed)
	assert.Equal(t, 1, s.Byes)
	assert.Equal(t, 1, s.PhaseOneWins)
	assert.Equal(t, 0, s.PhaseOneLosses)
	assert.Equal(t, 1.0, s.PhaseOneWinRate)
}

func TestBuildSnapshot_RecentOutcomesBounded(t *testing.T) {
	var records []SeasonRecord
	for i := 1; i <= maxRecentOutcomes+5; i++ {
		records = append(records, SeasonRecord{SeasonNumber: i, PhaseOne: ResultWin, PhaseTwo: ResultWin})
	}

	s := BuildSnapshot(records)
	assert.Len(t, s.RecentOutcomes, maxRecentOutcomes)
}
