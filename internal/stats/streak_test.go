package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcStreaks_EmptyHistory(t *testing.T) {
	got := calcStreaks(nil)

	assert.Equal(t, Streak{Type: ResultUnset, Length: 0}, got.Current)
	assert.Equal(t, 0, got.BestWin)
	assert.Equal(t, 0, got.BestLoss)
}

func TestCalcStreaks(t *testing.T) {
	tests := []struct {
		name    string
		results []PhaseResult // most recent first
		want    PhaseStreaks
	}{
		{
			name:    "single result",
			results: []PhaseResult{ResultWin},
			want:    PhaseStreaks{Current: Streak{ResultWin, 1}, BestWin: 1},
		},
		{
			name:    "loss after two wins",
			results: []PhaseResult{ResultLoss, ResultWin, ResultWin},
			want:    PhaseStreaks{Current: Streak{ResultLoss, 1}, BestWin: 2, BestLoss: 1},
		},
		{
			name:    "current run is best",
			results: []PhaseResult{ResultWin, ResultWin, ResultWin, ResultLoss},
			want:    PhaseStreaks{Current: Streak{ResultWin, 3}, BestWin: 3, BestLoss: 1},
		},
		{
			name: "best run buried in history",
			results: []PhaseResult{
				ResultLoss,
				ResultWin, ResultWin, ResultWin, ResultWin,
				ResultLoss, ResultLoss,
			},
			want: PhaseStreaks{Current: Streak{ResultLoss, 1}, BestWin: 4, BestLoss: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calcStreaks(tt.results))
		})
	}
}

// A bye season between two wins must neither break nor extend the
// surrounding streak; the sequence is scored as if the bye were absent.
func TestStreaks_ByeIsInvisible(t *testing.T) {
	withBye := []SeasonRecord{
		{SeasonNumber: 1, PhaseOne: ResultWin, PhaseTwo: ResultWin},
		{SeasonNumber: 2, PhaseOne: ResultBye, PhaseTwo: ResultBye},
		{SeasonNumber: 3, PhaseOne: ResultWin, PhaseTwo: ResultWin},
	}
	withoutBye := []SeasonRecord{
		{SeasonNumber: 1, PhaseOne: ResultWin, PhaseTwo: ResultWin},
		{SeasonNumber: 3, PhaseOne: ResultWin, PhaseTwo: ResultWin},
	}

	a := BuildSnapshot(withBye)
	b := BuildSnapshot(withoutBye)

	assert.Equal(t, b.PhaseOne, a.PhaseOne)
	assert.Equal(t, b.PhaseTwo, a.PhaseTwo)
	assert.Equal(t, Streak{ResultWin, 2}, a.PhaseOne.Current)
	assert.Equal(t, 2, a.PhaseOne.BestWin)
}

func TestStreaks_HalfReportedPhaseSkipped(t *testing.T) {
	records := []SeasonRecord{
		{SeasonNumber: 1, PhaseOne: ResultWin, PhaseTwo: ResultWin},
		{SeasonNumber: 2, PhaseOne: ResultWin, PhaseTwo: ResultUnset},
		{SeasonNumber: 3, PhaseOne: ResultWin, PhaseTwo: ResultWin},
	}

	s := BuildSnapshot(records)

	// Phase one saw all three results; phase two only the two reported.
	assert.Equal(t, Streak{ResultWin, 3}, s.PhaseOne.Current)
	assert.Equal(t, Streak{ResultWin, 2}, s.PhaseTwo.Current)
}
