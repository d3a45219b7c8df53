package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		p1   PhaseResult
		p2   PhaseResult
		want Outcome
	}{
		{"win win", ResultWin, ResultWin, OutcomeDomination},
		{"loss loss", ResultLoss, ResultLoss, OutcomeInvasion},
		{"win loss", ResultWin, ResultLoss, OutcomeReversal},
		{"loss win", ResultLoss, ResultWin, OutcomeComeback},
		{"bye bye", ResultBye, ResultBye, OutcomeBye},
		{"bye overrides win", ResultBye, ResultWin, OutcomeBye},
		{"bye overrides unset", ResultUnset, ResultBye, OutcomeBye},
		{"half reported", ResultWin, ResultUnset, OutcomeUnreported},
		{"half reported other phase", ResultUnset, ResultLoss, OutcomeUnreported},
		{"fully unset", ResultUnset, ResultUnset, OutcomeUnreported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(SeasonRecord{SeasonNumber: 1, PhaseOne: tt.p1, PhaseTwo: tt.p2})
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every combination of the two phase results lands in exactly one bucket:
// the five labels plus the excluded unreported case partition the space.
func TestClassify_ExhaustivePartition(t *testing.T) {
	all := []PhaseResult{ResultUnset, ResultWin, ResultLoss, ResultBye}
	counts := map[Outcome]int{}

	for _, p1 := range all {
		for _, p2 := range all {
			r := SeasonRecord{SeasonNumber: 1, PhaseOne: p1, PhaseTwo: p2}
			o := Classify(r)
			counts[o]++

			if r.IsBye() {
				assert.Equal(t, OutcomeBye, o, "%v/%v", p1, p2)
			} else if p1 == ResultUnset || p2 == ResultUnset {
				assert.Equal(t, OutcomeUnreported, o, "%v/%v", p1, p2)
			} else {
				assert.NotEqual(t, OutcomeBye, o)
				assert.NotEqual(t, OutcomeUnreported, o)
			}
		}
	}

	assert.Equal(t, 1, counts[OutcomeDomination])
	assert.Equal(t, 1, counts[OutcomeInvasion])
	assert.Equal(t, 1, counts[OutcomeReversal])
	assert.Equal(t, 1, counts[OutcomeComeback])
	assert.Equal(t, 7, counts[OutcomeBye])
	assert.Equal(t, 5, counts[OutcomeUnreported])
}
