package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(id int, score float64, tier Tier, seasons, dominations int) Member {
	return Member{
		KingdomID: id,
		Snapshot:  Snapshot{SeasonsPlayed: seasons, Dominations: dominations},
		Breakdown: ScoreBreakdown{FinalScore: score, Tier: tier},
	}
}

func TestBuildRollup_Empty(t *testing.T) {
	r := BuildRollup(nil, 5)

	assert.Equal(t, 0, r.MemberCount)
	assert.Equal(t, 0.0, r.AvgScore)
	assert.Equal(t, 0.0, r.MedianScore)
	assert.Equal(t, 0.0, r.DominationRate)
	assert.Equal(t, map[Tier]int{TierS: 0, TierA: 0, TierB: 0, TierC: 0, TierD: 0}, r.TierDistribution)
	assert.NotNil(t, r.TopPerformers)
	assert.Empty(t, r.TopPerformers)
	assert.Empty(t, r.BottomPerformers)
}

// Even-length member lists take the lower-middle element, not the
// interpolated median. Intentional; see DESIGN.md.
func TestBuildRollup_MedianLowerMiddle(t *testing.T) {
	r := BuildRollup([]Member{
		member(1, 10, TierD, 4, 0),
		member(2, 20, TierD, 4, 0),
	}, 5)

	assert.Equal(t, 10.0, r.MedianScore)
	assert.Equal(t, 15.0, r.AvgScore)
}

func TestBuildRollup_MedianOddCount(t *testing.T) {
	r := BuildRollup([]Member{
		member(1, 30, TierD, 1, 0),
		member(2, 10, TierD, 1, 0),
		member(3, 20, TierD, 1, 0),
	}, 5)

	assert.Equal(t, 20.0, r.MedianScore)
}

func TestBuildRollup_Aggregates(t *testing.T) {
	members := []Member{
		member(1, 95, TierS, 10, 6),
		member(2, 60, TierB, 10, 2),
		member(3, 40, TierC, 5, 1),
		member(4, 5, TierD, 5, 1),
	}

	r := BuildRollup(members, 2)

	assert.Equal(t, 4, r.MemberCount)
	assert.Equal(t, 50.0, r.AvgScore)
	assert.Equal(t, 30, r.TotalSeasons)
	assert.Equal(t, 10, r.TotalDominations)
	assert.InDelta(t, 10.0/30.0, r.DominationRate, 1e-9)
	assert.Equal(t, map[Tier]int{TierS: 1, TierA: 0, TierB: 1, TierC: 1, TierD: 1}, r.TierDistribution)

	require.Len(t, r.TopPerformers, 2)
	assert.Equal(t, 1, r.TopPerformers[0].KingdomID)
	assert.Equal(t, 2, r.TopPerformers[1].KingdomID)

	require.Len(t, r.BottomPerformers, 2)
	assert.Equal(t, 4, r.BottomPerformers[0].KingdomID)
	assert.Equal(t, 3, r.BottomPerformers[1].KingdomID)
}

func TestBuildRollup_TopNClamped(t *testing.T) {
	members := []Member{member(1, 10, TierD, 1, 0)}

	r := BuildRollup(members, 5)
	assert.Len(t, r.TopPerformers, 1)
	assert.Len(t, r.BottomPerformers, 1)

	r = BuildRollup(members, -1)
	assert.Empty(t, r.TopPerformers)
}

func TestBuildRollup_ZeroSeasonsNoDivide(t *testing.T) {
	r := BuildRollup([]Member{member(1, 0, TierD, 0, 0)}, 5)
	assert.Equal(t, 0.0, r.DominationRate)
}
