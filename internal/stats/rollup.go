package stats

import "sort"

// Member is one kingdom's contribution to an alliance roll-up.
type Member struct {
	KingdomID int
	Name      string
	Snapshot  Snapshot
	Breakdown ScoreBreakdown
}

// Rollup is an ephemeral aggregate over a caller-chosen set of kingdoms.
// It is recomputed per request and never persisted.
type Rollup struct {
	MemberCount int
	AvgScore    float64

	// MedianScore uses the lower-middle element of the sorted score
	// list for even member counts. That matches what the alliance views
	// have always displayed; see DESIGN.md before "fixing" it to the
	// interpolated median.
	MedianScore float64

	TotalSeasons     int
	TotalDominations int
	DominationRate   float64

	// TierDistribution always carries all five tiers, zero-filled.
	TierDistribution map[Tier]int

	TopPerformers    []Member
	BottomPerformers []Member
}

// BuildRollup aggregates member stats. An empty member list returns a
// zero-filled roll-up so the UI can render a "no members" state without
// special cases.
func BuildRollup(members []Member, topN int) Rollup {
	r := Rollup{
		MemberCount:      len(members),
		TierDistribution: make(map[Tier]int, len(Tiers)),
		TopPerformers:    []Member{},
		BottomPerformers: []Member{},
	}
	for _, t := range Tiers {
		r.TierDistribution[t] = 0
	}
	if len(members) == 0 {
		return r
	}

	ranked := make([]Member, len(members))
	copy(ranked, members)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Breakdown.FinalScore > ranked[j].Breakdown.FinalScore
	})

	var sum float64
	for _, m := range ranked {
		sum += m.Breakdown.FinalScore
		r.TierDistribution[m.Breakdown.Tier]++
		r.TotalSeasons += m.Snapshot.SeasonsPlayed
		r.TotalDominations += m.Snapshot.Dominations
	}
	r.AvgScore = sum / float64(len(ranked))

	// ranked is descending; the lower-middle of the ascending order is
	// index (n-1)/2 from the bottom.
	r.MedianScore = ranked[len(ranked)-1-(len(ranked)-1)/2].Breakdown.FinalScore

	if r.TotalSeasons > 0 {
		r.DominationRate = float64(r.TotalDominations) / float64(r.TotalSeasons)
	}

	if topN < 0 {
		topN = 0
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}
	r.TopPerformers = append(r.TopPerformers, ranked[:topN]...)
	for i := len(ranked) - 1; i >= len(ranked)-topN; i-- {
		r.BottomPerformers = append(r.BottomPerformers, ranked[i])
	}

	return r
}
