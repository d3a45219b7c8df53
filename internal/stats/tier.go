package stats

type tierBound struct {
	tier Tier
	min  float64
}

func (t TierThresholds) ladder() [5]tierBound {
	return [5]tierBound{
		{TierS, t.S},
		{TierA, t.A},
		{TierB, t.B},
		{TierC, t.C},
		{TierD, 0},
	}
}

// Classify returns the highest tier whose threshold is <= score. Scores
// below C (including a clamped 0) land in D.
func (t TierThresholds) Classify(score float64) Tier {
	for _, b := range t.ladder() {
		if score >= b.min {
			return b.tier
		}
	}
	return TierD
}

// Next returns the tier directly above the given one and its threshold.
// ok is false for TierS: the top tier is terminal and has nothing above
// it.
func (t TierThresholds) Next(tier Tier) (next Tier, threshold float64, ok bool) {
	switch tier {
	case TierD:
		return TierC, t.C, true
	case TierC:
		return TierB, t.B, true
	case TierB:
		return TierA, t.A, true
	case TierA:
		return TierS, t.S, true
	default:
		return "", 0, false
	}
}
