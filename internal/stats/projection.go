package stats

import "math"

// projectableOutcomes are the four possible results of a fully played
// next season, in the order the planner view lists them.
var projectableOutcomes = []Outcome{
	OutcomeDomination,
	OutcomeComeback,
	OutcomeReversal,
	OutcomeInvasion,
}

// OutcomeProjection is the simulated effect of one hypothetical
// next-season outcome.
type OutcomeProjection struct {
	Outcome   Outcome
	Snapshot  Snapshot
	Breakdown ScoreBreakdown
	Delta     float64
}

// NextTierRequirement describes what separates a kingdom from the tier
// above it. EstimatedSeasons is approximate: the point gap divided by a
// fixed assumed gain per domination, not a guarantee.
type NextTierRequirement struct {
	Tier             Tier
	Threshold        float64
	PointsNeeded     float64
	EstimatedSeasons int
}

// Projection is the full what-if result for one kingdom.
type Projection struct {
	Current  ScoreBreakdown
	Outcomes []OutcomeProjection

	// NextTier is empty for kingdoms already in tier S.
	NextTier []NextTierRequirement
}

// Project simulates each possible next-season outcome against a copy of
// the snapshot and re-runs the score engine. The caller's snapshot is
// never mutated.
func (c ScoringConfig) Project(s Snapshot) Projection {
	current := c.Score(s)

	p := Projection{
		Current:  current,
		Outcomes: make([]OutcomeProjection, 0, len(projectableOutcomes)),
		NextTier: []NextTierRequirement{},
	}

	for _, o := range projectableOutcomes {
		sim := applyOutcome(s.clone(), o)
		breakdown := c.Score(sim)
		p.Outcomes = append(p.Outcomes, OutcomeProjection{
			Outcome:   o,
			Snapshot:  sim,
			Breakdown: breakdown,
			Delta:     breakdown.FinalScore - current.FinalScore,
		})
	}

	if next, threshold, ok := c.Thresholds.Next(current.Tier); ok {
		gap := math.Max(0, threshold-current.FinalScore)
		p.NextTier = append(p.NextTier, NextTierRequirement{
			Tier:             next,
			Threshold:        threshold,
			PointsNeeded:     gap,
			EstimatedSeasons: int(math.Ceil(gap / c.AssumedDominationGain)),
		})
	}

	return p
}

// applyOutcome appends one hypothetical fully played season to the
// snapshot, updating counts, rates and streaks exactly as BuildSnapshot
// would have with the record present.
func applyOutcome(s Snapshot, o Outcome) Snapshot {
	s.SeasonsPlayed++

	var p1, p2 PhaseResult
	switch o {
	case OutcomeDomination:
		p1, p2 = ResultWin, ResultWin
		s.Dominations++
	case OutcomeInvasion:
		p1, p2 = ResultLoss, ResultLoss
		s.Invasions++
	case OutcomeReversal:
		p1, p2 = ResultWin, ResultLoss
		s.Reversals++
	case OutcomeComeback:
		p1, p2 = ResultLoss, ResultWin
		s.Comebacks++
	default:
		return s
	}

	if p1 == ResultWin {
		s.PhaseOneWins++
	} else {
		s.PhaseOneLosses++
	}
	if p2 == ResultWin {
		s.PhaseTwoWins++
	} else {
		s.PhaseTwoLosses++
	}
	s.PhaseOneWinRate = safeRate(s.PhaseOneWins, s.PhaseOneLosses)
	s.PhaseTwoWinRate = safeRate(s.PhaseTwoWins, s.PhaseTwoLosses)

	s.PhaseOne = extendStreaks(s.PhaseOne, p1)
	s.PhaseTwo = extendStreaks(s.PhaseTwo, p2)

	recent := make([]Outcome, 0, maxRecentOutcomes)
	recent = append(recent, o)
	for _, prev := range s.RecentOutcomes {
		if len(recent) == maxRecentOutcomes {
			break
		}
		recent = append(recent, prev)
	}
	s.RecentOutcomes = recent

	return s
}

// extendStreaks applies one new most-recent result to a phase's streaks.
func extendStreaks(ps PhaseStreaks, result PhaseResult) PhaseStreaks {
	if ps.Current.Type == result {
		ps.Current.Length++
	} else {
		ps.Current = Streak{Type: result, Length: 1}
	}
	if result == ResultWin && ps.Current.Length > ps.BestWin {
		ps.BestWin = ps.Current.Length
	}
	if result == ResultLoss && ps.Current.Length > ps.BestLoss {
		ps.BestLoss = ps.Current.Length
	}
	return ps
}
