package stats

// maxRecentOutcomes bounds the display list on a snapshot; scoring never
// reads it.
const maxRecentOutcomes = 10

// Snapshot is the normalized, immutable aggregate of one kingdom's season
// history. It is derived data: recomputed from the record list on every
// read, never stored.
type Snapshot struct {
	SeasonsPlayed int
	Byes          int

	PhaseOneWins   int
	PhaseOneLosses int
	PhaseTwoWins   int
	PhaseTwoLosses int

	PhaseOneWinRate float64
	PhaseTwoWinRate float64

	Dominations int
	Invasions   int
	Reversals   int
	Comebacks   int

	PhaseOne PhaseStreaks
	PhaseTwo PhaseStreaks

	// RecentOutcomes is most-recent-first and bounded; half-reported
	// seasons are skipped.
	RecentOutcomes []Outcome
}

func safeRate(wins, losses int) float64 {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return float64(wins) / float64(total)
}

// BuildSnapshot normalizes records and aggregates them into a Snapshot.
// An empty history yields the zero snapshot, not an error.
func BuildSnapshot(records []SeasonRecord) Snapshot {
	normalized := Normalize(records)

	var s Snapshot
	s.SeasonsPlayed = len(normalized)
	s.RecentOutcomes = []Outcome{}

	for _, r := range normalized {
		outcome := Classify(r)
		switch outcome {
		case OutcomeBye:
			s.Byes++
		case OutcomeDomination:
			s.Dominations++
		case OutcomeInvasion:
			s.Invasions++
		case OutcomeReversal:
			s.Reversals++
		case OutcomeComeback:
			s.Comebacks++
		}
		if outcome != OutcomeUnreported && len(s.RecentOutcomes) < maxRecentOutcomes {
			s.RecentOutcomes = append(s.RecentOutcomes, outcome)
		}

		// Phase totals are independent per phase: a reported result
		// counts even while the other phase is still unset.
		if !r.IsBye() {
			switch r.PhaseOne {
			case ResultWin:
				s.PhaseOneWins++
			case ResultLoss:
				s.PhaseOneLosses++
			}
			switch r.PhaseTwo {
			case ResultWin:
				s.PhaseTwoWins++
			case ResultLoss:
				s.PhaseTwoLosses++
			}
		}
	}

	s.PhaseOneWinRate = safeRate(s.PhaseOneWins, s.PhaseOneLosses)
	s.PhaseTwoWinRate = safeRate(s.PhaseTwoWins, s.PhaseTwoLosses)
	s.PhaseOne = calcStreaks(phaseResults(normalized, false))
	s.PhaseTwo = calcStreaks(phaseResults(normalized, true))

	return s
}

// clone returns a deep copy safe to mutate without touching the original.
func (s Snapshot) clone() Snapshot {
	out := s
	out.RecentOutcomes = make([]Outcome, len(s.RecentOutcomes))
	copy(out.RecentOutcomes, s.RecentOutcomes)
	return out
}
