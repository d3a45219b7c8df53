package stats

// Outcome is the two-phase classification of a single season.
type Outcome int

const (
	// OutcomeUnreported marks a half-reported record (one phase still
	// unset). Such records are excluded from every outcome bucket.
	OutcomeUnreported Outcome = iota
	OutcomeBye
	OutcomeDomination // won both phases
	OutcomeInvasion   // lost both phases
	OutcomeReversal   // won preparation, lost the battle
	OutcomeComeback   // lost preparation, won the battle
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBye:
		return "bye"
	case OutcomeDomination:
		return "domination"
	case OutcomeInvasion:
		return "invasion"
	case OutcomeReversal:
		return "reversal"
	case OutcomeComeback:
		return "comeback"
	default:
		return "unreported"
	}
}

// Classify maps a record to exactly one outcome. A bye in either phase
// makes the whole season a bye; an unset phase on a non-bye record means
// the season is not fully reported yet.
func Classify(r SeasonRecord) Outcome {
	if r.IsBye() {
		return OutcomeBye
	}
	if r.PhaseOne == ResultUnset || r.PhaseTwo == ResultUnset {
		return OutcomeUnreported
	}
	switch {
	case r.PhaseOne == ResultWin && r.PhaseTwo == ResultWin:
		return OutcomeDomination
	case r.PhaseOne == ResultLoss && r.PhaseTwo == ResultLoss:
		return OutcomeInvasion
	case r.PhaseOne == ResultWin:
		return OutcomeReversal
	default:
		return OutcomeComeback
	}
}
