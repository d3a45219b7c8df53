// Package stats turns a kingdom's raw KvK season history into comparable
// scores, tier labels, streaks and what-if projections. Everything in here
// is a pure function over its input; every view that shows a score goes
// through this package so the numbers agree everywhere.
package stats

import "sort"

type PhaseResult int

const (
	ResultUnset PhaseResult = iota
	ResultWin
	ResultLoss
	ResultBye
)

func (p PhaseResult) String() string {
	switch p {
	case ResultWin:
		return "win"
	case ResultLoss:
		return "loss"
	case ResultBye:
		return "bye"
	default:
		return "unset"
	}
}

// SeasonRecord is one kingdom's result for one KvK season. A season has
// two sequential phases: preparation (phase one) and battle (phase two).
type SeasonRecord struct {
	SeasonNumber int
	OpponentID   int
	PhaseOne     PhaseResult
	PhaseTwo     PhaseResult
}

// IsBye reports whether the kingdom had no opponent that season. Bye
// seasons count toward seasons played but never toward win/loss totals or
// streak continuity.
func (r SeasonRecord) IsBye() bool {
	return r.PhaseOne == ResultBye || r.PhaseTwo == ResultBye
}

func sanitizePhase(p PhaseResult) PhaseResult {
	if p < ResultUnset || p > ResultBye {
		return ResultUnset
	}
	return p
}

// Normalize turns an unordered, possibly duplicated record list into the
// canonical most-recent-first sequence the rest of the package operates
// on. Duplicate season numbers resolve last-write-wins (upstream
// data-entry races re-submit corrections), records with neither phase
// reported are dropped, and malformed phase values degrade to unset
// rather than failing. Normalize of its own output is a no-op.
func Normalize(records []SeasonRecord) []SeasonRecord {
	bySeason := make(map[int]SeasonRecord, len(records))
	for _, r := range records {
		if r.SeasonNumber < 1 {
			continue
		}
		r.PhaseOne = sanitizePhase(r.PhaseOne)
		r.PhaseTwo = sanitizePhase(r.PhaseTwo)
		bySeason[r.SeasonNumber] = r
	}

	out := make([]SeasonRecord, 0, len(bySeason))
	for _, r := range bySeason {
		if r.PhaseOne == ResultUnset && r.PhaseTwo == ResultUnset {
			continue
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].SeasonNumber > out[j].SeasonNumber
	})
	return out
}
