package domain

import (
	"time"

	"kingdom-tracker/internal/stats"
)

type Kingdom struct {
	KingdomID      int
	Name           string
	AllianceTag    string
	Power          int64
	IsPartialFetch bool
	LastFetchAt    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SeasonResult is one stored season report for a kingdom. Duplicate
// season numbers are kept as submitted; the stats normalizer resolves
// them last-write-wins by submission order.
type SeasonResult struct {
	ID           string // nanoid
	KingdomID    int
	SeasonNumber int
	OpponentID   int
	PhaseOne     string // "win", "loss", "bye" or ""
	PhaseTwo     string
	SubmittedAt  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ParsePhase maps a stored phase value to its result. Anything
// unrecognized degrades to unset; bad upstream data must never take a
// dashboard down.
func ParsePhase(v string) stats.PhaseResult {
	switch v {
	case "win":
		return stats.ResultWin
	case "loss":
		return stats.ResultLoss
	case "bye":
		return stats.ResultBye
	default:
		return stats.ResultUnset
	}
}

// ToRecord converts a stored result into the shape the stats package
// consumes.
func (r SeasonResult) ToRecord() stats.SeasonRecord {
	return stats.SeasonRecord{
		SeasonNumber: r.SeasonNumber,
		OpponentID:   r.OpponentID,
		PhaseOne:     ParsePhase(r.PhaseOne),
		PhaseTwo:     ParsePhase(r.PhaseTwo),
	}
}

// ToRecords converts results preserving order, so later submissions win
// normalization ties.
func ToRecords(results []SeasonResult) []stats.SeasonRecord {
	records := make([]stats.SeasonRecord, len(results))
	for i, r := range results {
		records[i] = r.ToRecord()
	}
	return records
}
