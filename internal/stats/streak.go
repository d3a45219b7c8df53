package stats

// Streak is a run of identical results. Type is ResultUnset when the
// history is empty.
type Streak struct {
	Type   PhaseResult
	Length int
}

// PhaseStreaks holds streak stats for one phase.
type PhaseStreaks struct {
	Current  Streak
	BestWin  int
	BestLoss int
}

// calcStreaks computes current and best streaks from a most-recent-first
// list of win/loss results. Callers must already have filtered byes and
// unset results out; a bye season is invisible to streak continuity, as
// if it were absent from the sequence entirely.
func calcStreaks(results []PhaseResult) PhaseStreaks {
	var s PhaseStreaks
	if len(results) == 0 {
		return s
	}

	s.Current = Streak{Type: results[0], Length: 1}
	for _, r := range results[1:] {
		if r != s.Current.Type {
			break
		}
		s.Current.Length++
	}

	runType := results[0]
	runLen := 0
	record := func() {
		if runType == ResultWin && runLen > s.BestWin {
			s.BestWin = runLen
		}
		if runType == ResultLoss && runLen > s.BestLoss {
			s.BestLoss = runLen
		}
	}
	for _, r := range results {
		if r == runType {
			runLen++
			continue
		}
		record()
		runType = r
		runLen = 1
	}
	record()

	return s
}

// phaseResults extracts the streak-relevant results of one phase from a
// normalized record list, preserving most-recent-first order.
func phaseResults(records []SeasonRecord, phaseTwo bool) []PhaseResult {
	out := make([]PhaseResult, 0, len(records))
	for _, r := range records {
		if r.IsBye() {
			continue
		}
		p := r.PhaseOne
		if phaseTwo {
			p = r.PhaseTwo
		}
		if p == ResultWin || p == ResultLoss {
			out = append(out, p)
		}
	}
	return out
}
