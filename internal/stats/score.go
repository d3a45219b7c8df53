package stats

// ScoreBreakdown is the score engine output. The components sum to
// FinalScore before the clamp at zero; they are kept for auditability.
type ScoreBreakdown struct {
	FinalScore float64
	Tier       Tier

	RateComponent       float64
	OutcomeComponent    float64
	ExperienceComponent float64
}

// Score converts a snapshot into a final score and tier. It is a closed
// form over the snapshot's numbers: no randomness, no clock, never an
// error. Holding everything else fixed, more dominations always score
// higher and more invasions lower; the clamp at zero keeps an
// all-invasion history in tier D instead of below the threshold table.
func (c ScoringConfig) Score(s Snapshot) ScoreBreakdown {
	w := c.Weights

	rate := w.PhaseOneRate*s.PhaseOneWinRate + w.PhaseTwoRate*s.PhaseTwoWinRate

	outcome := w.Domination*float64(s.Dominations) +
		w.Comeback*float64(s.Comebacks) +
		w.Reversal*float64(s.Reversals) -
		w.Invasion*float64(s.Invasions)

	seasons := s.SeasonsPlayed
	if seasons > w.ExperienceCapSeason {
		seasons = w.ExperienceCapSeason
	}
	experience := w.ExperiencePerSeason * float64(seasons)

	final := rate + outcome + experience
	if final < 0 {
		final = 0
	}

	return ScoreBreakdown{
		FinalScore:          final,
		Tier:                c.Thresholds.Classify(final),
		RateComponent:       rate,
		OutcomeComponent:    outcome,
		ExperienceComponent: experience,
	}
}
