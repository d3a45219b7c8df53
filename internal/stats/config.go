package stats

import "fmt"

// Tier is the discrete classification of a kingdom's continuous score.
type Tier string

const (
	TierS Tier = "S"
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
	TierD Tier = "D"
)

// Tiers lists all tiers from best to worst.
var Tiers = []Tier{TierS, TierA, TierB, TierC, TierD}

// TierThresholds are inclusive lower bounds. D is implicitly 0; a score
// exactly on a threshold belongs to the higher tier.
type TierThresholds struct {
	C float64
	B float64
	A float64
	S float64
}

// ScoreWeights are the tunable coefficients of the score formula. Win
// rate weights are point values at a 100% rate; outcome weights are
// points per season of that outcome.
type ScoreWeights struct {
	PhaseOneRate float64
	PhaseTwoRate float64

	Domination float64
	Comeback   float64
	Reversal   float64
	Invasion   float64 // subtracted

	// Experience bonus saturates: no extra credit past the cap.
	ExperiencePerSeason float64
	ExperienceCapSeason int
}

// ScoringConfig is the single tunable surface of the package. Every call
// site receives the same value so scores are computed identically
// everywhere.
type ScoringConfig struct {
	Weights    ScoreWeights
	Thresholds TierThresholds

	// AssumedDominationGain divides the next-tier point gap into a rough
	// seasons-needed estimate. It is a display heuristic, not calibrated
	// against actual gain distributions.
	AssumedDominationGain float64
}

// DefaultScoringConfig returns the production weights and thresholds.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights: ScoreWeights{
			PhaseOneRate:        30,
			PhaseTwoRate:        40,
			Domination:          6,
			Comeback:            3,
			Reversal:            2,
			Invasion:            4,
			ExperiencePerSeason: 0.5,
			ExperienceCapSeason: 20,
		},
		Thresholds: TierThresholds{
			C: 35,
			B: 55,
			A: 75,
			S: 90,
		},
		AssumedDominationGain: 5,
	}
}

// Validate rejects configurations that would silently misclassify tiers.
// A bad scoring config is a deployment mistake and must abort startup.
func (c ScoringConfig) Validate() error {
	t := c.Thresholds
	if t.C < 0 {
		return fmt.Errorf("tier threshold C must be >= 0, got %v", t.C)
	}
	if !(t.C < t.B && t.B < t.A && t.A < t.S) {
		return fmt.Errorf("tier thresholds must be strictly increasing, got C=%v B=%v A=%v S=%v", t.C, t.B, t.A, t.S)
	}
	if c.AssumedDominationGain <= 0 {
		return fmt.Errorf("assumed domination gain must be positive, got %v", c.AssumedDominationGain)
	}
	return nil
}
