package server

import (
	"kingdom-tracker/internal/service"
	"kingdom-tracker/internal/stats"
)

type directoryEntryResponse struct {
	KingdomID   int     `json:"kingdom_id"`
	Name        string  `json:"name"`
	AllianceTag string  `json:"alliance_tag"`
	Power       int64   `json:"power"`
	Score       float64 `json:"score"`
	Tier        string  `json:"tier"`
}

type streakResponse struct {
	Type   string `json:"type"`
	Length int    `json:"length"`
}

type phaseStreaksResponse struct {
	Current  streakResponse `json:"current"`
	BestWin  int            `json:"best_win"`
	BestLoss int            `json:"best_loss"`
}

type snapshotResponse struct {
	SeasonsPlayed   int                  `json:"seasons_played"`
	Byes            int                  `json:"byes"`
	PhaseOneWins    int                  `json:"phase_one_wins"`
	PhaseOneLosses  int                  `json:"phase_one_losses"`
	PhaseTwoWins    int                  `json:"phase_two_wins"`
	PhaseTwoLosses  int                  `json:"phase_two_losses"`
	PhaseOneWinRate float64              `json:"phase_one_win_rate"`
	PhaseTwoWinRate float64              `json:"phase_two_win_rate"`
	Dominations     int                  `json:"dominations"`
	Invasions       int                  `json:"invasions"`
	Reversals       int                  `json:"reversals"`
	Comebacks       int                  `json:"comebacks"`
	PhaseOne        phaseStreaksResponse `json:"phase_one_streaks"`
	PhaseTwo        phaseStreaksResponse `json:"phase_two_streaks"`
	RecentOutcomes  []string             `json:"recent_outcomes"`
}

type breakdownResponse struct {
	FinalScore          float64 `json:"final_score"`
	Tier                string  `json:"tier"`
	RateComponent       float64 `json:"rate_component"`
	OutcomeComponent    float64 `json:"outcome_component"`
	ExperienceComponent float64 `json:"experience_component"`
}

type profileResponse struct {
	KingdomID   int               `json:"kingdom_id"`
	Name        string            `json:"name"`
	AllianceTag string            `json:"alliance_tag"`
	Power       int64             `json:"power"`
	Snapshot    snapshotResponse  `json:"snapshot"`
	Breakdown   breakdownResponse `json:"breakdown"`
}

type outcomeProjectionResponse struct {
	Outcome string            `json:"outcome"`
	Score   float64           `json:"score"`
	Delta   float64           `json:"delta"`
	Tier    string            `json:"tier"`
	Details breakdownResponse `json:"details"`
}

type nextTierResponse struct {
	Tier         string  `json:"tier"`
	Threshold    float64 `json:"threshold"`
	PointsNeeded float64 `json:"points_needed"`

	// EstimatedSeasons is a rough heuristic, not a guarantee.
	EstimatedSeasons int `json:"estimated_seasons"`
}

type projectionResponse struct {
	Current  breakdownResponse           `json:"current"`
	Outcomes []outcomeProjectionResponse `json:"outcomes"`
	NextTier []nextTierResponse          `json:"next_tier"`
}

type rollupResponse struct {
	MemberCount      int                      `json:"member_count"`
	AvgScore         float64                  `json:"avg_score"`
	MedianScore      float64                  `json:"median_score"`
	TotalSeasons     int                      `json:"total_seasons"`
	TotalDominations int                      `json:"total_dominations"`
	DominationRate   float64                  `json:"domination_rate"`
	TierDistribution map[string]int           `json:"tier_distribution"`
	TopPerformers    []directoryEntryResponse `json:"top_performers"`
	BottomPerformers []directoryEntryResponse `json:"bottom_performers"`
}

func toStreaksResponse(ps stats.PhaseStreaks) phaseStreaksResponse {
	return phaseStreaksResponse{
		Current: streakResponse{
			Type:   ps.Current.Type.String(),
			Length: ps.Current.Length,
		},
		BestWin:  ps.BestWin,
		BestLoss: ps.BestLoss,
	}
}

func toSnapshotResponse(s stats.Snapshot) snapshotResponse {
	recent := make([]string, len(s.RecentOutcomes))
	for i, o := range s.RecentOutcomes {
		recent[i] = o.String()
	}
	return snapshotResponse{
		SeasonsPlayed:   s.SeasonsPlayed,
		Byes:            s.Byes,
		PhaseOneWins:    s.PhaseOneWins,
		PhaseOneLosses:  s.PhaseOneLosses,
		PhaseTwoWins:    s.PhaseTwoWins,
		PhaseTwoLosses:  s.PhaseTwoLosses,
		PhaseOneWinRate: s.PhaseOneWinRate,
		PhaseTwoWinRate: s.PhaseTwoWinRate,
		Dominations:     s.Dominations,
		Invasions:       s.Invasions,
		Reversals:       s.Reversals,
		Comebacks:       s.Comebacks,
		PhaseOne:        toStreaksResponse(s.PhaseOne),
		PhaseTwo:        toStreaksResponse(s.PhaseTwo),
		RecentOutcomes:  recent,
	}
}

func toBreakdownResponse(b stats.ScoreBreakdown) breakdownResponse {
	return breakdownResponse{
		FinalScore:          b.FinalScore,
		Tier:                string(b.Tier),
		RateComponent:       b.RateComponent,
		OutcomeComponent:    b.OutcomeComponent,
		ExperienceComponent: b.ExperienceComponent,
	}
}

func toProfileResponse(p *service.Profile) profileResponse {
	return profileResponse{
		KingdomID:   p.Kingdom.KingdomID,
		Name:        p.Kingdom.Name,
		AllianceTag: p.Kingdom.AllianceTag,
		Power:       p.Kingdom.Power,
		Snapshot:    toSnapshotResponse(p.Snapshot),
		Breakdown:   toBreakdownResponse(p.Breakdown),
	}
}

func toProjectionResponse(p *stats.Projection) projectionResponse {
	outcomes := make([]outcomeProjectionResponse, len(p.Outcomes))
	for i, o := range p.Outcomes {
		outcomes[i] = outcomeProjectionResponse{
			Outcome: o.Outcome.String(),
			Score:   o.Breakdown.FinalScore,
			Delta:   o.Delta,
			Tier:    string(o.Breakdown.Tier),
			Details: toBreakdownResponse(o.Breakdown),
		}
	}
	nextTier := make([]nextTierResponse, len(p.NextTier))
	for i, n := range p.NextTier {
		nextTier[i] = nextTierResponse{
			Tier:             string(n.Tier),
			Threshold:        n.Threshold,
			PointsNeeded:     n.PointsNeeded,
			EstimatedSeasons: n.EstimatedSeasons,
		}
	}
	return projectionResponse{
		Current:  toBreakdownResponse(p.Current),
		Outcomes: outcomes,
		NextTier: nextTier,
	}
}

func toRollupResponse(r *stats.Rollup) rollupResponse {
	dist := make(map[string]int, len(r.TierDistribution))
	for tier, count := range r.TierDistribution {
		dist[string(tier)] = count
	}
	toEntries := func(members []stats.Member) []directoryEntryResponse {
		entries := make([]directoryEntryResponse, len(members))
		for i, m := range members {
			entries[i] = directoryEntryResponse{
				KingdomID: m.KingdomID,
				Name:      m.Name,
				Score:     m.Breakdown.FinalScore,
				Tier:      string(m.Breakdown.Tier),
			}
		}
		return entries
	}
	return rollupResponse{
		MemberCount:      r.MemberCount,
		AvgScore:         r.AvgScore,
		MedianScore:      r.MedianScore,
		TotalSeasons:     r.TotalSeasons,
		TotalDominations: r.TotalDominations,
		DominationRate:   r.DominationRate,
		TierDistribution: dist,
		TopPerformers:    toEntries(r.TopPerformers),
		BottomPerformers: toEntries(r.BottomPerformers),
	}
}
