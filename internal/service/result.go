package service

import (
	"context"
	"fmt"

	"kingdom-tracker/internal/constants"
	"kingdom-tracker/internal/domain"
	"kingdom-tracker/internal/repository"
	"kingdom-tracker/internal/stats"

	"github.com/rs/zerolog"
)

// SubmitResultInput is an editor's season report for their kingdom.
type SubmitResultInput struct {
	SeasonNumber int
	OpponentID   int
	PhaseOne     string
	PhaseTwo     string
}

// ResultService handles editor data entry. Re-submitting a season number
// is the supported way to correct an earlier report: the newest
// submission wins during normalization, nothing is deleted.
type ResultService struct {
	resultRepo  *repository.SeasonResultRepository
	kingdomRepo *repository.KingdomRepository
	kingdomSvc  *KingdomService
	logger      zerolog.Logger
}

func NewResultService(
	resultRepo *repository.SeasonResultRepository,
	kingdomRepo *repository.KingdomRepository,
	kingdomSvc *KingdomService,
	logger zerolog.Logger,
) *ResultService {
	return &ResultService{
		resultRepo:  resultRepo,
		kingdomRepo: kingdomRepo,
		kingdomSvc:  kingdomSvc,
		logger:      logger,
	}
}

func validPhase(v string) bool {
	return domain.ParsePhase(v) != stats.ResultUnset || v == ""
}

// Submit stores a season result and returns the kingdom's recomputed
// profile so the caller can render the new score immediately.
func (s *ResultService) Submit(ctx context.Context, kingdomID int, input SubmitResultInput) (*Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	if input.SeasonNumber < 1 {
		return nil, fmt.Errorf("season number must be >= 1, got %d", input.SeasonNumber)
	}
	if !validPhase(input.PhaseOne) || !validPhase(input.PhaseTwo) {
		return nil, fmt.Errorf("phase results must be one of win, loss, bye or empty")
	}
	if input.PhaseOne == "" && input.PhaseTwo == "" {
		return nil, fmt.Errorf("at least one phase result is required")
	}

	kingdom, err := s.kingdomRepo.Get(ctx, kingdomID)
	if err != nil {
		return nil, fmt.Errorf("kingdom not found: %w", err)
	}

	result := domain.SeasonResult{
		KingdomID:    kingdomID,
		SeasonNumber: input.SeasonNumber,
		OpponentID:   input.OpponentID,
		PhaseOne:     input.PhaseOne,
		PhaseTwo:     input.PhaseTwo,
	}
	if err := s.resultRepo.Insert(ctx, &result); err != nil {
		return nil, fmt.Errorf("failed to store season result: %w", err)
	}

	// Restart the TTL so the next profile view does not replace this
	// submission with a hub history that has not caught up yet.
	if err := s.kingdomRepo.SetLastFetchAt(ctx, kingdomID, result.SubmittedAt); err != nil {
		return nil, fmt.Errorf("failed to update fetch time: %w", err)
	}

	s.logger.Info().
		Int("kingdom_id", kingdomID).
		Int("season", input.SeasonNumber).
		Str("phase_one", input.PhaseOne).
		Str("phase_two", input.PhaseTwo).
		Msg("season result submitted")

	return s.kingdomSvc.buildProfile(ctx, *kingdom)
}
