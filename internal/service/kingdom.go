package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"kingdom-tracker/internal/api"
	"kingdom-tracker/internal/config"
	"kingdom-tracker/internal/constants"
	"kingdom-tracker/internal/domain"
	"kingdom-tracker/internal/repository"
	"kingdom-tracker/internal/stats"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Profile is everything a kingdom page needs: identity, the derived
// snapshot and the score breakdown.
type Profile struct {
	Kingdom   domain.Kingdom
	Snapshot  stats.Snapshot
	Breakdown stats.ScoreBreakdown
}

// DirectoryEntry is one leaderboard row.
type DirectoryEntry struct {
	Kingdom   domain.Kingdom
	Breakdown stats.ScoreBreakdown
}

type KingdomService struct {
	hub         *api.HubClient
	kingdomRepo *repository.KingdomRepository
	resultRepo  *repository.SeasonResultRepository
	scoring     stats.ScoringConfig
	logger      zerolog.Logger
}

func NewKingdomService(
	hub *api.HubClient,
	kingdomRepo *repository.KingdomRepository,
	resultRepo *repository.SeasonResultRepository,
	cfg *config.Config,
	logger zerolog.Logger,
) *KingdomService {
	return &KingdomService{
		hub:         hub,
		kingdomRepo: kingdomRepo,
		resultRepo:  resultRepo,
		scoring:     cfg.Scoring,
		logger:      logger,
	}
}

// GetProfile returns a kingdom's profile, refreshing stale data from the
// hub first. refresh forces a refetch regardless of TTL.
func (s *KingdomService) GetProfile(ctx context.Context, kingdomID int, refresh bool) (*Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Int("kingdom_id", kingdomID).Bool("refresh", refresh).Msg("getting kingdom profile")

	shouldRefresh, err := s.kingdomRepo.ShouldRefresh(ctx, kingdomID, constants.KingdomRefreshTTL)
	if err != nil {
		return nil, err
	}
	if refresh {
		shouldRefresh = true
		s.logger.Debug().Int("kingdom_id", kingdomID).Msg("manual refresh requested")
	}
	if !shouldRefresh {
		// A fresh row with no stored seasons means the history fetch
		// never landed. Retry it instead of serving a zero score.
		hasResults, err := s.resultRepo.HasResults(ctx, kingdomID)
		if err != nil {
			return nil, err
		}
		if !hasResults {
			shouldRefresh = true
			s.logger.Debug().Int("kingdom_id", kingdomID).Msg("no stored seasons, forcing refresh")
		}
	}

	if shouldRefresh {
		if err := s.refreshFromHub(ctx, kingdomID); err != nil {
			s.logger.Error().Err(err).Int("kingdom_id", kingdomID).Msg("failed to refresh kingdom from hub")
			return nil, fmt.Errorf("failed to refresh kingdom %d: %w", kingdomID, err)
		}
	}

	kingdom, err := s.kingdomRepo.Get(ctx, kingdomID)
	if err != nil {
		s.logger.Error().Err(err).Int("kingdom_id", kingdomID).Msg("kingdom not found")
		return nil, fmt.Errorf("kingdom not found: %w", err)
	}

	return s.buildProfile(ctx, *kingdom)
}

// GetProjection computes the what-if planner for a kingdom from its
// current stored history.
func (s *KingdomService) GetProjection(ctx context.Context, kingdomID int) (*stats.Projection, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	profile, err := s.GetProfile(ctx, kingdomID, false)
	if err != nil {
		return nil, err
	}

	projection := s.scoring.Project(profile.Snapshot)
	return &projection, nil
}

// Directory lists all known kingdoms ranked by score. Snapshots are
// recomputed per request; scoring a few dozen small histories is cheap.
func (s *KingdomService) Directory(ctx context.Context) ([]DirectoryEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	kingdoms, err := s.kingdomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list kingdoms: %w", err)
	}
	if len(kingdoms) == 0 {
		if kingdoms, err = s.seedDirectory(ctx); err != nil {
			return nil, err
		}
	}

	entries := make([]DirectoryEntry, len(kingdoms))
	g, gCtx := errgroup.WithContext(ctx)
	for i, k := range kingdoms {
		g.Go(func() error {
			profile, err := s.buildProfile(gCtx, k)
			if err != nil {
				return err
			}
			entries[i] = DirectoryEntry{Kingdom: profile.Kingdom, Breakdown: profile.Breakdown}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Breakdown.FinalScore > entries[j].Breakdown.FinalScore
	})
	return entries, nil
}

// seedDirectory populates an empty kingdoms table from the hub listing.
// Listing rows carry identity only, so each kingdom is stored as a
// partial fetch; the first profile view pulls its season history.
func (s *KingdomService) seedDirectory(ctx context.Context) ([]domain.Kingdom, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.hub.GetKingdomList(apiCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch kingdom list: %w", err)
	}

	now := time.Now()
	kingdoms := make([]domain.Kingdom, len(resp.Data))
	for i, d := range resp.Data {
		kingdoms[i] = domain.Kingdom{
			KingdomID:      d.KingdomID,
			Name:           d.Name,
			AllianceTag:    d.AllianceTag,
			Power:          d.Power,
			IsPartialFetch: true,
			LastFetchAt:    now,
		}
	}
	if err := s.kingdomRepo.UpsertBatch(ctx, kingdoms); err != nil {
		return nil, fmt.Errorf("failed to seed kingdoms: %w", err)
	}

	s.logger.Info().Int("kingdom_count", len(kingdoms)).Msg("directory seeded from hub listing")
	return s.kingdomRepo.List(ctx)
}

func (s *KingdomService) SearchSuggestions(ctx context.Context, query string) ([]domain.Kingdom, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	return s.kingdomRepo.Search(ctx, query, constants.SearchSuggestionLimit)
}

// buildProfile derives snapshot and score from the stored history. Pure
// except for the read: no history is a valid state and scores 0.
func (s *KingdomService) buildProfile(ctx context.Context, kingdom domain.Kingdom) (*Profile, error) {
	results, err := s.resultRepo.ListByKingdom(ctx, kingdom.KingdomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load season results: %w", err)
	}

	snapshot := stats.BuildSnapshot(domain.ToRecords(results))
	return &Profile{
		Kingdom:   kingdom,
		Snapshot:  snapshot,
		Breakdown: s.scoring.Score(snapshot),
	}, nil
}

// refreshFromHub fetches the kingdom profile and its season reports in
// parallel and stores both.
func (s *KingdomService) refreshFromHub(ctx context.Context, kingdomID int) error {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	g, gCtx := errgroup.WithContext(apiCtx)
	var kingdomResp *api.KingdomResponse
	var seasonsResp *api.SeasonsResponse

	g.Go(func() error {
		var err error
		kingdomResp, err = s.hub.GetKingdom(gCtx, kingdomID)
		return err
	})
	g.Go(func() error {
		var err error
		seasonsResp, err = s.hub.GetKingdomSeasons(gCtx, kingdomID)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch hub data: %w", err)
	}

	// The row stays marked partial until the history lands, so an
	// interrupted refresh is retried on the next view.
	now := time.Now()
	kingdom := domain.Kingdom{
		KingdomID:      kingdomResp.Data.KingdomID,
		Name:           kingdomResp.Data.Name,
		AllianceTag:    kingdomResp.Data.AllianceTag,
		Power:          kingdomResp.Data.Power,
		IsPartialFetch: true,
		LastFetchAt:    now,
	}
	if err := s.kingdomRepo.Upsert(ctx, &kingdom); err != nil {
		return fmt.Errorf("failed to upsert kingdom: %w", err)
	}

	results := make([]domain.SeasonResult, len(seasonsResp.Data))
	for i, item := range seasonsResp.Data {
		results[i] = domain.SeasonResult{
			KingdomID:    kingdomID,
			SeasonNumber: item.SeasonNumber,
			OpponentID:   item.OpponentID,
			PhaseOne:     item.PhaseOne,
			PhaseTwo:     item.PhaseTwo,
			SubmittedAt:  item.ReportedAt,
		}
	}
	if err := s.resultRepo.ReplaceForKingdom(ctx, kingdomID, results); err != nil {
		return fmt.Errorf("failed to store season results: %w", err)
	}
	if err := s.kingdomRepo.SetPartialFetch(ctx, kingdomID, false); err != nil {
		return fmt.Errorf("failed to clear partial fetch flag: %w", err)
	}

	s.logger.Info().
		Int("kingdom_id", kingdomID).
		Int("season_count", len(results)).
		Msg("kingdom refreshed from hub")
	return nil
}
