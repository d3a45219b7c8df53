package service

import (
	"context"
	"fmt"

	"kingdom-tracker/internal/constants"
	"kingdom-tracker/internal/repository"
	"kingdom-tracker/internal/stats"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// AllianceService aggregates an ad hoc set of kingdoms. The set is
// caller-supplied per request; nothing about an alliance is persisted.
type AllianceService struct {
	kingdomSvc  *KingdomService
	kingdomRepo *repository.KingdomRepository
	logger      zerolog.Logger
}

func NewAllianceService(kingdomSvc *KingdomService, kingdomRepo *repository.KingdomRepository, logger zerolog.Logger) *AllianceService {
	return &AllianceService{
		kingdomSvc:  kingdomSvc,
		kingdomRepo: kingdomRepo,
		logger:      logger,
	}
}

// GetRollup computes group statistics over the given kingdoms. Member
// snapshots are built concurrently; the roll-up itself is a single pure
// pass. An empty id list yields the zero-filled roll-up, not an error.
func (s *AllianceService) GetRollup(ctx context.Context, kingdomIDs []int) (*stats.Rollup, error) {
	if len(kingdomIDs) > constants.RollupMaxMembers {
		return nil, fmt.Errorf("too many kingdoms: %d (max %d)", len(kingdomIDs), constants.RollupMaxMembers)
	}

	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	s.logger.Info().Ints("kingdom_ids", kingdomIDs).Msg("computing alliance rollup")

	members := make([]stats.Member, len(kingdomIDs))
	g, gCtx := errgroup.WithContext(ctx)
	for i, id := range kingdomIDs {
		g.Go(func() error {
			kingdom, err := s.kingdomRepo.Get(gCtx, id)
			if err != nil {
				return fmt.Errorf("kingdom %d not found: %w", id, err)
			}
			profile, err := s.kingdomSvc.buildProfile(gCtx, *kingdom)
			if err != nil {
				return err
			}
			members[i] = stats.Member{
				KingdomID: kingdom.KingdomID,
				Name:      kingdom.Name,
				Snapshot:  profile.Snapshot,
				Breakdown: profile.Breakdown,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rollup := stats.BuildRollup(members, constants.RollupPerformerLimit)
	return &rollup, nil
}
