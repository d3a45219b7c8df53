package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kingdom-tracker/internal/constants"
	"kingdom-tracker/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type SeasonResultRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewSeasonResultRepository(sqlDB *sql.DB, logger zerolog.Logger) *SeasonResultRepository {
	return &SeasonResultRepository{
		db:     sqlDB,
		logger: logger,
	}
}

// ListByKingdom returns every stored result for a kingdom in submission
// order. Duplicate season numbers stay in the list; the stats normalizer
// resolves them last-write-wins, so submission order is the tiebreaker.
func (r *SeasonResultRepository) ListByKingdom(ctx context.Context, kingdomID int) ([]domain.SeasonResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, kingdom_id, season_number, opponent_id, phase_one, phase_two, submitted_at, created_at, updated_at
		 FROM season_results
		 WHERE kingdom_id = ?
		 ORDER BY submitted_at, rowid`, kingdomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SeasonResult
	for rows.Next() {
		var s domain.SeasonResult
		err := rows.Scan(
			&s.ID,
			&s.KingdomID,
			&s.SeasonNumber,
			&s.OpponentID,
			&s.PhaseOne,
			&s.PhaseTwo,
			&s.SubmittedAt,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

const insertResultQuery = `
INSERT INTO season_results (id, kingdom_id, season_number, opponent_id, phase_one, phase_two, submitted_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (r *SeasonResultRepository) Insert(ctx context.Context, result *domain.SeasonResult) error {
	if result.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return fmt.Errorf("failed to generate nanoid: %w", err)
		}
		result.ID = id
	}

	now := time.Now()
	if result.SubmittedAt.IsZero() {
		result.SubmittedAt = now
	}
	result.CreatedAt = now
	result.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, insertResultQuery,
		result.ID,
		result.KingdomID,
		result.SeasonNumber,
		result.OpponentID,
		result.PhaseOne,
		result.PhaseTwo,
		result.SubmittedAt,
		result.CreatedAt,
		result.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Int("kingdom_id", result.KingdomID).Int("season", result.SeasonNumber).Msg("failed to insert season result")
		return err
	}
	return nil
}

// ReplaceForKingdom swaps a kingdom's stored history for a hub snapshot
// in one transaction. Locally submitted corrections arrive through
// Insert afterwards and override by submission order.
func (r *SeasonResultRepository) ReplaceForKingdom(ctx context.Context, kingdomID int, results []domain.SeasonResult) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM season_results WHERE kingdom_id = ?`, kingdomID); err != nil {
		return fmt.Errorf("failed to clear season results for kingdom %d: %w", kingdomID, err)
	}

	for i := 0; i < len(results); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(results) {
			end = len(results)
		}

		for _, s := range results[i:end] {
			id := s.ID
			if id == "" {
				id, err = gonanoid.New()
				if err != nil {
					return fmt.Errorf("failed to generate nanoid: %w", err)
				}
			}
			now := time.Now()
			if s.SubmittedAt.IsZero() {
				s.SubmittedAt = now
			}
			_, err := tx.ExecContext(ctx, insertResultQuery,
				id, kingdomID, s.SeasonNumber, s.OpponentID,
				s.PhaseOne, s.PhaseTwo, s.SubmittedAt, now, now,
			)
			if err != nil {
				return fmt.Errorf("failed to insert season result %d/%d: %w", kingdomID, s.SeasonNumber, err)
			}
		}
	}

	return tx.Commit()
}

func (r *SeasonResultRepository) HasResults(ctx context.Context, kingdomID int) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM season_results WHERE kingdom_id = ?`, kingdomID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
