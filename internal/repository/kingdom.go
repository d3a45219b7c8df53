package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"kingdom-tracker/internal/constants"
	"kingdom-tracker/internal/domain"

	"github.com/rs/zerolog"
)

type KingdomRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewKingdomRepository(sqlDB *sql.DB, logger zerolog.Logger) *KingdomRepository {
	return &KingdomRepository{
		db:     sqlDB,
		logger: logger,
	}
}

const kingdomColumns = `kingdom_id, name, alliance_tag, power, is_partial_fetch, last_fetch_at, created_at, updated_at`

func scanKingdom(row interface{ Scan(...any) error }) (*domain.Kingdom, error) {
	var k domain.Kingdom
	err := row.Scan(
		&k.KingdomID,
		&k.Name,
		&k.AllianceTag,
		&k.Power,
		&k.IsPartialFetch,
		&k.LastFetchAt,
		&k.CreatedAt,
		&k.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

func (r *KingdomRepository) Get(ctx context.Context, kingdomID int) (*domain.Kingdom, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+kingdomColumns+` FROM kingdoms WHERE kingdom_id = ?`, kingdomID)
	return scanKingdom(row)
}

func (r *KingdomRepository) List(ctx context.Context) ([]domain.Kingdom, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+kingdomColumns+` FROM kingdoms ORDER BY kingdom_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Kingdom
	for rows.Next() {
		k, err := scanKingdom(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *k)
	}
	return result, rows.Err()
}

func (r *KingdomRepository) Search(ctx context.Context, query string, limit int) ([]domain.Kingdom, error) {
	searchPattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+kingdomColumns+` FROM kingdoms
		 WHERE name LIKE ? OR alliance_tag LIKE ?
		 ORDER BY power DESC LIMIT ?`,
		searchPattern, searchPattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Kingdom
	for rows.Next() {
		k, err := scanKingdom(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *k)
	}
	return result, rows.Err()
}

const upsertKingdomQuery = `
INSERT INTO kingdoms (kingdom_id, name, alliance_tag, power, is_partial_fetch, last_fetch_at, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (kingdom_id) DO UPDATE SET
    name = excluded.name,
    alliance_tag = excluded.alliance_tag,
    power = excluded.power,
    is_partial_fetch = excluded.is_partial_fetch,
    last_fetch_at = excluded.last_fetch_at,
    updated_at = excluded.updated_at`

func (r *KingdomRepository) Upsert(ctx context.Context, kingdom *domain.Kingdom) error {
	now := time.Now()
	if kingdom.CreatedAt.IsZero() {
		kingdom.CreatedAt = now
	}
	kingdom.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, upsertKingdomQuery,
		kingdom.KingdomID,
		kingdom.Name,
		kingdom.AllianceTag,
		kingdom.Power,
		kingdom.IsPartialFetch,
		kingdom.LastFetchAt,
		kingdom.CreatedAt,
		kingdom.UpdatedAt,
	)
	return err
}

func (r *KingdomRepository) UpsertBatch(ctx context.Context, kingdoms []domain.Kingdom) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := 0; i < len(kingdoms); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(kingdoms) {
			end = len(kingdoms)
		}

		for _, k := range kingdoms[i:end] {
			now := time.Now()
			if k.CreatedAt.IsZero() {
				k.CreatedAt = now
			}
			k.UpdatedAt = now
			_, err := tx.ExecContext(ctx, upsertKingdomQuery,
				k.KingdomID, k.Name, k.AllianceTag, k.Power,
				k.IsPartialFetch, k.LastFetchAt, k.CreatedAt, k.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to upsert kingdom %d: %w", k.KingdomID, err)
			}
		}
	}

	return tx.Commit()
}

func (r *KingdomRepository) ShouldRefresh(ctx context.Context, kingdomID int, ttl time.Duration) (bool, error) {
	var lastFetchAt time.Time
	var isPartialFetch bool
	err := r.db.QueryRowContext(ctx,
		`SELECT last_fetch_at, is_partial_fetch FROM kingdoms WHERE kingdom_id = ?`, kingdomID).
		Scan(&lastFetchAt, &isPartialFetch)
	if err == sql.ErrNoRows {
		r.logger.Debug().Int("kingdom_id", kingdomID).Msg("kingdom not found, should refresh")
		return true, nil
	}
	if err != nil {
		r.logger.Error().Err(err).Int("kingdom_id", kingdomID).Msg("failed to get kingdom")
		return false, err
	}
	if isPartialFetch {
		r.logger.Debug().Int("kingdom_id", kingdomID).Msg("kingdom is partial fetch, should refresh")
		return true, nil
	}

	timeSince := time.Since(lastFetchAt)
	shouldRefresh := timeSince > ttl
	r.logger.Debug().
		Int("kingdom_id", kingdomID).
		Time("last_fetch_at", lastFetchAt).
		Dur("time_since", timeSince).
		Dur("ttl", ttl).
		Bool("should_refresh", shouldRefresh).
		Msg("checking if kingdom should refresh")

	return shouldRefresh, nil
}

func (r *KingdomRepository) SetLastFetchAt(ctx context.Context, kingdomID int, lastFetchAt time.Time) error {
	r.logger.Debug().
		Int("kingdom_id", kingdomID).
		Time("last_fetch_at", lastFetchAt).
		Msg("setting last fetch at")

	_, err := r.db.ExecContext(ctx,
		`UPDATE kingdoms SET last_fetch_at = ?, updated_at = ? WHERE kingdom_id = ?`,
		lastFetchAt, time.Now(), kingdomID)
	if err != nil {
		r.logger.Error().Err(err).Int("kingdom_id", kingdomID).Msg("failed to set last fetch at")
		return err
	}
	return nil
}

func (r *KingdomRepository) SetPartialFetch(ctx context.Context, kingdomID int, isPartialFetch bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE kingdoms SET is_partial_fetch = ?, updated_at = ? WHERE kingdom_id = ?`,
		isPartialFetch, time.Now(), kingdomID)
	return err
}
