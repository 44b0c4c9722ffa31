package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) IndicatorByID(ctx context.Context, indicatorID string) (*Indicator, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(description, ''), created_at
    FROM indicators
    WHERE id = $1
  `, indicatorID)

	var indicator Indicator
	err := row.Scan(&indicator.ID, &indicator.Name, &indicator.Description, &indicator.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &indicator, nil
}

func (s *Store) InsertIndicator(ctx context.Context, name, description string) (Indicator, error) {
	var indicator Indicator
	err := s.DB.QueryRow(ctx, `
    INSERT INTO indicators (name, description)
    VALUES ($1, NULLIF($2, ''))
    RETURNING id, name, COALESCE(description, ''), created_at
  `, name, description).Scan(&indicator.ID, &indicator.Name, &indicator.Description, &indicator.CreatedAt)
	return indicator, err
}

func (s *Store) UpdateIndicator(ctx context.Context, indicatorID, name, description string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE indicators
    SET name = $2, description = NULLIF($3, '')
    WHERE id = $1
  `, indicatorID, name, description)
	return err
}

func (s *Store) DeleteIndicator(ctx context.Context, indicatorID string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM indicators WHERE id = $1", indicatorID)
	return err
}

// ScoreRefCount counts persisted evaluation scores referencing the
// indicator; any such score blocks deletion.
func (s *Store) ScoreRefCount(ctx context.Context, indicatorID string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM evaluation_scores WHERE indicator_id = $1", indicatorID).Scan(&count)
	return count, err
}

func (s *Store) ListIndicators(ctx context.Context) ([]Indicator, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(description, ''), created_at
    FROM indicators
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIndicators(rows)
}

func (s *Store) ListIndicatorsPage(ctx context.Context, limit, offset int) ([]Indicator, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(description, ''), created_at
    FROM indicators
    ORDER BY created_at DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectIndicators(rows)
}

func (s *Store) CountIndicators(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM indicators").Scan(&count)
	return count, err
}

func collectIndicators(rows pgx.Rows) ([]Indicator, error) {
	indicators := make([]Indicator, 0)
	for rows.Next() {
		var indicator Indicator
		if err := rows.Scan(&indicator.ID, &indicator.Name, &indicator.Description, &indicator.CreatedAt); err != nil {
			return nil, err
		}
		indicators = append(indicators, indicator)
	}
	return indicators, rows.Err()
}
