package evaluation

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sipeka/internal/domain/nomination"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) NominationRefByID(ctx context.Context, nominationID string) (*NominationRef, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, unit_id::text, status
    FROM nominations
    WHERE id = $1
  `, nominationID)

	var ref NominationRef
	err := row.Scan(&ref.ID, &ref.UnitID, &ref.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (s *Store) HasEvaluation(ctx context.Context, nominationID, evaluatorID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM evaluations
    WHERE nomination_id = $1 AND evaluator_id = $2
  `, nominationID, evaluatorID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) CountIndicatorsByIDs(ctx context.Context, indicatorIDs []string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM indicators
    WHERE id = ANY($1::uuid[])
  `, indicatorIDs).Scan(&count)
	return count, err
}

func (s *Store) InsertEvaluation(ctx context.Context, eval Evaluation, scores []ScoreInput) (Evaluation, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return eval, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
    INSERT INTO evaluations (nomination_id, evaluator_id, unit_id, total, mean, completed)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, submitted_at
  `, eval.NominationID, eval.EvaluatorID, eval.UnitID, eval.Total, eval.Mean, eval.Completed).Scan(&eval.ID, &eval.SubmittedAt)
	if err != nil {
		return eval, err
	}

	for position, score := range scores {
		if _, err := tx.Exec(ctx, `
      INSERT INTO evaluation_scores (evaluation_id, indicator_id, position, nilai)
      VALUES ($1, $2, $3, $4)
    `, eval.ID, score.IndicatorID, position, score.Nilai); err != nil {
			return eval, err
		}
	}

	if _, err := tx.Exec(ctx, `
    UPDATE nominations SET status = $2 WHERE id = $1
  `, eval.NominationID, nomination.StatusCompleted); err != nil {
		return eval, err
	}

	return eval, tx.Commit(ctx)
}

const resultQuery = `
    SELECT ev.id,
           e.name, e.nip, u.name,
           COALESCE(us.name, 'Tidak ditemukan'),
           n.period,
           COALESCE(
             json_agg(
               json_build_object(
                 'indicatorId', sc.indicator_id::text,
                 'indicator', i.name,
                 'nilai', sc.nilai
               ) ORDER BY sc.position
             ) FILTER (WHERE sc.evaluation_id IS NOT NULL),
             '[]'
           ),
           ev.total, ev.mean, ev.submitted_at
    FROM evaluations ev
    JOIN nominations n ON n.id = ev.nomination_id
    JOIN employees e ON e.id = n.employee_id
    JOIN units u ON u.id = ev.unit_id
    LEFT JOIN users us ON us.id = ev.evaluator_id
    LEFT JOIN evaluation_scores sc ON sc.evaluation_id = ev.id
    LEFT JOIN indicators i ON i.id = sc.indicator_id
`

const resultGroupOrder = `
    GROUP BY ev.id, e.name, e.nip, u.name, us.name, n.period, ev.total, ev.mean, ev.submitted_at
    ORDER BY ev.submitted_at DESC
`

func (s *Store) ListResults(ctx context.Context, unitID string) ([]Result, error) {
	rows, err := s.DB.Query(ctx,
		resultQuery+`
    WHERE ($1 = '' OR ev.unit_id = NULLIF($1, '')::uuid)
  `+resultGroupOrder, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResults(rows)
}

func (s *Store) ListByEvaluator(ctx context.Context, evaluatorID string) ([]Result, error) {
	rows, err := s.DB.Query(ctx,
		resultQuery+`
    WHERE ev.evaluator_id = $1
  `+resultGroupOrder, evaluatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResults(rows)
}

func collectResults(rows pgx.Rows) ([]Result, error) {
	results := make([]Result, 0)
	for rows.Next() {
		var result Result
		var scoresJSON []byte
		if err := rows.Scan(
			&result.ID,
			&result.EmployeeName, &result.EmployeeNIP, &result.UnitName,
			&result.EvaluatorName,
			&result.Period,
			&scoresJSON,
			&result.Total, &result.Mean, &result.SubmittedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(scoresJSON, &result.Scores); err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, rows.Err()
}
