package reports

import (
	"context"

	"sipeka/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func (s *Store) UnitSummaries(ctx context.Context, unitID string) ([]UnitSummary, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT u.id::text, u.name, COUNT(ev.id), COALESCE(AVG(ev.mean), 0)
    FROM units u
    LEFT JOIN evaluations ev ON ev.unit_id = u.id
    WHERE ($1 = '' OR u.id = NULLIF($1, '')::uuid)
    GROUP BY u.id, u.name
    ORDER BY u.name
  `, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]UnitSummary, 0)
	for rows.Next() {
		var summary UnitSummary
		if err := rows.Scan(&summary.UnitID, &summary.UnitName, &summary.Evaluations, &summary.MeanScore); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, rows.Err()
}

func (s *Store) NominationCounts(ctx context.Context, unitID string) (pending, completed int, err error) {
	err = s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FILTER (WHERE status = 'nominated'),
           COUNT(1) FILTER (WHERE status = 'completed')
    FROM nominations
    WHERE ($1 = '' OR unit_id = NULLIF($1, '')::uuid)
  `, unitID).Scan(&pending, &completed)
	return pending, completed, err
}

func (s *Store) EvaluationCount(ctx context.Context, unitID string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM evaluations
    WHERE ($1 = '' OR unit_id = NULLIF($1, '')::uuid)
  `, unitID).Scan(&count)
	return count, err
}
