package nomination

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

func (s *Store) EmployeeRefByID(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, name, nip, unit_id::text
    FROM employees
    WHERE id = $1
  `, employeeID)

	var ref EmployeeRef
	err := row.Scan(&ref.ID, &ref.Name, &ref.NIP, &ref.UnitID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (s *Store) NominationByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (*Nomination, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT id, employee_id::text, unit_id::text, nominated_by::text, period, status, created_at
    FROM nominations
    WHERE employee_id = $1 AND period = $2
  `, employeeID, period)

	var nom Nomination
	err := row.Scan(&nom.ID, &nom.EmployeeID, &nom.UnitID, &nom.NominatedBy, &nom.Period, &nom.Status, &nom.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &nom, nil
}

func (s *Store) CountActiveByNominator(ctx context.Context, nominatorID, period string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM nominations
    WHERE nominated_by = $1 AND period = $2 AND status = $3
  `, nominatorID, period, StatusNominated).Scan(&count)
	return count, err
}

func (s *Store) InsertNomination(ctx context.Context, nom Nomination) (Nomination, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO nominations (employee_id, unit_id, nominated_by, period, status)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, created_at
  `, nom.EmployeeID, nom.UnitID, nom.NominatedBy, nom.Period, nom.Status).Scan(&nom.ID, &nom.CreatedAt)
	return nom, err
}

const enrichedColumns = `
    n.id, n.employee_id::text, n.unit_id::text, n.nominated_by::text,
    n.period, n.status, n.created_at,
    e.name, e.nip, u.name
`

func (s *Store) ListPending(ctx context.Context, unitID string) ([]Enriched, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+enrichedColumns+`
    FROM nominations n
    JOIN employees e ON e.id = n.employee_id
    JOIN units u ON u.id = n.unit_id
    WHERE n.status = $1
      AND ($2 = '' OR n.unit_id = NULLIF($2, '')::uuid)
    ORDER BY n.created_at DESC
  `, StatusNominated, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEnriched(rows)
}

func (s *Store) ListByUnit(ctx context.Context, unitID string) ([]Enriched, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+enrichedColumns+`
    FROM nominations n
    JOIN employees e ON e.id = n.employee_id
    JOIN units u ON u.id = n.unit_id
    WHERE n.unit_id = $1
    ORDER BY n.created_at DESC
  `, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEnriched(rows)
}

func collectEnriched(rows pgx.Rows) ([]Enriched, error) {
	nominations := make([]Enriched, 0)
	for rows.Next() {
		var item Enriched
		if err := rows.Scan(
			&item.ID, &item.EmployeeID, &item.UnitID, &item.NominatedBy,
			&item.Period, &item.Status, &item.CreatedAt,
			&item.EmployeeName, &item.EmployeeNIP, &item.UnitName,
		); err != nil {
			return nil, err
		}
		nominations = append(nominations, item)
	}
	return nominations, rows.Err()
}
