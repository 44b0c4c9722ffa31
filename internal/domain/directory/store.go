package directory

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

func (s *Store) UnitByID(ctx context.Context, unitID string) (*Unit, error) {
	row := s.DB.QueryRow(ctx, "SELECT id, name, created_at FROM units WHERE id = $1", unitID)
	return scanUnit(row)
}

func (s *Store) UnitByName(ctx context.Context, name string) (*Unit, error) {
	row := s.DB.QueryRow(ctx, "SELECT id, name, created_at FROM units WHERE name = $1", name)
	return scanUnit(row)
}

func scanUnit(row pgx.Row) (*Unit, error) {
	var unit Unit
	err := row.Scan(&unit.ID, &unit.Name, &unit.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (s *Store) InsertUnit(ctx context.Context, name string) (Unit, error) {
	var unit Unit
	err := s.DB.QueryRow(ctx, `
    INSERT INTO units (name)
    VALUES ($1)
    RETURNING id, name, created_at
  `, name).Scan(&unit.ID, &unit.Name, &unit.CreatedAt)
	return unit, err
}

func (s *Store) UpdateUnitName(ctx context.Context, unitID, name string) error {
	_, err := s.DB.Exec(ctx, "UPDATE units SET name = $2 WHERE id = $1", unitID, name)
	return err
}

func (s *Store) DeleteUnit(ctx context.Context, unitID string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM units WHERE id = $1", unitID)
	return err
}

func (s *Store) ListUnits(ctx context.Context) ([]Unit, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name, created_at FROM units ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUnits(rows)
}

func (s *Store) ListUnitsPage(ctx context.Context, limit, offset int) ([]Unit, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, created_at
    FROM units
    ORDER BY created_at DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUnits(rows)
}

func collectUnits(rows pgx.Rows) ([]Unit, error) {
	units := make([]Unit, 0)
	for rows.Next() {
		var unit Unit
		if err := rows.Scan(&unit.ID, &unit.Name, &unit.CreatedAt); err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, rows.Err()
}

func (s *Store) CountUnits(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM units").Scan(&count)
	return count, err
}

const employeeColumns = `
    e.id, e.name, e.nip, e.unit_id::text, u.name, e.created_at
`

func (s *Store) EmployeeByID(ctx context.Context, employeeID string) (*Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees e
    JOIN units u ON u.id = e.unit_id
    WHERE e.id = $1
  `, employeeID)
	var emp Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.NIP, &emp.UnitID, &emp.UnitName, &emp.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (s *Store) EmployeeCountByUnit(ctx context.Context, unitID string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE unit_id = $1", unitID).Scan(&count)
	return count, err
}

func (s *Store) InsertEmployee(ctx context.Context, name, nip, unitID string) (Employee, error) {
	var emp Employee
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, nip, unit_id)
    VALUES ($1, $2, $3)
    RETURNING id, name, nip, unit_id::text, created_at
  `, name, nip, unitID).Scan(&emp.ID, &emp.Name, &emp.NIP, &emp.UnitID, &emp.CreatedAt)
	return emp, err
}

func (s *Store) UpdateEmployee(ctx context.Context, employeeID, name, nip, unitID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $2, nip = $3, unit_id = $4
    WHERE id = $1
  `, employeeID, name, nip, unitID)
	return err
}

// DeleteEmployeeCascade removes the employee's evaluations, then their
// nominations, then the employee, all in one transaction so no orphan
// rows survive a partial failure.
func (s *Store) DeleteEmployeeCascade(ctx context.Context, employeeID string) (CascadeResult, error) {
	var result CascadeResult

	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return result, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, `
    DELETE FROM evaluations
    WHERE nomination_id IN (SELECT id FROM nominations WHERE employee_id = $1)
  `, employeeID)
	if err != nil {
		return result, err
	}
	result.EvaluationsDeleted = int(tag.RowsAffected())

	tag, err = tx.Exec(ctx, "DELETE FROM nominations WHERE employee_id = $1", employeeID)
	if err != nil {
		return result, err
	}
	result.NominationsDeleted = int(tag.RowsAffected())

	if _, err := tx.Exec(ctx, "DELETE FROM employees WHERE id = $1", employeeID); err != nil {
		return result, err
	}

	return result, tx.Commit(ctx)
}

func (s *Store) ListEmployees(ctx context.Context, unitID string, limit, offset int) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees e
    JOIN units u ON u.id = e.unit_id
    WHERE ($1 = '' OR e.unit_id = NULLIF($1, '')::uuid)
    ORDER BY e.created_at DESC
    LIMIT $2 OFFSET $3
  `, unitID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func (s *Store) CountEmployees(ctx context.Context, unitID string) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1)
    FROM employees
    WHERE ($1 = '' OR unit_id = NULLIF($1, '')::uuid)
  `, unitID).Scan(&count)
	return count, err
}

func (s *Store) ListEmployeesByUnit(ctx context.Context, unitID string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees e
    JOIN units u ON u.id = e.unit_id
    WHERE ($1 = '' OR e.unit_id = NULLIF($1, '')::uuid)
    ORDER BY e.name
  `, unitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]Employee, error) {
	employees := make([]Employee, 0)
	for rows.Next() {
		var emp Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.NIP, &emp.UnitID, &emp.UnitName, &emp.CreatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}
