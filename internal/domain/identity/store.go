package identity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"sipeka/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const userColumns = `
    id,
    token_identifier,
    COALESCE(name, ''),
    COALESCE(image, ''),
    role,
    COALESCE(unit_id::text, ''),
    created_at
`

func (s *Store) UserByToken(ctx context.Context, tokenIdentifier string) (*User, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+userColumns+`
    FROM users
    WHERE token_identifier = $1
  `, tokenIdentifier)
	return scanUser(row)
}

func (s *Store) UserByID(ctx context.Context, userID string) (*User, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+userColumns+`
    FROM users
    WHERE id = $1
  `, userID)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*User, error) {
	var user User
	err := row.Scan(&user.ID, &user.TokenIdentifier, &user.Name, &user.Image, &user.Role, &user.UnitID, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) InsertUser(ctx context.Context, user User) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO users (token_identifier, name, image, role, unit_id)
    VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid)
    RETURNING id
  `, user.TokenIdentifier, user.Name, user.Image, user.Role, user.UnitID).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateUserProfile(ctx context.Context, tokenIdentifier, name, image string) (bool, error) {
	tag, err := s.DB.Exec(ctx, `
    UPDATE users
    SET name = $2, image = $3
    WHERE token_identifier = $1
  `, tokenIdentifier, name, image)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) UpdateUserRole(ctx context.Context, userID, role, unitID string) error {
	_, err := s.DB.Exec(ctx, `
    UPDATE users
    SET role = $2, unit_id = NULLIF($3, '')::uuid
    WHERE id = $1
  `, userID, role, unitID)
	return err
}

func (s *Store) DeleteUserByToken(ctx context.Context, tokenIdentifier string) (bool, error) {
	tag, err := s.DB.Exec(ctx, "DELETE FROM users WHERE token_identifier = $1", tokenIdentifier)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) ListUsers(ctx context.Context, limit, offset int) ([]User, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+userColumns+`
    FROM users
    ORDER BY created_at DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (s *Store) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM users").Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Store) ListUsersByRole(ctx context.Context, role string) ([]User, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+userColumns+`
    FROM users
    WHERE role = $1
    ORDER BY created_at DESC
  `, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]User, error) {
	users := make([]User, 0)
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.TokenIdentifier, &user.Name, &user.Image, &user.Role, &user.UnitID, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *Store) UnitExists(ctx context.Context, unitID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, "SELECT COUNT(1) FROM units WHERE id = $1", unitID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
