package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"sipeka/internal/domain/identity"
	"sipeka/internal/platform/config"
)

// Seed provisions the bootstrap admin and the default scoring indicators.
// Safe to run on every start.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureAdminUser(ctx, pool, cfg.SeedAdminToken, cfg.SeedAdminName); err != nil {
		return err
	}
	return ensureDefaultIndicators(ctx, pool)
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, token, name string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	_, err := pool.Exec(ctx, `
    INSERT INTO users (token_identifier, name, image, role)
    VALUES ($1, $2, '', $3)
    ON CONFLICT (token_identifier) DO NOTHING
  `, token, name, identity.RoleAdmin)
	return err
}

var defaultIndicators = []struct {
	name        string
	description string
}{
	{"Disiplin", "Ketaatan terhadap jam kerja dan aturan"},
	{"Kehadiran", "Tingkat kehadiran selama periode penilaian"},
	{"Kualitas Kerja", "Ketelitian dan mutu hasil pekerjaan"},
	{"Kerja Sama", "Kemampuan bekerja dalam tim"},
}

func ensureDefaultIndicators(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM indicators").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, indicator := range defaultIndicators {
		if _, err := pool.Exec(ctx, `
      INSERT INTO indicators (name, description)
      VALUES ($1, $2)
    `, indicator.name, indicator.description); err != nil {
			return err
		}
	}
	return nil
}
