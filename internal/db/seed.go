package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"jornal/internal/auth"
	"jornal/internal/domain/wage"
	"jornal/internal/platform/config"
)

// Seed loads the shipped convention tables and the admin user. Every insert
// is idempotent, so re-running against an already seeded database is a no-op.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := seedTables(ctx, pool, wage.DefaultTables()); err != nil {
		return err
	}
	return ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
}

func seedTables(ctx context.Context, pool *pgxpool.Pool, tables *wage.Tables) error {
	for category, byMonth := range tables.Hourly {
		for month, rate := range byMonth {
			if _, err := pool.Exec(ctx, `
        INSERT INTO wage_rates (category, month_key, hourly_rate)
        VALUES ($1, $2, $3)
        ON CONFLICT (category, month_key) DO NOTHING
      `, category, month, rate); err != nil {
				return err
			}
		}
	}

	for years, byMonth := range tables.Seniority {
		for month, bonus := range byMonth {
			if _, err := pool.Exec(ctx, `
        INSERT INTO seniority_rates (years, month_key, bonus)
        VALUES ($1, $2, $3)
        ON CONFLICT (years, month_key) DO NOTHING
      `, years, month, bonus); err != nil {
				return err
			}
		}
	}

	for month, amount := range tables.NonRemunerative {
		if _, err := pool.Exec(ctx, `
      INSERT INTO non_remunerative_sums (month_key, amount)
      VALUES ($1, $2)
      ON CONFLICT (month_key) DO NOTHING
    `, month, amount); err != nil {
			return err
		}
	}

	return nil
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil
	}

	var id string
	err := pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&id)
	if err == nil {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, "INSERT INTO users (email, password_hash) VALUES ($1, $2)", email, hash)
	return err
}
