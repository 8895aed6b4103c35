package wage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LoadTables reads the convention tables from the database. The engine keeps
// them in memory; a convention update is a reseed plus restart.
func LoadTables(ctx context.Context, pool *pgxpool.Pool) (*Tables, error) {
	tables := &Tables{
		Hourly:          make(map[string]map[string]float64),
		Seniority:       make(map[int]map[string]float64),
		NonRemunerative: make(map[string]float64),
	}

	rows, err := pool.Query(ctx, "SELECT category, month_key, hourly_rate FROM wage_rates")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var category, monthKey string
		var rate float64
		if err := rows.Scan(&category, &monthKey, &rate); err != nil {
			return nil, err
		}
		if tables.Hourly[category] == nil {
			tables.Hourly[category] = make(map[string]float64)
		}
		tables.Hourly[category][monthKey] = rate
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = pool.Query(ctx, "SELECT years, month_key, bonus FROM seniority_rates")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var years int
		var monthKey string
		var bonus float64
		if err := rows.Scan(&years, &monthKey, &bonus); err != nil {
			return nil, err
		}
		if tables.Seniority[years] == nil {
			tables.Seniority[years] = make(map[string]float64)
		}
		tables.Seniority[years][monthKey] = bonus
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = pool.Query(ctx, "SELECT month_key, amount FROM non_remunerative_sums")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var monthKey string
		var amount float64
		if err := rows.Scan(&monthKey, &amount); err != nil {
			return nil, err
		}
		tables.NonRemunerative[monthKey] = amount
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
