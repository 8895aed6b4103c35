package holiday

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Load(ctx context.Context) ([]string, error) {
	rows, err := s.DB.Query(ctx, "SELECT to_char(day, 'YYYY-MM-DD') FROM holidays ORDER BY day")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (s *Store) Insert(ctx context.Context, dateKey string) error {
	_, err := s.DB.Exec(ctx, "INSERT INTO holidays (day) VALUES ($1) ON CONFLICT (day) DO NOTHING", dateKey)
	return err
}

func (s *Store) Delete(ctx context.Context, dateKey string) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM holidays WHERE day = $1", dateKey)
	return err
}
