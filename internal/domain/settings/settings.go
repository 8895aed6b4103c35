package settings

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"jornal/internal/domain/wage"
)

// Settings caches the last-used registration inputs so a returning client
// can pre-fill its form. Convenience only: the wage computation never reads
// from here.
type Settings struct {
	Category          string     `json:"category"`
	SeniorityYears    int        `json:"seniorityYears"`
	Shift             wage.Shift `json:"shift"`
	ExtraHours        int        `json:"extraHours"`
	PresenceBonusRate float64    `json:"presenceBonusRate"`
	AdditionalPercent float64    `json:"additionalPercent"`
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

// Get returns the cached settings, or false when nothing has been saved yet.
func (s *Store) Get(ctx context.Context) (Settings, bool, error) {
	var payload []byte
	err := s.DB.QueryRow(ctx, "SELECT payload FROM user_settings WHERE id = 1").Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return Settings{}, false, nil
	}
	if err != nil {
		return Settings{}, false, err
	}
	var out Settings
	if err := json.Unmarshal(payload, &out); err != nil {
		return Settings{}, false, err
	}
	return out, true, nil
}

func (s *Store) Put(ctx context.Context, settings Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	_, err = s.DB.Exec(ctx, `
    INSERT INTO user_settings (id, payload)
    VALUES (1, $1)
    ON CONFLICT (id)
    DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
  `, payload)
	return err
}
