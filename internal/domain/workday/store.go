package workday

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store keeps the authoritative record map in memory and writes through to
// Postgres on every mutation. Records persist as JSONB keyed by day, the
// same key-value shape the aggregator consumes.
type Store struct {
	DB *pgxpool.Pool

	mu    sync.RWMutex
	cache map[string]Record
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db, cache: make(map[string]Record)}
}

// Load fills the cache from the database. Call once at startup.
func (s *Store) Load(ctx context.Context) error {
	rows, err := s.DB.Query(ctx, "SELECT payload FROM work_records")
	if err != nil {
		return err
	}
	defer rows.Close()

	loaded := make(map[string]Record)
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return err
		}
		var record Record
		if err := json.Unmarshal(payload, &record); err != nil {
			return err
		}
		loaded[record.DateKey] = record
	}
	if err := rows.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.cache = loaded
	s.mu.Unlock()
	return nil
}

func (s *Store) Upsert(ctx context.Context, record Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err = s.DB.Exec(ctx, `
    INSERT INTO work_records (day, payload)
    VALUES ($1, $2)
    ON CONFLICT (day)
    DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
  `, record.DateKey, payload)
	if err != nil {
		return err
	}
	s.cache[record.DateKey] = record
	return nil
}

func (s *Store) Remove(ctx context.Context, dateKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tag, err := s.DB.Exec(ctx, "DELETE FROM work_records WHERE day = $1", dateKey)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, ok := s.cache[dateKey]; !ok {
			return ErrRecordNotFound
		}
	}
	delete(s.cache, dateKey)
	return nil
}

func (s *Store) Get(dateKey string) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.cache[dateKey]
	return record, ok
}

// All returns a key-sorted snapshot.
func (s *Store) All() []Record {
	s.mu.RLock()
	out := make([]Record, 0, len(s.cache))
	for _, record := range s.cache {
		out = append(out, record)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].DateKey < out[j].DateKey })
	return out
}
