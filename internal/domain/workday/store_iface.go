package workday

import "context"

// StoreAPI is the one-record-per-date store. Upsert and Remove write through
// to persistent storage before the in-memory view changes; a failed write
// leaves both sides untouched.
type StoreAPI interface {
	Upsert(ctx context.Context, record Record) error
	Remove(ctx context.Context, dateKey string) error
	Get(dateKey string) (Record, bool)
	All() []Record
}
