package holiday

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// StoreAPI persists the holiday set. The registry is the in-memory
// authority; every mutation writes through before the set changes.
type StoreAPI interface {
	Load(ctx context.Context) ([]string, error)
	Insert(ctx context.Context, dateKey string) error
	Delete(ctx context.Context, dateKey string) error
}

type Registry struct {
	mu    sync.RWMutex
	store StoreAPI
	days  map[string]struct{}
}

func NewRegistry(store StoreAPI) *Registry {
	return &Registry{store: store, days: make(map[string]struct{})}
}

func (r *Registry) Load(ctx context.Context) error {
	keys, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.days = make(map[string]struct{}, len(keys))
	for _, key := range keys {
		r.days[key] = struct{}{}
	}
	return nil
}

func (r *Registry) Add(ctx context.Context, dateKey string) error {
	if _, err := time.Parse(dateLayout, dateKey); err != nil {
		return fmt.Errorf("invalid holiday date %q: %w", dateKey, err)
	}
	if err := r.store.Insert(ctx, dateKey); err != nil {
		return err
	}
	r.mu.Lock()
	r.days[dateKey] = struct{}{}
	r.mu.Unlock()
	return nil
}

func (r *Registry) Remove(ctx context.Context, dateKey string) error {
	if err := r.store.Delete(ctx, dateKey); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.days, dateKey)
	r.mu.Unlock()
	return nil
}

func (r *Registry) Contains(day time.Time) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.days[day.Format(dateLayout)]
	return ok
}

func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.days))
	for key := range r.days {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
