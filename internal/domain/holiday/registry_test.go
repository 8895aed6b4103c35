package holiday

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeStore struct {
	days      []string
	insertErr error
}

func (f *fakeStore) Load(ctx context.Context) ([]string, error) { return f.days, nil }

func (f *fakeStore) Insert(ctx context.Context, dateKey string) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.days = append(f.days, dateKey)
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, dateKey string) error {
	for i, d := range f.days {
		if d == dateKey {
			f.days = append(f.days[:i], f.days[i+1:]...)
			break
		}
	}
	return nil
}

func TestRegistryAddContainsRemove(t *testing.T) {
	registry := NewRegistry(&fakeStore{})
	ctx := context.Background()

	if err := registry.Add(ctx, "2025-07-09"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	day := time.Date(2025, time.July, 9, 0, 0, 0, 0, time.Local)
	if !registry.Contains(day) {
		t.Fatal("expected registry to contain 2025-07-09")
	}

	if err := registry.Remove(ctx, "2025-07-09"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if registry.Contains(day) {
		t.Fatal("expected holiday removed")
	}
}

func TestRegistryRejectsBadDate(t *testing.T) {
	registry := NewRegistry(&fakeStore{})
	if err := registry.Add(context.Background(), "09/07/2025"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestRegistryWriteThroughFailureLeavesSetUnchanged(t *testing.T) {
	registry := NewRegistry(&fakeStore{insertErr: errors.New("db down")})
	if err := registry.Add(context.Background(), "2025-12-25"); err == nil {
		t.Fatal("expected persistence error")
	}
	if registry.Contains(time.Date(2025, time.December, 25, 0, 0, 0, 0, time.Local)) {
		t.Fatal("failed write must not mutate the in-memory set")
	}
}

func TestRegistryLoadAndList(t *testing.T) {
	registry := NewRegistry(&fakeStore{days: []string{"2025-05-01", "2025-01-01"}})
	if err := registry.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	got := registry.List()
	if len(got) != 2 || got[0] != "2025-01-01" || got[1] != "2025-05-01" {
		t.Fatalf("expected sorted list, got %v", got)
	}
}
