package repo

import (
	"context"

	"github.com/clockhouse/timesheet/internal/domain/entry"
	"github.com/clockhouse/timesheet/internal/observability"
)

// EntriesStore is implemented by both the memory and postgres repos.
type EntriesStore interface {
	List(ctx context.Context, filter entry.ListFilter) ([]entry.Entry, error)
	Create(ctx context.Context, req entry.CreateEntryRequest) (entry.Entry, error)
	Update(ctx context.Context, id string, req entry.UpdateEntryRequest) (entry.Entry, error)
	Delete(ctx context.Context, id string) error
}

// Instrument wraps a store with per-operation metrics. A nil Prom returns
// the store unchanged, which keeps tests free of registry wiring.
func Instrument(next EntriesStore, prom *observability.Prom) EntriesStore {
	if prom == nil {
		return next
	}

	return &instrumentedStore{next: next, prom: prom}
}

type instrumentedStore struct {
	next EntriesStore
	prom *observability.Prom
}

func (s *instrumentedStore) List(ctx context.Context, filter entry.ListFilter) ([]entry.Entry, error) {
	var out []entry.Entry

	err := s.prom.ObserveStore("list", func() error {
		var err error
		out, err = s.next.List(ctx, filter)
		return err
	})

	return out, err
}

func (s *instrumentedStore) Create(ctx context.Context, req entry.CreateEntryRequest) (entry.Entry, error) {
	var out entry.Entry

	err := s.prom.ObserveStore("create", func() error {
		var err error
		out, err = s.next.Create(ctx, req)
		return err
	})

	return out, err
}

func (s *instrumentedStore) Update(ctx context.Context, id string, req entry.UpdateEntryRequest) (entry.Entry, error) {
	var out entry.Entry

	err := s.prom.ObserveStore("update", func() error {
		var err error
		out, err = s.next.Update(ctx, id, req)
		return err
	})

	return out, err
}

func (s *instrumentedStore) Delete(ctx context.Context, id string) error {
	return s.prom.ObserveStore("delete", func() error {
		return s.next.Delete(ctx, id)
	})
}
