package memory

import (
	"context"
	"sync"

	"github.com/clockhouse/timesheet/internal/domain/entry"
)

// EntriesRepo is the default store: an ordered in-memory collection guarded
// by a single lock, so concurrent handlers serialize instead of racing.
// Contents are lost on restart.
type EntriesRepo struct {
	mu    sync.RWMutex
	items []entry.Entry
}

func NewEntriesRepo() *EntriesRepo {
	return &EntriesRepo{
		items: make([]entry.Entry, 0, 32),
	}
}

func (r *EntriesRepo) List(ctx context.Context, filter entry.ListFilter) ([]entry.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entry.Entry, 0, len(r.items))

	for _, e := range r.items {
		if filter.Matches(e) {
			out = append(out, e)
		}
	}

	return out, nil
}

func (r *EntriesRepo) Create(ctx context.Context, req entry.CreateEntryRequest) (entry.Entry, error) {
	err := req.Validate()

	if err != nil {
		return entry.Entry{}, err
	}

	e := entry.NewFromCreateRequest(req)

	r.mu.Lock()
	r.items = append(r.items, e)
	r.mu.Unlock()

	return e, nil
}

func (r *EntriesRepo) Update(ctx context.Context, id string, req entry.UpdateEntryRequest) (entry.Entry, error) {
	err := req.Validate()

	if err != nil {
		return entry.Entry{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.items {
		if e.ID == id {
			updated := e.ApplyUpdate(req)
			r.items[i] = updated

			return updated, nil
		}
	}

	return entry.Entry{}, entry.ErrNotFound
}

func (r *EntriesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.items {
		if e.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)

			return nil
		}
	}

	return entry.ErrNotFound
}
