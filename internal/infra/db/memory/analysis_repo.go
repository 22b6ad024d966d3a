package memory

import (
	"context"
	"sort"
	"sync"

	domain "github.com/avarialab/avaria/internal/domain/analysis"
)

// AnalysisRepository is the zero-config default backend: a keyed in-memory
// store guarded by an RWMutex. Records are copied on the way in and out so
// callers can never mutate a stored Analysis.
type AnalysisRepository struct {
	mu   sync.RWMutex
	byID map[domain.AnalysisID]entry
	seq  uint64
}

type entry struct {
	a   domain.Analysis
	seq uint64
}

func NewAnalysisRepository() *AnalysisRepository {
	return &AnalysisRepository{byID: make(map[domain.AnalysisID]entry)}
}

func (r *AnalysisRepository) Save(_ context.Context, a *domain.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	r.byID[a.ID] = entry{a: clone(a), seq: r.seq}
	return nil
}

func (r *AnalysisRepository) Get(_ context.Context, id domain.AnalysisID) (*domain.Analysis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := clone(&e.a)
	return &out, nil
}

// List returns every analysis, newest first (insertion order breaks
// timestamp ties).
func (r *AnalysisRepository) List(_ context.Context) ([]*domain.Analysis, error) {
	r.mu.RLock()
	entries := make([]entry, 0, len(r.byID))
	for _, e := range r.byID {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.a.Timestamp.Equal(b.a.Timestamp) {
			return a.a.Timestamp.After(b.a.Timestamp)
		}
		return a.seq > b.seq
	})

	out := make([]*domain.Analysis, len(entries))
	for i := range entries {
		c := clone(&entries[i].a)
		out[i] = &c
	}
	return out, nil
}

func (r *AnalysisRepository) Delete(_ context.Context, id domain.AnalysisID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func clone(a *domain.Analysis) domain.Analysis {
	c := *a
	c.DamageItems = append([]domain.DamageItem(nil), a.DamageItems...)
	return c
}
