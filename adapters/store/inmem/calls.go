package inmem

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/kompox/patternapi/domain"
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/internal/naming"
)

// CallRecordRepository is a thread-safe in-memory journal.
type CallRecordRepository struct {
	mu    sync.RWMutex
	items map[string]*model.CallRecord
}

func NewCallRecordRepository() *CallRecordRepository {
	return &CallRecordRepository{items: make(map[string]*model.CallRecord)}
}

func (r *CallRecordRepository) Create(_ context.Context, c *model.CallRecord) error {
	if c.Pattern == "" {
		return model.ErrCallInvalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.ID == "" {
		id, err := naming.NewCompactID("call")
		if err != nil {
			return err
		}
		c.ID = id
	}
	cp := *c
	r.items[c.ID] = &cp
	return nil
}

func (r *CallRecordRepository) Get(_ context.Context, id string) (*model.CallRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.items[id]
	if !ok {
		return nil, model.ErrCallNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *CallRecordRepository) matching(f domain.CallFilter) []*model.CallRecord {
	out := make([]*model.CallRecord, 0, len(r.items))
	for _, v := range r.items {
		if f.Pattern != "" && v.Pattern != f.Pattern {
			continue
		}
		if !f.Before.IsZero() && !v.CreatedAt.Before(f.Before) {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out
}

func (r *CallRecordRepository) List(_ context.Context, f domain.CallFilter) ([]*model.CallRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := r.matching(f)
	slices.SortFunc(out, func(a, b *model.CallRecord) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return []*model.CallRecord{}, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (r *CallRecordRepository) Count(_ context.Context, f domain.CallFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.matching(f)), nil
}

func (r *CallRecordRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return model.ErrCallNotFound
	}
	delete(r.items, id)
	return nil
}

var _ domain.CallRecordRepository = (*CallRecordRepository)(nil)
