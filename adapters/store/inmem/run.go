package inmem

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ovhops/ovhops/domain/model"
)

// RunRepository is a thread-safe in-memory implementation.
type RunRepository struct {
	mu    sync.RWMutex
	items []*model.RunRecord
	seq   int64
}

func NewRunRepository() *RunRepository {
	return &RunRepository{}
}

func (r *RunRepository) nextID() string {
	r.seq++
	return fmt.Sprintf("run-%d-%d", time.Now().UnixNano(), r.seq)
}

func (r *RunRepository) Create(_ context.Context, rec *model.RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec.ID == "" {
		rec.ID = r.nextID()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	cp := *rec
	r.items = append(r.items, &cp)
	return nil
}

func (r *RunRepository) List(_ context.Context) ([]*model.RunRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.RunRecord, 0, len(r.items))
	for _, v := range r.items {
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}
