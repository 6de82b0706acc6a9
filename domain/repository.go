package domain

import (
	"context"
	"time"

	"github.com/kompox/patternapi/domain/model"
)

// CallFilter narrows a journal listing. Zero fields do not filter.
type CallFilter struct {
	Pattern string
	Before  time.Time
	Limit   int
	Offset  int
}

// CallRecordRepository stores the journal of dispatched pattern invocations.
// List returns records newest first.
type CallRecordRepository interface {
	Create(ctx context.Context, r *model.CallRecord) error
	Get(ctx context.Context, id string) (*model.CallRecord, error)
	List(ctx context.Context, f CallFilter) ([]*model.CallRecord, error)
	Count(ctx context.Context, f CallFilter) (int, error)
	Delete(ctx context.Context, id string) error
}
