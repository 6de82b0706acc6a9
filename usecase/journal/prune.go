package journal

import (
	"context"
	"time"

	"github.com/kompox/patternapi/domain"
	"github.com/kompox/patternapi/domain/model"
)

// PruneInput selects records to remove.
type PruneInput struct {
	// OlderThan removes records created before now minus this duration.
	OlderThan time.Duration `json:"older_than"`
}

// PruneOutput reports the number of removed records.
type PruneOutput struct {
	Deleted int `json:"deleted"`
}

// Prune deletes journal records older than the given age.
func (u *UseCase) Prune(ctx context.Context, in *PruneInput) (*PruneOutput, error) {
	if in == nil || in.OlderThan <= 0 {
		return nil, model.ErrCallInvalid
	}
	cutoff := time.Now().UTC().Add(-in.OlderThan)
	items, err := u.Repos.Call.List(ctx, domain.CallFilter{Before: cutoff})
	if err != nil {
		return nil, err
	}
	out := &PruneOutput{}
	for _, it := range items {
		if err := u.Repos.Call.Delete(ctx, it.ID); err != nil {
			return out, err
		}
		out.Deleted++
	}
	return out, nil
}
