package journal

import (
	"context"

	"github.com/kompox/patternapi/domain"
	"github.com/kompox/patternapi/domain/model"
)

// ListInput defines optional filters for listing calls.
type ListInput struct {
	// Pattern restricts the listing to one wire string.
	Pattern string `json:"pattern,omitempty"`
	// Limit caps the number of records; zero means DefaultLimit.
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// ListOutput wraps listed calls, newest first.
type ListOutput struct {
	Calls []*model.CallRecord `json:"calls"`
	Total int                 `json:"total"`
}

const DefaultLimit = 50

// List returns journal records.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	if in == nil {
		in = &ListInput{}
	}
	if in.Limit < 0 || in.Offset < 0 {
		return nil, model.ErrCallInvalid
	}
	f := domain.CallFilter{Pattern: in.Pattern, Limit: in.Limit, Offset: in.Offset}
	if f.Limit == 0 {
		f.Limit = DefaultLimit
	}
	items, err := u.Repos.Call.List(ctx, f)
	if err != nil {
		return nil, err
	}
	total, err := u.Repos.Call.Count(ctx, domain.CallFilter{Pattern: in.Pattern})
	if err != nil {
		return nil, err
	}
	return &ListOutput{Calls: items, Total: total}, nil
}
