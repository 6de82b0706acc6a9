package local

import (
	"context"
	"fmt"

	"github.com/kompox/patternapi/domain"
	"github.com/kompox/patternapi/domain/contract"
	"github.com/kompox/patternapi/domain/model"
)

// HandleDescribe answers describe with the build info and the published
// contract of every pattern.
func HandleDescribe(m *Mux, info model.BuildInfo) {
	Handle(m, contract.Describe, func(ctx context.Context, _ *contract.Empty) (*model.DescribeResponse, error) {
		out := &model.DescribeResponse{
			BuildInfo: info,
			Features:  map[string]bool{},
			Patterns:  map[string]model.PatternConfig{},
		}
		for _, d := range contract.Descriptors() {
			cfg, err := d.Config()
			if err != nil {
				return nil, err
			}
			out.Patterns[d.Pattern().String()] = cfg
			out.Features[d.Pattern().String()] = m.Handled(d.Pattern())
		}
		return out, nil
	})
}

// HandleAuditLog serves audit-log/list from the call journal.
func HandleAuditLog(m *Mux, repo domain.CallRecordRepository) {
	Handle(m, contract.AuditLogList, func(ctx context.Context, req *model.AuditLogListRequest) (*model.AuditLogPage, error) {
		f := domain.CallFilter{Limit: req.Limit, Offset: req.Offset}
		if req.Pattern != nil {
			f.Pattern = *req.Pattern
		}
		if f.Limit == 0 {
			f.Limit = 100
		}
		total, err := repo.Count(ctx, domain.CallFilter{Pattern: f.Pattern})
		if err != nil {
			return nil, fmt.Errorf("count calls: %w", err)
		}
		recs, err := repo.List(ctx, f)
		if err != nil {
			return nil, fmt.Errorf("list calls: %w", err)
		}
		page := &model.AuditLogPage{Data: make([]model.AuditLogEntry, 0, len(recs)), TotalCount: total}
		for _, r := range recs {
			page.Data = append(page.Data, model.AuditLogEntry{
				ID:         r.ID,
				Pattern:    r.Pattern,
				Username:   r.Username,
				Status:     r.Status,
				Message:    r.Message,
				DurationMs: r.Duration.Milliseconds(),
				CreatedAt:  r.CreatedAt,
			})
		}
		return page, nil
	})
}
