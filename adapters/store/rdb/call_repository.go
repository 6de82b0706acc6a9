package rdb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kompox/patternapi/domain"
	"github.com/kompox/patternapi/domain/model"
)

type CallRecordRepository struct{ db *gorm.DB }

func NewCallRecordRepository(db *gorm.DB) *CallRecordRepository {
	return &CallRecordRepository{db: db}
}

func callToRecord(c *model.CallRecord) *CallRecord {
	return &CallRecord{
		ID:         c.ID,
		DatagramID: c.DatagramID,
		Pattern:    c.Pattern,
		Username:   c.Username,
		Status:     c.Status,
		Message:    c.Message,
		DurationMs: c.Duration.Milliseconds(),
		CreatedAt:  c.CreatedAt,
	}
}

func callToModel(r *CallRecord) *model.CallRecord {
	return &model.CallRecord{
		ID:         r.ID,
		DatagramID: r.DatagramID,
		Pattern:    r.Pattern,
		Username:   r.Username,
		Status:     r.Status,
		Message:    r.Message,
		Duration:   time.Duration(r.DurationMs) * time.Millisecond,
		CreatedAt:  r.CreatedAt,
	}
}

func (r *CallRecordRepository) Create(ctx context.Context, c *model.CallRecord) error {
	if c.Pattern == "" {
		return model.ErrCallInvalid
	}
	rec := callToRecord(c)
	if rec.ID == "" {
		rec.ID = "call-" + uuid.NewString()
		c.ID = rec.ID
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
		c.CreatedAt = rec.CreatedAt
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *CallRecordRepository) Get(ctx context.Context, id string) (*model.CallRecord, error) {
	var rec CallRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrCallNotFound
		}
		return nil, err
	}
	return callToModel(&rec), nil
}

func (r *CallRecordRepository) scope(ctx context.Context, f domain.CallFilter) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&CallRecord{})
	if f.Pattern != "" {
		q = q.Where("pattern = ?", f.Pattern)
	}
	if !f.Before.IsZero() {
		q = q.Where("created_at < ?", f.Before)
	}
	return q
}

func (r *CallRecordRepository) List(ctx context.Context, f domain.CallFilter) ([]*model.CallRecord, error) {
	q := r.scope(ctx, f).Order("created_at DESC").Order("id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	var recs []CallRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]*model.CallRecord, 0, len(recs))
	for i := range recs {
		out = append(out, callToModel(&recs[i]))
	}
	return out, nil
}

func (r *CallRecordRepository) Count(ctx context.Context, f domain.CallFilter) (int, error) {
	var n int64
	if err := r.scope(ctx, f).Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func (r *CallRecordRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&CallRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.ErrCallNotFound
	}
	return nil
}

var _ domain.CallRecordRepository = (*CallRecordRepository)(nil)
