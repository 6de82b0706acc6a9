package inmem

import (
	"context"
	"testing"
	"time"

	"github.com/kompox/patternapi/domain"
	"github.com/kompox/patternapi/domain/model"
)

func TestCallRecordRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().CallRepo
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, p := range []string{"get/user", "files/list", "get/user"} {
		rec := &model.CallRecord{Pattern: p, Status: "success", CreatedAt: base.Add(time.Duration(i) * time.Minute)}
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
		if rec.ID == "" {
			t.Fatal("Create() did not assign an ID")
		}
	}

	all, err := repo.List(ctx, domain.CallFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List() returned %d records, want 3", len(all))
	}
	if !all[0].CreatedAt.After(all[1].CreatedAt) {
		t.Errorf("List() not ordered newest first")
	}

	tests := []struct {
		name   string
		filter domain.CallFilter
		want   int
	}{
		{"pattern", domain.CallFilter{Pattern: "get/user"}, 2},
		{"limit", domain.CallFilter{Limit: 1}, 1},
		{"offset", domain.CallFilter{Offset: 2}, 1},
		{"offset past end", domain.CallFilter{Offset: 5}, 0},
		{"before", domain.CallFilter{Before: base.Add(90 * time.Second)}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("List() returned %d records, want %d", len(got), tt.want)
			}
		})
	}

	n, err := repo.Count(ctx, domain.CallFilter{Pattern: "files/list"})
	if err != nil || n != 1 {
		t.Errorf("Count() = %d, %v; want 1, nil", n, err)
	}

	got, err := repo.Get(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	got.Status = "mutated"
	again, _ := repo.Get(ctx, all[0].ID)
	if again.Status != "success" {
		t.Errorf("Get() returned shared record")
	}

	if err := repo.Delete(ctx, all[0].ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.Get(ctx, all[0].ID); err != model.ErrCallNotFound {
		t.Errorf("Get() after Delete() error = %v, want ErrCallNotFound", err)
	}
	if err := repo.Delete(ctx, all[0].ID); err != model.ErrCallNotFound {
		t.Errorf("Delete() twice error = %v, want ErrCallNotFound", err)
	}
	if err := repo.Create(ctx, &model.CallRecord{}); err != model.ErrCallInvalid {
		t.Errorf("Create() without pattern error = %v, want ErrCallInvalid", err)
	}
}
