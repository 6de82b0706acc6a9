package naming

import (
	"strings"
	"testing"
	"time"
)

func isBase36(s string) bool {
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'z')) {
			return false
		}
	}
	return true
}

func TestNewCompactID(t *testing.T) {
	ids := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := NewCompactID("")
		if err != nil {
			t.Fatalf("NewCompactID failed: %v", err)
		}
		if len(id) != compactIDLength {
			t.Fatalf("expected ID length %d, got %d for ID: %s", compactIDLength, len(id), id)
		}
		if ids[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		ids[id] = true
		if !isBase36(id) {
			t.Fatalf("invalid character in ID %s", id)
		}
	}
}

func TestNewCompactIDPrefix(t *testing.T) {
	id, err := NewCompactID("call")
	if err != nil {
		t.Fatalf("NewCompactID failed: %v", err)
	}
	if !strings.HasPrefix(id, "call-") {
		t.Fatalf("expected call- prefix, got %s", id)
	}
	if rest := strings.TrimPrefix(id, "call-"); len(rest) != compactIDLength || !isBase36(rest) {
		t.Fatalf("unexpected id body %q", rest)
	}
}

func TestCompactIDTimeOrdered(t *testing.T) {
	a, err := compactID(time.Unix(1700000000, 0))
	if err != nil {
		t.Fatal(err)
	}
	b, err := compactID(time.Unix(1700000001, 0))
	if err != nil {
		t.Fatal(err)
	}
	if a[:7] >= b[:7] {
		t.Fatalf("timestamp part not ordered: %s >= %s", a[:7], b[:7])
	}
	if _, err := compactID(time.Unix(-1, 0)); err == nil {
		t.Fatalf("expected error for negative timestamp")
	}
}
