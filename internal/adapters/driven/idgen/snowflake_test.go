package idgen

import (
	"strconv"
	"testing"
)

func TestNewSnowflake_InvalidNode(t *testing.T) {
	if _, err := NewSnowflake(-1); err == nil {
		t.Error("expected error for negative node id")
	}
	if _, err := NewSnowflake(1024); err == nil {
		t.Error("expected error for node id above 1023")
	}
}

func TestSnowflake_NewID(t *testing.T) {
	gen, err := NewSnowflake(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]struct{})
	var last int64
	for i := 0; i < 1000; i++ {
		id := gen.NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}

		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			t.Fatalf("id %q is not decimal: %v", id, err)
		}
		if n <= last {
			t.Fatalf("ids not increasing: %d after %d", n, last)
		}
		last = n
	}
}
