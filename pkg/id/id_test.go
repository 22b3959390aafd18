package id

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNew(t *testing.T) {
	a := New()
	b := New()

	if a == b {
		t.Error("consecutive IDs should differ")
	}
	if _, err := uuid.Parse(a); err != nil {
		t.Errorf("New should return a valid UUID: %v", err)
	}
}

func TestWithPrefix(t *testing.T) {
	got := WithPrefix("gate")

	if !strings.HasPrefix(got, "gate-") {
		t.Errorf("expected prefix %q, got %q", "gate-", got)
	}
	if _, err := uuid.Parse(strings.TrimPrefix(got, "gate-")); err != nil {
		t.Errorf("suffix should be a valid UUID: %v", err)
	}
}

func TestInstance(t *testing.T) {
	a := Instance()
	b := Instance()

	if a == b {
		t.Error("instance IDs should include a random fragment")
	}
	if len(strings.Split(a, "-")) < 3 {
		t.Errorf("instance ID should have hostname, pid and fragment parts, got %q", a)
	}
}
