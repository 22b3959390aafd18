// Package id provides lightweight UUID-based identifier helpers used to
// name wrapper instances, distributed gate claimants, and application
// instances.
package id

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// New returns a random (version 4) UUID string.
func New() string {
	return uuid.NewString()
}

// WithPrefix returns a random UUID string prefixed with prefix and a dash,
// e.g. "gate-9f1c...".
func WithPrefix(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// Instance returns an identifier unique to this process, combining the
// hostname, the PID, and a random fragment. Useful for registering an
// application instance with shared coordination backends.
func Instance() string {
	hostname, _ := os.Hostname()
	return fmt.Sprintf("%s-%d-%s", hostname, os.Getpid(), uuid.NewString()[:8])
}
