package distributed

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/gopace/pkg/common/errors"
	"github.com/vnykmshr/gopace/pkg/common/validation"
	"github.com/vnykmshr/gopace/pkg/id"
)

// Gate coordinates suppression windows for string keys across application
// instances using Redis.
type Gate interface {
	// Try claims the suppression window for key. It reports true for the
	// first claim in a window; further claims from any instance report
	// false until the window expires.
	Try(ctx context.Context, key string) (bool, error)

	// Hold re-opens the window for key unconditionally, postponing its
	// expiry by the configured window from now.
	Hold(ctx context.Context, key string) error

	// Remaining returns the time left in the window for key, or zero if
	// no window is active.
	Remaining(ctx context.Context, key string) (time.Duration, error)

	// Holder returns the instance ID that claimed the window for key, or
	// an empty string if no window is active.
	Holder(ctx context.Context, key string) (string, error)

	// Clear releases the window for key immediately.
	Clear(ctx context.Context, key string) error

	// Close marks the gate closed; further operations return ErrClosed.
	// Close is idempotent. The Redis client is owned by the caller and
	// is not closed.
	Close() error
}

// Config holds configuration for a distributed Gate.
type Config struct {
	// Redis is the client used for coordination. Required.
	Redis redis.UniversalClient

	// KeyPrefix namespaces the gate's keys. Defaults to "gopace:gate".
	KeyPrefix string

	// Window is the suppression window duration. Required, must be positive.
	Window time.Duration

	// InstanceID identifies this application instance as the window
	// holder. Defaults to a generated hostname-pid-random identifier.
	InstanceID string

	// RedisTimeout bounds each coordination call. Defaults to 500ms.
	RedisTimeout time.Duration

	// FailOpen lets Try report true when Redis is unreachable. The
	// default is to suppress on coordination failure.
	FailOpen bool
}

// redisGate implements Gate on plain Redis key expiry.
type redisGate struct {
	config Config

	mu     sync.Mutex
	closed bool
}

// NewGateSafe creates a Gate with the given configuration, returning an
// error instead of panicking on invalid input.
func NewGateSafe(config Config) (Gate, error) {
	if config.Redis == nil {
		return nil, errors.NewValidationError("gate", "redis", nil, "cannot be nil").
			WithHint("provide a redis.UniversalClient")
	}
	if err := validation.ValidatePositiveDuration("gate", "window", config.Window); err != nil {
		return nil, err
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = "gopace:gate"
	}
	if config.InstanceID == "" {
		config.InstanceID = id.Instance()
	}
	if config.RedisTimeout <= 0 {
		config.RedisTimeout = 500 * time.Millisecond
	}

	return &redisGate{config: config}, nil
}

// windowKey returns the Redis key holding the window for key.
func (g *redisGate) windowKey(key string) string {
	return g.config.KeyPrefix + ":" + key
}

// checkOpen returns ErrClosed once Close has been called.
func (g *redisGate) checkOpen() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return errors.ErrClosed
	}
	return nil
}

// Try claims the suppression window for key.
func (g *redisGate) Try(ctx context.Context, key string) (bool, error) {
	// A closed gate suppresses regardless of the failure policy; closing
	// is a local decision, not a coordination failure.
	if err := g.checkOpen(); err != nil {
		return false, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.RedisTimeout)
	defer cancel()

	claimed, err := g.config.Redis.SetNX(ctx, g.windowKey(key), g.config.InstanceID, g.config.Window).Result()
	if err != nil {
		return g.config.FailOpen, errors.NewOperationError("gate", "Try", err)
	}
	return claimed, nil
}

// Hold re-opens the window for key, postponing its expiry.
func (g *redisGate) Hold(ctx context.Context, key string) error {
	if err := g.checkOpen(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.RedisTimeout)
	defer cancel()

	if err := g.config.Redis.Set(ctx, g.windowKey(key), g.config.InstanceID, g.config.Window).Err(); err != nil {
		return errors.NewOperationError("gate", "Hold", err)
	}
	return nil
}

// Remaining returns the time left in the window for key.
func (g *redisGate) Remaining(ctx context.Context, key string) (time.Duration, error) {
	if err := g.checkOpen(); err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.RedisTimeout)
	defer cancel()

	ttl, err := g.config.Redis.PTTL(ctx, g.windowKey(key)).Result()
	if err != nil {
		return 0, errors.NewOperationError("gate", "Remaining", err)
	}
	if ttl < 0 {
		// -2: no window; -1: no expiry (foreign key), treat as inactive.
		return 0, nil
	}
	return ttl, nil
}

// Holder returns the instance ID holding the window for key.
func (g *redisGate) Holder(ctx context.Context, key string) (string, error) {
	if err := g.checkOpen(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.RedisTimeout)
	defer cancel()

	holder, err := g.config.Redis.Get(ctx, g.windowKey(key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", errors.NewOperationError("gate", "Holder", err)
	}
	return holder, nil
}

// Clear releases the window for key immediately.
func (g *redisGate) Clear(ctx context.Context, key string) error {
	if err := g.checkOpen(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, g.config.RedisTimeout)
	defer cancel()

	if err := g.config.Redis.Del(ctx, g.windowKey(key)).Err(); err != nil {
		return errors.NewOperationError("gate", "Clear", err)
	}
	return nil
}

// Close marks the gate closed. Idempotent.
func (g *redisGate) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
	return nil
}
