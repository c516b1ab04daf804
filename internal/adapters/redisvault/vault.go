package redisvault

// Package redisvault persists sessions in Redis for shared-workstation
// deployments where local files are unsuitable. The durable key carries the
// remembered-session TTL, the scoped key the short one; writes to either key
// clear the other so exactly one location is populated at a time.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/healteex/trackctl/internal/domain/auth"
	"github.com/redis/go-redis/v9"
)

const (
	defaultDurableKey = "trackctl:session:durable"
	defaultScopedKey  = "trackctl:session:scoped"
)

// Vault is a Redis-backed session vault.
type Vault struct {
	client     redis.UniversalClient
	durableKey string
	scopedKey  string
	durableTTL time.Duration
	scopedTTL  time.Duration
}

// Options configures a Vault.
type Options struct {
	Client redis.UniversalClient

	// Namespace prefixes both keys, e.g. per user. Optional.
	Namespace string

	// DurableTTL bounds remembered sessions. Mirrors the backend's extended
	// refresh lifetime.
	DurableTTL time.Duration

	// ScopedTTL bounds unremembered sessions.
	ScopedTTL time.Duration
}

// New builds a Redis vault.
func New(opts Options) (*Vault, error) {
	if opts.Client == nil {
		return nil, errors.New("redis client is required")
	}

	durableKey := defaultDurableKey
	scopedKey := defaultScopedKey
	if opts.Namespace != "" {
		durableKey = opts.Namespace + ":" + durableKey
		scopedKey = opts.Namespace + ":" + scopedKey
	}

	durableTTL := opts.DurableTTL
	if durableTTL <= 0 {
		durableTTL = 720 * time.Hour
	}
	scopedTTL := opts.ScopedTTL
	if scopedTTL <= 0 {
		scopedTTL = 12 * time.Hour
	}

	return &Vault{
		client:     opts.Client,
		durableKey: durableKey,
		scopedKey:  scopedKey,
		durableTTL: durableTTL,
		scopedTTL:  scopedTTL,
	}, nil
}

// ReadDurable returns the remembered session, or false when absent.
func (v *Vault) ReadDurable(ctx context.Context) (domainauth.Session, bool, error) {
	return v.read(ctx, v.durableKey)
}

// ReadScoped returns the unremembered session, or false when absent.
func (v *Vault) ReadScoped(ctx context.Context) (domainauth.Session, bool, error) {
	return v.read(ctx, v.scopedKey)
}

// WriteDurable stores the session under the durable key and clears the scoped
// key.
func (v *Vault) WriteDurable(ctx context.Context, sess domainauth.Session) error {
	return v.write(ctx, writeOp{setKey: v.durableKey, ttl: v.durableTTL, clearKey: v.scopedKey, sess: sess})
}

// WriteScoped stores the session under the scoped key and clears the durable
// key.
func (v *Vault) WriteScoped(ctx context.Context, sess domainauth.Session) error {
	return v.write(ctx, writeOp{setKey: v.scopedKey, ttl: v.scopedTTL, clearKey: v.durableKey, sess: sess})
}

// Clear removes the session from both keys.
func (v *Vault) Clear(ctx context.Context) error {
	return v.client.Del(ctx, v.durableKey, v.scopedKey).Err()
}

func (v *Vault) read(ctx context.Context, key string) (domainauth.Session, bool, error) {
	data, err := v.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, false, nil
		}
		return domainauth.Session{}, false, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		// Corrupt payloads read as absent so startup degrades to anonymous.
		return domainauth.Session{}, false, nil
	}
	return sess, true, nil
}

type writeOp struct {
	setKey   string
	clearKey string
	ttl      time.Duration
	sess     domainauth.Session
}

func (v *Vault) write(ctx context.Context, op writeOp) error {
	data, err := json.Marshal(op.sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	pipe := v.client.TxPipeline()
	pipe.Set(ctx, op.setKey, data, op.ttl)
	pipe.Del(ctx, op.clearKey)
	if _, execErr := pipe.Exec(ctx); execErr != nil {
		return fmt.Errorf("write session: %w", execErr)
	}
	return nil
}
