package guidance

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/yungbote/hermes-backend/internal/domain/hermetic"
	"github.com/yungbote/hermes-backend/internal/platform/logger"
)

const (
	DefaultCacheSize = 256
	DefaultRemoteTTL = 24 * time.Hour
	remotePrefix     = "hermes:guidance:v1:"
)

// Lookup sources reported to the observer.
const (
	SourceMemory    = "memory"
	SourceRemote    = "remote"
	SourceGenerated = "generated"
)

// Remote is a shared byte store, e.g. Redis. A miss is (nil, false, nil).
type Remote interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

type Option func(*Cache)

func WithRemote(r Remote, ttl time.Duration) Option {
	return func(c *Cache) {
		c.remote = r
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(c *Cache) { c.log = log }
}

// WithObserver registers a callback invoked once per Get with its source.
func WithObserver(fn func(source string)) Option {
	return func(c *Cache) { c.observe = fn }
}

// Cache memoizes Generate per Key in a process-local LRU, optionally backed
// by a shared remote tier. Remote failures fall through to generation.
type Cache struct {
	local   *lru.Cache[Key, hermetic.TransformationGuidance]
	remote  Remote
	ttl     time.Duration
	log     *logger.Logger
	observe func(string)
}

func NewCache(size int, opts ...Option) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	local, err := lru.New[Key, hermetic.TransformationGuidance](size)
	if err != nil {
		return nil, fmt.Errorf("create guidance cache: %w", err)
	}
	c := &Cache{local: local, ttl: DefaultRemoteTTL}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Cache) Get(ctx context.Context, challenge hermetic.LifeChallenge, level hermetic.Level) (hermetic.TransformationGuidance, error) {
	key, err := KeyFor(challenge, level)
	if err != nil {
		return hermetic.TransformationGuidance{}, err
	}
	g, source := c.lookup(ctx, key)
	if c.observe != nil {
		c.observe(source)
	}
	out := cloneGuidance(g)
	challenge.Severity = key.Severity
	out.Challenge = challenge
	return out, nil
}

func (c *Cache) lookup(ctx context.Context, key Key) (hermetic.TransformationGuidance, string) {
	if g, ok := c.local.Get(key); ok {
		return g, SourceMemory
	}
	if c.remote != nil {
		if g, ok := c.fetchRemote(ctx, key); ok {
			c.local.Add(key, g)
			return g, SourceRemote
		}
	}
	g := generate(key)
	c.local.Add(key, g)
	if c.remote != nil {
		c.storeRemote(ctx, key, g)
	}
	return g, SourceGenerated
}

func (c *Cache) fetchRemote(ctx context.Context, key Key) (hermetic.TransformationGuidance, bool) {
	raw, ok, err := c.remote.Get(ctx, remotePrefix+key.String())
	if err != nil {
		c.warn("guidance remote get failed", "key", key.String(), "error", err)
		return hermetic.TransformationGuidance{}, false
	}
	if !ok {
		return hermetic.TransformationGuidance{}, false
	}
	var g hermetic.TransformationGuidance
	if err := json.Unmarshal(raw, &g); err != nil {
		c.warn("guidance remote entry corrupt", "key", key.String(), "error", err)
		return hermetic.TransformationGuidance{}, false
	}
	return g, true
}

func (c *Cache) storeRemote(ctx context.Context, key Key, g hermetic.TransformationGuidance) {
	raw, err := json.Marshal(g)
	if err != nil {
		c.warn("guidance marshal failed", "key", key.String(), "error", err)
		return
	}
	if err := c.remote.Set(ctx, remotePrefix+key.String(), raw, c.ttl); err != nil {
		c.warn("guidance remote set failed", "key", key.String(), "error", err)
	}
}

func (c *Cache) warn(msg string, kv ...interface{}) {
	if c.log != nil {
		c.log.Warn(msg, kv...)
	}
}

// Len reports the number of locally cached bundles.
func (c *Cache) Len() int {
	return c.local.Len()
}
