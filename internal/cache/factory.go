package cache

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Belphemur/ShowSearch/internal/config"
)

const (
	defaultSize = 500
	defaultTTL  = 10 * time.Minute
)

// ProviderConfig holds the configuration needed to create a cache instance.
type ProviderConfig struct {
	// Size is the maximum number of entries.
	Size int
	// TTL is the time-to-live for cache entries.
	TTL time.Duration
	// OnEvict is called when an entry is evicted.
	OnEvict EvictCallback
	// Logger receives error reports from cache operations. If nil, errors are silently ignored.
	Logger Logger
	// RedisAddress is the Redis/Valkey server address (e.g., "localhost:6379").
	RedisAddress string
	// RedisPassword is the password for the Redis/Valkey server.
	RedisPassword string
	// RedisDB is the Redis/Valkey database number.
	RedisDB int
	// Group is one of Groups. It labels the cache metrics and namespaces its Redis keys.
	// An empty group builds a bare cache without metrics.
	Group string
}

// Provider is a constructor function that creates a Cache from config.
type Provider func(cfg ProviderConfig) (Cache, error)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register registers a cache provider under the given name.
// It panics if the name is already registered or the provider is nil.
func Register(name string, p Provider) {
	mu.Lock()
	defer mu.Unlock()
	if p == nil {
		panic("cache: Register provider is nil")
	}
	if _, exists := providers[name]; exists {
		panic(fmt.Sprintf("cache: provider %q already registered", name))
	}
	providers[name] = p
}

// New creates a new Cache using the named provider and the given config.
// A cache created for a group counts hits, misses, evictions and written bytes under
// that group, and reports its size at scrape time.
func New(name string, cfg ProviderConfig) (Cache, error) {
	mu.RLock()
	p, ok := providers[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("cache: unknown provider %q (registered: %v)", name, RegisteredProviders())
	}

	if cfg.Group == "" {
		return p(cfg)
	}
	if !knownGroup(cfg.Group) {
		return nil, fmt.Errorf("cache: unknown group %q (known: %v)", cfg.Group, Groups)
	}

	m := metricsFor(cfg.Group)
	onEvict := cfg.OnEvict
	cfg.OnEvict = func(key string, body []byte) {
		m.evictions.Inc()
		if onEvict != nil {
			onEvict(key, body)
		}
	}

	inner, err := p(cfg)
	if err != nil {
		return nil, err
	}
	return newInstrumentedCache(inner, cfg.Group, m), nil
}

// NewFromConfig builds the cache for group from the application's cache settings.
// An empty provider name selects the in-memory cache.
func NewFromConfig(cfg *config.Config, group string) (Cache, error) {
	provider := cfg.Cache.Provider
	if provider == "" {
		provider = "memory"
	}
	size := cfg.Cache.Size
	if size <= 0 {
		size = defaultSize
	}

	return New(provider, ProviderConfig{
		Size:          size,
		TTL:           config.ParseDuration("cache.ttl", cfg.Cache.TTL, defaultTTL),
		Logger:        NewZerologLogger(config.GetLogger()),
		RedisAddress:  cfg.Cache.Redis.Address,
		RedisPassword: cfg.Cache.Redis.Password,
		RedisDB:       cfg.Cache.Redis.DB,
		Group:         group,
	})
}

// RegisteredProviders returns a sorted list of registered provider names.
func RegisteredProviders() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
