// Package config loads the cache client settings from a JSON file with
// field-level environment overrides (CACHE_HOST, CACHE_PORT, CACHE_USERNAME,
// CACHE_PASSWORD, CACHE_PROTOCOL). Environment wins over file, file wins over
// defaults. The loaded Config is treated as immutable for the process
// lifetime.
package config

import (
	"fmt"
	"sort"
)

// Config is the resolved connection and cache configuration.
type Config struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
	// Protocol selects the client stack ("hotrod" or "rest"). The REST
	// client ignores it; it is carried for the callers that switch on it.
	Protocol string `koanf:"protocol"`

	Caches map[string]CacheSettings `koanf:"caches"`
}

// CacheSettings declares one server-side cache.
type CacheSettings struct {
	Enabled     bool   `koanf:"enabled"`
	Description string `koanf:"description"`
	MemorySize  string `koanf:"memory_size"`
	TTLHours    int    `koanf:"ttl_hours"`
	L1Size      string `koanf:"l1_size"`

	// L1 expiration: minutes wins when both are set; with neither, the
	// provisioner falls back to 30 minutes.
	L1ExpirationMinutes *int `koanf:"l1_expiration_minutes"`
	L1ExpirationHours   *int `koanf:"l1_expiration_hours"`

	Persistence *Persistence `koanf:"persistence"`
}

// Persistence configures the server-side store for a cache. Only the
// "file-store" type is supported; anything else is ignored with a warning.
type Persistence struct {
	Enabled     bool   `koanf:"enabled"`
	Type        string `koanf:"type"`
	Path        string `koanf:"path"`
	Shared      bool   `koanf:"shared"`
	Passivation bool   `koanf:"passivation"`

	WriteBehind *WriteBehind `koanf:"write_behind"`
}

// WriteBehind queues writes instead of flushing them synchronously.
type WriteBehind struct {
	Enabled               bool `koanf:"enabled"`
	ModificationQueueSize int  `koanf:"modification_queue_size"`
	FailSilently          bool `koanf:"fail_silently"`
}

// Default returns the connection defaults applied underneath file and env.
func Default() Config {
	return Config{
		Host:     "localhost",
		Port:     11222,
		Username: "admin",
		Password: "",
		Protocol: "hotrod",
	}
}

// RESTBaseURL is the REST v2 API root.
func (c Config) RESTBaseURL() string {
	return fmt.Sprintf("http://%s:%d/rest/v2", c.Host, c.Port)
}

// HotRodAddr is the host:port pair for HotRod clients.
func (c Config) HotRodAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Cache looks up the settings for a configured cache.
func (c Config) Cache(name string) (CacheSettings, bool) {
	s, ok := c.Caches[name]
	return s, ok
}

// CacheNames returns all configured cache names, sorted.
func (c Config) CacheNames() []string {
	names := make([]string, 0, len(c.Caches))
	for n := range c.Caches {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Enabled reports whether a cache is configured and enabled.
func (c Config) Enabled(name string) bool {
	s, ok := c.Caches[name]
	return ok && s.Enabled
}
