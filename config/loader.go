package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CACHE_"

// envKeys are the only settings overridable from the environment; cache
// definitions always come from the file.
var envKeys = map[string]string{
	"host":     "host",
	"port":     "port",
	"username": "username",
	"password": "password",
	"protocol": "protocol",
}

// Loader hydrates a Config honoring env > file > default precedence.
type Loader struct {
	path string
}

// NewLoader prepares a loader for the given settings file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load assembles the effective configuration snapshot.
func (l *Loader) Load(ctx context.Context) (Config, error) {
	select {
	case <-ctx.Done():
		return Config{}, ctx.Err()
	default:
	}

	k := koanf.New(".")

	def := Default()
	defaults := map[string]any{
		"host":     def.Host,
		"port":     def.Port,
		"username": def.Username,
		"password": def.Password,
		"protocol": def.Protocol,
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}

	if _, err := os.Stat(l.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: file %s not found; create it with the cache server credentials", l.path)
		}
		return Config{}, fmt.Errorf("config: stat %s: %w", l.path, err)
	}
	if err := k.Load(file.Provider(l.path), kjson.Parser()); err != nil {
		return Config{}, fmt.Errorf("config: load file %s: %w", l.path, err)
	}

	transform := func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		if mapped, ok := envKeys[key]; ok {
			return mapped
		}
		// Unknown CACHE_* variables are ignored rather than splattered
		// into the cache map.
		return ""
	}
	if err := k.Load(env.Provider(envPrefix, ".", transform), nil); err != nil {
		return Config{}, fmt.Errorf("config: load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
