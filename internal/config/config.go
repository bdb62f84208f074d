package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Settings holds the runtime settings. There is deliberately no config
// file; defaults can only be overridden through the environment.
type Settings struct {
	// Remote is the name of the remote whose tracking branches are
	// searched and checked out.
	Remote string `koanf:"remote"`
	// UpdateRemote controls whether the remote is updated (with prune)
	// before the first search.
	UpdateRemote bool `koanf:"update_remote"`
}

// Load reads settings from GBS_* environment variables over built-in
// defaults. Priority: environment variables > defaults.
func Load() (*Settings, error) {
	k := koanf.New(".")

	// 1. Defaults — confmap.Provider wraps an in-memory map and never fails.
	_ = k.Load(confmap.Provider(map[string]any{
		"remote":        "origin",
		"update_remote": true,
	}, "."), nil)

	// 2. Environment variables
	if err := k.Load(env.Provider("GBS_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "GBS_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

func (s *Settings) validate() error {
	if strings.TrimSpace(s.Remote) == "" {
		return fmt.Errorf("remote must not be empty")
	}
	if strings.Contains(s.Remote, "/") {
		return fmt.Errorf("remote must not contain '/': %s", s.Remote)
	}
	return nil
}
