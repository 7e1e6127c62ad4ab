// Package file provides TOML-backed configuration for manifestprep.
//
// Configuration lives in ~/.manifestprep/config.toml by default:
//
//	pattern = '()[\t ]*#.*($)'
//
//	[[processors]]
//	name = "casefold"
//
//	[[processors]]
//	name = "comments"
//	options = { pattern = '()[\t ]*;.*($)' }
//
// Both keys are optional. An absent file means defaults throughout.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// StageConfig selects a preprocessing stage by registry name with
// stage-specific options.
type StageConfig struct {
	Name    string         `toml:"name"`
	Options map[string]any `toml:"options,omitempty"`
}

// Config is the persisted manifestprep configuration.
type Config struct {
	// Pattern overrides the default comment pattern. It is used when no
	// explicit processor list is configured. Empty means the built-in
	// default.
	Pattern string `toml:"pattern,omitempty"`

	// Processors is an ordered list of stages replacing the default
	// casefold-then-comments pipeline. Empty means the default pipeline.
	Processors []StageConfig `toml:"processors,omitempty"`
}

// ConfigStore is a file-based TOML configuration store.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	cfg      Config
}

// NewConfigStore creates a TOML-based config store.
// If configDir is empty, defaults to ~/.manifestprep/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".manifestprep")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Config returns a copy of the current configuration.
func (s *ConfigStore) Config() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg := s.cfg
	cfg.Processors = append([]StageConfig(nil), s.cfg.Processors...)
	return cfg
}

// SetPattern stores a comment pattern override and persists immediately.
func (s *ConfigStore) SetPattern(pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Pattern = pattern
	return s.save()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(s.cfg)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file.
// A missing file is not an error; it leaves the defaults in place.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.cfg = Config{}
			return nil
		}
		return err
	}

	var loaded Config
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing %s: %w", s.filePath, err)
	}

	s.cfg = loaded
	return nil
}
