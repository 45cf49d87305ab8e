package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/rivnakm/chcolors/internal/fileutil"
)

// Store loads and saves config.json.
type Store struct {
	path   string
	logger zerolog.Logger
}

// NewStore creates a store backed by the file at path.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the config. A missing file is replaced by an empty default,
// which is saved before it is returned.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug().Str("path", s.path).Msg("config not found, writing default")
			cfg := Default()
			if err := s.Save(cfg); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", s.path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}

	for _, warning := range cfg.Warnings() {
		s.logger.Warn().Str("path", s.path).Msg(warning)
	}

	s.logger.Debug().
		Str("path", s.path).
		Int("themes", len(cfg.Themes)).
		Int("programs", len(cfg.Programs)).
		Msg("config loaded")
	return &cfg, nil
}

// Save writes the config, creating parent directories as needed.
func (s *Store) Save(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := fileutil.EnsureParentDir(s.path); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
