// Package state persists the currently active theme.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/rivnakm/chcolors/internal/config"
	"github.com/rivnakm/chcolors/internal/fileutil"
)

// State records which theme was last applied.
type State struct {
	// Current is the active theme name, nil when no theme was set yet.
	Current *string `json:"current"`
}

// Default returns a state with no current theme.
func Default() *State {
	return &State{}
}

// CurrentName returns the active theme name and whether one is set.
func (s *State) CurrentName() (string, bool) {
	if s == nil || s.Current == nil {
		return "", false
	}
	return *s.Current, true
}

// IsCurrent reports whether name is the active theme.
func (s *State) IsCurrent(name string) bool {
	current, ok := s.CurrentName()
	return ok && current == name
}

// SetCurrent marks name as the active theme.
func (s *State) SetCurrent(name string) {
	s.Current = &name
}

// Store loads and saves state.json.
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

// Load reads the state. A missing file is replaced by an empty default,
// which is saved before it is returned.
func (s *Store) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug().Str("path", s.path).Msg("state not found, writing default")
			st := Default()
			if err := s.Save(st); err != nil {
				return nil, err
			}
			return st, nil
		}
		return nil, fmt.Errorf("read state %s: %w", s.path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &config.ParseError{Path: s.path, Err: err}
	}
	if _, ok := raw["current"]; !ok {
		return nil, &config.ParseError{Path: s.path, Err: errors.New(`missing required field "current"`)}
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, &config.ParseError{Path: s.path, Err: err}
	}
	return &st, nil
}

// Save writes the state, creating parent directories as needed.
func (s *Store) Save(st *State) error {
	if st == nil {
		return fmt.Errorf("state is required")
	}

	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	data = append(data, '\n')

	if err := fileutil.EnsureParentDir(s.path); err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}

	current, _ := st.CurrentName()
	s.logger.Debug().Str("path", s.path).Str("current", current).Msg("state saved")
	return nil
}
