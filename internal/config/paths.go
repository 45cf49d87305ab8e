package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/rivnakm/chcolors/internal/fileutil"
)

// Environment variables that override the default locations.
const (
	ConfigDirEnv = "CHCOLORS_CONFIG_DIR"
	StateDirEnv  = "CHCOLORS_STATE_DIR"
	HomeEnv      = "HOME"
)

// File names inside the config and state directories.
const (
	ConfigFileName = "config.json"
	StateFileName  = "state.json"
)

// ErrNoHome is returned when a default location is needed but HOME is unset.
var ErrNoHome = errors.New("HOME is not set")

// Env looks up an environment value.
type Env func(key string) (string, bool)

// MapEnv returns an Env backed by m.
func MapEnv(m map[string]string) Env {
	return func(key string) (string, bool) {
		value, ok := m[key]
		return value, ok
	}
}

// Paths holds the resolved config and state directories.
type Paths struct {
	ConfigDir string
	StateDir  string
}

// ConfigFile returns the path of config.json.
func (p Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, ConfigFileName)
}

// StateFile returns the path of state.json.
func (p Paths) StateFile() string {
	return filepath.Join(p.StateDir, StateFileName)
}

// ResolvePaths computes the config and state directories from env alone.
// Overrides win over the defaults under $HOME; a leading "~" in an override is
// expanded.
func ResolvePaths(env Env) (Paths, error) {
	home, _ := lookupNonEmpty(env, HomeEnv)

	configDir, err := resolveDir(env, ConfigDirEnv, home, ".config", "chcolors")
	if err != nil {
		return Paths{}, err
	}
	stateDir, err := resolveDir(env, StateDirEnv, home, ".local", "state", "chcolors")
	if err != nil {
		return Paths{}, err
	}

	return Paths{ConfigDir: configDir, StateDir: stateDir}, nil
}

func resolveDir(env Env, key, home string, defaults ...string) (string, error) {
	if value, ok := lookupNonEmpty(env, key); ok {
		return fileutil.ExpandHome(value, home), nil
	}
	if home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(append([]string{home}, defaults...)...), nil
}

func lookupNonEmpty(env Env, key string) (string, bool) {
	if env == nil {
		return "", false
	}
	value, ok := env(key)
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
