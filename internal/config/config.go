// Package config defines the chcolors configuration and its JSON persistence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rivnakm/chcolors/internal/pattern"
	"github.com/rivnakm/chcolors/internal/theme"
)

// SchemaURL is written as "$schema" in every saved config.
const SchemaURL = "https://raw.githubusercontent.com/rivnakm/chcolors/refs/heads/main/config.schema.json"

// Program is an application whose config files get rewritten.
type Program struct {
	// Name is shown in output and logs.
	Name string `json:"name"`

	// RootDir holds the files to rewrite. Only regular files directly inside it
	// are considered. A leading "~" is expanded.
	RootDir string `json:"root_dir,omitempty"`

	// Path is an optional glob selecting additional files. "**" matches
	// across directories.
	Path string `json:"path,omitempty"`

	// Patterns are regular expressions with optional "name" and "type" groups,
	// applied in order to every file.
	Patterns []string `json:"patterns"`

	// Hooks are shell commands run after the program's files were processed.
	Hooks []string `json:"hooks,omitempty"`
}

// CompilePatterns compiles the program's patterns in order.
func (p Program) CompilePatterns() ([]*pattern.Pattern, error) {
	compiled := make([]*pattern.Pattern, 0, len(p.Patterns))
	for _, expr := range p.Patterns {
		c, err := pattern.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("program %q: %w", p.Name, err)
		}
		compiled = append(compiled, c)
	}
	return compiled, nil
}

// Config is the user's theme and program registry.
type Config struct {
	Themes   []theme.Theme
	Aliases  map[string]string
	Programs []Program
}

// Default returns an empty configuration.
func Default() *Config {
	return &Config{
		Themes:   []theme.Theme{},
		Aliases:  map[string]string{},
		Programs: []Program{},
	}
}

type fileConfig struct {
	Schema   string            `json:"$schema,omitempty"`
	Themes   *[]theme.Theme    `json:"themes"`
	Programs *[]Program        `json:"programs"`
	Aliases  map[string]string `json:"aliases,omitempty"`
}

// MarshalJSON writes the config with a "$schema" key and omits empty aliases.
func (c *Config) MarshalJSON() ([]byte, error) {
	themes := c.Themes
	if themes == nil {
		themes = []theme.Theme{}
	}
	programs := make([]Program, len(c.Programs))
	copy(programs, c.Programs)
	for i := range programs {
		if programs[i].Patterns == nil {
			programs[i].Patterns = []string{}
		}
	}

	return json.Marshal(fileConfig{
		Schema:   SchemaURL,
		Themes:   &themes,
		Programs: &programs,
		Aliases:  c.Aliases,
	})
}

// UnmarshalJSON requires the "themes" and "programs" keys.
func (c *Config) UnmarshalJSON(data []byte) error {
	var raw fileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Themes == nil {
		return errors.New(`missing required field "themes"`)
	}
	if raw.Programs == nil {
		return errors.New(`missing required field "programs"`)
	}

	c.Themes = *raw.Themes
	c.Programs = *raw.Programs
	c.Aliases = raw.Aliases
	if c.Aliases == nil {
		c.Aliases = map[string]string{}
	}
	return nil
}

// Validate checks structural rules. Duplicate theme names and dangling aliases
// are not errors; see Warnings.
func (c *Config) Validate() error {
	for i, t := range c.Themes {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("theme %d: name is required", i+1)
		}
		if !t.Type.Valid() {
			return fmt.Errorf("theme %q: type is required", t.Name)
		}
	}

	for i, p := range c.Programs {
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("program %d: name is required", i+1)
		}
		if strings.TrimSpace(p.RootDir) == "" && strings.TrimSpace(p.Path) == "" {
			return fmt.Errorf("program %q: root_dir or path is required", p.Name)
		}
		if _, err := p.CompilePatterns(); err != nil {
			return err
		}
	}

	for alias, target := range c.Aliases {
		if strings.TrimSpace(alias) == "" {
			return errors.New("alias name is required")
		}
		if strings.TrimSpace(target) == "" {
			return fmt.Errorf("alias %q: target is required", alias)
		}
	}

	return nil
}

// Warnings lists non-fatal problems: duplicate theme names (the first
// definition wins) and aliases pointing at unknown themes.
func (c *Config) Warnings() []string {
	var warnings []string

	seen := make(map[string]struct{}, len(c.Themes))
	for _, t := range c.Themes {
		if _, exists := seen[t.Name]; exists {
			warnings = append(warnings, fmt.Sprintf("duplicate theme %q, the first definition is used", t.Name))
			continue
		}
		seen[t.Name] = struct{}{}
	}

	for _, alias := range c.AliasNames() {
		target := c.Aliases[alias]
		if _, ok := c.FindTheme(target); !ok {
			warnings = append(warnings, fmt.Sprintf("alias %q points to unknown theme %q", alias, target))
		}
	}

	return warnings
}

// FindTheme returns the first theme with the given name.
func (c *Config) FindTheme(name string) (theme.Theme, bool) {
	for _, t := range c.Themes {
		if t.Name == name {
			return t, true
		}
	}
	return theme.Theme{}, false
}

// ResolveTheme maps name through the aliases, then looks it up among the themes.
func (c *Config) ResolveTheme(name string) (theme.Theme, error) {
	lookup := name
	alias := ""
	if target, ok := c.Aliases[name]; ok {
		lookup = target
		alias = name
	}

	t, ok := c.FindTheme(lookup)
	if !ok {
		return theme.Theme{}, &ThemeNotFoundError{Name: lookup, Alias: alias}
	}
	return t, nil
}

// AliasNames returns the alias names in sorted order.
func (c *Config) AliasNames() []string {
	names := make([]string, 0, len(c.Aliases))
	for alias := range c.Aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}
