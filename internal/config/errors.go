package config

import (
	"errors"
	"fmt"
)

// ErrThemeNotFound is matched by ThemeNotFoundError via errors.Is.
var ErrThemeNotFound = errors.New("theme not registered")

// ThemeNotFoundError reports a theme name, or alias target, that no configured theme has.
type ThemeNotFoundError struct {
	// Name is the name looked up after alias resolution.
	Name string

	// Alias is the alias the user gave, if any.
	Alias string
}

func (e *ThemeNotFoundError) Error() string {
	if e.Alias != "" {
		return fmt.Sprintf("theme %q (alias %q) not registered", e.Name, e.Alias)
	}
	return fmt.Sprintf("theme %q not registered", e.Name)
}

// Is reports whether target is ErrThemeNotFound.
func (e *ThemeNotFoundError) Is(target error) bool {
	return target == ErrThemeNotFound
}

// ParseError reports a persisted file that could not be decoded or validated.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
