// Package theme defines color scheme identities and their light/dark classification.
package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidThemeType is returned when theme type text is neither light nor dark.
var ErrInvalidThemeType = errors.New("invalid theme type")

// ThemeType classifies a theme as light or dark.
type ThemeType int

// Supported theme types.
const (
	Light ThemeType = iota + 1
	Dark
)

// AllThemeTypes returns every supported theme type.
func AllThemeTypes() []ThemeType {
	return []ThemeType{Light, Dark}
}

// ParseThemeType converts text to a ThemeType, ignoring case.
func ParseThemeType(s string) (ThemeType, error) {
	switch strings.ToLower(s) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrInvalidThemeType, s)
	}
}

// String returns the canonical rendering, "Light" or "Dark".
func (t ThemeType) String() string {
	switch t {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	default:
		return fmt.Sprintf("ThemeType(%d)", int(t))
	}
}

// Valid reports whether t is one of the supported theme types.
func (t ThemeType) Valid() bool {
	return t == Light || t == Dark
}

// MarshalText implements encoding.TextMarshaler.
func (t ThemeType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w %d", ErrInvalidThemeType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ThemeType) UnmarshalText(text []byte) error {
	parsed, err := ParseThemeType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Theme is a named color scheme with a light/dark classification.
type Theme struct {
	Name string    `json:"name"`
	Type ThemeType `json:"type"`
}

// String renders the theme as "name [Type]".
func (t Theme) String() string {
	return fmt.Sprintf("%s [%s]", t.Name, t.Type)
}
