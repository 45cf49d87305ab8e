package applier

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rivnakm/chcolors/internal/config"
	"github.com/rivnakm/chcolors/internal/state"
	"github.com/rivnakm/chcolors/internal/theme"
)

// ConfigSource loads the configuration.
type ConfigSource interface {
	Load() (*config.Config, error)
}

// StateStore loads and saves the active theme.
type StateStore interface {
	Load() (*state.State, error)
	Save(st *state.State) error
}

// Service switches the active theme.
type Service struct {
	configs ConfigSource
	states  StateStore
	applier *Applier
	logger  zerolog.Logger
}

// NewService creates a Service.
func NewService(configs ConfigSource, states StateStore, applier *Applier, logger zerolog.Logger) *Service {
	return &Service{
		configs: configs,
		states:  states,
		applier: applier,
		logger:  logger,
	}
}

// SetOptions control a theme switch.
type SetOptions struct {
	// Force re-applies the theme even when it is already active.
	Force bool

	// DryRun reports what would change without writing anything.
	DryRun bool

	// SkipHooks disables program hooks.
	SkipHooks bool
}

// SetResult describes a theme switch.
type SetResult struct {
	Theme theme.Theme `json:"theme"`

	// AlreadyActive is true when nothing was done because the theme was current.
	AlreadyActive bool `json:"already_active"`

	DryRun bool         `json:"dry_run"`
	Files  []FileResult `json:"files"`
}

// Set resolves name through the aliases and applies the theme to every
// program. The state is saved only after all programs succeeded.
func (s *Service) Set(ctx context.Context, name string, opts SetOptions) (*SetResult, error) {
	if s.configs == nil || s.states == nil || s.applier == nil {
		return nil, errors.New("service is not fully configured")
	}

	cfg, err := s.configs.Load()
	if err != nil {
		return nil, err
	}

	t, err := cfg.ResolveTheme(name)
	if err != nil {
		return nil, err
	}

	st, err := s.states.Load()
	if err != nil {
		return nil, err
	}

	result := &SetResult{Theme: t, DryRun: opts.DryRun, Files: []FileResult{}}
	if st.IsCurrent(t.Name) && !opts.Force {
		s.logger.Debug().Str("theme", t.Name).Msg("theme already active")
		result.AlreadyActive = true
		return result, nil
	}

	s.logger.Info().
		Str("theme", t.Name).
		Str("type", t.Type.String()).
		Bool("force", opts.Force).
		Bool("dry_run", opts.DryRun).
		Msg("setting theme")

	applied, err := s.applier.Apply(ctx, cfg.Programs, t, ApplyOptions{
		DryRun:    opts.DryRun,
		SkipHooks: opts.SkipHooks,
	})
	if applied != nil {
		result.Files = applied.Files
	}
	if err != nil {
		return result, err
	}

	if opts.DryRun {
		return result, nil
	}

	st.SetCurrent(t.Name)
	if err := s.states.Save(st); err != nil {
		return result, fmt.Errorf("save state: %w", err)
	}

	return result, nil
}
