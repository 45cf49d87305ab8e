// Package applier rewrites program config files to switch the active theme.
package applier

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/rivnakm/chcolors/internal/config"
	"github.com/rivnakm/chcolors/internal/fileutil"
	"github.com/rivnakm/chcolors/internal/pattern"
	"github.com/rivnakm/chcolors/internal/theme"
)

// DefaultHookTimeout bounds a single hook command.
const DefaultHookTimeout = 30 * time.Second

// Observer is notified as each program is processed.
type Observer interface {
	ProgramStarted(program string)
	ProgramFinished(program string, err error)
}

// Applier applies a theme to program files.
type Applier struct {
	logger      zerolog.Logger
	home        string
	shell       string
	hookTimeout time.Duration
	hookOutput  io.Writer
	observer    Observer
}

// Option configures the Applier.
type Option func(*Applier)

// WithHome sets the directory that "~" expands to.
func WithHome(home string) Option {
	return func(a *Applier) {
		a.home = home
	}
}

// WithHookTimeout bounds each hook command.
func WithHookTimeout(timeout time.Duration) Option {
	return func(a *Applier) {
		if timeout > 0 {
			a.hookTimeout = timeout
		}
	}
}

// WithHookOutput receives hook stdout and stderr.
func WithHookOutput(w io.Writer) Option {
	return func(a *Applier) {
		if w != nil {
			a.hookOutput = w
		}
	}
}

// WithShell sets the shell hooks run under.
func WithShell(shell string) Option {
	return func(a *Applier) {
		if shell != "" {
			a.shell = shell
		}
	}
}

// WithObserver registers per-program progress notifications.
func WithObserver(observer Observer) Option {
	return func(a *Applier) {
		a.observer = observer
	}
}

// New creates an Applier.
func New(logger zerolog.Logger, opts ...Option) *Applier {
	home, _ := os.UserHomeDir()

	a := &Applier{
		logger:      logger,
		home:        home,
		shell:       "sh",
		hookTimeout: DefaultHookTimeout,
		hookOutput:  os.Stderr,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// ApplyOptions control a single Apply call.
type ApplyOptions struct {
	// DryRun computes results without writing files or running hooks.
	DryRun bool

	// SkipHooks disables program hooks.
	SkipHooks bool
}

// FileResult describes what happened to one file.
type FileResult struct {
	Program string `json:"program"`
	Path    string `json:"path"`

	// Patterns is the number of patterns that matched.
	Patterns int `json:"patterns"`

	// Modified is true when the contents changed.
	Modified bool `json:"modified"`

	// Written is true when the new contents were saved.
	Written bool `json:"written"`
}

// Result summarizes an Apply call.
type Result struct {
	Theme theme.Theme  `json:"theme"`
	Files []FileResult `json:"files"`
}

// Written returns the files whose contents were saved.
func (r *Result) Written() []FileResult {
	var written []FileResult
	for _, f := range r.Files {
		if f.Written {
			written = append(written, f)
		}
	}
	return written
}

// Apply rewrites every program's files for the theme. The first error stops
// processing; the partial result is returned with it.
func (a *Applier) Apply(ctx context.Context, programs []config.Program, t theme.Theme, opts ApplyOptions) (*Result, error) {
	result := &Result{Theme: t, Files: []FileResult{}}

	for _, program := range programs {
		if a.observer != nil {
			a.observer.ProgramStarted(program.Name)
		}

		files, err := a.applyProgram(ctx, program, t, opts)
		result.Files = append(result.Files, files...)

		if a.observer != nil {
			a.observer.ProgramFinished(program.Name, err)
		}
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

func (a *Applier) applyProgram(ctx context.Context, program config.Program, t theme.Theme, opts ApplyOptions) ([]FileResult, error) {
	patterns, err := program.CompilePatterns()
	if err != nil {
		return nil, err
	}

	paths, err := a.programFiles(program)
	if err != nil {
		return nil, err
	}

	a.logger.Debug().
		Str("program", program.Name).
		Int("files", len(paths)).
		Int("patterns", len(patterns)).
		Msg("applying theme to program")

	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := a.applyFile(program.Name, path, patterns, t, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	if opts.DryRun || opts.SkipHooks || len(program.Hooks) == 0 {
		return results, nil
	}
	return results, a.runHooks(ctx, program, t)
}

func (a *Applier) applyFile(programName, path string, patterns []*pattern.Pattern, t theme.Theme, opts ApplyOptions) (FileResult, error) {
	res := FileResult{Program: programName, Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, &FileError{Program: programName, Path: path, Op: OpRead, Err: err}
	}

	original := string(data)
	contents := original
	for _, p := range patterns {
		if !p.MatchString(contents) {
			continue
		}
		contents = p.Apply(contents, t)
		res.Patterns++
	}

	res.Modified = contents != original
	if !res.Modified || opts.DryRun {
		return res, nil
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return res, &FileError{Program: programName, Path: path, Op: OpWrite, Err: err}
	}
	if err := fileutil.WriteFileAtomic(target, []byte(contents), 0o644); err != nil {
		return res, &FileError{Program: programName, Path: path, Op: OpWrite, Err: err}
	}
	res.Written = true

	a.logger.Debug().
		Str("program", programName).
		Str("path", path).
		Int("patterns", res.Patterns).
		Msg("file updated")
	return res, nil
}
