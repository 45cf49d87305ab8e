package applier

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivnakm/chcolors/internal/config"
	"github.com/rivnakm/chcolors/internal/state"
	"github.com/rivnakm/chcolors/internal/theme"
)

type countingStateStore struct {
	*state.Store
	saves int
}

func (s *countingStateStore) Save(st *state.State) error {
	s.saves++
	return s.Store.Save(st)
}

type serviceFixture struct {
	service *Service
	states  *countingStateStore
	dir     string
	target  string
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, "app")
	target := filepath.Join(dir, "theme.conf")
	writeFile(t, target, "colorscheme: gruvbox\ncolorscheme_type: Dark\n")

	configs := config.NewStore(filepath.Join(root, "config", "config.json"), zerolog.Nop())
	require.NoError(t, configs.Save(&config.Config{
		Themes: []theme.Theme{
			{Name: "gruvbox", Type: theme.Dark},
			{Name: "solarized", Type: theme.Light},
		},
		Aliases: map[string]string{"day": "solarized"},
		Programs: []config.Program{{
			Name:    "app",
			RootDir: dir,
			Patterns: []string{
				`^colorscheme: (?P<name>.*)$`,
				`^colorscheme_type: (?P<type>Light|Dark)$`,
			},
		}},
	}))

	states := &countingStateStore{Store: state.NewStore(filepath.Join(root, "state", "state.json"), zerolog.Nop())}
	service := NewService(configs, states, newTestApplier(root), zerolog.Nop())

	return &serviceFixture{service: service, states: states, dir: dir, target: target}
}

func (f *serviceFixture) current(t *testing.T) (string, bool) {
	t.Helper()
	st, err := f.states.Load()
	require.NoError(t, err)
	return st.CurrentName()
}

func TestServiceSet(t *testing.T) {
	f := newServiceFixture(t)

	result, err := f.service.Set(context.Background(), "solarized", SetOptions{})
	require.NoError(t, err)
	assert.False(t, result.AlreadyActive)
	assert.Equal(t, theme.Theme{Name: "solarized", Type: theme.Light}, result.Theme)
	require.Len(t, result.Files, 1)
	assert.True(t, result.Files[0].Written)

	assert.Equal(t, "colorscheme: solarized\ncolorscheme_type: Light\n", readFile(t, f.target))
	current, ok := f.current(t)
	require.True(t, ok)
	assert.Equal(t, "solarized", current)
}

func TestServiceSetByAliasMatchesCanonicalName(t *testing.T) {
	byAlias := newServiceFixture(t)
	byName := newServiceFixture(t)

	aliasResult, err := byAlias.service.Set(context.Background(), "day", SetOptions{})
	require.NoError(t, err)
	nameResult, err := byName.service.Set(context.Background(), "solarized", SetOptions{})
	require.NoError(t, err)

	assert.Equal(t, nameResult.Theme, aliasResult.Theme)
	assert.Equal(t, readFile(t, byName.target), readFile(t, byAlias.target))

	current, _ := byAlias.current(t)
	assert.Equal(t, "solarized", current)
}

func TestServiceSetTwiceIsNoop(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.Set(context.Background(), "solarized", SetOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, f.states.saves)

	old := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(f.target, old, old))

	result, err := f.service.Set(context.Background(), "solarized", SetOptions{})
	require.NoError(t, err)
	assert.True(t, result.AlreadyActive)
	assert.Empty(t, result.Files)
	assert.Equal(t, 1, f.states.saves)

	info, err := os.Stat(f.target)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old), "file should not be written")
}

func TestServiceSetForce(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.service.Set(context.Background(), "gruvbox", SetOptions{})
	require.NoError(t, err)

	writeFile(t, f.target, "colorscheme: edited\ncolorscheme_type: Light\n")

	result, err := f.service.Set(context.Background(), "gruvbox", SetOptions{Force: true})
	require.NoError(t, err)
	assert.False(t, result.AlreadyActive)
	assert.Equal(t, "colorscheme: gruvbox\ncolorscheme_type: Dark\n", readFile(t, f.target))
}

func TestServiceSetUnknownTheme(t *testing.T) {
	f := newServiceFixture(t)
	before := readFile(t, f.target)

	_, err := f.service.Set(context.Background(), "monokai", SetOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrThemeNotFound))

	assert.Equal(t, before, readFile(t, f.target))
	assert.Equal(t, 0, f.states.saves)
	_, statErr := os.Stat(f.states.Path())
	assert.True(t, os.IsNotExist(statErr), "state file should not be created")
}

func TestServiceSetDryRun(t *testing.T) {
	f := newServiceFixture(t)
	before := readFile(t, f.target)

	result, err := f.service.Set(context.Background(), "solarized", SetOptions{DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	require.Len(t, result.Files, 1)
	assert.True(t, result.Files[0].Modified)

	assert.Equal(t, before, readFile(t, f.target))
	_, ok := f.current(t)
	assert.False(t, ok)
}

func TestServiceSetFailureLeavesStateUnchanged(t *testing.T) {
	f := newServiceFixture(t)
	require.NoError(t, os.RemoveAll(f.dir))

	_, err := f.service.Set(context.Background(), "solarized", SetOptions{})
	var fileErr *FileError
	require.True(t, errors.As(err, &fileErr))
	assert.Equal(t, 0, f.states.saves)
}

func TestServiceNotConfigured(t *testing.T) {
	_, err := NewService(nil, nil, nil, zerolog.Nop()).Set(context.Background(), "x", SetOptions{})
	assert.Error(t, err)
}
