// Package cli implements the chcolors command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rivnakm/chcolors/internal/config"
	"github.com/rivnakm/chcolors/internal/logging"
	"github.com/rivnakm/chcolors/internal/state"
)

// Version is set at build time.
var Version = "dev"

var (
	configDir  string
	stateDir   string
	verbose    bool
	logLevel   string
	noColor    bool
	jsonOutput bool
	noProgress bool

	settings = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "chcolors",
	Short: "Switch color schemes in multiple config files at once",
	Long: `chcolors rewrites the color scheme of several programs in one step.

Each configured program lists regular expressions whose "name" and "type"
capture groups are replaced with the selected theme's name and Light/Dark type.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logLevel
		if verbose {
			level = "debug"
		}
		return logging.Init(logging.Config{
			Level:   level,
			Output:  cmd.ErrOrStderr(),
			NoColor: !colorEnabled(cmd.ErrOrStderr()),
		})
	},
}

func init() {
	rootCmd.Version = Version

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config-dir", "", "config directory (default $HOME/.config/chcolors, env "+config.ConfigDirEnv+")")
	flags.StringVar(&stateDir, "state-dir", "", "state directory (default $HOME/.local/state/chcolors, env "+config.StateDirEnv+")")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&jsonOutput, "json", false, "write machine-readable JSON output")
	flags.BoolVar(&noProgress, "no-progress", false, "disable progress output")

	_ = settings.BindPFlag(config.ConfigDirEnv, flags.Lookup("config-dir"))
	_ = settings.BindPFlag(config.StateDirEnv, flags.Lookup("state-dir"))
	_ = settings.BindEnv(config.ConfigDirEnv)
	_ = settings.BindEnv(config.StateDirEnv)
	_ = settings.BindEnv(config.HomeEnv)
}

// Main runs the command line with args and returns the process exit code.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(stderr, err)
		return ExitCode(err)
	}
	return 0
}

// settingsEnv resolves flag, then environment, values through viper.
func settingsEnv(key string) (string, bool) {
	value := settings.GetString(key)
	return value, value != ""
}

func resolvePaths() (config.Paths, error) {
	paths, err := config.ResolvePaths(settingsEnv)
	if err != nil {
		if errors.Is(err, config.ErrNoHome) {
			return config.Paths{}, &HintError{
				Err:  err,
				Hint: fmt.Sprintf("set HOME, or both %s and %s", config.ConfigDirEnv, config.StateDirEnv),
			}
		}
		return config.Paths{}, err
	}
	return paths, nil
}

func openStores() (*config.Store, *state.Store, error) {
	paths, err := resolvePaths()
	if err != nil {
		return nil, nil, err
	}
	configs := config.NewStore(paths.ConfigFile(), logging.Component("config"))
	states := state.NewStore(paths.StateFile(), logging.Component("state"))
	return configs, states, nil
}

func homeDir() string {
	if home := strings.TrimSpace(settings.GetString(config.HomeEnv)); home != "" {
		return home
	}
	home, _ := os.UserHomeDir()
	return home
}
