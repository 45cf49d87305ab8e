package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rivnakm/chcolors/internal/applier"
	"github.com/rivnakm/chcolors/internal/config"
	"github.com/rivnakm/chcolors/internal/logging"
)

var (
	setForce       bool
	setDryRun      bool
	setNoHooks     bool
	setHookTimeout time.Duration
)

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().BoolVarP(&setForce, "force", "f", false, "set the theme even if it is marked as current")
	setCmd.Flags().BoolVar(&setDryRun, "dry-run", false, "show which files would change without writing them")
	setCmd.Flags().BoolVar(&setNoHooks, "no-hooks", false, "do not run program hooks")
	setCmd.Flags().DurationVar(&setHookTimeout, "hook-timeout", applier.DefaultHookTimeout, "maximum run time of each hook")
}

var setCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Apply a theme to every configured program",
	Long:  "Apply a theme, or the theme an alias points to, to every configured program.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		configs, states, err := openStores()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		errOut := cmd.ErrOrStderr()

		themeApplier := applier.New(
			logging.Component("applier"),
			applier.WithHome(homeDir()),
			applier.WithHookTimeout(setHookTimeout),
			applier.WithHookOutput(errOut),
			applier.WithObserver(newProgressObserver(errOut)),
		)
		service := applier.NewService(configs, states, themeApplier, logging.Component("set"))

		result, err := service.Set(cmd.Context(), name, applier.SetOptions{
			Force:     setForce,
			DryRun:    setDryRun,
			SkipHooks: setNoHooks,
		})
		if err != nil {
			if errors.Is(err, config.ErrThemeNotFound) {
				return &HintError{Err: err, Hint: "run 'chcolors list' to see registered themes"}
			}
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(out, result)
		}

		if result.AlreadyActive {
			fmt.Fprintf(out, "Theme %q is already set (use --force to override)\n", result.Theme.Name)
			return nil
		}

		if err := writeFileSummary(out, result.Files); err != nil {
			return err
		}

		p := newPalette(out)
		if result.DryRun {
			fmt.Fprintf(out, "Dry run: theme %q %s was not applied\n", result.Theme.Name, p.themeType(result.Theme.Type))
			return nil
		}
		fmt.Fprintf(out, "Theme %q %s set\n", result.Theme.Name, p.themeType(result.Theme.Type))
		return nil
	},
}
